package cmd

import (
	"github.com/spf13/cobra"
)

// releaseCmd groups the release pipeline commands
var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Commands to drive a workspace release",
	Long: `Commands to drive the release pipeline of the workspace: checking
that a release could proceed, rewriting the workspace for publication,
publishing its packages in dependency order, and reverting the rewrite
after a failed publication.`,
}

func init() {
	rootCmd.AddCommand(releaseCmd)
}
