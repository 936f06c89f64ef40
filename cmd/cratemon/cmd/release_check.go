package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var releaseCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that a release could proceed",
	Long: `Verify that a release could proceed, without modifying anything:
required tools are present, every manifest is present and lint clean,
every package declares the same version, and the workspace builds and
tests green.`,
	Run: func(cmd *cobra.Command, args []string) {
		workflow, err := newCliOptionInputs(config, &cratemonFlags).workflow()
		if err != nil {
			wrapFatalln("cannot initialize workflows", err)
			return
		}
		if err := workflow.Check(context.Background()); err != nil {
			wrapFatalln("release check failed", err)
			return
		}
		infoLogger.Printf("workspace is ready to release")
	},
}

func init() {
	releaseCmd.AddCommand(releaseCheckCmd)
}
