package cmd

import (
	"github.com/spf13/cobra"
)

var releaseRevertCmd = &cobra.Command{
	Use:   "revert",
	Short: "Restore path form dependency references",
	Long: `Restore every dependency reference to its local path form. This is the
recovery path after a failed publication left the workspace partially
pinned to the registry.`,
	Run: func(cmd *cobra.Command, args []string) {
		workflow, err := newCliOptionInputs(config, &cratemonFlags).workflow()
		if err != nil {
			wrapFatalln("cannot initialize workflows", err)
			return
		}
		if err := workflow.Revert(); err != nil {
			wrapFatalln("revert failed", err)
			return
		}
		infoLogger.Printf("dependency references restored to path form")
	},
}

func init() {
	releaseCmd.AddCommand(releaseRevertCmd)
}
