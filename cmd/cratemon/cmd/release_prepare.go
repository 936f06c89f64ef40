package cmd

import (
	"context"

	"github.com/oneconcern/cratemon/pkg/model"
	"github.com/spf13/cobra"
)

var releasePrepareCmd = &cobra.Command{
	Use:   "prepare <version>",
	Short: "Validate the workspace and rewrite it for publication",
	Long: `Validate the workspace, then rewrite it for publication at the given
version: every package version is set and every dependency reference is
pinned to the registry.

Validation runs before any rewrite, so a failing workspace is left
untouched.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		v, err := model.ParseVersion(args[0])
		if err != nil {
			wrapFatalln("invalid version argument", err)
			return
		}
		workflow, err := newCliOptionInputs(config, &cratemonFlags).workflow()
		if err != nil {
			wrapFatalln("cannot initialize workflows", err)
			return
		}
		if err := workflow.Prepare(context.Background(), v); err != nil {
			wrapFatalln("prepare failed", err)
			return
		}
		infoLogger.Printf("workspace prepared for release %s", v)
	},
}

func init() {
	releaseCmd.AddCommand(releasePrepareCmd)
}
