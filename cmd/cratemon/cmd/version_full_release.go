package cmd

import (
	"context"

	"github.com/oneconcern/cratemon/pkg/model"
	"github.com/spf13/cobra"
)

var versionFullReleaseCmd = &cobra.Command{
	Use:   "full-release <major|minor|patch>",
	Short: "Bump, commit, tag and push a release",
	Long: `Bump the workspace version by the given kind, commit the change,
create the annotated release tag and push it to origin. The released
version is computed from the current one, so the workspace must be in
sync before running this.`,
	ValidArgs: []string{"major", "minor", "patch"},
	Args:      cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := model.ParseBumpKind(args[0])
		if err != nil {
			wrapFatalln("invalid bump kind", err)
			return
		}
		workflow, err := newCliOptionInputs(config, &cratemonFlags).workflow()
		if err != nil {
			wrapFatalln("cannot initialize workflows", err)
			return
		}
		released, err := workflow.FullRelease(context.Background(), kind)
		if err != nil {
			wrapFatalln("full-release failed", err)
			return
		}
		infoLogger.Printf("released version %s", released)
	},
}

func init() {
	addAssumeYesFlag(versionFullReleaseCmd)
	versionCmd.AddCommand(versionFullReleaseCmd)
}
