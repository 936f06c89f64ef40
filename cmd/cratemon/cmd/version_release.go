package cmd

import (
	"context"

	"github.com/oneconcern/cratemon/pkg/model"
	"github.com/spf13/cobra"
)

var versionReleaseCmd = &cobra.Command{
	Use:   "release <version>",
	Short: "Stamp, commit, tag and push a release",
	Long: `Set every workspace package to the given version, commit the change,
create the annotated release tag and push it to origin.

A failed push keeps the local tag in place so the push may be retried
by hand.`,
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
		if err := workflow.Release(context.Background(), v); err != nil {
			wrapFatalln("release failed", err)
			return
		}
		infoLogger.Printf("released version %s", v)
	},
}

func init() {
	addAssumeYesFlag(versionReleaseCmd)
	versionCmd.AddCommand(versionReleaseCmd)
}
