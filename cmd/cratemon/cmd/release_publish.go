package cmd

import (
	"context"

	"github.com/oneconcern/cratemon/pkg/model"
	"github.com/spf13/cobra"
)

var releasePublishCmd = &cobra.Command{
	Use:   "publish <version>",
	Short: "Publish every workspace package to the registry",
	Long: `Rewrite the workspace for the given version and publish every package
to the registry, strictly in dependency order.

Publication halts on the first failure: packages already published stay
published, later packages are never attempted, and nothing is rolled
back. After a failure, fix the cause and run the command again, or run
'release revert' to restore path form references.`,
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
		if err := workflow.Publish(context.Background(), v); err != nil {
			wrapFatalln("publish failed", err)
			return
		}
		infoLogger.Printf("published release %s", v)
	},
}

func init() {
	addPublishWaitFlag(releasePublishCmd)
	releaseCmd.AddCommand(releasePublishCmd)
}
