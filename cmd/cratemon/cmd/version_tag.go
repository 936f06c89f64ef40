package cmd

import (
	"context"

	"github.com/oneconcern/cratemon/pkg/model"
	"github.com/spf13/cobra"
)

var versionTagCmd = &cobra.Command{
	Use:   "tag [version]",
	Short: "Create the release tag",
	Long: `Create the annotated release tag for the given version, or for the
current workspace version when the argument is omitted.

When the tag already exists, a confirmation is asked before replacing
it: confirmed, the old tag is deleted locally and best effort on the
remote, then recreated; declined, the existing tag stands untouched and
the command fails. Use --yes to confirm without asking.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		workflow, err := newCliOptionInputs(config, &cratemonFlags).workflow()
		if err != nil {
			wrapFatalln("cannot initialize workflows", err)
			return
		}
		var v model.ReleaseVersion
		if len(args) == 1 {
			v, err = model.ParseVersion(args[0])
			if err != nil {
				wrapFatalln("invalid version argument", err)
				return
			}
		} else {
			v, err = workflow.Current()
			if err != nil {
				wrapFatalln("cannot read current version", err)
				return
			}
		}
		if err := workflow.Tag(context.Background(), v); err != nil {
			wrapFatalln("tag failed", err)
			return
		}
		infoLogger.Printf("tag %s created", v.TagName())
	},
}

func init() {
	addAssumeYesFlag(versionTagCmd)
	versionCmd.AddCommand(versionTagCmd)
}
