package cmd

import (
	"github.com/oneconcern/cratemon/pkg/model"
	"github.com/spf13/cobra"
)

var versionBumpCmd = &cobra.Command{
	Use:   "bump <major|minor|patch>",
	Short: "Bump the workspace version",
	Long: `Compute the next version of the given kind from the current one and
write it to every workspace package. A major bump resets the minor and
patch numbers, a minor bump resets the patch number.

The new version is printed on success.`,
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
		next, err := workflow.Bump(kind)
		if err != nil {
			wrapFatalln("bump failed", err)
			return
		}
		infoLogger.Println(next)
	},
}

func init() {
	versionCmd.AddCommand(versionBumpCmd)
}
