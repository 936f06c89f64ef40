package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var versionCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the current workspace version",
	Long: `Print the version declared by the first manifest found under the
project root. With --all, list the declared version of every workspace
package instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		workflow, err := newCliOptionInputs(config, &cratemonFlags).workflow()
		if err != nil {
			wrapFatalln("cannot initialize workflows", err)
			return
		}
		if cratemonFlags.version.all {
			versions, err := workflow.Versions()
			if err != nil {
				wrapFatalln("cannot read workspace versions", err)
				return
			}
			for _, pv := range versions {
				infoLogger.Printf("%s\t%s", pv.Name, color.HiBlackString(pv.Version.String()))
			}
			return
		}
		v, err := workflow.Current()
		if err != nil {
			wrapFatalln("cannot read current version", err)
			return
		}
		infoLogger.Println(v)
	},
}

func init() {
	addAllVersionsFlag(versionCurrentCmd)
	versionCmd.AddCommand(versionCurrentCmd)
}
