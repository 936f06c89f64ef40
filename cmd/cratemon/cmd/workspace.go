package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Print the resolved workspace",
	Long: `Print the workspace cratemon operates on, as resolved from the
configuration: packages in publish order, their manifests and their
declared dependencies.`,
	Run: func(cmd *cobra.Command, args []string) {
		ws, err := config.workspace()
		if err != nil {
			wrapFatalln("invalid workspace configuration", err)
			return
		}
		buf, err := yaml.Marshal(ws)
		if err != nil {
			wrapFatalln("cannot marshal workspace", err)
			return
		}
		infoLogger.Print(string(buf))
	},
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
}
