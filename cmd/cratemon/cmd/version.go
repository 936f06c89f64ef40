package cmd

import (
	"bytes"

	"github.com/spf13/cobra"
)

// build information, set at link time
var (
	Version   string
	BuildDate string
	GitCommit string
	GitState  string
)

// VersionInfo describes the cratemon build
type VersionInfo struct {
	Version   string `json:"version,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
	GitState  string `json:"gitState,omitempty"`
}

func NewVersionInfo() VersionInfo {
	ver := VersionInfo{
		Version:   "dev",
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GitState:  "",
	}
	if Version != "" {
		ver.Version = Version
		ver.GitState = "clean"
	}
	if GitState != "" {
		ver.GitState = GitState
	}
	return ver
}

func (v VersionInfo) String() string {
	var buf bytes.Buffer
	buf.WriteString("Version: ")
	buf.WriteString(v.Version)
	buf.WriteString("\n")
	buf.WriteString("Build date: ")
	buf.WriteString(v.BuildDate)
	buf.WriteString("\n")
	buf.WriteString("Commit: ")
	buf.WriteString(v.GitCommit)
	buf.WriteString("\n")
	buf.WriteString("Working tree: ")
	buf.WriteString(v.GitState)
	buf.WriteString("\n")
	return buf.String()
}

// versionCmd groups the commands managing the version shared by every
// package of the workspace. The version of the cratemon binary itself is
// reported by the --version flag.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Commands to manage the workspace version",
	Long: `Commands to read, bump, tag and release the version shared by every
package of the workspace.`,
}

func init() {
	rootCmd.Version = NewVersionInfo().String()
	rootCmd.SetVersionTemplate(`{{.Version}}`)
	rootCmd.AddCommand(versionCmd)
}
