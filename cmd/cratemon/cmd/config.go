package cmd

import (
	"time"

	"github.com/oneconcern/cratemon/pkg/model"
	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// field names must stay aligned with their serialized names (viper unmarshal)
	Root      string          `json:"root" yaml:"root"`           // Project root of the workspace
	LogLevel  string          `json:"loglevel" yaml:"loglevel"`   // Default logging level
	Wait      time.Duration   `json:"wait" yaml:"wait"`           // Pause between package publications
	Workspace model.Workspace `json:"workspace" yaml:"workspace"` // Workspace declaration, overriding the built-in one
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *CLIConfig) setReleaseParams(flags *flagsT) {
	if flags.root.projectRoot == "" {
		flags.root.projectRoot = c.Root
	}
	if flags.root.projectRoot == "" {
		flags.root.projectRoot = "."
	}
	if flags.root.logLevel == "" {
		flags.root.logLevel = c.LogLevel
	}
	if flags.root.logLevel == "" {
		flags.root.logLevel = "info"
	}
	if flags.publish.wait == 0 {
		flags.publish.wait = c.Wait
	}
}

// workspace resolves the workspace to operate on: the one declared by the
// config file when there is one, the built-in declaration otherwise.
func (c *CLIConfig) workspace() (model.Workspace, error) {
	ws := c.Workspace
	if len(ws.Packages) == 0 {
		ws = model.DefaultWorkspace()
	}
	if err := model.Validate(ws); err != nil {
		return model.Workspace{}, err
	}
	return ws, nil
}
