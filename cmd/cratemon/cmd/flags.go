package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/oneconcern/cratemon/pkg/cargo"
	"github.com/oneconcern/cratemon/pkg/dlogger"
	"github.com/oneconcern/cratemon/pkg/manifest"
	"github.com/oneconcern/cratemon/pkg/release"
	"github.com/oneconcern/cratemon/pkg/runner"
	"github.com/oneconcern/cratemon/pkg/vcs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type flagsT struct {
	root struct {
		projectRoot string
		logLevel    string
		cfgFile     string
	}
	version struct {
		all bool
	}
	tag struct {
		assumeYes bool
	}
	publish struct {
		wait time.Duration
	}
}

var cratemonFlags = flagsT{}

func addRootPathFlag(cmd *cobra.Command) string {
	projectRoot := "root"
	cmd.PersistentFlags().StringVar(&cratemonFlags.root.projectRoot, projectRoot, "",
		"Project root of the workspace (defaults to the current directory)")
	return projectRoot
}

func addConfigFlag(cmd *cobra.Command) string {
	configFile := "config"
	cmd.PersistentFlags().StringVar(&cratemonFlags.root.cfgFile, configFile, "",
		"Config file (defaults to cratemon.yaml looked up in ., $HOME/.cratemon, /etc/cratemon)")
	return configFile
}

func addLogLevel(cmd *cobra.Command) string {
	loglevel := "loglevel"
	cmd.PersistentFlags().StringVar(&cratemonFlags.root.logLevel, loglevel, "",
		"The logging level. Levels by increasing order of verbosity: none, info, debug")
	return loglevel
}

func addAllVersionsFlag(cmd *cobra.Command) string {
	all := "all"
	cmd.Flags().BoolVar(&cratemonFlags.version.all, all, false,
		"List the version of every workspace package instead of the first one found")
	return all
}

func addAssumeYesFlag(cmd *cobra.Command) string {
	yes := "yes"
	cmd.Flags().BoolVar(&cratemonFlags.tag.assumeYes, yes, false,
		"Overwrite an existing release tag without asking")
	return yes
}

func addPublishWaitFlag(cmd *cobra.Command) string {
	wait := "wait"
	cmd.Flags().DurationVar(&cratemonFlags.publish.wait, wait, 0,
		"Pause between successive package publications, leaving the registry time to index")
	return wait
}

// patchable factories, swapped for fakes during test
var (
	newRunner = func(l *zap.Logger) runner.Runner {
		return runner.New(runner.Logger(l))
	}
	manifestFs = afero.NewOsFs()
)

// cliOptionInputs wraps command line inputs, i.e. flags and config file
type cliOptionInputs struct {
	config *CLIConfig
	params *flagsT

	onceLogger sync.Once
	logger     *zap.Logger
	logErr     error
}

func newCliOptionInputs(config *CLIConfig, params *flagsT) *cliOptionInputs {
	return &cliOptionInputs{
		config: config,
		params: params,
	}
}

func (in *cliOptionInputs) getLogger() (*zap.Logger, error) {
	in.onceLogger.Do(func() {
		in.logger, in.logErr = dlogger.GetLogger(in.params.root.logLevel)
	})
	if in.logErr != nil {
		return nil, fmt.Errorf("failed to set log level: %v", in.logErr)
	}
	return in.logger, nil
}

// workflow builds the release workflows from command line inputs.
func (in *cliOptionInputs) workflow() (*release.Workflow, error) {
	logger, err := in.getLogger()
	if err != nil {
		return nil, err
	}
	ws, err := in.config.workspace()
	if err != nil {
		return nil, err
	}
	projectRoot := in.params.root.projectRoot
	run := newRunner(logger)
	editor := manifest.New(projectRoot, ws,
		manifest.FS(manifestFs),
		manifest.Logger(logger),
	)
	tool := cargo.New(projectRoot, run, cargo.Logger(logger))
	repo := vcs.New(projectRoot, run,
		vcs.Logger(logger),
		vcs.Confirm(in.confirm()),
	)
	return release.NewWorkflow(editor, tool, repo, ws,
		release.Logger(logger),
		release.Wait(in.params.publish.wait),
	), nil
}

func (in *cliOptionInputs) confirm() vcs.ConfirmFunc {
	if in.params.tag.assumeYes {
		return func(string) bool { return true }
	}
	return stdinConfirm
}

// stdinConfirm asks the operator on the terminal, accepting y or yes
var stdinConfirm = func(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
