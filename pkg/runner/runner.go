/*
 * Copyright © 2019 One Concern
 *
 */

// Package runner abstracts the execution of external commands,
// so that packages driving cargo and git may be exercised against
// a fake process launcher in tests.
package runner

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/oneconcern/cratemon/pkg/dlogger"
	"github.com/oneconcern/cratemon/pkg/runner/status"
	"go.uber.org/zap"
)

// Runner executes external commands on behalf of the release tooling.
type Runner interface {
	// Run executes a command in dir and waits for completion,
	// returning the captured standard output and standard error.
	Run(ctx context.Context, dir string, name string, args ...string) ([]byte, []byte, error)

	// Look verifies that a command is available on the current PATH.
	Look(name string) error
}

// Option is a functor to build a runner with some options
type Option func(*execRunner)

// Logger defines the logger used to trace executed commands
func Logger(l *zap.Logger) Option {
	return func(r *execRunner) {
		if l != nil {
			r.l = l
		}
	}
}

// New builds a runner executing commands on the local host
func New(opts ...Option) Runner {
	r := &execRunner{
		l: dlogger.MustGetLogger("info"),
	}
	for _, apply := range opts {
		apply(r)
	}
	return r
}

type execRunner struct {
	l *zap.Logger
}

func (r *execRunner) Run(ctx context.Context, dir string, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.l.Debug("running command",
		zap.String("name", name),
		zap.Strings("args", args),
		zap.String("dir", dir),
	)

	err := cmd.Run()
	if err != nil {
		r.l.Debug("command failed",
			zap.String("name", name),
			zap.Error(err),
			zap.String("stderr", stderr.String()),
		)
		return stdout.Bytes(), stderr.Bytes(), err
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}

func (r *execRunner) Look(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return status.ErrToolMissing.Wrap(err)
	}
	return nil
}
