/*
 * Copyright © 2019 One Concern
 *
 */

// Package cargo drives the cargo tool chain for workspace validation
// and registry publication.
package cargo

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/oneconcern/cratemon/pkg/dlogger"
	"github.com/oneconcern/cratemon/pkg/model"
	"github.com/oneconcern/cratemon/pkg/runner"
	"go.uber.org/zap"
)

const binary = "cargo"

// Tool invokes cargo against the workspace rooted at an explicit
// project root, never the ambient working directory.
type Tool struct {
	root string
	run  runner.Runner
	l    *zap.Logger
}

// Option is a functor to build a tool with some options
type Option func(*Tool)

// Logger defines the logger used to trace cargo invocations
func Logger(l *zap.Logger) Option {
	return func(t *Tool) {
		if l != nil {
			t.l = l
		}
	}
}

// New builds a cargo tool for the workspace rooted at root.
// A nil runner selects the default local host runner.
func New(root string, run runner.Runner, opts ...Option) *Tool {
	t := &Tool{
		root: root,
		run:  run,
		l:    dlogger.MustGetLogger("info"),
	}
	if t.run == nil {
		t.run = runner.New()
	}
	for _, apply := range opts {
		apply(t)
	}
	return t
}

// Installed verifies that the cargo binary is available on the PATH.
func (t *Tool) Installed() error {
	return t.run.Look(binary)
}

// Verify type-checks then tests the whole workspace. The first failing
// step wins and its output is carried in the returned error.
func (t *Tool) Verify(ctx context.Context) error {
	for _, args := range [][]string{
		{"check", "--workspace"},
		{"test", "--workspace"},
	} {
		if err := t.exec(ctx, args...); err != nil {
			return err
		}
	}
	return nil
}

// Publish pushes one package to the registry. The package is addressed
// through its manifest path, with local edits tolerated: publication
// happens on a workspace whose references were just rewritten.
func (t *Tool) Publish(ctx context.Context, pkg model.PackageSpec) error {
	return t.exec(ctx, "publish", "--manifest-path", filepath.Join(t.root, pkg.Manifest), "--allow-dirty")
}

func (t *Tool) exec(ctx context.Context, args ...string) error {
	t.l.Info("cargo", zap.Strings("args", args))
	_, stderr, err := t.run.Run(ctx, t.root, binary, args...)
	if err != nil {
		return fmt.Errorf("cargo %s: %v: %s", strings.Join(args, " "), err, bytes.TrimSpace(stderr))
	}
	return nil
}
