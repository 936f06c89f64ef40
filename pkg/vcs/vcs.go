/*
 * Copyright © 2019 One Concern
 *
 */

// Package vcs manages the git side of a release: commits, annotated
// release tags and their journey from absent to created to pushed.
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/oneconcern/cratemon/pkg/dlogger"
	"github.com/oneconcern/cratemon/pkg/model"
	"github.com/oneconcern/cratemon/pkg/runner"
	"github.com/oneconcern/cratemon/pkg/vcs/status"
	"go.uber.org/zap"
)

const binary = "git"

// ConfirmFunc answers a yes/no question on behalf of the operator.
type ConfirmFunc func(prompt string) bool

// Repo drives git in the repository at an explicit project root.
type Repo struct {
	root    string
	run     runner.Runner
	confirm ConfirmFunc
	l       *zap.Logger
}

// Option is a functor to build a repo with some options
type Option func(*Repo)

// Confirm defines the predicate consulted before overwriting an existing tag
func Confirm(fn ConfirmFunc) Option {
	return func(r *Repo) {
		if fn != nil {
			r.confirm = fn
		}
	}
}

// Logger defines the logger used to trace git invocations
func Logger(l *zap.Logger) Option {
	return func(r *Repo) {
		if l != nil {
			r.l = l
		}
	}
}

// New builds a repo handle rooted at root. A nil runner selects the
// default local host runner. Without a confirm predicate, overwrite
// questions are answered no.
func New(root string, run runner.Runner, opts ...Option) *Repo {
	r := &Repo{
		root:    root,
		run:     run,
		confirm: func(string) bool { return false },
		l:       dlogger.MustGetLogger("info"),
	}
	if r.run == nil {
		r.run = runner.New()
	}
	for _, apply := range opts {
		apply(r)
	}
	return r
}

// Installed verifies that the git binary is available on the PATH.
func (r *Repo) Installed() error {
	return r.run.Look(binary)
}

// TagExists reports whether the release tag for v exists locally.
// A failing lookup reports the tag as absent.
func (r *Repo) TagExists(ctx context.Context, v model.ReleaseVersion) (bool, error) {
	_, _, err := r.run.Run(ctx, r.root, binary, "rev-parse", "-q", "--verify", "refs/tags/"+v.TagName())
	if err != nil {
		return false, nil
	}
	return true, nil
}

// CreateTag creates the annotated release tag for v.
//
// When the tag already exists the confirm predicate is consulted:
// affirmed, the local tag is deleted, the remote one is deleted best
// effort, and the tag is recreated; declined, the existing tag stands
// untouched and the call fails with ErrTagConflict.
func (r *Repo) CreateTag(ctx context.Context, v model.ReleaseVersion) error {
	name := v.TagName()
	exists, err := r.TagExists(ctx, v)
	if err != nil {
		return err
	}
	if exists {
		if !r.confirm(fmt.Sprintf("tag %s already exists, overwrite?", name)) {
			return status.ErrTagConflict.Wrap(fmt.Errorf("tag %s left untouched", name))
		}
		if err := r.git(ctx, "tag", "-d", name); err != nil {
			return err
		}
		if err := r.git(ctx, "push", "origin", ":refs/tags/"+name); err != nil {
			r.l.Warn("could not delete remote tag, a later push may conflict",
				zap.String("tag", name),
				zap.Error(err),
			)
		}
	}
	if err := r.git(ctx, "tag", "-a", name, "-m", v.TagMessage()); err != nil {
		return err
	}
	r.l.Info("tag created", zap.String("tag", name))
	return nil
}

// PushTag publishes the release tag for v to origin. On failure the
// local tag is kept so the push may be retried by hand.
func (r *Repo) PushTag(ctx context.Context, v model.ReleaseVersion) error {
	name := v.TagName()
	if err := r.git(ctx, "push", "origin", name); err != nil {
		return status.ErrTagPush.Wrap(err)
	}
	r.l.Info("tag pushed", zap.String("tag", name))
	return nil
}

// Commit records all pending changes under the release message for v.
func (r *Repo) Commit(ctx context.Context, v model.ReleaseVersion) error {
	return r.git(ctx, "commit", "-a", "-m", v.TagMessage())
}

func (r *Repo) git(ctx context.Context, args ...string) error {
	r.l.Debug("git", zap.Strings("args", args))
	_, stderr, err := r.run.Run(ctx, r.root, binary, args...)
	if err != nil {
		return fmt.Errorf("git %s: %v: %s", strings.Join(args, " "), err, bytes.TrimSpace(stderr))
	}
	return nil
}
