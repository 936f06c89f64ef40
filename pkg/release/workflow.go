/*
 * Copyright © 2019 One Concern
 *
 */

// Package release composes manifest edits, workspace validation, registry
// publication and git tagging into the fixed release workflows exposed by
// the command line.
//
// Every workflow is a fixed sequence of steps failing fast: the first
// failing step aborts the workflow and nothing attempts to undo the steps
// already performed.
package release

import (
	"context"
	"time"

	"github.com/oneconcern/cratemon/pkg/dlogger"
	"github.com/oneconcern/cratemon/pkg/manifest"
	"github.com/oneconcern/cratemon/pkg/model"
	"github.com/oneconcern/cratemon/pkg/release/status"
	"go.uber.org/zap"
)

// Registry abstracts the cargo tool chain: workspace validation and
// package publication.
type Registry interface {
	Installed() error
	Verify(ctx context.Context) error
	Publish(ctx context.Context, pkg model.PackageSpec) error
}

// Tagger abstracts the git side of a release.
type Tagger interface {
	Installed() error
	Commit(ctx context.Context, v model.ReleaseVersion) error
	CreateTag(ctx context.Context, v model.ReleaseVersion) error
	PushTag(ctx context.Context, v model.ReleaseVersion) error
}

// Workflow runs release operations against one workspace.
type Workflow struct {
	editor   *manifest.Editor
	registry Registry
	repo     Tagger
	ws       model.Workspace
	seq      *Sequencer
	wait     time.Duration
	l        *zap.Logger
}

// NewWorkflow builds the release workflows for a workspace.
func NewWorkflow(editor *manifest.Editor, registry Registry, repo Tagger, ws model.Workspace, opts ...Option) *Workflow {
	w := &Workflow{
		editor:   editor,
		registry: registry,
		repo:     repo,
		ws:       ws,
		l:        dlogger.MustGetLogger("info"),
	}
	for _, apply := range opts {
		apply(w)
	}
	w.seq = NewSequencer(ws, registry,
		WithWait(w.wait),
		WithSequencerLogger(w.l),
	)
	return w
}

// Check verifies that a release could proceed, without mutating
// anything: required tools present, manifests lint clean, versions in
// sync across the workspace, validation green.
func (w *Workflow) Check(ctx context.Context) error {
	if err := w.registry.Installed(); err != nil {
		return err
	}
	if err := w.repo.Installed(); err != nil {
		return err
	}
	if err := w.editor.Lint(); err != nil {
		return err
	}
	if _, err := w.editor.VersionsInSync(); err != nil {
		return err
	}
	return w.validate(ctx)
}

// Prepare readies the workspace for publication at version v: validation
// first, then every package version is set to v and every dependency
// reference is pinned to the registry. Nothing is validated again after
// the rewrite.
func (w *Workflow) Prepare(ctx context.Context, v model.ReleaseVersion) error {
	if err := w.registry.Installed(); err != nil {
		return err
	}
	if err := w.validate(ctx); err != nil {
		return err
	}
	if err := w.editor.SetVersion(v); err != nil {
		return err
	}
	return w.editor.RegistryForm(v)
}

// Publish rewrites the workspace for version v and pushes every package
// to the registry in declared order.
func (w *Workflow) Publish(ctx context.Context, v model.ReleaseVersion) error {
	if err := w.registry.Installed(); err != nil {
		return err
	}
	if err := w.editor.SetVersion(v); err != nil {
		return err
	}
	if err := w.editor.RegistryForm(v); err != nil {
		return err
	}
	return w.seq.Publish(ctx)
}

// Revert restores every dependency reference to its path form. This is
// the manual recovery path after a failed publication left the workspace
// partially pinned.
func (w *Workflow) Revert() error {
	return w.editor.PathForm()
}

// Current reports the version of the first manifest discovered under the
// project root.
func (w *Workflow) Current() (model.ReleaseVersion, error) {
	return w.editor.CurrentVersion()
}

// Versions reports the declared version of every workspace package.
func (w *Workflow) Versions() ([]manifest.PackageVersion, error) {
	return w.editor.Versions()
}

// Bump computes the next version of the given kind from the current one
// and writes it to every workspace package.
func (w *Workflow) Bump(kind model.BumpKind) (model.ReleaseVersion, error) {
	current, err := w.editor.CurrentVersion()
	if err != nil {
		return model.ReleaseVersion{}, err
	}
	next, err := current.Bump(kind)
	if err != nil {
		return model.ReleaseVersion{}, err
	}
	if err := w.editor.SetVersion(next); err != nil {
		return model.ReleaseVersion{}, err
	}
	w.l.Info("version bumped",
		zap.Stringer("from", current),
		zap.Stringer("to", next),
	)
	return next, nil
}

// Tag creates the annotated release tag for v.
func (w *Workflow) Tag(ctx context.Context, v model.ReleaseVersion) error {
	if err := w.repo.Installed(); err != nil {
		return err
	}
	return w.repo.CreateTag(ctx, v)
}

// Release stamps the workspace at v, commits, tags and pushes the tag.
func (w *Workflow) Release(ctx context.Context, v model.ReleaseVersion) error {
	if err := w.repo.Installed(); err != nil {
		return err
	}
	if err := w.editor.SetVersion(v); err != nil {
		return err
	}
	if err := w.repo.Commit(ctx, v); err != nil {
		return err
	}
	if err := w.repo.CreateTag(ctx, v); err != nil {
		return err
	}
	return w.repo.PushTag(ctx, v)
}

// FullRelease bumps the version, commits, tags and pushes the tag,
// reporting the version released.
func (w *Workflow) FullRelease(ctx context.Context, kind model.BumpKind) (model.ReleaseVersion, error) {
	if err := w.repo.Installed(); err != nil {
		return model.ReleaseVersion{}, err
	}
	next, err := w.Bump(kind)
	if err != nil {
		return model.ReleaseVersion{}, err
	}
	if err := w.repo.Commit(ctx, next); err != nil {
		return model.ReleaseVersion{}, err
	}
	if err := w.repo.CreateTag(ctx, next); err != nil {
		return model.ReleaseVersion{}, err
	}
	if err := w.repo.PushTag(ctx, next); err != nil {
		return model.ReleaseVersion{}, err
	}
	return next, nil
}

func (w *Workflow) validate(ctx context.Context) error {
	if err := w.registry.Verify(ctx); err != nil {
		return status.ErrValidation.Wrap(err)
	}
	return nil
}
