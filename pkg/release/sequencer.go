/*
 * Copyright © 2019 One Concern
 *
 */

package release

import (
	"context"
	"fmt"
	"time"

	"github.com/oneconcern/cratemon/pkg/dlogger"
	"github.com/oneconcern/cratemon/pkg/model"
	"github.com/oneconcern/cratemon/pkg/release/status"
	"go.uber.org/zap"
)

// Publisher pushes a single package to the registry.
type Publisher interface {
	Publish(ctx context.Context, pkg model.PackageSpec) error
}

// Sequencer publishes workspace packages strictly in declared order, so
// that every package reaches the registry after the packages it depends
// on.
type Sequencer struct {
	ws   model.Workspace
	pub  Publisher
	wait time.Duration
	l    *zap.Logger
}

// SequencerOption is a functor to build a sequencer with some options
type SequencerOption func(*Sequencer)

// WithWait defines a pause between successive publications, leaving the
// registry time to index a package before its dependents arrive
func WithWait(d time.Duration) SequencerOption {
	return func(s *Sequencer) {
		if d > 0 {
			s.wait = d
		}
	}
}

// WithSequencerLogger defines the logger used to trace the publish sequence
func WithSequencerLogger(l *zap.Logger) SequencerOption {
	return func(s *Sequencer) {
		if l != nil {
			s.l = l
		}
	}
}

// NewSequencer builds a sequencer publishing the workspace packages
// through pub.
func NewSequencer(ws model.Workspace, pub Publisher, opts ...SequencerOption) *Sequencer {
	s := &Sequencer{
		ws:  ws,
		pub: pub,
		l:   dlogger.MustGetLogger("info"),
	}
	for _, apply := range opts {
		apply(s)
	}
	return s
}

// Publish walks the declared order and publishes each package exactly
// once. The first failure halts the walk: packages already published
// stay published, packages after the failing one are never attempted.
func (s *Sequencer) Publish(ctx context.Context) error {
	for i, pkg := range s.ws.Packages {
		if i > 0 && s.wait > 0 {
			time.Sleep(s.wait)
		}
		s.l.Info("publishing package",
			zap.String("package", pkg.Name),
			zap.Int("rank", i+1),
			zap.Int("of", len(s.ws.Packages)),
		)
		if err := s.pub.Publish(ctx, pkg); err != nil {
			return status.ErrPublish.Wrap(fmt.Errorf("package %s: %v", pkg.Name, err))
		}
	}
	return nil
}
