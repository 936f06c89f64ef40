/*
 * Copyright © 2019 One Concern
 *
 */

package release

import (
	"time"

	"go.uber.org/zap"
)

// Option is a functor to build a workflow with some options
type Option func(*Workflow)

// Logger defines the logger threaded through workflows and their sequencer
func Logger(l *zap.Logger) Option {
	return func(w *Workflow) {
		if l != nil {
			w.l = l
		}
	}
}

// Wait defines the pause observed between successive package
// publications (default: none)
func Wait(d time.Duration) Option {
	return func(w *Workflow) {
		w.wait = d
	}
}
