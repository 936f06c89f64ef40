// Package status declares error constants returned by the vcs repo.
package status

import "github.com/oneconcern/cratemon/pkg/errors"

var (
	// ErrTagConflict indicates that a tag already exists and its overwrite was declined
	ErrTagConflict = errors.New("tag already exists")

	// ErrTagPush indicates that a tag could not be pushed to the remote.
	// The local tag is left in place for a manual retry.
	ErrTagPush = errors.New("cannot push tag to remote")
)
