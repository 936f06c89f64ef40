// Package status declares error constants returned by release workflows.
package status

import "github.com/oneconcern/cratemon/pkg/errors"

var (
	// ErrValidation indicates that the workspace failed its pre-release validation
	ErrValidation = errors.New("workspace validation failed")

	// ErrPublish indicates that a package could not be published.
	// Packages published before the failure stay published: there is no rollback.
	ErrPublish = errors.New("cannot publish package")
)
