// Package status exports errors produced by the model package.
package status

import (
	"github.com/oneconcern/cratemon/pkg/errors"
)

var (
	// ErrVersionFormat indicates a version string that is not exactly <uint>.<uint>.<uint>
	ErrVersionFormat = errors.New("invalid version format")

	// ErrBumpKind indicates a bump kind other than major, minor or patch
	ErrBumpKind = errors.New("invalid bump kind")

	// ErrWorkspace indicates an invalid workspace declaration
	ErrWorkspace = errors.New("invalid workspace")
)
