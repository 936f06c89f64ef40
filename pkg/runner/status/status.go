// Package status declares error constants returned by
// implementations of the Runner interface.
package status

import "github.com/oneconcern/cratemon/pkg/errors"

var (
	// ErrToolMissing indicates that a required external tool is not installed
	ErrToolMissing = errors.New("required tool is not installed")
)
