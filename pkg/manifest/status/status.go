// Package status declares error constants returned by the manifest editor.
package status

import "github.com/oneconcern/cratemon/pkg/errors"

var (
	// ErrParse indicates that a manifest could not be read or parsed
	ErrParse = errors.New("cannot parse manifest")

	// ErrVersionLine indicates that a manifest carries no usable version line
	ErrVersionLine = errors.New("no version line found")

	// ErrDependencyLine indicates that a declared dependency has no reference line
	// in the dependent manifest, in either path or registry form
	ErrDependencyLine = errors.New("no dependency reference found")

	// ErrLint indicates that a manifest does not pass lint checks
	ErrLint = errors.New("manifest failed lint checks")

	// ErrDrift indicates that package versions differ across the workspace
	ErrDrift = errors.New("package versions differ across workspace")

	// ErrNoManifest indicates that discovery found no manifest under the project root
	ErrNoManifest = errors.New("no manifest found")
)
