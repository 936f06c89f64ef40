/*
 * Copyright © 2019 One Concern
 *
 */

package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oneconcern/cratemon/pkg/model/status"
)

// ReleaseVersion is a semantic version triple.
type ReleaseVersion struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// ParseVersion interprets text as a release version.
//
// The accepted form is exactly <uint>.<uint>.<uint>: no leading "v", no
// pre-release or build suffix.
func ParseVersion(text string) (ReleaseVersion, error) {
	parts := strings.Split(text, ".")
	if len(parts) != 3 {
		return ReleaseVersion{}, status.ErrVersionFormat.Wrap(
			fmt.Errorf("expected major.minor.patch, got %q", text))
	}
	numbers := make([]uint64, len(parts))
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return ReleaseVersion{}, status.ErrVersionFormat.Wrap(
				fmt.Errorf("%q is not an unsigned integer in %q", part, text))
		}
		numbers[i] = n
	}
	return ReleaseVersion{Major: numbers[0], Minor: numbers[1], Patch: numbers[2]}, nil
}

func (v ReleaseVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// TagName yields the version-control tag marking the release of v.
func (v ReleaseVersion) TagName() string {
	return "v" + v.String()
}

// TagMessage yields the annotation message attached to the release tag of v.
func (v ReleaseVersion) TagMessage() string {
	return "Release version " + v.String()
}

// Bump computes the next version after v for the given kind.
//
// Bumping major resets minor and patch to 0, bumping minor resets patch
// to 0, bumping patch only increments patch.
func (v ReleaseVersion) Bump(kind BumpKind) (ReleaseVersion, error) {
	switch kind {
	case BumpMajor:
		return ReleaseVersion{Major: v.Major + 1}, nil
	case BumpMinor:
		return ReleaseVersion{Major: v.Major, Minor: v.Minor + 1}, nil
	case BumpPatch:
		return ReleaseVersion{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	default:
		return ReleaseVersion{}, status.ErrBumpKind.Wrap(fmt.Errorf("unknown kind %q", kind))
	}
}

// BumpKind selects which part of a version to increment.
type BumpKind string

const (
	// BumpMajor increments the major part
	BumpMajor BumpKind = "major"

	// BumpMinor increments the minor part
	BumpMinor BumpKind = "minor"

	// BumpPatch increments the patch part
	BumpPatch BumpKind = "patch"
)

// ParseBumpKind interprets text as a bump kind.
func ParseBumpKind(text string) (BumpKind, error) {
	switch kind := BumpKind(text); kind {
	case BumpMajor, BumpMinor, BumpPatch:
		return kind, nil
	default:
		return "", status.ErrBumpKind.Wrap(fmt.Errorf("unknown kind %q", text))
	}
}
