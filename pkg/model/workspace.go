/*
 * Copyright © 2019 One Concern
 *
 */

package model

import (
	"fmt"
	"path"

	"github.com/oneconcern/cratemon/pkg/model/status"
)

// DependencySpec is a declared reference from one workspace package to another.
//
// Path is the location of the dependency relative to the dependent's
// manifest directory, as written by the local development form of the
// reference.
type DependencySpec struct {
	Name string `json:"name" yaml:"name" mapstructure:"name"`
	Path string `json:"path" yaml:"path" mapstructure:"path"`
	_    struct{}
}

// PackageSpec describes one publishable package of the workspace.
type PackageSpec struct {
	Name         string           `json:"name" yaml:"name" mapstructure:"name"`
	Manifest     string           `json:"manifest" yaml:"manifest" mapstructure:"manifest"`
	Dependencies []DependencySpec `json:"dependencies,omitempty" yaml:"dependencies,omitempty" mapstructure:"dependencies"`
	_            struct{}
}

// Dir yields the directory holding the package manifest, relative to the
// project root.
func (p PackageSpec) Dir() string {
	return path.Dir(p.Manifest)
}

// Workspace is the fixed set of packages under release management.
//
// The set is configuration, not discovery: adding a package is a data
// change. Declaration order is the publish order, so every package must be
// declared after all packages it depends on.
type Workspace struct {
	Packages []PackageSpec `json:"packages" yaml:"packages" mapstructure:"packages"`
	_        struct{}
}

// Package looks a package up by name.
func (w Workspace) Package(name string) (PackageSpec, bool) {
	for _, pkg := range w.Packages {
		if pkg.Name == name {
			return pkg, true
		}
	}
	return PackageSpec{}, false
}

// Validate asserts that the workspace declaration is usable: package names
// unique, manifests set, and every dependency declared earlier than its
// dependent (i.e. the declaration is a topological publish order).
func Validate(w Workspace) error {
	if len(w.Packages) == 0 {
		return status.ErrWorkspace.Wrap(fmt.Errorf("no packages declared"))
	}
	declared := make(map[string]bool, len(w.Packages))
	for _, pkg := range w.Packages {
		if pkg.Name == "" {
			return status.ErrWorkspace.Wrap(fmt.Errorf("empty field: package name is empty"))
		}
		if pkg.Manifest == "" {
			return status.ErrWorkspace.Wrap(fmt.Errorf("empty field: package %s has no manifest", pkg.Name))
		}
		if declared[pkg.Name] {
			return status.ErrWorkspace.Wrap(fmt.Errorf("duplicate package %s", pkg.Name))
		}
		for _, dep := range pkg.Dependencies {
			if !declared[dep.Name] {
				return status.ErrWorkspace.Wrap(fmt.Errorf(
					"package %s depends on %s, which is not declared before it", pkg.Name, dep.Name))
			}
			if dep.Path == "" {
				return status.ErrWorkspace.Wrap(fmt.Errorf(
					"dependency %s of package %s has no path", dep.Name, pkg.Name))
			}
		}
		declared[pkg.Name] = true
	}
	return nil
}

// DefaultWorkspace yields the built-in workspace declaration, used when the
// configuration file does not override it.
func DefaultWorkspace() Workspace {
	return Workspace{
		Packages: []PackageSpec{
			{
				Name:     "apdu",
				Manifest: "apdu/Cargo.toml",
			},
			{
				Name:     "transport",
				Manifest: "transport/Cargo.toml",
				Dependencies: []DependencySpec{
					{Name: "apdu", Path: "../apdu"},
				},
			},
			{
				Name:     "eth-app",
				Manifest: "eth-app/Cargo.toml",
				Dependencies: []DependencySpec{
					{Name: "apdu", Path: "../apdu"},
					{Name: "transport", Path: "../transport"},
				},
			},
		},
	}
}
