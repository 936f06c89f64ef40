/*
 * Copyright © 2019 One Concern
 *
 */

// Package manifest reads and edits the package manifests of a workspace.
//
// Edits are line oriented: only the targeted line changes and every other
// byte of the manifest is left untouched. Files are never modified in
// place: content is staged in a sibling file, then moved over the original.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oneconcern/cratemon/internal/rand"
	"github.com/oneconcern/cratemon/pkg/dlogger"
	"github.com/oneconcern/cratemon/pkg/errors"
	"github.com/oneconcern/cratemon/pkg/manifest/status"
	"github.com/oneconcern/cratemon/pkg/model"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const manifestBase = "Cargo.toml"

// Editor performs all manifest reads and rewrites for a workspace,
// anchored at an explicit project root.
type Editor struct {
	root string
	ws   model.Workspace
	fs   afero.Fs
	l    *zap.Logger
}

// Option is a functor to build an editor with some options
type Option func(*Editor)

// FS defines the filesystem the editor operates on (default: the OS filesystem)
func FS(fs afero.Fs) Option {
	return func(e *Editor) {
		if fs != nil {
			e.fs = fs
		}
	}
}

// Logger defines the logger used to trace manifest edits
func Logger(l *zap.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.l = l
		}
	}
}

// New builds a manifest editor for the workspace rooted at root
func New(root string, ws model.Workspace, opts ...Option) *Editor {
	e := &Editor{
		root: root,
		ws:   ws,
		fs:   afero.NewOsFs(),
		l:    dlogger.MustGetLogger("info"),
	}
	for _, apply := range opts {
		apply(e)
	}
	return e
}

// Path yields the location of the manifest declared for a package.
func (e *Editor) Path(pkg model.PackageSpec) string {
	return filepath.Join(e.root, pkg.Manifest)
}

// ReadVersion reports the version declared by the first version line
// of the package manifest.
func (e *Editor) ReadVersion(pkg model.PackageSpec) (model.ReleaseVersion, error) {
	return e.readVersionAt(e.Path(pkg))
}

func (e *Editor) readVersionAt(pth string) (model.ReleaseVersion, error) {
	data, err := afero.ReadFile(e.fs, pth)
	if err != nil {
		return model.ReleaseVersion{}, status.ErrParse.Wrap(err)
	}
	raw, ok := findVersion(string(data))
	if !ok {
		return model.ReleaseVersion{}, status.ErrVersionLine.Wrap(fmt.Errorf("manifest %s", pth))
	}
	v, err := model.ParseVersion(raw)
	if err != nil {
		return model.ReleaseVersion{}, status.ErrParse.Wrap(err)
	}
	return v, nil
}

// WriteVersion sets the version declared by the package manifest,
// leaving all other content byte for byte intact.
func (e *Editor) WriteVersion(pkg model.PackageSpec, v model.ReleaseVersion) error {
	pth := e.Path(pkg)
	data, err := afero.ReadFile(e.fs, pth)
	if err != nil {
		return status.ErrParse.Wrap(err)
	}
	rewritten, n := rewriteVersion(string(data), v)
	if n == 0 {
		return status.ErrVersionLine.Wrap(fmt.Errorf("manifest %s", pth))
	}
	if err := e.writeFileAtomic(pth, []byte(rewritten)); err != nil {
		return err
	}
	e.l.Info("manifest version set",
		zap.String("package", pkg.Name),
		zap.Stringer("version", v),
	)
	return nil
}

// SetVersion writes v to every workspace package, in declared order.
// The first failure aborts the sweep: earlier writes stand and may be
// inspected or reverted by hand.
func (e *Editor) SetVersion(v model.ReleaseVersion) error {
	for _, pkg := range e.ws.Packages {
		if err := e.WriteVersion(pkg, v); err != nil {
			return err
		}
	}
	return nil
}

// PackageVersion pairs a workspace package with its declared version.
type PackageVersion struct {
	Name    string               `json:"name" yaml:"name"`
	Version model.ReleaseVersion `json:"version" yaml:"version"`
}

// Versions reads the declared version of every workspace package, in
// declared order.
func (e *Editor) Versions() ([]PackageVersion, error) {
	versions := make([]PackageVersion, 0, len(e.ws.Packages))
	for _, pkg := range e.ws.Packages {
		v, err := e.ReadVersion(pkg)
		if err != nil {
			return nil, err
		}
		versions = append(versions, PackageVersion{Name: pkg.Name, Version: v})
	}
	return versions, nil
}

// VersionsInSync verifies that every workspace package declares the same
// version, and reports that version.
func (e *Editor) VersionsInSync() (model.ReleaseVersion, error) {
	versions, err := e.Versions()
	if err != nil {
		return model.ReleaseVersion{}, err
	}
	reference := versions[0]
	for _, pv := range versions[1:] {
		if pv.Version != reference.Version {
			return model.ReleaseVersion{}, status.ErrDrift.Wrap(
				fmt.Errorf("%s is at %s while %s is at %s",
					reference.Name, reference.Version, pv.Name, pv.Version))
		}
	}
	return reference.Version, nil
}

// Walk calls fn for every manifest file found under the project root,
// in lexical order, skipping build output (target) and example programs
// (examples). The walk may be re-invoked at will.
func (e *Editor) Walk(fn func(pth string) error) error {
	return afero.Walk(e.fs, e.root, func(pth string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if pth == e.root {
				return nil
			}
			name := info.Name()
			if name == "target" || name == "examples" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Name() != manifestBase {
			return nil
		}
		return fn(pth)
	})
}

var errFoundManifest = errors.New("manifest found")

// Discover reports the first manifest found under the project root.
func (e *Editor) Discover() (string, error) {
	var found string
	err := e.Walk(func(pth string) error {
		found = pth
		return errFoundManifest
	})
	if err != nil && !errors.Is(err, errFoundManifest) {
		return "", status.ErrParse.Wrap(err)
	}
	if found == "" {
		return "", status.ErrNoManifest.Wrap(fmt.Errorf("under %s", e.root))
	}
	return found, nil
}

// CurrentVersion reports the version declared by the first manifest
// discovered under the project root.
func (e *Editor) CurrentVersion() (model.ReleaseVersion, error) {
	pth, err := e.Discover()
	if err != nil {
		return model.ReleaseVersion{}, err
	}
	return e.readVersionAt(pth)
}

/* writeFileAtomic stages content in a sibling file, then Rename()s it
 * into place: an interrupted write never leaves a torn manifest behind.
 * The stage file lives in the same directory, so the Rename() stays on
 * one filesystem.
 */
func (e *Editor) writeFileAtomic(pth string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := e.fs.Stat(pth); err == nil {
		mode = info.Mode()
	}
	stage := pth + ".stage-" + rand.LetterString(8)
	if err := afero.WriteFile(e.fs, stage, data, mode); err != nil {
		return fmt.Errorf("staging manifest %q: %v", pth, err)
	}
	if err := e.fs.Rename(stage, pth); err != nil {
		_ = e.fs.Remove(stage)
		return fmt.Errorf("replacing manifest %q: %v", pth, err)
	}
	return nil
}
