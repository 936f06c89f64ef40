/*
 * Copyright © 2019 One Concern
 *
 */

package manifest

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/oneconcern/cratemon/pkg/manifest/status"
	"github.com/oneconcern/cratemon/pkg/model"
	"github.com/spf13/afero"
)

type manifestDoc struct {
	Package packageSection `toml:"package"`
}

type packageSection struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Lint decodes every configured manifest and verifies that its package
// table matches the workspace declaration. Lint never modifies anything:
// it is meant to run before any rewrite does.
func (e *Editor) Lint() error {
	for _, pkg := range e.ws.Packages {
		pth := e.Path(pkg)
		data, err := afero.ReadFile(e.fs, pth)
		if err != nil {
			return status.ErrParse.Wrap(err)
		}
		var doc manifestDoc
		if err := toml.Unmarshal(data, &doc); err != nil {
			return status.ErrLint.Wrap(fmt.Errorf("manifest %s: %v", pth, err))
		}
		if doc.Package.Name == "" || doc.Package.Version == "" {
			return status.ErrLint.Wrap(
				fmt.Errorf("manifest %s must declare a package name and version", pth))
		}
		if doc.Package.Name != pkg.Name {
			return status.ErrLint.Wrap(
				fmt.Errorf("manifest %s declares package %q, expected %q", pth, doc.Package.Name, pkg.Name))
		}
		if _, err := model.ParseVersion(doc.Package.Version); err != nil {
			return status.ErrLint.Wrap(err)
		}
	}
	return nil
}
