/*
 * Copyright © 2019 One Concern
 *
 */

package manifest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/oneconcern/cratemon/pkg/manifest/status"
	"github.com/oneconcern/cratemon/pkg/model"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// pathLineRe matches a path form reference line for dep, e.g.
//
//	dep = { path = "../dep" }
func pathLineRe(dep string) *regexp.Regexp {
	return regexp.MustCompile(`^(\s*)` + regexp.QuoteMeta(dep) + `\s*=\s*\{\s*path\s*=\s*"[^"]*"\s*\}\s*$`)
}

// registryLineRe matches a registry form reference line for dep, e.g.
//
//	dep = "1.2.3"
func registryLineRe(dep string) *regexp.Regexp {
	return regexp.MustCompile(`^(\s*)` + regexp.QuoteMeta(dep) + `\s*=\s*"[^"]*"\s*$`)
}

// rewriteRefs rewrites every reference line for dep in content through
// emit, preserving indentation and line terminators. Lines already in the
// target form are matched and re-emitted as well, making the rewrite
// idempotent. Reports the number of lines matched in either form.
func rewriteRefs(content, dep string, emit func(indent string) string) (string, int) {
	pathRe := pathLineRe(dep)
	registryRe := registryLineRe(dep)
	lines := splitLines(content)
	matched := 0
	for i, line := range lines {
		body, eol := chomp(line)
		var indent string
		if m := pathRe.FindStringSubmatch(body); m != nil {
			indent = m[1]
		} else if m := registryRe.FindStringSubmatch(body); m != nil {
			indent = m[1]
		} else {
			continue
		}
		matched++
		lines[i] = emit(indent) + eol
	}
	if matched == 0 {
		return content, 0
	}
	return strings.Join(lines, ""), matched
}

// RegistryForm pins every declared dependency reference to the registry
// at version v. Manifests are visited in declared workspace order and a
// declared pair with no reference line in either form aborts the sweep,
// leaving earlier manifests rewritten.
func (e *Editor) RegistryForm(v model.ReleaseVersion) error {
	return e.toggleRefs("registry", func(dep, _ string) func(string) string {
		return func(indent string) string {
			return fmt.Sprintf(`%s%s = "%s"`, indent, dep, v)
		}
	})
}

// PathForm restores every declared dependency reference to its canonical
// path form, pointing at the declared relative location. Applying
// PathForm right after RegistryForm restores each manifest byte for byte.
func (e *Editor) PathForm() error {
	return e.toggleRefs("path", func(dep, rel string) func(string) string {
		return func(indent string) string {
			return fmt.Sprintf(`%s%s = { path = "%s" }`, indent, dep, rel)
		}
	})
}

func (e *Editor) toggleRefs(form string, emitter func(dep, rel string) func(string) string) error {
	for _, pkg := range e.ws.Packages {
		if len(pkg.Dependencies) == 0 {
			continue
		}
		pth := e.Path(pkg)
		data, err := afero.ReadFile(e.fs, pth)
		if err != nil {
			return status.ErrParse.Wrap(err)
		}
		content := string(data)
		for _, dep := range pkg.Dependencies {
			rewritten, n := rewriteRefs(content, dep.Name, emitter(dep.Name, dep.Path))
			if n == 0 {
				return status.ErrDependencyLine.Wrap(
					fmt.Errorf("dependency %s of package %s in manifest %s", dep.Name, pkg.Name, pth))
			}
			content = rewritten
		}
		if content == string(data) {
			e.l.Debug("dependency references already in target form",
				zap.String("package", pkg.Name),
				zap.String("form", form),
			)
			continue
		}
		if err := e.writeFileAtomic(pth, []byte(content)); err != nil {
			return err
		}
		e.l.Info("dependency references rewritten",
			zap.String("package", pkg.Name),
			zap.String("form", form),
		)
	}
	return nil
}
