/*
 * Copyright © 2019 One Concern
 *
 */

package manifest

import (
	"regexp"
	"strings"

	"github.com/oneconcern/cratemon/pkg/model"
)

// versionLineRe captures the quoted value of a manifest version line, so
// that a rewrite only ever touches the value itself.
var versionLineRe = regexp.MustCompile(`^(\s*version\s*=\s*")([^"]*)(".*)$`)

// splitLines cuts content into lines keeping their own terminator:
// joining the slice back restores the content byte for byte.
func splitLines(content string) []string {
	return strings.SplitAfter(content, "\n")
}

// chomp separates a line body from its terminator.
func chomp(line string) (body, eol string) {
	body = strings.TrimSuffix(line, "\n")
	body = strings.TrimSuffix(body, "\r")
	return body, line[len(body):]
}

// findVersion reports the value of the first version line in content.
func findVersion(content string) (string, bool) {
	for _, line := range splitLines(content) {
		body, _ := chomp(line)
		if m := versionLineRe.FindStringSubmatch(body); m != nil {
			return m[2], true
		}
	}
	return "", false
}

// rewriteVersion replaces the value of the first version line in content,
// reporting how many lines changed (0 or 1).
func rewriteVersion(content string, v model.ReleaseVersion) (string, int) {
	lines := splitLines(content)
	for i, line := range lines {
		body, eol := chomp(line)
		m := versionLineRe.FindStringSubmatchIndex(body)
		if m == nil {
			continue
		}
		lines[i] = body[:m[4]] + v.String() + body[m[5]:] + eol
		return strings.Join(lines, ""), 1
	}
	return content, 0
}
