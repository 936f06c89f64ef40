/*
 * Copyright © 2019 One Concern
 *
 */

package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oneconcern/cratemon/pkg/errors"
	"github.com/oneconcern/cratemon/pkg/runner/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerCapturesOutput(t *testing.T) {
	r := New()
	stdout, stderr, err := r.Run(context.Background(), "", "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", strings.TrimSpace(string(stdout)))
	assert.Empty(t, stderr)
}

func TestRunnerReportsFailure(t *testing.T) {
	r := New()
	_, _, err := r.Run(context.Background(), "", "sh", "-c", "echo oops >&2; exit 3")
	require.Error(t, err)

	_, stderr, _ := r.Run(context.Background(), "", "sh", "-c", "echo oops >&2; exit 3")
	assert.Contains(t, string(stderr), "oops")
}

func TestRunnerHonorsDir(t *testing.T) {
	dir, err := os.MkdirTemp("", "runner-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0600))

	r := New()
	stdout, _, err := r.Run(context.Background(), dir, "ls")
	require.NoError(t, err)
	assert.Contains(t, string(stdout), "marker.txt")
}

func TestRunnerLook(t *testing.T) {
	r := New()
	require.NoError(t, r.Look("sh"))

	err := r.Look("no-such-tool-anywhere")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrToolMissing))
}
