/*
 * Copyright © 2019 One Concern
 *
 */

package manifest

import (
	"testing"

	"github.com/oneconcern/cratemon/pkg/errors"
	"github.com/oneconcern/cratemon/pkg/manifest/status"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLintAcceptsWorkspace(t *testing.T) {
	e, _ := testEditor(t)
	require.NoError(t, e.Lint())
}

func TestLintRejectsNameMismatch(t *testing.T) {
	e, fs := testEditor(t)
	require.NoError(t, afero.WriteFile(fs, "/work/transport/Cargo.toml",
		[]byte("[package]\nname = \"transports\"\nversion = \"0.1.0\"\n"), 0644))

	err := e.Lint()
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrLint))
	assert.Contains(t, err.Error(), "transports")
}

func TestLintRejectsMissingVersion(t *testing.T) {
	e, fs := testEditor(t)
	require.NoError(t, afero.WriteFile(fs, "/work/apdu/Cargo.toml",
		[]byte("[package]\nname = \"apdu\"\n"), 0644))

	err := e.Lint()
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrLint))
}

func TestLintRejectsInvalidTOML(t *testing.T) {
	e, fs := testEditor(t)
	require.NoError(t, afero.WriteFile(fs, "/work/apdu/Cargo.toml",
		[]byte("[package\nname = apdu\n"), 0644))

	err := e.Lint()
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrLint))
}

func TestLintRejectsMissingManifest(t *testing.T) {
	e, fs := testEditor(t)
	require.NoError(t, fs.Remove("/work/eth-app/Cargo.toml"))

	err := e.Lint()
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrParse))
}

func TestLintRejectsMalformedVersion(t *testing.T) {
	e, fs := testEditor(t)
	require.NoError(t, afero.WriteFile(fs, "/work/apdu/Cargo.toml",
		[]byte("[package]\nname = \"apdu\"\nversion = \"1.2\"\n"), 0644))

	err := e.Lint()
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrLint))
}
