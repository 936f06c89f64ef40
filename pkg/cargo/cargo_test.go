/*
 * Copyright © 2019 One Concern
 *
 */

package cargo

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/oneconcern/cratemon/pkg/errors"
	"github.com/oneconcern/cratemon/pkg/model"
	"github.com/oneconcern/cratemon/pkg/runner/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRunner struct {
	calls   []string
	dirs    []string
	fail    map[string]error
	missing bool
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	f.dirs = append(f.dirs, dir)
	if err, ok := f.fail[args[0]]; ok {
		return nil, []byte("boom\n"), err
	}
	return nil, nil, nil
}

func (f *fakeRunner) Look(name string) error {
	if f.missing {
		return status.ErrToolMissing.Wrap(fmt.Errorf("exec: %q", name))
	}
	return nil
}

func TestVerifyChecksThenTests(t *testing.T) {
	fake := &fakeRunner{}
	tool := New("/work", fake, Logger(zap.NewNop()))

	require.NoError(t, tool.Verify(context.Background()))
	assert.Equal(t, []string{
		"cargo check --workspace",
		"cargo test --workspace",
	}, fake.calls)
	assert.Equal(t, []string{"/work", "/work"}, fake.dirs)
}

func TestVerifyHaltsOnFirstFailure(t *testing.T) {
	fake := &fakeRunner{fail: map[string]error{"check": fmt.Errorf("exit status 101")}}
	tool := New("/work", fake, Logger(zap.NewNop()))

	err := tool.Verify(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cargo check --workspace")
	assert.Contains(t, err.Error(), "boom")
	// test step never runs once check fails
	assert.Equal(t, []string{"cargo check --workspace"}, fake.calls)
}

func TestPublishAddressesManifest(t *testing.T) {
	fake := &fakeRunner{}
	tool := New("/work", fake, Logger(zap.NewNop()))
	ws := model.DefaultWorkspace()
	transport, _ := ws.Package("transport")

	require.NoError(t, tool.Publish(context.Background(), transport))
	require.Len(t, fake.calls, 1)
	assert.Equal(t, "cargo publish --manifest-path /work/transport/Cargo.toml --allow-dirty", fake.calls[0])
}

func TestInstalled(t *testing.T) {
	tool := New("/work", &fakeRunner{}, Logger(zap.NewNop()))
	require.NoError(t, tool.Installed())

	tool = New("/work", &fakeRunner{missing: true}, Logger(zap.NewNop()))
	err := tool.Installed()
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrToolMissing))
}
