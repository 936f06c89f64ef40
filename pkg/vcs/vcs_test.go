/*
 * Copyright © 2019 One Concern
 *
 */

package vcs

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/oneconcern/cratemon/pkg/errors"
	"github.com/oneconcern/cratemon/pkg/model"
	"github.com/oneconcern/cratemon/pkg/vcs/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGit struct {
	calls []string
	fail  map[string]error // scripted failures, keyed by the exact call
}

func (f *fakeGit) Run(_ context.Context, _, name string, args ...string) ([]byte, []byte, error) {
	call := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, call)
	if err, ok := f.fail[call]; ok {
		return nil, []byte("fatal: scripted failure\n"), err
	}
	return nil, nil, nil
}

func (f *fakeGit) Look(string) error { return nil }

func testVersion(t *testing.T) model.ReleaseVersion {
	t.Helper()
	v, err := model.ParseVersion("1.2.3")
	require.NoError(t, err)
	return v
}

const revParseTag = "git rev-parse -q --verify refs/tags/v1.2.3"

func TestCreateTagWhenAbsent(t *testing.T) {
	v := testVersion(t)
	fake := &fakeGit{fail: map[string]error{revParseTag: fmt.Errorf("exit status 1")}}
	confirmed := false
	repo := New("/work", fake, Logger(zap.NewNop()), Confirm(func(string) bool {
		confirmed = true
		return true
	}))

	require.NoError(t, repo.CreateTag(context.Background(), v))
	assert.False(t, confirmed, "no conflict, no question")
	assert.Equal(t, []string{
		revParseTag,
		"git tag -a v1.2.3 -m Release version 1.2.3",
	}, fake.calls)
}

func TestCreateTagConflictDeclined(t *testing.T) {
	v := testVersion(t)
	fake := &fakeGit{}
	// no Confirm option: the default answers no
	repo := New("/work", fake, Logger(zap.NewNop()))

	err := repo.CreateTag(context.Background(), v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrTagConflict))
	for _, call := range fake.calls {
		assert.NotContains(t, call, "tag -d", "existing tag must stand untouched")
	}
}

func TestCreateTagConflictOverwrite(t *testing.T) {
	v := testVersion(t)
	fake := &fakeGit{}
	repo := New("/work", fake, Logger(zap.NewNop()), Confirm(func(string) bool { return true }))

	require.NoError(t, repo.CreateTag(context.Background(), v))
	assert.Equal(t, []string{
		revParseTag,
		"git tag -d v1.2.3",
		"git push origin :refs/tags/v1.2.3",
		"git tag -a v1.2.3 -m Release version 1.2.3",
	}, fake.calls)
}

func TestCreateTagRemoteDeleteBestEffort(t *testing.T) {
	v := testVersion(t)
	fake := &fakeGit{fail: map[string]error{
		"git push origin :refs/tags/v1.2.3": fmt.Errorf("exit status 1"),
	}}
	repo := New("/work", fake, Logger(zap.NewNop()), Confirm(func(string) bool { return true }))

	// remote deletion failing is only a warning
	require.NoError(t, repo.CreateTag(context.Background(), v))
	assert.Equal(t, "git tag -a v1.2.3 -m Release version 1.2.3", fake.calls[len(fake.calls)-1])
}

func TestCreateTagLocalDeleteFailure(t *testing.T) {
	v := testVersion(t)
	fake := &fakeGit{fail: map[string]error{
		"git tag -d v1.2.3": fmt.Errorf("exit status 1"),
	}}
	repo := New("/work", fake, Logger(zap.NewNop()), Confirm(func(string) bool { return true }))

	err := repo.CreateTag(context.Background(), v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git tag -d")
}

func TestPushTag(t *testing.T) {
	v := testVersion(t)
	fake := &fakeGit{}
	repo := New("/work", fake, Logger(zap.NewNop()))

	require.NoError(t, repo.PushTag(context.Background(), v))
	assert.Equal(t, []string{"git push origin v1.2.3"}, fake.calls)
}

func TestPushTagFailure(t *testing.T) {
	v := testVersion(t)
	fake := &fakeGit{fail: map[string]error{
		"git push origin v1.2.3": fmt.Errorf("exit status 128"),
	}}
	repo := New("/work", fake, Logger(zap.NewNop()))

	err := repo.PushTag(context.Background(), v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrTagPush))
}

func TestCommit(t *testing.T) {
	v := testVersion(t)
	fake := &fakeGit{}
	repo := New("/work", fake, Logger(zap.NewNop()))

	require.NoError(t, repo.Commit(context.Background(), v))
	assert.Equal(t, []string{"git commit -a -m Release version 1.2.3"}, fake.calls)
}

func TestTagExists(t *testing.T) {
	v := testVersion(t)

	repo := New("/work", &fakeGit{}, Logger(zap.NewNop()))
	exists, err := repo.TagExists(context.Background(), v)
	require.NoError(t, err)
	assert.True(t, exists)

	repo = New("/work", &fakeGit{fail: map[string]error{revParseTag: fmt.Errorf("exit status 1")}},
		Logger(zap.NewNop()))
	exists, err = repo.TagExists(context.Background(), v)
	require.NoError(t, err)
	assert.False(t, exists)
}
