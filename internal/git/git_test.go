package git

import (
	"context"
	"errors"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOpen tests repository discovery
func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("not a repository", func(t *testing.T) {
		_, err := Open(ctx, &Options{Workdir: t.TempDir()})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoRepository))
	})

	t.Run("opens an existing repository", func(t *testing.T) {
		dir := t.TempDir()
		_, err := gogit.PlainInit(dir, false)
		require.NoError(t, err)

		repo, err := Open(ctx, &Options{Workdir: dir})
		require.NoError(t, err)
		require.NotNil(t, repo)

		assert.Equal(t, DefaultRemoteName, repo.Remote())
		assert.False(t, repo.HasRemote(), "fresh repository has no remote")
	})

	t.Run("sees a configured remote", func(t *testing.T) {
		dir := t.TempDir()
		raw, err := gogit.PlainInit(dir, false)
		require.NoError(t, err)

		_, err = raw.CreateRemote(&config.RemoteConfig{
			Name: DefaultRemoteName,
			URLs: []string{"https://example.com/repo.git"},
		})
		require.NoError(t, err)

		repo, err := Open(ctx, &Options{Workdir: dir})
		require.NoError(t, err)
		assert.True(t, repo.HasRemote())
	})

	t.Run("honors a custom remote name", func(t *testing.T) {
		dir := t.TempDir()
		_, err := gogit.PlainInit(dir, false)
		require.NoError(t, err)

		repo, err := Open(ctx, &Options{Workdir: dir, Remote: "upstream"})
		require.NoError(t, err)
		assert.Equal(t, "upstream", repo.Remote())
	})
}

// TestOptionsDefaults tests default application on Options
func TestOptionsDefaults(t *testing.T) {
	opts := &Options{}
	opts.applyDefaults()

	assert.Equal(t, DefaultWorkdir, opts.Workdir)
	assert.Equal(t, DefaultRemoteName, opts.Remote)
	assert.False(t, opts.StashUntracked)
}

// TestAliasCommand tests the preview rendering for alias installation
func TestAliasCommand(t *testing.T) {
	got := AliasCommand("sync", "!legit sync")
	assert.Equal(t, "config --global --replace-all alias.sync !legit sync", got)
}
