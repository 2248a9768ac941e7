package gittag

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repository, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	first := commitFile(t, repository, dir, "a.txt", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	_, err = repository.CreateTag("v1.0.0", first, nil)
	require.NoError(t, err)

	second := commitFile(t, repository, dir, "b.txt", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	_, err = repository.CreateTag("v1.0.1", second, &git.CreateTagOptions{
		Tagger:  signature(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		Message: "release v1.0.1",
	})
	require.NoError(t, err)

	tag, err := Latest(dir)
	require.NoError(t, err)
	assert.Equal(t, "v1.0.1", tag)
}

func TestLatestIgnoresTagNameOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repository, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	// v9.0.0 on the older commit: the newer commit must win even though
	// its tag name sorts lower
	first := commitFile(t, repository, dir, "a.txt", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	_, err = repository.CreateTag("v9.0.0", first, nil)
	require.NoError(t, err)

	second := commitFile(t, repository, dir, "b.txt", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	_, err = repository.CreateTag("v1.2.3", second, nil)
	require.NoError(t, err)

	tag, err := Latest(dir)
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", tag)
}

func TestLatestNoTags(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repository, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	commitFile(t, repository, dir, "a.txt", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	_, err = Latest(dir)
	require.ErrorIs(t, err, ErrNoTags)
}

func TestLatestNotARepository(t *testing.T) {
	t.Parallel()

	_, err := Latest(t.TempDir())
	require.Error(t, err)
}

func commitFile(t *testing.T, repository *git.Repository, dir, name string, when time.Time) plumbing.Hash {
	t.Helper()

	worktree, err := repository.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o600))

	_, err = worktree.Add(name)
	require.NoError(t, err)

	hash, err := worktree.Commit("add "+name, &git.CommitOptions{
		Author:    signature(when),
		Committer: signature(when),
	})
	require.NoError(t, err)

	return hash
}

func signature(when time.Time) *object.Signature {
	return &object.Signature{
		Name:  "test",
		Email: "test@example.com",
		When:  when,
	}
}
