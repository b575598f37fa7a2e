package git

import (
	"context"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/require"
)

// fakeResult is a canned response for one git subcommand.
type fakeResult struct {
	out string
	err error
}

// fakeRunner records git invocations and replays canned results, keyed by
// subcommand ("checkout", "merge", "stash push", "stash pop").
type fakeRunner struct {
	calls   [][]string
	results map[string]fakeResult
}

func (f *fakeRunner) run(ctx context.Context, args ...string) (string, error) {
	f.calls = append(f.calls, args)

	key := args[0]
	if args[0] == "stash" && len(args) > 1 {
		key = "stash " + args[1]
	}
	res := f.results[key]
	if res.err != nil {
		return res.out, &GitError{Args: args, Err: res.err, Output: res.out}
	}
	return res.out, nil
}

// lastCall returns the most recent recorded invocation.
func (f *fakeRunner) lastCall(t *testing.T) []string {
	t.Helper()
	require.NotEmpty(t, f.calls, "expected at least one git invocation")
	return f.calls[len(f.calls)-1]
}

// testRepo is a helper struct bundling a repository over an in-memory
// filesystem with the fake runner behind its exec-backed operations.
type testRepo struct {
	repo   *Repo
	fs     billy.Filesystem
	ctx    context.Context
	runner *fakeRunner
}

// setupTestRepo creates an empty test repository with an in-memory
// filesystem and a fake runner.
func setupTestRepo(t *testing.T) *testRepo {
	t.Helper()

	fs := memfs.New()
	repo, err := gogit.Init(memory.NewStorage(), fs)
	require.NoError(t, err, "failed to initialize test repository")

	worktree, err := repo.Worktree()
	require.NoError(t, err, "failed to get worktree")

	runner := &fakeRunner{results: map[string]fakeResult{}}
	return &testRepo{
		repo: &Repo{
			repo:           repo,
			worktree:       worktree,
			remote:         DefaultRemoteName,
			stashUntracked: true,
			run:            runner,
		},
		fs:     fs,
		ctx:    context.Background(),
		runner: runner,
	}
}

// setupTestRepoWithCommit creates a test repository with an initial commit.
func setupTestRepoWithCommit(t *testing.T) *testRepo {
	t.Helper()

	tr := setupTestRepo(t)
	tr.writeFile(t, "test.txt", "initial content")
	tr.commit(t, "Initial commit")
	return tr
}

// writeFile writes a file into the in-memory working tree.
func (tr *testRepo) writeFile(t *testing.T, name, content string) {
	t.Helper()

	err := util.WriteFile(tr.fs, name, []byte(content), 0o644)
	require.NoError(t, err, "failed to write %s", name)
}

// commit stages everything and creates a commit, returning its hash.
func (tr *testRepo) commit(t *testing.T, msg string) plumbing.Hash {
	t.Helper()

	err := tr.repo.worktree.AddWithOptions(&gogit.AddOptions{All: true})
	require.NoError(t, err, "failed to stage changes")

	hash, err := tr.repo.worktree.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err, "failed to commit")
	return hash
}

// createBranch creates a local branch at HEAD.
func (tr *testRepo) createBranch(t *testing.T, name string) {
	t.Helper()

	head, err := tr.repo.repo.Head()
	require.NoError(t, err, "failed to get HEAD")

	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), head.Hash())
	require.NoError(t, tr.repo.repo.Storer.SetReference(ref), "failed to create branch %s", name)
}

// createRemoteBranch creates a remote-tracking ref for the given remote at HEAD.
func (tr *testRepo) createRemoteBranch(t *testing.T, remote, name string) {
	t.Helper()

	head, err := tr.repo.repo.Head()
	require.NoError(t, err, "failed to get HEAD")

	ref := plumbing.NewHashReference(plumbing.NewRemoteReferenceName(remote, name), head.Hash())
	require.NoError(t, tr.repo.repo.Storer.SetReference(ref), "failed to create remote branch %s", name)
}
