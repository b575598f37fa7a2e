package git

import (
	"errors"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCurrentBranch tests getting the current branch
func TestCurrentBranch(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) *testRepo
		validate func(t *testing.T, branch string, err error)
	}{
		{
			name:  "default branch after commit",
			setup: setupTestRepoWithCommit,
			validate: func(t *testing.T, branch string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "master", branch)
			},
		},
		{
			name: "detached HEAD state",
			setup: func(t *testing.T) *testRepo {
				tr := setupTestRepoWithCommit(t)

				head, err := tr.repo.repo.Head()
				require.NoError(t, err)

				err = tr.repo.repo.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, head.Hash()))
				require.NoError(t, err)

				return tr
			},
			validate: func(t *testing.T, branch string, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrDetachedHead), "should return detached HEAD error")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := tt.setup(t)
			branch, err := tr.repo.CurrentBranch(tr.ctx)
			tt.validate(t, branch, err)
		})
	}
}

// TestBranchNames tests listing local and remote-tracking branch names
func TestBranchNames(t *testing.T) {
	tests := []struct {
		name  string
		local bool
		setup func(t *testing.T) *testRepo
		want  []string
	}{
		{
			name:  "local branches sorted",
			local: true,
			setup: func(t *testing.T) *testRepo {
				tr := setupTestRepoWithCommit(t)
				tr.createBranch(t, "feature-x")
				tr.createBranch(t, "dev")
				return tr
			},
			want: []string{"dev", "feature-x", "master"},
		},
		{
			name:  "remote branches strip prefix and skip HEAD",
			local: false,
			setup: func(t *testing.T) *testRepo {
				tr := setupTestRepoWithCommit(t)
				tr.createRemoteBranch(t, "origin", "master")
				tr.createRemoteBranch(t, "origin", "dev")
				tr.createRemoteBranch(t, "origin", "HEAD")
				return tr
			},
			want: []string{"dev", "master"},
		},
		{
			name:  "other remotes are ignored",
			local: false,
			setup: func(t *testing.T) *testRepo {
				tr := setupTestRepoWithCommit(t)
				tr.createRemoteBranch(t, "origin", "dev")
				tr.createRemoteBranch(t, "upstream", "main")
				return tr
			},
			want: []string{"dev"},
		},
		{
			name:  "no remote branches",
			local: false,
			setup: setupTestRepoWithCommit,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := tt.setup(t)
			names, err := tr.repo.BranchNames(tr.ctx, tt.local)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names)
		})
	}
}

// TestCheckout tests checkout argument construction and failure classification
func TestCheckout(t *testing.T) {
	tests := []struct {
		name     string
		branch   string
		result   fakeResult
		wantErr  error
		wantArgs []string
	}{
		{
			name:     "successful checkout",
			branch:   "dev",
			wantArgs: []string{"checkout", "dev"},
		},
		{
			name:    "empty branch name",
			branch:  "",
			wantErr: ErrBranchMissing,
		},
		{
			name:   "unknown branch",
			branch: "nope",
			result: fakeResult{
				out: "error: pathspec 'nope' did not match any file(s) known to git",
				err: errors.New("exit status 1"),
			},
			wantErr: ErrBranchMissing,
		},
		{
			name:   "local changes would be overwritten",
			branch: "dev",
			result: fakeResult{
				out: "error: Your local changes to the following files would be overwritten by checkout",
				err: errors.New("exit status 1"),
			},
			wantErr: nil, // generic failure, checked below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := setupTestRepoWithCommit(t)
			tr.runner.results["checkout"] = tt.result

			err := tr.repo.Checkout(tr.ctx, tt.branch)

			switch {
			case tt.wantErr != nil:
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
			case tt.result.err != nil:
				require.Error(t, err)
				assert.False(t, errors.Is(err, ErrBranchMissing))
				assert.Contains(t, CommandOutput(err), "overwritten by checkout")
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantArgs, tr.runner.lastCall(t))
			}
		})
	}
}
