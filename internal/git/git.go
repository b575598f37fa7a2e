package git

import (
	"context"
	"errors"

	gogit "github.com/go-git/go-git/v5"
)

const (
	// DefaultWorkdir is the default working tree directory.
	DefaultWorkdir = "."

	// DefaultRemoteName is the default remote used for all exchange
	// operations.
	DefaultRemoteName = "origin"
)

// Options configures repository discovery and backend behavior.
type Options struct {
	// Workdir is the directory to discover the repository from.
	// Defaults to the current directory; discovery walks up like git does.
	Workdir string

	// Remote is the remote name used for fetch, push, and publication
	// checks. Defaults to DefaultRemoteName.
	Remote string

	// StashUntracked includes untracked files when stashing. Without it a
	// working tree that is dirty only with untracked files produces no
	// stash entry, leaving a later pop with nothing to restore.
	StashUntracked bool
}

// applyDefaults sets default values for any unset fields in Options.
func (o *Options) applyDefaults() {
	if o.Workdir == "" {
		o.Workdir = DefaultWorkdir
	}
	if o.Remote == "" {
		o.Remote = DefaultRemoteName
	}
}

// Repo represents an opened git repository and provides the backend
// primitives the workflows are built from. Reads and remote exchange go
// through go-git; stash, merge, and checkout go through the git binary.
type Repo struct {
	repo           *gogit.Repository
	worktree       *gogit.Worktree
	remote         string
	stashUntracked bool
	run            runner
}

// Open discovers and opens the repository containing opts.Workdir.
// Returns ErrNoRepository when the directory is not inside a work tree.
//
// Context timeout/cancellation is honored by the individual operations,
// not by discovery, which is purely local.
func Open(ctx context.Context, opts *Options) (*Repo, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts.applyDefaults()

	repo, err := gogit.PlainOpenWithOptions(opts.Workdir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, WrapError(ErrNoRepository, opts.Workdir)
		}
		return nil, WrapError(err, "failed to open repository")
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, WrapError(err, "failed to get worktree")
	}

	return &Repo{
		repo:           repo,
		worktree:       worktree,
		remote:         opts.Remote,
		stashUntracked: opts.StashUntracked,
		run:            &execRunner{dir: opts.Workdir},
	}, nil
}

// Remote returns the remote name this repository exchanges with.
func (r *Repo) Remote() string {
	return r.remote
}

// HasRemote reports whether the configured remote exists.
func (r *Repo) HasRemote() bool {
	_, err := r.repo.Remote(r.remote)
	return err == nil
}
