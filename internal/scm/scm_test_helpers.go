package scm

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/legit-scm/legit/internal/git"
)

// fakeBackend is an in-memory Backend. Branch pointers, the dirty flag, and
// the stash stack evolve the way the real repository would, and every
// mutating call is recorded so tests can assert ordering.
type fakeBackend struct {
	current    string
	local      []string
	remote     []string
	remoteGone map[string]bool
	dirty      bool
	hasRemote  bool
	remoteName string

	stash []string

	checkoutErr error
	mergeErr    error
	popErr      error
	pushErr     error

	calls []string
}

// newFakeBackend returns a backend on branch main with a published main, an
// unpublished dev and feature-x, a clean tree, and a configured origin.
func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		current:    "main",
		local:      []string{"dev", "feature-x", "main"},
		remote:     []string{"main"},
		remoteGone: map[string]bool{},
		hasRemote:  true,
		remoteName: "origin",
	}
}

func (f *fakeBackend) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeBackend) CurrentBranch(ctx context.Context) (string, error) {
	return f.current, nil
}

func (f *fakeBackend) BranchNames(ctx context.Context, local bool) ([]string, error) {
	src := f.remote
	if local {
		src = f.local
	}
	names := append([]string(nil), src...)
	sort.Strings(names)
	return names, nil
}

func (f *fakeBackend) IsDirty(ctx context.Context) (bool, error) {
	return f.dirty, nil
}

func (f *fakeBackend) HasRemote() bool { return f.hasRemote }
func (f *fakeBackend) Remote() string  { return f.remoteName }

func (f *fakeBackend) StashPush(ctx context.Context, message string) error {
	f.record("stash push")
	f.stash = append(f.stash, message)
	f.dirty = false
	return nil
}

func (f *fakeBackend) StashPop(ctx context.Context) error {
	f.record("stash pop")
	if f.popErr != nil {
		// The entry stays on the stack, as git preserves it on conflict.
		return f.popErr
	}
	if len(f.stash) == 0 {
		return fmt.Errorf("no stash entries")
	}
	f.stash = f.stash[:len(f.stash)-1]
	f.dirty = true
	return nil
}

func (f *fakeBackend) Checkout(ctx context.Context, branch string) error {
	f.record("checkout %s", branch)
	if f.checkoutErr != nil {
		return f.checkoutErr
	}
	for _, name := range f.local {
		if name == branch {
			f.current = branch
			return nil
		}
	}
	return git.ErrBranchMissing
}

func (f *fakeBackend) Fetch(ctx context.Context) error {
	f.record("fetch")
	return nil
}

func (f *fakeBackend) Merge(ctx context.Context, ref string) error {
	f.record("merge %s", ref)
	return f.mergeErr
}

func (f *fakeBackend) Push(ctx context.Context, branch string) error {
	f.record("push %s", branch)
	if f.pushErr != nil {
		return f.pushErr
	}
	for _, name := range f.remote {
		if name == branch {
			return git.ErrAlreadyUpToDate
		}
	}
	f.remote = append(f.remote, branch)
	return nil
}

func (f *fakeBackend) DeleteRemoteBranch(ctx context.Context, branch string) error {
	f.record("delete-remote %s", branch)
	if f.remoteGone[branch] {
		return git.ErrRemoteBranchGone
	}
	for i, name := range f.remote {
		if name == branch {
			f.remote = append(f.remote[:i], f.remote[i+1:]...)
			return nil
		}
	}
	return git.ErrRemoteBranchGone
}

func (f *fakeBackend) SoftResetLastCommit(ctx context.Context) error {
	f.record("soft-reset")
	return nil
}

// newTestSCM wires a fake backend to an SCM capturing reporter output.
func newTestSCM(t *testing.T, backend *fakeBackend, verbose, fake bool) (*SCM, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	return New(backend, NewReporter(&out, verbose, fake)), &out
}
