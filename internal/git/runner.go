package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// runner executes git commands against a working tree. The indirection keeps
// command construction and error classification testable without a git
// binary or an on-disk repository.
type runner interface {
	run(ctx context.Context, args ...string) (string, error)
}

// execRunner runs the system git binary in a fixed directory.
type execRunner struct {
	dir string
}

// run executes git with the given arguments and returns the combined output.
// On failure the output is preserved on the returned GitError.
func (r *execRunner) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.dir

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	out := strings.TrimSpace(buf.String())
	if err != nil {
		return out, &GitError{Args: args, Err: err, Output: out}
	}
	return out, nil
}

// SetGlobalAlias installs a global git alias, replacing any existing
// definition. Used by the alias installer; it deliberately bypasses the
// repository since alias configuration is user-global.
func SetGlobalAlias(ctx context.Context, alias, expansion string) error {
	r := &execRunner{dir: "."}
	_, err := r.run(ctx, "config", "--global", "--replace-all", "alias."+alias, expansion)
	if err != nil {
		return WrapErrorf(err, "failed to install alias %q", alias)
	}
	return nil
}

// AliasCommand returns the arguments SetGlobalAlias would pass to git,
// joined for display in previews. The "git" prefix is left to the caller.
func AliasCommand(alias, expansion string) string {
	return strings.Join([]string{"config", "--global", "--replace-all", "alias." + alias, expansion}, " ")
}
