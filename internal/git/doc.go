// Package git is the version-control backend for legit. It wraps go-git for
// repository reads and remote exchange (branch listing, dirty state, fetch,
// push, remote branch deletion, soft reset) and shells out to the git binary
// for the working-tree mutations go-git has no safe equivalent for: stash
// push/pop, true three-way merge, and checkout.
//
// All failures surface as sentinel errors checkable with errors.Is, wrapped
// with context via WrapError/WrapErrorf. Output of failed git commands is
// preserved on GitError so callers can show the user what the tool saw.
package git
