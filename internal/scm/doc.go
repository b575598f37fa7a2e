// Package scm implements the branch workflow engine behind the legit
// commands: safe switching, branch synchronization, publishing and
// unpublishing, branch listing, and undoing the last commit.
//
// Workflows sequence backend primitives (stash, checkout, fetch, merge,
// push) and check every step's outcome before proceeding. Recoverable
// refusals surface as *Abort before anything is mutated; destructive-step
// failures propagate the backend's sentinel errors so callers can attach
// remediation guidance. A stash pushed by a workflow is popped by that same
// workflow or deliberately left in place when a later step fails, so local
// changes are never lost.
package scm
