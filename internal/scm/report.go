package scm

import (
	"fmt"
	"io"
)

// Reporter announces workflow steps as they run. In fake mode it prints
// what would run and skips execution; in verbose mode it additionally
// prints the underlying git primitive. Reporting never swallows an error:
// the action's outcome always reaches the caller.
type Reporter struct {
	out     io.Writer
	verbose bool
	fake    bool
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer, verbose, fake bool) *Reporter {
	return &Reporter{out: out, verbose: verbose, fake: fake}
}

// Echo prints a plain line of progress output.
func (r *Reporter) Echo(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Run announces label, then executes fn and propagates its outcome. The op
// string names the underlying git primitive; it is shown in verbose mode
// and stands in for execution in fake mode.
func (r *Reporter) Run(label, op string, fn func() error) error {
	r.Echo("%s", label)

	if r.fake {
		r.Echo("Faked! >>> git %s", op)
		return nil
	}
	if r.verbose {
		r.Echo(">>> git %s", op)
	}
	return fn()
}
