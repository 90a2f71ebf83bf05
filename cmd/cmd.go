package cmd

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

type Cmd struct {
	Flags *flag.FlagSet
}

func New(name string) *Cmd {
	return &Cmd{Flags: flag.NewFlagSet(name, flag.ExitOnError)}
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// PrintError prints an error to stderr, with its stack trace when one
// was attached.
func (c *Cmd) PrintError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", strings.Repeat("-", 40))
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	if err, ok := err.(stackTracer); ok {
		for _, f := range err.StackTrace() {
			fmt.Fprintf(os.Stderr, "  %+v\n", f)
			if fmt.Sprintf("%n", f) == "main.main" {
				break
			}
		}
	}
}

// ExitStatus maps an error to a process exit code. A failed subprocess
// keeps its own exit code; everything else is 1.
func ExitStatus(err error) int {
	if ee, ok := errors.Cause(err).(*exec.ExitError); ok {
		if code := ee.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
