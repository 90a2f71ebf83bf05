// Package hook adapts the report pipeline to a build orchestrator's
// post-build callback. The orchestrator registers the callback against
// the firmware image path template (build dir + program name + ".elf")
// and fires it once the image exists.
package hook

import (
	"path/filepath"

	"github.com/pkg/errors"
)

// Build is the part of the orchestrator's callback context the hook
// needs: the artifact paths the finished build step produced.
type Build interface {
	Targets() []string
}

// ReportFunc runs the report pipeline against a firmware image path.
type ReportFunc func(elfPath string) error

// ElfTarget is the firmware image path a build produces, for
// registering the post-build callback.
func ElfTarget(buildDir, progName string) string {
	return filepath.Join(buildDir, progName+".elf")
}

// PostBuild reports on the first target of a finished build. A report
// failure is returned to the host unchanged; the hook itself has no
// other side effects on the build.
func PostBuild(b Build, fn ReportFunc) error {
	targets := b.Targets()
	if len(targets) == 0 {
		return errors.New("build produced no targets")
	}
	return fn(targets[0])
}
