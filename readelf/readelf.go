// Package readelf drives the binutils readelf tool and parses its
// section header and symbol table listings.
package readelf

import (
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nomis/rtcmem/models"
)

var (
	sectionRe = regexp.MustCompile(`^\s*\[[0-9 ]+\]\s*(\S+)\s+(\w+)\s+(\w+)\s+(\w+)\s+(\w+)\s+`)
	symbolRe  = regexp.MustCompile(`^\s*([0-9]+):\s+(\w+)\s+(\w+)\s+(\w+)\s+(\w+)\s+(\w+)\s+(\w+)\s+(\w+)`)
)

type Tool struct {
	Path string
}

func New(path string) *Tool {
	if path == "" {
		path = "readelf"
	}
	return &Tool{Path: path}
}

// run invokes readelf and returns its stdout split into trimmed lines.
// The child's stderr passes through; a non-zero exit propagates as an
// *exec.ExitError wrapped with the invocation.
func (t *Tool) run(args ...string) ([]string, error) {
	cmd := exec.Command(t.Path, args...)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", t.Path, strings.Join(args, " "))
	}
	return strings.Split(strings.TrimSpace(string(out)), "\n"), nil
}

// Region returns the bounds of the first section named name, or nil if
// the image has no such section.
func (t *Tool) Region(elfPath, name string) (*models.Region, error) {
	lines, err := t.run("-W", "--section-headers", elfPath)
	if err != nil {
		return nil, err
	}
	return parseRegion(lines, name), nil
}

// Symbols returns every parseable row of the static and dynamic symbol
// tables, plus the character width of the last address field seen
// (a formatting hint, 8 when no row parsed).
func (t *Tool) Symbols(elfPath string) ([]models.Symbol, int, error) {
	lines, err := t.run("-W", "--syms", "--dyn-syms", elfPath)
	if err != nil {
		return nil, 0, err
	}
	syms, width := parseSymbols(lines)
	return syms, width, nil
}

func parseRegion(lines []string, name string) *models.Region {
	for _, line := range lines {
		m := sectionRe.FindStringSubmatch(line)
		if m == nil || m[1] != name {
			continue
		}
		addr, err1 := strconv.ParseUint(m[3], 16, 64)
		size, err2 := strconv.ParseUint(m[5], 16, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		return &models.Region{Addr: addr, Size: size}
	}
	return nil
}

func parseSymbols(lines []string) ([]models.Symbol, int) {
	var syms []models.Symbol
	width := 8
	for _, line := range lines {
		m := symbolRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		addr, err1 := strconv.ParseUint(m[2], 16, 64)
		// the size column is decimal, unlike the address
		size, err2 := strconv.ParseUint(m[3], 10, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		width = len(m[2])
		syms = append(syms, models.Symbol{Addr: addr, Size: size, Raw: line})
	}
	return syms, width
}
