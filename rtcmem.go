// rtcmem reports the layout of an ESP32 firmware image's RTC noinit
// memory: the symbols linked into the .rtc_noinit section, gaps
// between them, and the section's total size.
package rtcmem

import (
	"io"

	"github.com/nomis/rtcmem/hook"
	"github.com/nomis/rtcmem/models"
	"github.com/nomis/rtcmem/report"
)

const DefaultSection = ".rtc_noinit"

// Backend lists sections and symbols for a firmware image. Region
// returns nil when no section has the given name.
type Backend interface {
	Region(elfPath, name string) (*models.Region, error)
	Symbols(elfPath string) ([]models.Symbol, int, error)
}

type Config struct {
	Backend Backend
	Section string // defaults to DefaultSection
	Color   bool
}

func (c *Config) section() string {
	if c.Section == "" {
		return DefaultSection
	}
	return c.Section
}

// Report runs the locate, filter, report pipeline for one image.
// Backend failures abort with no partial output; a missing section
// yields an empty listing and an unknown total.
func (c *Config) Report(w io.Writer, elfPath string) error {
	region, err := c.Backend.Region(elfPath, c.section())
	if err != nil {
		return err
	}
	syms, width, err := c.Backend.Symbols(elfPath)
	if err != nil {
		return err
	}
	p := &report.Printer{W: w, Width: width, Color: c.Color}
	p.Print(models.Filter(region, syms), region)
	return nil
}

// PostBuildHook wraps Report for a build orchestrator callback.
func (c *Config) PostBuildHook(w io.Writer) hook.ReportFunc {
	return func(elfPath string) error {
		return c.Report(w, elfPath)
	}
}
