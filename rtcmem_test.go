package rtcmem

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"

	"github.com/nomis/rtcmem/hook"
	"github.com/nomis/rtcmem/models"
)

type fakeBackend struct {
	region *models.Region
	syms   []models.Symbol
	err    error
}

func (b *fakeBackend) Region(elfPath, name string) (*models.Region, error) {
	return b.region, b.err
}

func (b *fakeBackend) Symbols(elfPath string) ([]models.Symbol, int, error) {
	return b.syms, 8, b.err
}

func TestReport(t *testing.T) {
	config := &Config{Backend: &fakeBackend{
		region: &models.Region{Addr: 0x50000200, Size: 0x28},
		syms: []models.Symbol{
			// out of order with a duplicate and an out-of-region entry
			{Addr: 0x50000210, Size: 8, Raw: "wake_reason"},
			{Addr: 0x50000200, Size: 4, Raw: "boot_count"},
			{Addr: 0x50000200, Size: 4, Raw: "boot_count"},
			{Addr: 0x3ffae010, Size: 176, Raw: "port_IntStack"},
		},
	}}
	want := "boot_count\n" +
		"\t50000204    12 UNKNOWN\n" +
		"wake_reason\n" +
		"\n" +
		"Total RTC noinit size: 40 bytes\n"
	var buf bytes.Buffer
	if err := config.Report(&buf, "firmware.elf"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestReportNoRegion(t *testing.T) {
	config := &Config{Backend: &fakeBackend{
		syms: []models.Symbol{{Addr: 0x50000200, Size: 4, Raw: "boot_count"}},
	}}
	var buf bytes.Buffer
	if err := config.Report(&buf, "firmware.elf"); err != nil {
		t.Fatal(err)
	}
	want := "\nTotal RTC noinit size: unknown bytes\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReportBackendError(t *testing.T) {
	config := &Config{Backend: &fakeBackend{err: errors.New("readelf: no such file")}}
	var buf bytes.Buffer
	if err := config.Report(&buf, "firmware.elf"); err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Fatalf("partial output on error: %q", buf.String())
	}
}

func TestPostBuildHook(t *testing.T) {
	backend := &fakeBackend{region: &models.Region{Addr: 0x50000200, Size: 0x28}}
	config := &Config{Backend: backend}
	var buf bytes.Buffer
	build := fakeBuild{hook.ElfTarget("/build/esp32", "firmware")}
	if err := hook.PostBuild(build, config.PostBuildHook(&buf)); err != nil {
		t.Fatal(err)
	}
	want := "\nTotal RTC noinit size: 40 bytes\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

type fakeBuild []string

func (b fakeBuild) Targets() []string { return b }
