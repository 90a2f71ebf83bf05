package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nomis/rtcmem"
	"github.com/nomis/rtcmem/cmd"
	"github.com/nomis/rtcmem/loader"
	"github.com/nomis/rtcmem/models"
	"github.com/nomis/rtcmem/readelf"
)

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	c := cmd.New("rtcmem")
	fs := c.Flags
	native := fs.Bool("native", false, "read the ELF directly instead of running readelf")
	section := fs.String("section", rtcmem.DefaultSection, "section to report on")
	tool := fs.String("readelf", "readelf", "readelf binary to run")
	color := fs.Bool("color", false, "highlight gap lines on a terminal")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Output location and size of RTC noinit memory\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <firmware.elf>\n\nOptions:\n", argv[0])
		models.PrintFlags(os.Stderr, fs)
	}
	fs.Parse(argv[1:])
	args := fs.Args()
	if len(args) != 1 {
		fs.Usage()
		return 1
	}

	config := &rtcmem.Config{
		Backend: readelf.New(*tool),
		Section: *section,
		Color:   *color && isatty.IsTerminal(os.Stdout.Fd()),
	}
	if *native {
		config.Backend = loader.Native{}
	}

	if err := config.Report(os.Stdout, args[0]); err != nil {
		c.PrintError(err)
		return cmd.ExitStatus(err)
	}
	return 0
}
