// Package report prints a sorted symbol listing with synthesized
// entries for address ranges no symbol accounts for.
package report

import (
	"fmt"
	"io"

	"github.com/mgutz/ansi"

	"github.com/nomis/rtcmem/models"
)

var gapColor = ansi.ColorCode("yellow+b")

type Printer struct {
	W io.Writer

	// Width is the address field width observed while parsing the
	// symbol table. Gap lines use a fixed 8-digit address regardless,
	// matching the historical output; Width is kept for callers that
	// post-process the listing.
	Width int

	// Color highlights gap lines. Leave off when output is not a
	// terminal so the report stays byte-stable.
	Color bool
}

// Print writes each symbol's raw line in order, preceded by an UNKNOWN
// line wherever the previous symbol's end does not reach the next
// symbol's start, then a blank line and the total size summary.
func (p *Printer) Print(syms []models.Symbol, region *models.Region) {
	if len(syms) > 0 {
		cursor := syms[0].Addr
		for _, sym := range syms {
			if sym.Addr > cursor {
				p.gap(cursor, sym.Addr-cursor)
			}
			fmt.Fprintln(p.W, sym.Raw)
			cursor = sym.Addr + sym.Size
		}
	}

	fmt.Fprintln(p.W)
	if region != nil {
		fmt.Fprintf(p.W, "Total RTC noinit size: %d bytes\n", region.Size)
	} else {
		fmt.Fprintf(p.W, "Total RTC noinit size: unknown bytes\n")
	}
}

func (p *Printer) gap(addr, length uint64) {
	line := fmt.Sprintf("\t%08x %5d UNKNOWN", addr, length)
	if p.Color {
		line = gapColor + line + ansi.Reset
	}
	fmt.Fprintln(p.W, line)
}
