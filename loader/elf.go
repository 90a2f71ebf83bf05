// Package loader reads sections and symbols straight from an ELF image
// with debug/elf, as an alternative to shelling out to readelf.
package loader

import (
	"debug/elf"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/nomis/rtcmem/models"
)

type Native struct{}

func (Native) Region(elfPath, name string) (*models.Region, error) {
	f, err := elf.Open(elfPath)
	if err != nil {
		return nil, errors.Wrap(err, elfPath)
	}
	defer f.Close()
	return fileRegion(f, name), nil
}

func (Native) Symbols(elfPath string) ([]models.Symbol, int, error) {
	f, err := elf.Open(elfPath)
	if err != nil {
		return nil, 0, errors.Wrap(err, elfPath)
	}
	defer f.Close()
	return fileSymbols(f)
}

func fileRegion(f *elf.File, name string) *models.Region {
	sec := f.Section(name)
	if sec == nil {
		return nil
	}
	return &models.Region{Addr: sec.Addr, Size: sec.Size}
}

func fileSymbols(f *elf.File) ([]models.Symbol, int, error) {
	width := 8
	if f.Class == elf.ELFCLASS64 {
		width = 16
	}
	static, err := f.Symbols()
	if err != nil && err != elf.ErrNoSymbols {
		return nil, width, errors.WithStack(err)
	}
	dynamic, err := f.DynamicSymbols()
	if err != nil && err != elf.ErrNoSymbols {
		return nil, width, errors.WithStack(err)
	}
	var out []models.Symbol
	for _, table := range [][]elf.Symbol{static, dynamic} {
		for i, sym := range table {
			out = append(out, models.Symbol{
				Addr: sym.Value,
				Size: sym.Size,
				Raw:  renderSymbol(i+1, width, sym),
			})
		}
	}
	return out, width, nil
}

// renderSymbol formats a symbol the way readelf -W lists it, so that
// both backends feed identical-looking raw lines to the report.
func renderSymbol(num, width int, sym elf.Symbol) string {
	return fmt.Sprintf("%6d: %0*x %5d %-7s %-6s %-7s %4s %s",
		num, width, sym.Value, sym.Size,
		strings.TrimPrefix(elf.ST_TYPE(sym.Info).String(), "STT_"),
		strings.TrimPrefix(elf.ST_BIND(sym.Info).String(), "STB_"),
		strings.TrimPrefix(elf.ST_VISIBILITY(sym.Other).String(), "STV_"),
		sectionIndex(sym.Section), sym.Name)
}

func sectionIndex(ndx elf.SectionIndex) string {
	switch ndx {
	case elf.SHN_UNDEF:
		return "UND"
	case elf.SHN_ABS:
		return "ABS"
	case elf.SHN_COMMON:
		return "COM"
	default:
		return fmt.Sprintf("%d", ndx)
	}
}
