package models

import "sort"

// Region is a named section's span of address space.
// A nil *Region means the section was not present in the image.
type Region struct {
	Addr, Size uint64
}

func (r *Region) End() uint64 {
	return r.Addr + r.Size
}

// Contains reports whether sym lies entirely within the region.
// The upper bound on the start address is inclusive, so a zero-size
// symbol placed exactly at End() counts as inside.
func (r *Region) Contains(sym Symbol) bool {
	return sym.Addr >= r.Addr && sym.Addr <= r.End() && sym.Addr+sym.Size <= r.End()
}

// Symbol is one row of a symbol table listing. Raw holds the original
// listing line so the report can reproduce it verbatim.
type Symbol struct {
	Addr, Size uint64
	Raw        string
}

func (s Symbol) less(o Symbol) bool {
	if s.Addr != o.Addr {
		return s.Addr < o.Addr
	}
	if s.Size != o.Size {
		return s.Size < o.Size
	}
	return s.Raw < o.Raw
}

// Filter keeps the symbols contained in region, collapses exact
// duplicates, and returns them sorted ascending by (Addr, Size, Raw).
// A nil region keeps nothing.
func Filter(region *Region, syms []Symbol) []Symbol {
	if region == nil {
		return nil
	}
	set := make(map[Symbol]struct{})
	for _, sym := range syms {
		if region.Contains(sym) {
			set[sym] = struct{}{}
		}
	}
	out := make([]Symbol, 0, len(set))
	for sym := range set {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}
