package models

import (
	"flag"
	"fmt"
	"io"
)

// PrintFlags writes an aligned flag listing, one flag per line, with
// defaults in parentheses when they are non-empty.
func PrintFlags(w io.Writer, fs *flag.FlagSet) {
	wname := 0
	wdef := 0
	fs.VisitAll(func(f *flag.Flag) {
		if len(f.Name) > wname {
			wname = len(f.Name)
		}
		if len(f.DefValue) > wdef {
			wdef = len(f.DefValue)
		}
	})
	fstr := fmt.Sprintf("  -%%-%ds %%-%ds %%s\n", wname, wdef+2)
	fs.VisitAll(func(f *flag.Flag) {
		def := ""
		if f.DefValue != "" && f.DefValue != "false" {
			def = "(" + f.DefValue + ")"
		}
		fmt.Fprintf(w, fstr, f.Name, def, f.Usage)
	})
}
