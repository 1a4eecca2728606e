package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/sap1/cpu"
)

// writeListing writes the disassembled memory image, then the assembled
// code and data cells with their source lines.
func writeListing(w io.Writer, prog *cpu.Program) {
	fmt.Fprintln(w, "memory:")
	for addr, code := range prog.Image.Listing() {
		line := ""
		dbg := prog.Debug(addr)
		if dbg.Statement != nil {
			line = fmt.Sprintf("%3d: %v", dbg.LineNo, strings.Join(dbg.Words, " "))
		}
		fmt.Fprintf(w, "  %X: %02X %-9v %v\n", addr, uint8(code), code, line)
	}

	kind := cpu.StatementKind(-1)
	for addr, stmt := range prog.Cells() {
		if stmt.Kind != kind {
			kind = stmt.Kind
			switch kind {
			case cpu.STATEMENT_CODE:
				fmt.Fprintln(w, "code:")
			case cpu.STATEMENT_DATA:
				fmt.Fprintln(w, "data:")
			}
		}
		fmt.Fprintf(w, "  %X: %02X %3d: %v\n", addr, stmt.Value, stmt.LineNo, strings.Join(stmt.Words, " "))
	}
}
