package cpu

import (
	"iter"

	"github.com/ezrec/sap1/internal"
)

const (
	MEMORY_SIZE = 16 // Bytes of RAM, addresses 0x0 to 0xF.
)

// Image is a complete RAM image, index is address.
type Image [MEMORY_SIZE]uint8

// Listing iterates the image as disassembled codes.
func (image *Image) Listing() iter.Seq2[uint8, Code] {
	return func(yield func(addr uint8, code Code) bool) {
		for n, data := range image {
			if !yield(uint8(n), Code(data)) {
				return
			}
		}
	}
}

// StatementKind distinguishes instruction statements from data statements.
type StatementKind int

const (
	STATEMENT_CODE = StatementKind(0) // Instruction, written at the instruction pointer.
	STATEMENT_DATA = StatementKind(1) // DB value, written at the data pointer.
)

// Statement is a line of assembled source with the byte it produced.
type Statement struct {
	LineNo  int
	Address uint8
	Words   []string
	Kind    StatementKind
	Value   uint8
}

// Program is an assembled memory image and its listing.
type Program struct {
	Image      Image
	Statements []Statement
}

type Debug struct {
	*Statement
}

// Debug returns the statement that last wrote to addr, if any.
func (prog *Program) Debug(addr uint8) (dbg Debug) {
	for n := len(prog.Statements) - 1; n >= 0; n-- {
		if prog.Statements[n].Address == addr {
			dbg = Debug{
				Statement: &prog.Statements[n],
			}
			break
		}
	}

	return
}

// Code returns the instruction statements in source order.
func (prog *Program) Code() iter.Seq2[uint8, Statement] {
	return prog.kind(STATEMENT_CODE)
}

// Data returns the data statements in source order.
func (prog *Program) Data() iter.Seq2[uint8, Statement] {
	return prog.kind(STATEMENT_DATA)
}

// Cells returns all instruction statements, then all data statements.
func (prog *Program) Cells() iter.Seq2[uint8, Statement] {
	return internal.IterSeq2Concat(prog.Code(), prog.Data())
}

func (prog *Program) kind(kind StatementKind) iter.Seq2[uint8, Statement] {
	return func(yield func(addr uint8, stmt Statement) bool) {
		for _, stmt := range prog.Statements {
			if stmt.Kind != kind {
				continue
			}
			if !yield(stmt.Address, stmt) {
				return
			}
		}
	}
}
