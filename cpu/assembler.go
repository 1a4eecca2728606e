// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"
)

// Assembler is a single pass assembler for the SAP-1 system.
type Assembler struct {
	Verbose   bool        // If set, verbosely logs the assembler actions.
	Statement []Statement // List of assembled statements.

	image   Image // Image under construction.
	codePtr int   // Instruction pointer.
	dataPtr int   // Data pointer, -1 until the first ORG.
}

// Assemble translates source text into a program.
func Assemble(text string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(text))
}

// valueOf parses a number in the given base.
func valueOf(word string, base int) (value int64, err error) {
	digits := word
	if base == 16 {
		digits = strings.TrimPrefix(strings.TrimPrefix(digits, "0x"), "0X")
	}

	value, err = strconv.ParseInt(digits, base, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// addressOf parses a hexadecimal address operand.
func addressOf(words []string) (addr uint8, err error) {
	if len(words) == 0 {
		err = ErrOpcodeValueMissing
		return
	}
	if len(words) > 1 {
		err = ErrOpcodeExtraArgs
		return
	}

	value, err := valueOf(words[0], 16)
	if err != nil {
		return
	}

	if value < 0 || value >= MEMORY_SIZE {
		err = ErrAddressRange
		return
	}

	addr = uint8(value)
	return
}

// Parse parses an input stream into a Program.
// Assembly is all-or-nothing: on error no program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	reader := bufio.NewReader(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Statement = asm.Statement[:0]
	clear(asm.image[:])
	asm.codePtr = 0
	asm.dataPtr = -1

	for {
		// Lines have no length limit.
		text, rerr := reader.ReadString('\n')
		if rerr == io.EOF && len(text) == 0 {
			break
		}
		lineno += 1
		if rerr != nil && rerr != io.EOF {
			line = ""
			err = rerr
			return
		}

		text = strings.TrimRight(text, "\r\n")

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.SplitN(text, ";", 2)
		line = strings.TrimSpace(text_comment[0])

		words := strings.Fields(line)

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}

		if rerr == io.EOF {
			break
		}
	}

	prog = &Program{
		Image:      asm.image,
		Statements: slices.Clone(asm.Statement),
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	mnemonic := strings.ToUpper(words[0])
	args := words[1:]

	defer func() {
		if err != nil {
			err = &ErrStatement{Mnemonic: mnemonic, Err: err}
		}
	}()

	switch mnemonic {
	case "ORG":
		var addr uint8
		addr, err = addressOf(args)
		if err != nil {
			return
		}
		asm.dataPtr = int(addr)
		if asm.Verbose {
			log.Printf("%v: data pointer %X", lineno, addr)
		}
		return
	case "DB":
		if asm.dataPtr < 0 {
			err = ErrOrgMissing
			return
		}
		if len(args) == 0 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(args) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		var value int64
		value, err = valueOf(args[0], 10)
		if err != nil {
			return
		}
		if value < 0 || value > 0xff {
			err = ErrValueRange
			return
		}
		if asm.dataPtr >= MEMORY_SIZE {
			err = ErrMemoryExhausted
			return
		}
		asm.emit(Statement{
			LineNo:  lineno,
			Address: uint8(asm.dataPtr),
			Words:   words,
			Kind:    STATEMENT_DATA,
			Value:   uint8(value),
		})
		asm.dataPtr++
		return
	}

	op, ok := opcodeMap[mnemonic]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	var operand uint8
	if op.HasOperand() {
		operand, err = addressOf(args)
		if err != nil {
			return
		}
	} else if len(args) != 0 {
		err = ErrOpcodeExtraArgs
		return
	}

	if asm.codePtr >= MEMORY_SIZE {
		err = ErrMemoryExhausted
		return
	}

	asm.emit(Statement{
		LineNo:  lineno,
		Address: uint8(asm.codePtr),
		Words:   words,
		Kind:    STATEMENT_CODE,
		Value:   uint8(MakeCode(op, operand)),
	})
	asm.codePtr++

	return
}

// emit writes a statement's value into the image.
func (asm *Assembler) emit(stmt Statement) {
	asm.image[stmt.Address] = stmt.Value
	asm.Statement = append(asm.Statement, stmt)
}
