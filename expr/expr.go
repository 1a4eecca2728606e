// Package expr compiles simple arithmetic expressions, such as '5+3-2', into
// SAP-1 assembly source.
//
// An expression is a left to right chain of decimal numbers from 0 to 255
// joined by '+' or '-'. The generated program loads the first number, adds
// or subtracts each of the rest, outputs the accumulator and halts. The
// numbers are placed at the end of RAM, after an ORG.
package expr

import (
	"fmt"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/sap1/cpu"
)

const (
	// Each number needs a data byte and an instruction, plus OUT and HLT.
	MAX_NUMBERS = (cpu.MEMORY_SIZE - 2) / 2
)

type chain struct {
	numbers []uint8
	ops     []syntax.Token
}

func unparen(e syntax.Expr) syntax.Expr {
	for {
		paren, ok := e.(*syntax.ParenExpr)
		if !ok {
			return e
		}
		e = paren.X
	}
}

func (ch *chain) number(e syntax.Expr) (err error) {
	lit, ok := unparen(e).(*syntax.Literal)
	if !ok || lit.Token != syntax.INT {
		err = ErrUnsupported
		return
	}

	// Decimal only; no 0x, 0o or 0b literals.
	if strings.Trim(lit.Raw, "0123456789") != "" {
		err = ErrUnsupported
		return
	}

	value, ok := lit.Value.(int64)
	if !ok || value < 0 || value > 255 {
		err = ErrNumberRange
		return
	}

	ch.numbers = append(ch.numbers, uint8(value))
	return
}

func (ch *chain) walk(e syntax.Expr) (err error) {
	e = unparen(e)

	bin, ok := e.(*syntax.BinaryExpr)
	if !ok {
		return ch.number(e)
	}

	if bin.Op != syntax.PLUS && bin.Op != syntax.MINUS {
		err = ErrUnsupported
		return
	}

	err = ch.walk(bin.X)
	if err != nil {
		return
	}

	ch.ops = append(ch.ops, bin.Op)
	return ch.number(bin.Y)
}

func parse(text string) (ch *chain, err error) {
	defer func() {
		if err != nil {
			ch = nil
			err = &ErrExpression{Expr: text, Err: err}
		}
	}()

	// Leading blanks would read as an indent.
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		err = ErrEmpty
		return
	}

	opts := syntax.FileOptions{}
	e, err := opts.ParseExpr("expr", trimmed, 0)
	if err != nil {
		return
	}

	ch = &chain{}
	err = ch.walk(e)
	if err != nil {
		return
	}

	if len(ch.numbers) > MAX_NUMBERS {
		err = ErrTooLong
		return
	}

	return
}

// Compile translates an expression into SAP-1 assembly source.
func Compile(text string) (source string, err error) {
	ch, err := parse(text)
	if err != nil {
		return
	}

	org := cpu.MEMORY_SIZE - len(ch.numbers)

	lines := []string{
		fmt.Sprintf("; generated from: %v", strings.TrimSpace(text)),
		fmt.Sprintf("LDA %X", org),
	}
	for n, op := range ch.ops {
		mnemonic := "ADD"
		if op == syntax.MINUS {
			mnemonic = "SUB"
		}
		lines = append(lines, fmt.Sprintf("%v %X", mnemonic, org+n+1))
	}
	lines = append(lines, "OUT", "HLT", fmt.Sprintf("ORG %X", org))
	for _, value := range ch.numbers {
		lines = append(lines, fmt.Sprintf("DB %d", value))
	}

	source = strings.Join(lines, "\n") + "\n"
	return
}

// Evaluate computes the value the compiled expression outputs, modulo 256.
func Evaluate(text string) (value uint8, err error) {
	_, err = parse(text)
	if err != nil {
		return
	}

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	st_rc, err := starlark.EvalOptions(&opts, &thread, "expr", strings.TrimSpace(text), nil)
	if err != nil {
		return
	}

	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = &ErrExpression{Expr: text, Err: ErrUnsupported}
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok {
		err = &ErrExpression{Expr: text, Err: ErrNumberRange}
		return
	}

	value = uint8(st_int64)
	return
}
