package expr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/sap1/cpu"
	"github.com/ezrec/sap1/emulator"
	"github.com/ezrec/sap1/io"
)

func TestCompile(t *testing.T) {
	assert := assert.New(t)

	source, err := Compile("5+3")
	assert.NoError(err)
	assert.Equal(`; generated from: 5+3
LDA E
ADD F
OUT
HLT
ORG E
DB 5
DB 3
`, source)

	source, err = Compile(" 10 - 4 + 1 ")
	assert.NoError(err)
	assert.Equal(`; generated from: 10 - 4 + 1
LDA D
SUB E
ADD F
OUT
HLT
ORG D
DB 10
DB 4
DB 1
`, source)

	source, err = Compile("\t5+3")
	assert.NoError(err)
	assert.Equal("; generated from: 5+3\nLDA E\nADD F\nOUT\nHLT\nORG E\nDB 5\nDB 3\n", source)

	source, err = Compile("42")
	assert.NoError(err)
	assert.Equal("; generated from: 42\nLDA F\nOUT\nHLT\nORG F\nDB 42\n", source)
}

func TestCompileRun(t *testing.T) {
	table := []string{
		"5+3",
		"200+100",
		"9-5",
		"5-9",
		"0-255",
		"255+255+255+255+255+255+255",
		"(1+2)-3+4",
		"((7))",
		"1-1-1-1-1-1-1",
		" 200 + 100",
		"\t5 - 9",
	}

	for _, text := range table {
		t.Run(text, func(t *testing.T) {
			assert := assert.New(t)

			source, err := Compile(text)
			require.NoError(t, err)

			prog, err := cpu.Assemble(source)
			require.NoError(t, err, source)

			lights := &io.Lights{}
			emu := emulator.NewEmulator()
			emu.Program = prog
			emu.Output = lights
			emu.Reset()
			assert.NoError(emu.Run(context.Background()))

			expect, err := Evaluate(text)
			assert.NoError(err)
			assert.Equal(expect, lights.Value(), source)
			assert.Equal(expect, emu.Cpu.Snapshot().Acc)
			assert.Equal(cpu.STATUS_HALTED, emu.History.Steps[len(emu.History.Steps)-1].Status)
		})
	}
}

func TestEvaluate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		value uint8
	}){
		{"5+3", 8},
		{"200+100", 44},
		{"5-9", 252},
		{"0-255", 1},
		{"(1+2)-3+4", 4},
		{" 5+3", 8},
		{"\t5+3", 8},
		{"  9 - 5\n", 4},
	}

	for _, entry := range table {
		value, err := Evaluate(entry.text)
		assert.NoError(err, entry.text)
		assert.Equal(entry.value, value, entry.text)
	}
}

func TestCompileErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		err  error
	}){
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"5*3", ErrUnsupported},
		{"-5+3", ErrUnsupported},
		{"5-(3+2)", ErrUnsupported},
		{"0x10+1", ErrUnsupported},
		{"a+1", ErrUnsupported},
		{"256", ErrNumberRange},
		{"1+99999999999999999999999", ErrNumberRange},
		{"1+1+1+1+1+1+1+1", ErrTooLong},
		{"5+", nil},
		{"5 3", nil},
	}

	for _, entry := range table {
		source, err := Compile(entry.text)
		assert.Equal("", source, entry.text)
		if !assert.Error(err, entry.text) {
			continue
		}

		var ee *ErrExpression
		if assert.True(errors.As(err, &ee), entry.text) {
			assert.Equal(entry.text, ee.Expr)
		}

		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.text)
		}

		_, err = Evaluate(entry.text)
		assert.Error(err, entry.text)
	}
}
