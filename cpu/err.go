package cpu

import (
	"errors"

	"github.com/ezrec/sap1/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrNotRunnable = errors.New(f("not runnable"))
	ErrHalted      = errors.New(f("halted"))
	ErrPcRange     = errors.New(f("pc out of range"))

	// Instruction decode errors
	ErrOpcodeDecode = errors.New(f("decode"))

	// Assembler errors
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("invalid instruction"))
	ErrAddressRange       = errors.New(f("address out of range (00-0F)"))
	ErrValueRange         = errors.New(f("value out of range (0-255)"))
	ErrOrgMissing         = errors.New(f("DB without preceding ORG"))
	ErrMemoryExhausted    = errors.New(f("memory exhausted"))
)

// ErrOpcode is an instruction that failed to decode during execution.
type ErrOpcode struct {
	Address uint8 // Address the code was fetched from.
	Code    Code  // Code that failed to decode.
}

func (eo ErrOpcode) Error() string {
	return f("invalid opcode %04b in instruction 0x%02X at address 0x%X",
		uint8(eo.Code.Opcode()), uint8(eo.Code), eo.Address)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

func (eo ErrOpcode) Unwrap() error {
	return ErrOpcodeDecode
}

// ErrSyntax locates an assembly error in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrStatement names the mnemonic of the statement that failed.
type ErrStatement struct {
	Mnemonic string
	Err      error
}

func (err ErrStatement) Error() string {
	return f("%v: %v", err.Mnemonic, err.Err)
}

func (err ErrStatement) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}
