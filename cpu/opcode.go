package cpu

import (
	"fmt"
)

// Opcode is the 4-bit operation code in the high nibble of a Code.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_LDA = Opcode(0b0000) // LDA
	OP_ADD = Opcode(0b0001) // ADD
	OP_SUB = Opcode(0b0010) // SUB
	OP_OUT = Opcode(0b1110) // OUT
	OP_HLT = Opcode(0b1111) // HLT
)

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = map[string]Opcode{
	"LDA": OP_LDA,
	"ADD": OP_ADD,
	"SUB": OP_SUB,
	"OUT": OP_OUT,
	"HLT": OP_HLT,
}

// HasOperand returns true if the opcode takes an address operand.
func (op Opcode) HasOperand() bool {
	switch op {
	case OP_LDA, OP_ADD, OP_SUB:
		return true
	}
	return false
}

// Valid returns true if the opcode is one of the five defined instructions.
func (op Opcode) Valid() bool {
	switch op {
	case OP_LDA, OP_ADD, OP_SUB, OP_OUT, OP_HLT:
		return true
	}
	return false
}

// Code is a single 8-bit memory word, interpreted as an instruction.
// The high nibble is the opcode, the low nibble the operand.
type Code uint8

// MakeCode creates a code from an opcode and an operand.
func MakeCode(op Opcode, operand uint8) Code {
	return Code((uint8(op) << 4) | (operand & 0xf))
}

// Opcode returns the opcode nibble.
func (code Code) Opcode() Opcode {
	return Opcode((code >> 4) & 0xf)
}

// Operand returns the operand nibble.
func (code Code) Operand() uint8 {
	return uint8(code & 0xf)
}

// Decode decodes the code into an Instruction.
func (code Code) Decode() (inst Instruction, err error) {
	op := code.Opcode()
	if !op.Valid() {
		err = ErrOpcodeDecode
		return
	}

	addr := code.Operand()

	switch op {
	case OP_LDA:
		inst = Load{Address: addr}
	case OP_ADD:
		inst = Add{Address: addr}
	case OP_SUB:
		inst = Sub{Address: addr}
	case OP_OUT:
		inst = Output{}
	case OP_HLT:
		inst = Halt{}
	}

	return
}

// String returns the disassembly of the code.
func (code Code) String() string {
	inst, err := code.Decode()
	if err != nil {
		return fmt.Sprintf("??? 0x%02X", uint8(code))
	}

	return inst.String()
}

// Instruction is one of Load, Add, Sub, Output or Halt.
type Instruction interface {
	Opcode() Opcode
	Encode() Code
	String() string

	instruction()
}

// Load is 'LDA addr': ACC <- RAM[addr]
type Load struct {
	Address uint8
}

// Add is 'ADD addr': B <- RAM[addr], ACC <- ACC + B
type Add struct {
	Address uint8
}

// Sub is 'SUB addr': B <- RAM[addr], ACC <- ACC - B
type Sub struct {
	Address uint8
}

// Output is 'OUT': OUT <- ACC
type Output struct{}

// Halt is 'HLT'.
type Halt struct{}

func (Load) instruction()   {}
func (Add) instruction()    {}
func (Sub) instruction()    {}
func (Output) instruction() {}
func (Halt) instruction()   {}

func (Load) Opcode() Opcode   { return OP_LDA }
func (Add) Opcode() Opcode    { return OP_ADD }
func (Sub) Opcode() Opcode    { return OP_SUB }
func (Output) Opcode() Opcode { return OP_OUT }
func (Halt) Opcode() Opcode   { return OP_HLT }

func (inst Load) Encode() Code { return MakeCode(OP_LDA, inst.Address) }
func (inst Add) Encode() Code  { return MakeCode(OP_ADD, inst.Address) }
func (inst Sub) Encode() Code  { return MakeCode(OP_SUB, inst.Address) }
func (Output) Encode() Code    { return MakeCode(OP_OUT, 0) }
func (Halt) Encode() Code      { return MakeCode(OP_HLT, 0) }

func (inst Load) String() string { return fmt.Sprintf("%v %X", OP_LDA, inst.Address) }
func (inst Add) String() string  { return fmt.Sprintf("%v %X", OP_ADD, inst.Address) }
func (inst Sub) String() string  { return fmt.Sprintf("%v %X", OP_SUB, inst.Address) }
func (Output) String() string    { return OP_OUT.String() }
func (Halt) String() string      { return OP_HLT.String() }
