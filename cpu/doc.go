// Package cpu implements the microprocessor and assembler for the SAP-1 system.
//
// The CPU is a single accumulator machine with a 4-bit program counter (PC),
// a memory address register (MAR), an 8-bit instruction register (IR), the
// accumulator (ACC), a B register feeding the ALU, and an output register
// driving eight indicator lamps. RAM is 16 bytes.
//
// The assembler translates LDA, ADD, SUB, OUT and HLT instructions, and the
// ORG and DB data directives, into a 16 byte memory image.
package cpu
