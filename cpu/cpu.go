package cpu

import (
	"errors"
	"fmt"
	"log"
)

// Register identifies a component on the bus.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_PC  = Register(0) // PC
	REG_MAR = Register(1) // MAR
	REG_IR  = Register(2) // IR
	REG_ACC = Register(3) // ACC
	REG_B   = Register(4) // B
	REG_OUT = Register(5) // OUT
	REG_RAM = Register(6) // RAM
	REG_ALU = Register(7) // ALU
)

// Status is the outcome of a step.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_RUNNING  = Status(0) // running
	STATUS_HALTED   = Status(1) // halted
	STATUS_PC_RANGE = Status(2) // pc out of range
)

// Transfer is a single T-state movement of a value between components.
type Transfer struct {
	T     int      // T-state, 1 to 6.
	From  Register // Source of the value.
	To    Register // Destination of the value.
	Value uint8    // Value moved.
}

func (tr Transfer) String() string {
	return fmt.Sprintf("T%d: %v -> %v (%02X)", tr.T, tr.From, tr.To, tr.Value)
}

// State is the complete register and memory state of the CPU.
type State struct {
	Pc     uint8 // Program counter, next instruction address.
	Mar    uint8 // Memory address register.
	Ir     uint8 // Instruction register.
	Acc    uint8 // Accumulator.
	B      uint8 // ALU second operand.
	Output uint8 // Output register, drives the indicator lamps.
	Halted bool  // Set by HLT, or by the PC running off the end of RAM.
	Memory Image // RAM.
}

// Runnable returns true if a step may be executed.
func (state *State) Runnable() bool {
	return !state.Halted && state.Pc < MEMORY_SIZE
}

// Step describes an executed instruction cycle.
type Step struct {
	Address     uint8       // Address the instruction was fetched from.
	Code        Code        // Fetched code.
	Instruction Instruction // Decoded instruction.
	Status      Status      // Run status after the step.
	Transfers   []Transfer  // Bus transfers, in T-state order.
	State       State       // State after the step.
}

// Cpu is the simulation context for the SAP-1 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ticks int // Executed instruction cycles since the last load.

	state State
}

// NewCpu creates a new CPU, with registers and memory cleared.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Reset clears all registers and memory.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.state = State{}
	cpu.Ticks = 0
}

// Load clears all registers and installs a memory image.
func (cpu *Cpu) Load(image Image) {
	if cpu.Verbose {
		log.Printf("cpu: load")
	}

	cpu.state = State{Memory: image}
	cpu.Ticks = 0
}

// Snapshot returns a copy of the current state.
func (cpu *Cpu) Snapshot() State {
	return cpu.state
}

// Runnable returns true if Step can execute an instruction.
func (cpu *Cpu) Runnable() bool {
	return cpu.state.Runnable()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	state := &cpu.state

	text += fmt.Sprintf("%6s: %X\n", "pc", state.Pc)
	text += fmt.Sprintf("%6s: %X\n", "mar", state.Mar)
	text += fmt.Sprintf("%6s: %02X (%v)\n", "ir", state.Ir, Code(state.Ir))
	text += fmt.Sprintf("%6s: %02X (%d)\n", "acc", state.Acc, state.Acc)
	text += fmt.Sprintf("%6s: %02X (%d)\n", "b", state.B, state.B)
	text += fmt.Sprintf("%6s: %08b (%d)\n", "out", state.Output, state.Output)
	text += fmt.Sprintf("%6s: %v\n", "halted", state.Halted)
	text += fmt.Sprintf("%6s:", "ram")
	for _, data := range state.Memory {
		text += fmt.Sprintf(" %02X", data)
	}
	text += "\n"

	return
}

// Step executes a single fetch, decode and execute cycle.
//
// A step that is not runnable returns ErrNotRunnable and changes nothing.
// An invalid opcode commits the fetch, halts the CPU, and returns ErrOpcode.
func (cpu *Cpu) Step() (step Step, err error) {
	if cpu.state.Pc >= MEMORY_SIZE {
		err = errors.Join(ErrNotRunnable, ErrPcRange)
		return
	}
	if cpu.state.Halted {
		err = errors.Join(ErrNotRunnable, ErrHalted)
		return
	}

	next := cpu.state
	var transfers []Transfer
	move := func(t int, from, to Register, value uint8) uint8 {
		transfers = append(transfers, Transfer{T: t, From: from, To: to, Value: value})
		return value
	}

	// Fetch
	next.Mar = move(1, REG_PC, REG_MAR, next.Pc)
	next.Pc = move(2, REG_PC, REG_PC, next.Pc+1)
	next.Ir = move(3, REG_RAM, REG_IR, next.Memory[next.Mar])

	code := Code(next.Ir)
	step.Address = next.Mar
	step.Code = code

	if cpu.Verbose {
		log.Printf("%X: %v", step.Address, code)
	}

	// Decode
	inst, err := code.Decode()
	if err != nil {
		next.Halted = true
		cpu.state = next
		cpu.Ticks++
		step.Status = STATUS_HALTED
		step.Transfers = transfers
		step.State = next
		err = ErrOpcode{Address: step.Address, Code: code}
		if cpu.Verbose {
			log.Printf("cpu: %v", err)
		}
		return
	}

	// Execute
	switch inst := inst.(type) {
	case Load:
		next.Mar = move(4, REG_IR, REG_MAR, inst.Address)
		next.Acc = move(5, REG_RAM, REG_ACC, next.Memory[next.Mar])
	case Add:
		next.Mar = move(4, REG_IR, REG_MAR, inst.Address)
		next.B = move(5, REG_RAM, REG_B, next.Memory[next.Mar])
		next.Acc = move(6, REG_ALU, REG_ACC, next.Acc+next.B)
	case Sub:
		next.Mar = move(4, REG_IR, REG_MAR, inst.Address)
		next.B = move(5, REG_RAM, REG_B, next.Memory[next.Mar])
		next.Acc = move(6, REG_ALU, REG_ACC, next.Acc-next.B)
	case Output:
		next.Output = move(4, REG_ACC, REG_OUT, next.Acc)
	case Halt:
		next.Halted = true
	}

	step.Status = STATUS_RUNNING
	switch {
	case next.Halted:
		step.Status = STATUS_HALTED
	case next.Pc >= MEMORY_SIZE:
		next.Halted = true
		step.Status = STATUS_PC_RANGE
	}

	if cpu.Verbose && step.Status != STATUS_RUNNING {
		log.Printf("cpu: %v", step.Status)
	}

	cpu.state = next
	cpu.Ticks++

	step.Instruction = inst
	step.Transfers = transfers
	step.State = next

	return
}
