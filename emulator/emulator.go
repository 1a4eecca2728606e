// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives a SAP-1 CPU through an assembled program,
// delivering the output register to an output channel.
package emulator

import (
	"context"
	"log"
	"time"

	"github.com/ezrec/sap1/cpu"
	"github.com/ezrec/sap1/io"
)

// Emulator state. CPU + program + output channel.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Output  io.Channel // Receives the output register after each OUT, if set.
	History History    // Most recent steps.

	ClockSpeed float64        // Steps per second for Run, 0 runs unpaced.
	Limit      int            // Maximum steps for Run, 0 is unlimited.
	Monitor    func(cpu.Step) // Called after every step, if set.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Reset loads the program image, and clears the history and output.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Load(emu.Program.Image)
	emu.History.Reset()

	if emu.Output != nil {
		emu.Output.Rewind()
	}
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() uint8 {
	return emu.Cpu.Snapshot().Pc
}

// LineNo returns the source line of the instruction at the program counter,
// or 0 if no statement wrote that address.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Pc())
	if dbg.Statement == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single step of the emulator. done is set once the CPU
// can no longer run.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if !emu.Cpu.Runnable() {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	step, err := emu.Cpu.Step()
	emu.History.Push(step)
	if emu.Monitor != nil {
		emu.Monitor(step)
	}
	done = step.State.Halted
	if err != nil {
		return
	}

	if _, ok := step.Instruction.(cpu.Output); ok && emu.Output != nil {
		err = io.SendAsUint8(emu.Output, step.State.Output)
		if err != nil {
			return
		}
	}

	if done && emu.Verbose {
		log.Printf("emulator: %v after %d steps", step.Status, emu.Cpu.Ticks)
	}

	return
}

// Run steps the emulator until the CPU halts, an error occurs, the step
// limit is reached, or the context is cancelled.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	var tick <-chan time.Time
	if emu.ClockSpeed > 0 {
		period := time.Duration(float64(time.Second) / emu.ClockSpeed)
		if period > 0 {
			ticker := time.NewTicker(period)
			defer ticker.Stop()
			tick = ticker.C
		}
	}

	for steps := 0; ; steps++ {
		if emu.Limit > 0 && steps >= emu.Limit {
			err = ErrStepLimit
			return
		}

		err = ctx.Err()
		if err != nil {
			return
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				err = ctx.Err()
				return
			case <-tick:
			}
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
