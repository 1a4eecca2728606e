// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/ezrec/sap1/cpu"
	"github.com/ezrec/sap1/emulator"
	"github.com/ezrec/sap1/expr"
	"github.com/ezrec/sap1/io"
)

func main() {
	os.Exit(run())
}

// run executes the command, returning the process exit code.
func run() int {
	var compile string
	var expression string
	var example bool
	var save bool
	var list bool
	var trace bool
	var output string
	var hz float64
	var limit int
	var verbose bool

	flag.StringVar(&compile, "c", "", ".sap file to assemble ('-' for stdin)")
	flag.StringVar(&expression, "e", "", "Expression to compile, such as '5+3-2'")
	flag.BoolVar(&example, "x", false, "Use the built-in 5+3 example program")
	flag.BoolVar(&save, "s", false, "Assemble only, do not execute")
	flag.BoolVar(&list, "l", false, "Print the memory listing")
	flag.BoolVar(&trace, "t", false, "Trace bus transfers")
	flag.StringVar(&output, "o", "", "Tape output ('-' for stdout)")
	flag.Float64Var(&hz, "hz", 0, "Clock speed in steps per second (0 is unpaced)")
	flag.IntVar(&limit, "n", 0, "Maximum steps to execute (0 is unlimited)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	sources := 0
	for _, given := range []bool{len(compile) != 0, len(expression) != 0, example} {
		if given {
			sources++
		}
	}
	if sources != 1 {
		log.Fatalf("%v: exactly one of -c, -e or -x is required", os.Args[0])
	}

	// Tape output on stdout moves the console to stderr.
	console := os.Stdout
	if output == "-" {
		console = os.Stderr
	}

	var prog *cpu.Program
	var err error

	// Assemble a new memory image.
	switch {
	case len(compile) != 0:
		inf := os.Stdin
		if compile != "-" {
			inf, err = os.Open(compile)
			if err != nil {
				log.Fatalf("%v: %v", compile, err)
			}
			defer inf.Close()
		}

		asm := &cpu.Assembler{Verbose: verbose}
		prog, err = asm.Parse(inf)
		if err != nil {
			log.Printf("%v: %v", compile, err)
			return 1
		}
	case example:
		if list {
			fmt.Fprint(console, cpu.EXAMPLE)
		}
		prog, err = cpu.Assemble(cpu.EXAMPLE)
		if err != nil {
			log.Printf("example: %v", err)
			return 1
		}
	default:
		var source string
		source, err = expr.Compile(expression)
		if err != nil {
			log.Print(err)
			return 1
		}
		if list {
			fmt.Fprint(console, source)
		}
		prog, err = cpu.Assemble(source)
		if err != nil {
			log.Printf("%v: %v", expression, err)
			return 1
		}
	}

	if list {
		writeListing(console, prog)
	}

	if save {
		return 0
	}

	lights := &io.Lights{}
	if term.IsTerminal(int(console.Fd())) {
		lights.Glyphs = [2]rune{'○', '●'}
	}

	channels := io.Splitter{lights}
	if len(output) != 0 {
		tape := &io.Tape{Output: os.Stdout}
		if output != "-" {
			ouf, err := os.Create(output)
			if err != nil {
				log.Printf("%v: %v", output, err)
				return 1
			}
			defer ouf.Close()
			tape.Output = ouf
		}
		channels = append(channels, tape)
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.Output = channels
	emu.ClockSpeed = hz
	emu.Limit = limit
	emu.Monitor = func(step cpu.Step) {
		if trace {
			fmt.Fprintf(console, "%X: %v\n", step.Address, step.Code)
			for _, tr := range step.Transfers {
				fmt.Fprintf(console, "    %v\n", tr)
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	emu.Reset()
	err = emu.Run(ctx)
	if err != nil {
		log.Print(err)
		if !trace {
			for _, step := range emu.History.Steps {
				fmt.Fprintf(console, "%X: %v (%v)\n", step.Address, step.Code, step.Status)
			}
		}
	}

	for value := range io.ReceiveAsUint8(lights) {
		fmt.Fprintf(console, "%v (%d)\n", lights, value)
	}
	if verbose {
		fmt.Fprint(console, emu.Cpu)
	}

	if step, ok := emu.History.Peek(); ok && !emu.Cpu.Runnable() {
		fmt.Fprintf(console, "%v after %d steps\n", step.Status, emu.Cpu.Ticks)
	}

	if err != nil {
		return 1
	}

	return 0
}
