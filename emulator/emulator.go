// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs assembled programs on the Little Man Computer.
package emulator

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/io"
)

// Emulator state. CPU + program listing + I/O port.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.
}

// NewEmulator creates a new emulator attached to an I/O port.
func NewEmulator(port io.Port) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(port),
		Program: &cpu.Program{},
	}

	return
}

// Reset clears the machine, loads the program and makes it ready to run
// from address 0.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	err = emu.Cpu.Load(slices.Collect(emu.Program.Cells()))
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Debug("emulator: reset", "cells", emu.Program.Len())
	}

	emu.Cpu.Start()

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the source line number of the cell at the program
// counter, or 0 if the cell is not part of the program.
func (emu *Emulator) LineNo() int {
	op, ok := emu.Program.Debug(emu.Cpu.Pc())
	if !ok {
		return 0
	}

	return op.LineNo
}

// Tick performs a single tick of the emulator. done is set once the
// machine has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Halted() {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted()
	return
}

// Run ticks until the machine halts. A positive limit bounds the number
// of instructions executed.
func (emu *Emulator) Run(limit int) (err error) {
	for steps := 0; ; steps++ {
		if limit > 0 && steps >= limit {
			err = &ErrRuntime{LineNo: emu.LineNo(), Err: ErrStepLimit}
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
