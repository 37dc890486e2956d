package cpu

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ezrec/lmc/io"
)

// Port is the I/O collaborator for INP and OUT.
type Port io.Port

// State is the machine state of the Little Man Computer.
//
// The accumulator is a signed int: ADD, SUB and INP never wrap it to three
// digits, and a result outside the int range fails with ErrOverflow
// instead of wrapping. Only its sign (BRP) and zero-ness (BRZ) steer
// execution, and STA stores its full decimal form.
type State struct {
	Memory      [MEMORY_SIZE]Cell // Memory cells.
	Accumulator int               // Accumulator.
	Pc          int               // Program counter.
	Halted      bool              // Set when not running.
}

// Cpu is the execution engine. It is the only mutator of its State.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Port Port // Source of INP values and sink of OUT values.

	Ticks int // Instructions executed since reset.

	state State
}

// NewCpu creates a halted CPU with cleared memory, attached to a port.
func NewCpu(port Port) (cpu *Cpu) {
	cpu = &Cpu{
		Port: port,
	}

	cpu.Reset()

	return
}

// Reset clears memory, accumulator and program counter, and halts.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Debug("cpu: reset")
	}

	for n := range cpu.state.Memory {
		cpu.state.Memory[n] = "0"
	}
	cpu.state.Accumulator = 0
	cpu.state.Pc = 0
	cpu.state.Halted = true
	cpu.Ticks = 0
}

// Load writes cells to memory from address 0. Memory past the loaded
// cells, the accumulator and the program counter are unchanged.
func (cpu *Cpu) Load(cells []Cell) (err error) {
	if len(cells) > MEMORY_SIZE {
		err = ErrProgramSize
		return
	}

	copy(cpu.state.Memory[:], cells)
	return
}

// State returns a copy of the machine state.
func (cpu *Cpu) State() State {
	return cpu.state
}

// Pc returns the program counter.
func (cpu *Cpu) Pc() int {
	return cpu.state.Pc
}

// Accumulator returns the accumulator.
func (cpu *Cpu) Accumulator() int {
	return cpu.state.Accumulator
}

// Halted reports whether the CPU is halted.
func (cpu *Cpu) Halted() bool {
	return cpu.state.Halted
}

// Start leaves the halted state, continuing from the program counter.
func (cpu *Cpu) Start() {
	cpu.state.Halted = false
}

// Run starts the CPU and executes until HLT or an error.
func (cpu *Cpu) Run() (err error) {
	cpu.Start()

	for !cpu.state.Halted {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	halted := "false"
	if cpu.state.Halted {
		halted = "true"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%5s: %v\n", "acc", cpu.state.Accumulator)
	fmt.Fprintf(&sb, "%5s: %02d\n", "pc", cpu.state.Pc)
	fmt.Fprintf(&sb, "%5s: %v\n", "halt", halted)
	for row := 0; row < MEMORY_SIZE; row += 10 {
		fmt.Fprintf(&sb, "%5s:", fmt.Sprintf("%02d", row))
		for _, cell := range cpu.state.Memory[row : row+10] {
			fmt.Fprintf(&sb, " %4s", string(cell))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Tick fetches, decodes and executes the instruction at the program
// counter.
func (cpu *Cpu) Tick() (err error) {
	pc := cpu.state.Pc

	var cell Cell
	defer func() {
		if err != nil {
			err = &ErrCell{Address: pc, Cell: cell, Err: err}
		}
	}()

	if pc < 0 || pc >= MEMORY_SIZE {
		err = ErrAddressRange
		return
	}

	cell = cpu.state.Memory[pc]
	code, err := Decode(cell)
	if err != nil {
		return
	}

	err = cpu.Execute(code)
	return
}

// valueAt returns the value of the cell at an address.
func (cpu *Cpu) valueAt(address int) (value int, err error) {
	if address < 0 || address >= MEMORY_SIZE {
		err = ErrAddressRange
		return
	}

	return cpu.state.Memory[address].Value()
}

// Execute executes a single decoded instruction. The program counter
// advances before a branch replaces it.
func (cpu *Cpu) Execute(code Code) (err error) {
	if cpu.Verbose {
		log.Debug("exec", "pc", cpu.state.Pc, "code", code, "acc", cpu.state.Accumulator)
	}

	next_pc := cpu.state.Pc + 1
	acc := cpu.state.Accumulator

	switch code.Mnemonic {
	case MNEMONIC_ADD:
		var value int
		value, err = cpu.valueAt(code.Address)
		if err != nil {
			return
		}
		if (value > 0 && acc > math.MaxInt-value) || (value < 0 && acc < math.MinInt-value) {
			err = ErrOverflow
			return
		}
		acc += value
	case MNEMONIC_SUB:
		var value int
		value, err = cpu.valueAt(code.Address)
		if err != nil {
			return
		}
		if (value < 0 && acc > math.MaxInt+value) || (value > 0 && acc < math.MinInt+value) {
			err = ErrOverflow
			return
		}
		acc -= value
	case MNEMONIC_STA:
		if code.Address < 0 || code.Address >= MEMORY_SIZE {
			err = ErrAddressRange
			return
		}
		cpu.state.Memory[code.Address] = CellOf(acc)
	case MNEMONIC_LDA:
		acc, err = cpu.valueAt(code.Address)
		if err != nil {
			return
		}
	case MNEMONIC_BRA:
		next_pc = code.Address
	case MNEMONIC_BRZ:
		if acc == 0 {
			next_pc = code.Address
		}
	case MNEMONIC_BRP:
		if acc >= 0 {
			next_pc = code.Address
		}
	case MNEMONIC_INP:
		if cpu.Port == nil {
			err = ErrPortMissing
			return
		}
		acc, err = cpu.Port.RequestInteger()
		if err != nil {
			return
		}
	case MNEMONIC_OUT:
		if cpu.Port == nil {
			err = ErrPortMissing
			return
		}
		err = cpu.Port.EmitInteger(acc)
		if err != nil {
			return
		}
	case MNEMONIC_HLT:
		cpu.state.Halted = true
		next_pc = 0
	default:
		err = ErrUnknownInstruction
		return
	}

	cpu.state.Accumulator = acc
	cpu.state.Pc = next_pc
	cpu.Ticks += 1

	return
}
