package cpu

import (
	"iter"
)

// Opcode is a line of assembled code with its source location.
type Opcode struct {
	LineNo  int  // Source line number, 1-based.
	Address int  // Memory address of the cell.
	Line    Line // Parsed source line.
	Cell    Cell // Encoded cell.
}

// Program is an assembled program, in address order.
type Program struct {
	Opcodes []Opcode
}

// Debug returns the opcode loaded at a memory address, if any.
func (prog *Program) Debug(address int) (op *Opcode, ok bool) {
	if address < 0 || address >= len(prog.Opcodes) {
		return
	}

	op = &prog.Opcodes[address]
	ok = op.Address == address
	return
}

// Cells iterates over the load image of the program.
func (prog *Program) Cells() iter.Seq[Cell] {
	return func(yield func(cell Cell) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Cell) {
				return
			}
		}
	}
}

// Len returns the number of cells in the program.
func (prog *Program) Len() int {
	return len(prog.Opcodes)
}
