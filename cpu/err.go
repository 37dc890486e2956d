package cpu

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrUnlabeledData      = errors.New(f("DAT without label"))
	ErrUnknownInstruction = errors.New(f("unknown instruction"))
	ErrUnknownVariable    = errors.New(f("unknown variable"))
	ErrUnknownLocation    = errors.New(f("unknown location"))
	ErrProgramSize        = errors.New(f("program exceeds memory"))
	ErrPredefineSyntax    = errors.New(f("predefine syntax"))

	// Cpu errors
	ErrCellLength   = errors.New(f("not an instruction"))
	ErrCellValue    = errors.New(f("cell is not a number"))
	ErrAddressRange = errors.New(f("address out of range"))
	ErrOverflow     = errors.New(f("accumulator overflow"))
	ErrPortMissing  = errors.New(f("no I/O port attached"))
)

// ErrSyntax locates an assembly error. Address is the 0-based index of
// the line among the non-blank program lines, LineNo the 1-based line
// in the source text.
type ErrSyntax struct {
	Address int
	LineNo  int
	Line    string
	Err     error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrCell locates an execution error at a memory address.
type ErrCell struct {
	Address int
	Cell    Cell
	Err     error
}

func (err *ErrCell) Error() string {
	return f("memory location %d '%v' %v", err.Address, string(err.Cell), err.Err)
}

func (err *ErrCell) Unwrap() error {
	return err.Err
}

type ErrPredefineExpression string

func (err ErrPredefineExpression) Error() string {
	return f("'%v' is not an integer expression", string(err))
}
