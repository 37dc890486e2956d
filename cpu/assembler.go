// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strconv"

	"github.com/charmbracelet/log"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system values, visible to predefine expressions.
var sysPredefine = map[string]int{
	"MEMORY_SIZE": MEMORY_SIZE,
	"CELL_MAX":    CELL_MAX,
}

// reName is the form of a predefine name: a valid DAT operand that is
// not a number.
var reName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)

// Predefine is a named compile-time expression.
type Predefine struct {
	Name string
	Expr string
}

// Assembler is a two pass assembler for the Little Man Computer.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Symbols *SymbolTable // Symbols of the last assembled program.

	predefine []Predefine
}

// Predefine defines a named expression. A DAT whose operand is the name
// is initialised with the value of the expression.
func (asm *Assembler) Predefine(name string, expr string) (err error) {
	if !reName.MatchString(name) {
		err = ErrPredefineSyntax
		return
	}

	n := slices.IndexFunc(asm.predefine, func(p Predefine) bool { return p.Name == name })
	if n >= 0 {
		asm.predefine[n].Expr = expr
		return
	}

	asm.predefine = append(asm.predefine, Predefine{Name: name, Expr: expr})
	return
}

// evalPredefines evaluates the predefines in definition order. Each
// expression may refer to the system values and to earlier predefines.
func (asm *Assembler) evalPredefines() (values map[string]string, err error) {
	values = make(map[string]string, len(asm.predefine))

	pred := starlark.StringDict{}
	for key, value := range sysPredefine {
		pred[key] = starlark.MakeInt(value)
	}

	for _, def := range asm.predefine {
		var value int64
		value, err = evalInt(def.Expr, pred)
		if err != nil {
			err = fmt.Errorf("%v: %w", def.Name, err)
			return
		}
		pred[def.Name] = starlark.MakeInt64(value)
		values[def.Name] = strconv.FormatInt(value, 10)
	}

	return
}

// evalInt evaluates a starlark integer expression.
func evalInt(expr string, pred starlark.StringDict) (value int64, err error) {
	thread := starlark.Thread{Name: "predefine"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, maps.Clone(pred))
	if err != nil {
		err = ErrPredefineExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrPredefineExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrPredefineExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrPredefineExpression(expr)
		return
	}
	return
}

// Encode encodes a single line of assembly text at an address, using
// the symbol table of its program.
func Encode(text string, address int, symbols *SymbolTable) (cell Cell, err error) {
	defer func() {
		if err != nil {
			err = &ErrSyntax{Address: address, LineNo: address + 1, Line: text, Err: err}
		}
	}()

	line, err := ParseLine(text)
	if err != nil {
		return
	}

	mn := line.Mnemonic
	var target int
	var ok bool
	switch {
	case mn == MNEMONIC_DAT:
		v, found := symbols.Variables[line.Label]
		if !found {
			err = ErrUnlabeledData
			return
		}
		cell = Cell(v.Value)
		return
	case mn.Memory():
		target, ok = symbols.Variable(line.Operand)
		if !ok {
			err = ErrUnknownVariable
			return
		}
	case mn.Branch():
		target, ok = symbols.Label(line.Operand)
		if !ok {
			err = ErrUnknownLocation
			return
		}
	}

	code, err := MakeCode(mn, target)
	if err != nil {
		return
	}

	cell = code.Cell()
	return
}

// Assemble translates program lines into memory cells. Blank lines are
// skipped and take no address.
func (asm *Assembler) Assemble(lines []string) (cells []Cell, err error) {
	var text []string
	for _, line := range lines {
		if !isBlank(line) {
			text = append(text, line)
		}
	}

	prog, err := asm.assemble(text, nil)
	if err != nil {
		return
	}

	cells = slices.Collect(prog.Cells())
	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var text []string
	var linenos []int
	var lineno int
	for scanner.Scan() {
		lineno += 1
		line := scanner.Text()
		if isBlank(line) {
			continue
		}
		text = append(text, line)
		linenos = append(linenos, lineno)
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	return asm.assemble(text, linenos)
}

// assemble runs both passes over the non-blank program lines. linenos,
// if given, are the source line numbers of each line.
func (asm *Assembler) assemble(text []string, linenos []int) (prog *Program, err error) {
	asm.Symbols = nil

	defer func() {
		var se *ErrSyntax
		if err != nil && linenos != nil && errors.As(err, &se) && se.Address < len(linenos) {
			se.LineNo = linenos[se.Address]
		}
	}()

	if len(text) > MEMORY_SIZE {
		err = &ErrSyntax{Address: MEMORY_SIZE, LineNo: MEMORY_SIZE + 1, Line: text[MEMORY_SIZE], Err: ErrProgramSize}
		return
	}

	values, err := asm.evalPredefines()
	if err != nil {
		return
	}

	resolve := func(operand string) (value string, ok bool) {
		value, ok = values[operand]
		return
	}

	// Pass one: bind every label and variable to its address.
	symbols, err := buildSymbols(text, resolve)
	if err != nil {
		return
	}

	// Pass two: encode.
	prog = &Program{}
	for address, line := range text {
		lineno := address + 1
		if linenos != nil {
			lineno = linenos[address]
		}

		var cell Cell
		cell, err = Encode(line, address, symbols)
		if err != nil {
			prog = nil
			return
		}

		if asm.Verbose {
			log.Debug("asm", "line", lineno, "address", address, "cell", cell, "text", line)
		}

		parsed, _ := ParseLine(line)
		prog.Opcodes = append(prog.Opcodes, Opcode{
			LineNo:  lineno,
			Address: address,
			Line:    parsed,
			Cell:    cell,
		})
	}

	asm.Symbols = symbols

	return
}
