package cpu

import (
	"iter"
	"maps"

	"github.com/ezrec/lmc/internal"
)

// Variable is a DAT binding: the literal initial value and its address.
type Variable struct {
	Value   string
	Address int
}

// SymbolTable holds the symbols of one program. Labels name branch
// targets; Variables name DAT cells. A DAT label appears only in
// Variables.
type SymbolTable struct {
	Labels    map[string]int
	Variables map[string]Variable
}

// BuildSymbols collects the labels and DAT variables of a program, where
// the line index is the memory address. Lines that do not parse are
// left for the encoder to reject.
func BuildSymbols(lines []string) (symbols *SymbolTable, err error) {
	return buildSymbols(lines, nil)
}

// buildSymbols is BuildSymbols with an optional DAT operand
// substitution.
func buildSymbols(lines []string, resolve func(operand string) (string, bool)) (symbols *SymbolTable, err error) {
	symbols = &SymbolTable{
		Labels:    make(map[string]int, 16),
		Variables: make(map[string]Variable, 16),
	}

	for address, text := range lines {
		line, perr := ParseLine(text)
		if perr != nil {
			continue
		}

		switch {
		case line.Mnemonic == MNEMONIC_DAT:
			if len(line.Label) == 0 {
				symbols = nil
				err = &ErrSyntax{Address: address, LineNo: address + 1, Line: text, Err: ErrUnlabeledData}
				return
			}
			value := line.Operand
			if len(value) == 0 {
				value = "0"
			} else if resolve != nil {
				if resolved, ok := resolve(value); ok {
					value = resolved
				}
			}
			symbols.Variables[line.Label] = Variable{Value: value, Address: address}
		case len(line.Label) != 0:
			symbols.Labels[line.Label] = address
		}
	}

	return
}

// Variable returns the address of a DAT variable.
func (st *SymbolTable) Variable(name string) (address int, ok bool) {
	v, ok := st.Variables[name]
	if ok {
		address = v.Address
	}
	return
}

// Label returns the address of a branch label.
func (st *SymbolTable) Label(name string) (address int, ok bool) {
	address, ok = st.Labels[name]
	return
}

// All iterates over every symbol and its address; labels first, then
// variables.
func (st *SymbolTable) All() iter.Seq2[string, int] {
	var variables iter.Seq2[string, int] = func(yield func(name string, address int) bool) {
		for name, v := range st.Variables {
			if !yield(name, v.Address) {
				return
			}
		}
	}

	return internal.IterSeq2Concat(maps.All(st.Labels), variables)
}
