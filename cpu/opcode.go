package cpu

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	MEMORY_SIZE = 100 // Number of memory cells.
	CELL_MAX    = 999 // Largest value an instruction cell can encode.
)

// Mnemonic is one of the instruction keywords of the assembly language.
type Mnemonic int

const (
	MNEMONIC_NONE = Mnemonic(iota) // no mnemonic
	MNEMONIC_INP                   // INP
	MNEMONIC_OUT                   // OUT
	MNEMONIC_LDA                   // LDA
	MNEMONIC_STA                   // STA
	MNEMONIC_ADD                   // ADD
	MNEMONIC_SUB                   // SUB
	MNEMONIC_BRP                   // BRP
	MNEMONIC_BRZ                   // BRZ
	MNEMONIC_BRA                   // BRA
	MNEMONIC_HLT                   // HLT
	MNEMONIC_DAT                   // DAT
)

var mnemonicName = [...]string{
	MNEMONIC_NONE: "",
	MNEMONIC_INP:  "INP",
	MNEMONIC_OUT:  "OUT",
	MNEMONIC_LDA:  "LDA",
	MNEMONIC_STA:  "STA",
	MNEMONIC_ADD:  "ADD",
	MNEMONIC_SUB:  "SUB",
	MNEMONIC_BRP:  "BRP",
	MNEMONIC_BRZ:  "BRZ",
	MNEMONIC_BRA:  "BRA",
	MNEMONIC_HLT:  "HLT",
	MNEMONIC_DAT:  "DAT",
}

// mnemonicMap maps the keyword text to its Mnemonic.
var mnemonicMap = map[string]Mnemonic{
	"INP": MNEMONIC_INP,
	"OUT": MNEMONIC_OUT,
	"LDA": MNEMONIC_LDA,
	"STA": MNEMONIC_STA,
	"ADD": MNEMONIC_ADD,
	"SUB": MNEMONIC_SUB,
	"BRP": MNEMONIC_BRP,
	"BRZ": MNEMONIC_BRZ,
	"BRA": MNEMONIC_BRA,
	"HLT": MNEMONIC_HLT,
	"DAT": MNEMONIC_DAT,
}

func (mn Mnemonic) String() string {
	if mn < 0 || int(mn) >= len(mnemonicName) {
		return fmt.Sprintf("Mnemonic(%d)", int(mn))
	}
	return mnemonicName[mn]
}

// Memory reports whether the instruction addresses a DAT variable.
func (mn Mnemonic) Memory() bool {
	switch mn {
	case MNEMONIC_ADD, MNEMONIC_SUB, MNEMONIC_STA, MNEMONIC_LDA:
		return true
	}
	return false
}

// Branch reports whether the instruction addresses a label.
func (mn Mnemonic) Branch() bool {
	switch mn {
	case MNEMONIC_BRA, MNEMONIC_BRZ, MNEMONIC_BRP:
		return true
	}
	return false
}

// opcodeDigit is the leading cell digit of the addressed instructions.
var opcodeDigit = map[Mnemonic]byte{
	MNEMONIC_ADD: '1',
	MNEMONIC_SUB: '2',
	MNEMONIC_STA: '3',
	MNEMONIC_LDA: '5',
	MNEMONIC_BRA: '6',
	MNEMONIC_BRZ: '7',
	MNEMONIC_BRP: '8',
}

// fixedCell holds the instructions without an operand.
var fixedCell = map[Mnemonic]Cell{
	MNEMONIC_INP: "901",
	MNEMONIC_OUT: "902",
	MNEMONIC_HLT: "000",
}

// Cell is the content of a single memory location. Instructions are
// always three decimal digits, data cells hold a decimal literal.
type Cell string

// Value returns the signed decimal value of the cell. A number outside
// the int range is ErrOverflow.
func (cell Cell) Value() (value int, err error) {
	value, err = strconv.Atoi(string(cell))
	if errors.Is(err, strconv.ErrRange) {
		err = ErrOverflow
	} else if err != nil {
		err = ErrCellValue
	}
	return
}

// CellOf returns the stored form of an accumulator value.
func CellOf(value int) Cell {
	return Cell(strconv.Itoa(value))
}

// Code is a decoded instruction.
type Code struct {
	Mnemonic Mnemonic
	Address  int // Operand address, for addressed instructions.
}

// MakeCode creates an instruction, validating the operand address.
func MakeCode(mn Mnemonic, address int) (code Code, err error) {
	_, addressed := opcodeDigit[mn]
	_, fixed := fixedCell[mn]
	switch {
	case addressed:
		if address < 0 || address >= MEMORY_SIZE {
			err = ErrAddressRange
			return
		}
	case fixed:
		address = 0
	default:
		err = ErrUnknownInstruction
		return
	}

	code = Code{Mnemonic: mn, Address: address}
	return
}

// Cell returns the encoded form of the instruction.
func (code Code) Cell() Cell {
	cell, ok := fixedCell[code.Mnemonic]
	if ok {
		return cell
	}

	return Cell(fmt.Sprintf("%c%02d", opcodeDigit[code.Mnemonic], code.Address))
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	if _, ok := opcodeDigit[code.Mnemonic]; ok {
		return fmt.Sprintf("%v %02d", code.Mnemonic, code.Address)
	}
	return code.Mnemonic.String()
}

// Decode decodes a memory cell as an instruction.
func Decode(cell Cell) (code Code, err error) {
	if len(cell) != 3 {
		err = ErrCellLength
		return
	}

	for n := range len(cell) {
		if cell[n] < '0' || cell[n] > '9' {
			err = ErrUnknownInstruction
			return
		}
	}

	switch cell {
	case "901":
		code = Code{Mnemonic: MNEMONIC_INP}
		return
	case "902":
		code = Code{Mnemonic: MNEMONIC_OUT}
		return
	case "000":
		code = Code{Mnemonic: MNEMONIC_HLT}
		return
	}

	address := int(cell[1]-'0')*10 + int(cell[2]-'0')
	for mn, digit := range opcodeDigit {
		if digit == cell[0] {
			code = Code{Mnemonic: mn, Address: address}
			return
		}
	}

	// Family 4, and the 0 and 9 families outside of 000, 901 and 902.
	err = ErrUnknownInstruction
	return
}
