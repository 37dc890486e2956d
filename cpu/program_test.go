package cpu

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Address: 0, Line: Line{Mnemonic: MNEMONIC_INP}, Cell: "901"},
			{LineNo: 3, Address: 1, Line: Line{Mnemonic: MNEMONIC_OUT}, Cell: "902"},
			{LineNo: 4, Address: 2, Line: Line{Mnemonic: MNEMONIC_HLT}, Cell: "000"},
		},
	}

	op, ok := prog.Debug(0)
	assert.True(ok)
	assert.Equal(1, op.LineNo)

	op, ok = prog.Debug(1)
	assert.True(ok)
	assert.Equal(3, op.LineNo)

	op, ok = prog.Debug(2)
	assert.True(ok)
	assert.Equal(Cell("000"), op.Cell)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Address: 0, Line: Line{Mnemonic: MNEMONIC_HLT}, Cell: "000"},
		},
	}

	_, ok := prog.Debug(10)
	assert.False(ok)

	_, ok = prog.Debug(-1)
	assert.False(ok)
}

func TestProgram_Cells(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"      INP",
		"",
		"      STA  X",
		"      OUT",
		"      HLT",
		"X     DAT",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	assert.Equal(5, prog.Len())
	assert.Equal([]Cell{"901", "304", "902", "000", "0"}, slices.Collect(prog.Cells()))

	var linenos []int
	for _, op := range prog.Opcodes {
		linenos = append(linenos, op.LineNo)
	}
	assert.Equal([]int{1, 3, 4, 5, 6}, linenos)

	for range prog.Cells() {
		break
	}
}
