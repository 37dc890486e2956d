package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lmc/io"
)

func FuzzDecode(f *testing.F) {
	for _, seed := range []string{"000", "105", "901", "902", "499", "1000", "x", ""} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		assert := assert.New(t)

		cell := Cell(text)
		code, err := Decode(cell)
		if err != nil {
			assert.True(errors.Is(err, ErrCellLength) || errors.Is(err, ErrUnknownInstruction), text)
			return
		}

		// Every decodable cell encodes back to itself.
		assert.Equal(cell, code.Cell())
		assert.True(code.Address >= 0 && code.Address < MEMORY_SIZE)
	})
}

func FuzzCpu(f *testing.F) {
	f.Add("901", "105", 3, 4)
	f.Add("502", "802", -1, 0)
	f.Add("612", "000", 0, 0)

	f.Fuzz(func(t *testing.T, first string, second string, input int, data int) {
		assert := assert.New(t)

		port := &io.Queue{Input: []int{input}}
		cpu := NewCpu(port)
		assert.NoError(cpu.Load([]Cell{Cell(first), Cell(second), "000", CellOf(data)}))
		cpu.Start()

		for range 4 {
			if cpu.Halted() {
				break
			}
			err := cpu.Tick()
			if err != nil {
				var ce *ErrCell
				assert.True(errors.As(err, &ce))
				return
			}
			assert.True(cpu.Pc() >= 0 && cpu.Pc() < MEMORY_SIZE)
		}
	})
}
