package io

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{
		Input:  strings.NewReader("7 -3\n  42\n"),
		Output: output,
	}

	var port Port = tape

	for _, expected := range []int{7, -3, 42} {
		value, err := port.RequestInteger()
		assert.NoError(err)
		assert.Equal(expected, value)
	}

	_, err := port.RequestInteger()
	assert.ErrorIs(err, ErrTapeEmpty)

	assert.NoError(port.EmitInteger(7))
	assert.NoError(port.EmitInteger(-1000))
	assert.Equal("7\n-1000\n", output.String())
}

func TestTapeValue(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("12 abc 3")}

	value, err := tape.RequestInteger()
	assert.NoError(err)
	assert.Equal(12, value)

	_, err = tape.RequestInteger()
	var bad ErrTapeValue
	assert.True(errors.As(err, &bad))
	assert.Equal(ErrTapeValue("abc"), bad)

	value, err = tape.RequestInteger()
	assert.NoError(err)
	assert.Equal(3, value)
}

func TestTapeRewind(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("1 2")}

	value, err := tape.RequestInteger()
	assert.NoError(err)
	assert.Equal(1, value)

	tape.Input = strings.NewReader("5")
	tape.Rewind()

	value, err = tape.RequestInteger()
	assert.NoError(err)
	assert.Equal(5, value)
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestTapeOutputError(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Output: failWriter{}}
	assert.ErrorIs(tape.EmitInteger(1), errWrite)
}
