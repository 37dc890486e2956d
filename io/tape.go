package io

import (
	"bufio"
	"io"
	"strconv"
)

// Tape provides sequential integer I/O over byte streams. Input is
// whitespace separated decimal integers; each output is written as a
// decimal integer on its own line.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
}

// Rewind is not possible on a tape. It only forgets buffered input, so
// that a replaced Input is read from its start.
func (tc *Tape) Rewind() {
	tc.scanner = nil
}

// RequestInteger reads the next integer from the input stream.
func (tc *Tape) RequestInteger() (value int, err error) {
	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.scanner.Split(bufio.ScanWords)
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		if err == nil {
			err = ErrTapeEmpty
		}
		return
	}

	word := tc.scanner.Text()
	value, err = strconv.Atoi(word)
	if err != nil {
		err = ErrTapeValue(word)
	}

	return
}

// EmitInteger writes an integer to the output stream.
func (tc *Tape) EmitInteger(value int) (err error) {
	_, err = io.WriteString(tc.Output, strconv.Itoa(value)+"\n")
	return
}
