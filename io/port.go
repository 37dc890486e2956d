// Package io provides the I/O collaborators of the Little Man Computer.
// The machine asks a Port for an integer on INP and hands it the
// accumulator on OUT; how the values are read or shown is up to the
// Port.
package io

// Port defines the interface for the INP and OUT instructions.
type Port interface {
	// RequestInteger supplies the next input value.
	RequestInteger() (int, error)
	// EmitInteger accepts an output value.
	EmitInteger(value int) error
}
