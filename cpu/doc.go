// Package cpu implements the machine and assembler for the Little Man Computer.
//
// The machine has 100 memory cells, an accumulator and a program counter.
// Instructions are three decimal digits: an opcode digit followed by a two
// digit address (ADD 1xx, SUB 2xx, STA 3xx, LDA 5xx, BRA 6xx, BRZ 7xx,
// BRP 8xx), or one of the fixed codes INP 901, OUT 902 and HLT 000.
//
// The assembler reads one instruction per non-blank line in the form
// `[label] mnemonic [operand]`. The first pass binds labels and DAT
// variables to addresses, the second pass encodes every line.
package cpu
