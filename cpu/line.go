package cpu

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Line is a parsed line of assembly text: `[label] mnemonic [operand]`.
type Line struct {
	Label    string   // Label, or empty.
	Mnemonic Mnemonic // Instruction keyword.
	Operand  string   // Operand identifier or literal, or empty.
}

func (line Line) String() string {
	return strings.TrimSpace(fmt.Sprintf("%v %v %v", line.Label, line.Mnemonic, line.Operand))
}

// isWord reports whether r may appear in a label: an underscore, or any
// Unicode letter or number.
func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isOperand reports whether text is a (possibly empty) operand.
func isOperand(text string) bool {
	for n := range len(text) {
		c := text[n]
		if !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

// ParseLine parses a single line of assembly text.
//
// Whitespace between the parts is optional, so the label is matched
// greedily: the longest run of word characters that still leaves a
// mnemonic and a valid operand behind becomes the label.
// "XDAT 5" is label X, DAT 5. Trailing whitespace is ignored.
func ParseLine(text string) (line Line, err error) {
	text = strings.TrimRightFunc(text, unicode.IsSpace)

	// Every rune boundary inside the leading run of word characters
	// is a candidate label end.
	ends := []int{0}
	for n := 0; n < len(text); {
		r, size := utf8.DecodeRuneInString(text[n:])
		if !isWord(r) {
			break
		}
		n += size
		ends = append(ends, n)
	}

	for i := len(ends) - 1; i >= 0; i-- {
		label := text[:ends[i]]
		rest := strings.TrimLeftFunc(text[ends[i]:], unicode.IsSpace)
		if len(rest) < 3 {
			continue
		}
		mn, ok := mnemonicMap[rest[:3]]
		if !ok {
			continue
		}
		operand := strings.TrimLeftFunc(rest[3:], unicode.IsSpace)
		if !isOperand(operand) {
			continue
		}

		line = Line{Label: label, Mnemonic: mn, Operand: operand}
		return
	}

	err = ErrUnknownInstruction
	return
}

// isBlank reports whether a source line holds no instruction at all.
func isBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}
