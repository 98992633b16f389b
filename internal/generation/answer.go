package generation

import (
	"strconv"
	"strings"
)

// Check reports whether text, parsed as a number, equals the puzzle's
// answer exactly. Surrounding whitespace is ignored.
func (p *Puzzle) Check(text string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	return err == nil && v == p.Answer
}

// FormatAnswer renders an answer the way it is displayed and typed.
func FormatAnswer(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}
