package printing

import "strings"

// indentStep is the indentation used per context nesting level.
const indentStep = "  "

// Indent returns the leading whitespace for the given nesting level.
// Negative levels indent like level zero.
func Indent(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(indentStep, level)
}
