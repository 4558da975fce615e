package stringutils

import "strings"

// LeftJust left-justifies str, padding it on the right with pad until it
// is at least size characters wide.
func LeftJust(str string, pad string, size int) string {
	if len(str) >= size {
		return str
	}
	return str + strings.Repeat(pad, size-len(str))
}
