package codec

import (
	"strconv"
	"strings"

	"github.com/HiroakiMikami/deep-coder/internal/interp"
)

// ParseValue parses the textual form produced by interp.Value.String:
// decimal integers, "[x,y,z]" lists (possibly nested), and "NULL".
func ParseValue(text string) (interp.Value, bool) {
	text = strings.TrimSpace(text)
	if text == "NULL" {
		return interp.NullValue, true
	}
	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		inner := text[1 : len(text)-1]
		if strings.TrimSpace(inner) == "" {
			return interp.List(nil), true
		}
		parts := splitTopLevel(inner)
		elems := make([]interp.Value, len(parts))
		for i, part := range parts {
			v, ok := ParseValue(part)
			if !ok {
				return interp.Value{}, false
			}
			elems[i] = v
		}
		return interp.List(elems), true
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return interp.Value{}, false
	}
	return interp.Int(n), true
}

// splitTopLevel splits a comma list while respecting nested brackets, so
// "[1,2],[3]" splits into "[1,2]" and "[3]" rather than four pieces.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
