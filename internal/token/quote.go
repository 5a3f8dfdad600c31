package token

import "fmt"

// quoteString re-encodes decoded bytes into a quoted spec literal,
// escaping the matching quote character, backslashes, and the common
// control-character shorthands, and falling back to \xNN for anything
// else outside printable ASCII (spec.md §4.1, "Escape decoding").
func quoteString(decoded []byte, quote byte) string {
	out := make([]byte, 0, len(decoded)+2)
	out = append(out, quote)
	for _, b := range decoded {
		switch b {
		case quote:
			out = append(out, '\\', quote)
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		default:
			if b < 0x20 || b >= 0x7f {
				out = append(out, []byte(fmt.Sprintf("\\x%02x", b))...)
			} else {
				out = append(out, b)
			}
		}
	}
	out = append(out, quote)
	return string(out)
}
