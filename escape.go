package blocksite

import (
	"fmt"

	"github.com/a-h/templ"
)

// Escape converts v to text and escapes the HTML-significant characters
// & < > " and '. A nil value yields the empty string.
func Escape(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return EscapeString(s)
	case Text:
		return EscapeString(string(s))
	case fmt.Stringer:
		return EscapeString(s.String())
	default:
		return EscapeString(fmt.Sprint(s))
	}
}

// EscapeString escapes s for use in HTML text and quoted attribute values.
func EscapeString(s string) string {
	return templ.EscapeString(s)
}
