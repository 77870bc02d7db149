package libxo

import (
	"encoding/json"
	"strings"
)

// escapeXMLText escapes the minimum set of characters required inside XML
// (and HTML) element content, grounded on the teacher's xml/c14n.go
// escapeText: &, <, > must never appear unescaped inside content.
func escapeXMLText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// escapeXMLAttr escapes everything escapeXMLText does plus the characters
// that would otherwise break out of a double-quoted attribute value,
// grounded on the teacher's xml/c14n.go escapeAttr.
func escapeXMLAttr(s string) string {
	s = escapeXMLText(s)
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "\n", "&#xA;")
	s = strings.ReplaceAll(s, "\t", "&#x9;")
	return s
}

// jsonEscapeInner escapes s for placement INSIDE an already-written pair of
// JSON double quotes (used when the surrounding quote characters are
// already literal bytes in the template and only the value needs escaping).
func jsonEscapeInner(s string) string {
	q := jsonQuote(s)
	return q[1 : len(q)-1]
}

// jsonQuote renders s as a double-quoted, escaped JSON string by delegating
// to encoding/json rather than hand-rolling the escape table (grounded on
// xml/map.go's MarshalJSON, which does the same).
func jsonQuote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// json.Marshal on a string only fails for invalid UTF-8; fall back to
		// a best-effort escape rather than dropping the field.
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return string(b)
}
