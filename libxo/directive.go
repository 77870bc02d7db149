package libxo

import "strings"

// role selects which field renderer a directive dispatches to.
type role byte

const (
	roleValue role = iota // 'V', or no role modifier at all
	roleTitle             // 'T'
	roleLabel             // 'L'
	roleDecoration        // 'D'
	rolePadding           // 'P'
)

// directiveFlags are the single-letter behavior modifiers a directive may
// combine, independent of its role.
type directiveFlags uint8

const (
	dColon directiveFlags = 1 << iota
	dWS
	dHide
	dQuote
	dNoQuote
)

// directive is the parsed, transient contents of one {...} construct.
type directive struct {
	role         role
	flags        directiveFlags
	content      string
	printFormat  string
	encodeFormat string
}

// effectiveEncodeFormat is the encode format XML/JSON renderers use: the
// explicit encode format if given, else the print format.
func (d directive) effectiveEncodeFormat() string {
	if d.encodeFormat != "" {
		return d.encodeFormat
	}
	return d.printFormat
}

const defaultPrintFormat = "%s"

// parseDirective parses one directive body: the substring of a format string
// starting immediately after the opening '{' of a (non-escaped) brace
// construct. It returns the parsed directive and the index into s just past
// the matching '}', or len(s) if none was found (an unterminated directive
// is treated as terminating at end-of-string, per the grammar's permissive
// recovery rule).
//
// warnf, if non-nil, is called once per malformed-directive condition
// (duplicated role modifier, unknown single-letter modifier).
func parseDirective(s string, warnf func(string, ...any)) (directive, int) {
	var d directive
	haveRole := false
	i := 0

	for i < len(s) {
		c := s[i]
		if c == ':' || c == '/' || c == '}' {
			break
		}
		switch c {
		case 'T', 'V', 'L', 'D', 'P':
			r := modifierToRole(c)
			if haveRole && warnf != nil {
				warnf("libxo: directive has more than one role modifier; using the last one seen")
			}
			d.role = r
			haveRole = true
		case 'C':
			d.flags |= dColon
		case 'W':
			d.flags |= dWS
		case 'H':
			d.flags |= dHide
		case 'Q':
			d.flags |= dQuote
		case 'N':
			d.flags |= dNoQuote
		default:
			if warnf != nil {
				warnf("libxo: unknown directive modifier %q", c)
			}
		}
		i++
	}

	if i < len(s) && s[i] == ':' {
		i++
		start := i
		for i < len(s) && s[i] != '/' && s[i] != '}' {
			i++
		}
		d.content = s[start:i]
	}

	if i < len(s) && s[i] == '/' {
		i++
		start := i
		for i < len(s) && s[i] != '/' && s[i] != '}' {
			i++
		}
		d.printFormat = s[start:i]

		if i < len(s) && s[i] == '/' {
			i++
			start = i
			for i < len(s) && s[i] != '}' {
				i++
			}
			d.encodeFormat = s[start:i]
		}
	}

	if d.printFormat == "" {
		d.printFormat = defaultPrintFormat
	}

	if i < len(s) && s[i] == '}' {
		i++
	}
	return d, i
}

func modifierToRole(c byte) role {
	switch c {
	case 'T':
		return roleTitle
	case 'L':
		return roleLabel
	case 'D':
		return roleDecoration
	case 'P':
		return rolePadding
	default:
		return roleValue
	}
}

// nextToken scans s for the next unescaped '{' (the start of a real
// directive), literal "{{"/"}}" pair, or '\n', whichever comes first. It
// returns the literal text before that point, the kind of thing found ('d'
// for directive, 'e' for an escaped-literal run already unescaped into text,
// 'n' for a newline, 'l' when the rest of s is plain literal text), and the
// index in s immediately after what was consumed.
//
// This mirrors spec.md's requirement that "{{" / "}}" escapes are detected
// before directive parsing ever begins.
func nextToken(s string) (literal string, kind byte, rest int) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if i+1 < len(s) && s[i+1] == '{' {
				end := strings.Index(s[i+2:], "}}")
				if end < 0 {
					// No closing "}}": treat the rest as literal, same
					// permissive recovery as an unterminated directive.
					return s[:i] + "{" + s[i+2:], 'l', len(s)
				}
				return s[:i] + s[i+2 : i+2+end], 'e', i + 2 + end + 2
			}
			return s[:i], 'd', i + 1
		case '\n':
			return s[:i], 'n', i + 1
		}
	}
	return s, 'l', len(s)
}
