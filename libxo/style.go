package libxo

// Style selects the output rendering for a Handle. It is fixed after
// initialization and only ever changed via SetStyle.
type Style int

const (
	Text Style = iota
	XML
	JSON
	HTML
)

func (s Style) String() string {
	switch s {
	case Text:
		return "text"
	case XML:
		return "xml"
	case JSON:
		return "json"
	case HTML:
		return "html"
	default:
		return "unknown"
	}
}

// Flags is a bit set of behaviors a Handle can opt into.
type Flags uint32

const (
	// Pretty inserts newlines and indentation in structured styles.
	Pretty Flags = 1 << iota
	// Warn emits diagnostics to standard error (or the configured logger).
	Warn
	// WarnXML is reserved; it behaves identically to Warn (see SPEC_FULL.md §9).
	WarnXML
	// XPath emits a data-xpath attribute on HTML value fields.
	XPath
	// Info emits data-type/data-help attributes on HTML value fields when an
	// InfoTable entry exists for the field.
	Info
	// CloseFP closes the underlying sink when the Handle is destroyed.
	CloseFP

	// divOpen is internal bookkeeping: an HTML line div is currently open.
	// It lives in the same bit set as the public flags because the source
	// design tracks it exactly like one, but it is never accepted by
	// SetFlags/ClearFlags.
	divOpen

	// jsonRoot is internal bookkeeping: the JSON document's enclosing root
	// object (the "{"/"}" wrapping every top-level container/list/instance)
	// is currently open. Never accepted by SetFlags/ClearFlags.
	jsonRoot
)

// publicFlags masks out internal-only bits so SetFlags/ClearFlags can't be
// used to forge internal state.
const publicFlags = Pretty | Warn | WarnXML | XPath | Info | CloseFP

func (f Flags) has(bit Flags) bool { return f&bit != 0 }
