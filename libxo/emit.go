package libxo

import "fmt"

// Emit is the driver described in spec.md §4.5: it scans format left to
// right, splitting literal text from {...} directives, routes each
// directive through DirectiveParser and the style's FieldRenderer, then
// performs exactly one host fmt.Sprintf pass across the composite template
// with the caller's original args before flushing to the sink.
func (h *Handle) Emit(format string, args ...any) (int, error) {
	h.tmplBuf.reset()
	h.pendingArgs = h.pendingArgs[:0]

	rest := format
	for rest != "" {
		literal, kind, n := nextToken(rest)
		switch kind {
		case 'd':
			if err := h.appendLiteralText(literal); err != nil {
				return 0, err
			}
			body := rest[n:]
			raw, bodyLen := scanDirectiveBody(body)
			if h.formatter != nil {
				if replaced := h.formatter(raw); replaced != "" {
					raw = replaced
				}
			}
			d, _ := parseDirective(raw, h.warnf)
			if err := h.renderField(d); err != nil {
				return 0, err
			}
			rest = body[bodyLen:]
			continue
		case 'n':
			if err := h.appendLiteralText(literal); err != nil {
				return 0, err
			}
			if err := h.lineClose(); err != nil {
				return 0, err
			}
		default: // 'e' or 'l'
			if err := h.appendLiteralText(literal); err != nil {
				return 0, err
			}
		}
		rest = rest[n:]
	}

	return h.flush(args)
}

// appendLiteralText routes plain (non-directive) text through the style's
// text renderer: TEXT/XML/JSON append it verbatim; HTML must first ensure a
// line div is open.
func (h *Handle) appendLiteralText(s string) error {
	if s == "" {
		return nil
	}
	if h.style == HTML {
		if err := h.ensureHTMLLineOpen(); err != nil {
			return err
		}
		return h.tmplBuf.appendString(escapeXMLText(s))
	}
	return h.tmplBuf.appendString(s)
}

// lineClose handles a bare '\n' found while scanning format. Only HTML has
// line-div bookkeeping to do; every other style just emits the newline.
func (h *Handle) lineClose() error {
	if h.style == HTML {
		return h.htmlLineClose()
	}
	return h.tmplBuf.appendString("\n")
}

// scanDirectiveBody returns the raw directive body (the bytes between the
// opening '{' already consumed by nextToken and the matching '}', exclusive
// of both braces) and how many bytes of body (including the '}' if present)
// were consumed.
func scanDirectiveBody(body string) (raw string, n int) {
	for i := 0; i < len(body); i++ {
		if body[i] == '}' {
			return body[:i], i + 1
		}
	}
	return body, len(body)
}

func (h *Handle) warnf(format string, args ...any) {
	h.warn(format, args...)
}

// flush performs the single host-format substitution and writes the result
// to the sink, per spec.md §4.5 step 5.
func (h *Handle) flush(args []any) (int, error) {
	wrapped := make([]any, len(args))
	for i, a := range args {
		if i < len(h.pendingArgs) && h.pendingArgs[i] != nil {
			wrapped[i] = h.pendingArgs[i](a)
		} else {
			// No transform recorded for this position (or more args than the
			// template consumed): still route it through escapingArg so a %u
			// conversion specifier works, per argwrap.go's passthroughArg doc.
			wrapped[i] = passthroughArg(a)
		}
	}

	h.outBuf.reset()
	rendered := fmt.Sprintf(h.tmplBuf.String(), wrapped...)
	if err := h.outBuf.appendString(rendered); err != nil {
		return 0, err
	}

	if h.w == nil {
		return 0, fmt.Errorf("libxo: handle has no writer")
	}
	n, err := h.w.Write(h.outBuf.Bytes())
	return n, err
}
