package libxo

import "strings"

// ensureHTMLLineOpen opens a "<div class=\"line\">" if one isn't already
// open for the current line, per spec.md §4.7.
func (h *Handle) ensureHTMLLineOpen() error {
	if h.flags.has(divOpen) {
		return nil
	}
	if err := h.tmplBuf.appendString(`<div class="line">`); err != nil {
		return err
	}
	h.flags |= divOpen
	return nil
}

// htmlLineClose closes any open line div and appends the newline itself,
// called whenever the scanner in emit.go sees a bare '\n' while in HTML
// style.
func (h *Handle) htmlLineClose() error {
	if h.flags.has(divOpen) {
		if err := h.tmplBuf.appendString("</div>"); err != nil {
			return err
		}
		h.flags &^= divOpen
	}
	return h.tmplBuf.appendString("\n")
}

func (h *Handle) htmlWrapLiteral(r role, text string) error {
	if err := h.ensureHTMLLineOpen(); err != nil {
		return err
	}
	return h.tmplBuf.appendString(`<div class="` + roleDivClass(r) + `">` + escapeXMLText(text) + `</div>`)
}

func (h *Handle) htmlWrapDeferred(r role, verb string) error {
	if err := h.ensureHTMLLineOpen(); err != nil {
		return err
	}
	if err := h.tmplBuf.appendString(`<div class="` + roleDivClass(r) + `">`); err != nil {
		return err
	}
	if err := h.pushArg(verb, xmlEscapedArg); err != nil {
		return err
	}
	return h.tmplBuf.appendString(`</div>`)
}

// renderFieldHTML implements the HTML column of spec.md §4.4's field
// renderer table, plus the XPath/Info attribute enrichments from the same
// section.
func (h *Handle) renderFieldHTML(d directive) error {
	if d.role != roleValue {
		if d.content != "" {
			if d.role == roleTitle {
				return h.htmlWrapLiteral(d.role, sprintfTitle(d.printFormat, d.content))
			}
			return h.htmlWrapLiteral(d.role, d.content)
		}
		return h.htmlWrapDeferred(d.role, d.printFormat)
	}

	// Value role.
	if d.flags&dHide != 0 {
		return h.pushArg(d.printFormat, discardArg)
	}

	if err := h.ensureHTMLLineOpen(); err != nil {
		return err
	}

	var attrs strings.Builder
	attrs.WriteString(`<div class="data"`)
	if d.content != "" {
		attrs.WriteString(` data-tag="` + escapeXMLAttr(d.content) + `"`)
	}
	if h.flags.has(XPath) && d.content != "" {
		path := "/" + strings.Join(append(h.stack.names(), d.content), "/")
		attrs.WriteString(` data-xpath="` + escapeXMLAttr(path) + `"`)
	}
	if h.flags.has(Info) && h.info != nil && d.content != "" {
		if entry, ok := h.info.Lookup(d.content); ok {
			attrs.WriteString(` data-type="` + escapeXMLAttr(entry.Type) + `"`)
			attrs.WriteString(` data-help="` + escapeXMLAttr(entry.Help) + `"`)
		}
	}
	attrs.WriteString(">")
	if err := h.tmplBuf.appendString(attrs.String()); err != nil {
		return err
	}
	if err := h.pushArg(d.printFormat, xmlEscapedArg); err != nil {
		return err
	}
	return h.tmplBuf.appendString(`</div>`)
}

// sprintfTitle formats literal title content immediately: unlike a Value
// field, a Title's content is already known at template-build time (it's
// not a deferred caller argument), so print_format is applied to it right
// away rather than left in the template as a conversion specifier.
func sprintfTitle(format, content string) string {
	if format == defaultPrintFormat {
		return content
	}
	return sprintfSimple(format, content)
}
