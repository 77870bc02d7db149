package libxo

// renderField dispatches one parsed directive to the renderer matching the
// Handle's style, then applies the COLON/WS post-modifiers shared by every
// style and role.
func (h *Handle) renderField(d directive) error {
	var err error
	switch h.style {
	case Text:
		err = h.renderFieldText(d)
	case HTML:
		err = h.renderFieldHTML(d)
	case XML:
		err = h.renderFieldXML(d)
	case JSON:
		err = h.renderFieldJSON(d)
	}
	if err != nil {
		return err
	}
	return h.applyPostModifiers(d)
}

func (h *Handle) applyPostModifiers(d directive) error {
	if d.flags&dColon != 0 {
		if err := h.renderLiteralRole(roleDecoration, ":"); err != nil {
			return err
		}
	}
	if d.flags&dWS != 0 {
		if err := h.renderLiteralRole(rolePadding, " "); err != nil {
			return err
		}
	}
	return nil
}

// renderLiteralRole renders literal (non-deferred) text for a non-value
// role, dispatching to the current style's suppression rules.
func (h *Handle) renderLiteralRole(r role, text string) error {
	switch h.style {
	case Text:
		return h.tmplBuf.appendString(text)
	case HTML:
		return h.htmlWrapLiteral(r, text)
	case XML, JSON:
		return nil // suppressed
	}
	return nil
}

func roleDivClass(r role) string {
	switch r {
	case roleTitle:
		return "title"
	case roleLabel:
		return "label"
	case roleDecoration:
		return "decoration"
	case rolePadding:
		return "padding"
	default:
		return "data"
	}
}
