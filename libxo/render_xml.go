package libxo

// renderFieldXML implements the XML column of spec.md §4.4's field renderer
// table. Label/Title/Decoration/Padding are suppressed in XML, but a
// deferred (argument-supplied) one must still consume its argument slot so
// positional substitution stays correct for fields emitted after it.
func (h *Handle) renderFieldXML(d directive) error {
	if d.role != roleValue {
		if d.content == "" {
			return h.pushArg(d.printFormat, discardArg)
		}
		return nil
	}

	name := d.content
	if err := h.tmplBuf.appendString(h.indentPrefix() + "<" + name + ">"); err != nil {
		return err
	}
	if err := h.pushArg(d.effectiveEncodeFormat(), xmlEscapedArg); err != nil {
		return err
	}
	return h.tmplBuf.appendString("</" + name + ">" + h.newlineIfPretty())
}
