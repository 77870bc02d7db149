package libxo

// renderFieldText implements the TEXT column of spec.md §4.4's field
// renderer table.
func (h *Handle) renderFieldText(d directive) error {
	switch d.role {
	case roleValue:
		if d.flags&dHide != 0 {
			return h.pushArg(d.printFormat, discardArg)
		}
		return h.pushArg(d.printFormat, nil)
	default:
		if d.content != "" {
			if d.role == roleTitle {
				return h.tmplBuf.appendString(sprintfTitle(d.printFormat, d.content))
			}
			return h.tmplBuf.appendString(d.content)
		}
		return h.pushArg(d.printFormat, nil)
	}
}
