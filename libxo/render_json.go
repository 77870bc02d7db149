package libxo

import "strings"

// renderFieldJSON implements the JSON column of spec.md §4.4's field
// renderer table, including the sibling-comma discipline shared with
// HierarchyOps (hierarchy.go) and the quoting rule.
func (h *Handle) renderFieldJSON(d directive) error {
	if d.role != roleValue {
		if d.content == "" {
			return h.pushArg(d.printFormat, discardArg)
		}
		return nil
	}

	name := d.content

	if h.stack.parentNotFirst() {
		if h.flags.has(Pretty) {
			if err := h.tmplBuf.appendString(",\n"); err != nil {
				return err
			}
		} else if err := h.tmplBuf.appendString(", "); err != nil {
			return err
		}
	}
	h.stack.setParentNotFirst()

	sep := ""
	if h.flags.has(Pretty) {
		sep = " "
	}
	if err := h.tmplBuf.appendString(h.indentPrefix() + `"` + jsonKeyEscape(name) + `":` + sep); err != nil {
		return err
	}

	quote := jsonShouldQuote(d)
	transform := (func(any) any)(nil) // bare literal (number/bool): passed through as-is
	if quote {
		if err := h.tmplBuf.appendString(`"`); err != nil {
			return err
		}
		transform = jsonEscapedArg
	}
	if err := h.pushArg(d.effectiveEncodeFormat(), transform); err != nil {
		return err
	}
	if quote {
		return h.tmplBuf.appendString(`"`)
	}
	return nil
}

// jsonShouldQuote implements spec.md §4.4's JSON quoting rule.
func jsonShouldQuote(d directive) bool {
	if d.flags&dQuote != 0 {
		return true
	}
	if d.flags&dNoQuote != 0 {
		return false
	}
	f := d.effectiveEncodeFormat()
	return strings.HasSuffix(f, "s")
}

func jsonKeyEscape(name string) string {
	return jsonEscapeInner(name)
}
