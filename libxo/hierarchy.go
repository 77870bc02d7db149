package libxo

import "io"

// writeDirect writes s straight to the sink, bypassing the template buffer.
// HierarchyOps operate at this granularity (spec.md §4.6): unlike Emit, an
// open/close call is never part of a composite printf pass, so there is
// nothing to defer.
func (h *Handle) writeDirect(s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(h.w, s)
	return err
}

// frameName returns name if the Handle records stack frame names (XPath or
// either warn flag enabled), else "" — spec.md §3's StackFrame.name is "only
// allocated when XPATH or WARN is enabled".
func (h *Handle) frameName(name string) string {
	if h.flags.has(XPath) || h.flags.has(Warn) || h.flags.has(WarnXML) {
		return name
	}
	return ""
}

// popChecked pops the top frame, warning (never failing) on a stack
// underflow or a mismatched name/list/instance bit, per spec.md §4.6's
// "mismatch is a warning only, never fatal". Popping an empty stack is
// simply skipped.
func (h *Handle) popChecked(name string, want frameFlag) stackFrame {
	if h.stack.depth == 0 {
		h.warn("%v", errStackUnderflow)
		return stackFrame{}
	}
	f, _ := h.stack.pop()
	if f.name != "" && f.name != name {
		h.warn("libxo: close name %q does not match open name %q", name, f.name)
	}
	if f.flags.has(frameList) != want.has(frameList) {
		h.warn("libxo: list/non-list mismatch closing %q", name)
	}
	if f.flags.has(frameInstance) != want.has(frameInstance) {
		h.warn("libxo: instance/non-instance mismatch closing %q", name)
	}
	return f
}

// pushChecked pushes a frame, warning (never failing) on overflow — spec.md
// §5's "silently skip" policy for open/close calls that exceed stack_size.
func (h *Handle) pushChecked(flags frameFlag, name string) {
	if err := h.stack.push(flags, name); err != nil {
		h.warn("%v", err)
	}
}

// ensureJSONRoot writes the document-level "{" the first time any
// container/list/instance opens at depth 0. JSON is the only style whose
// top-level syntax requires an enclosing object — XML/TEXT/HTML have no
// such wrapper. A no-op for every style but JSON, and idempotent within one
// document via the jsonRoot flag.
func (h *Handle) ensureJSONRoot() error {
	if h.style != JSON || h.flags.has(jsonRoot) || h.stack.depth != 0 {
		return nil
	}
	if err := h.writeDirect("{" + h.newlineIfPretty()); err != nil {
		return err
	}
	h.flags |= jsonRoot
	h.indent++
	return nil
}

// closeJSONRootIfDone writes the matching "}" once the stack has unwound
// back to depth 0, closing the document root opened by ensureJSONRoot.
func (h *Handle) closeJSONRootIfDone() error {
	if h.style != JSON || !h.flags.has(jsonRoot) || h.stack.depth != 0 {
		return nil
	}
	h.indent--
	h.flags &^= jsonRoot
	return h.writeDirect(h.newlineIfPretty() + h.indentPrefix() + "}" + h.newlineIfPretty())
}

// OpenContainer opens a named container, per spec.md §4.6.
func (h *Handle) OpenContainer(name string) error {
	if err := h.ensureJSONRoot(); err != nil {
		return err
	}
	switch h.style {
	case XML:
		if err := h.writeDirect(h.indentPrefix() + "<" + name + ">" + h.newlineIfPretty()); err != nil {
			return err
		}
	case JSON:
		sep := ""
		if h.stack.parentNotFirst() {
			if h.flags.has(Pretty) {
				sep = ",\n"
			} else {
				sep = ", "
			}
		}
		nlPretty := ""
		if h.flags.has(Pretty) {
			nlPretty = "\n"
		}
		if err := h.writeDirect(sep + h.indentPrefix() + `"` + name + `": {` + nlPretty); err != nil {
			return err
		}
		h.stack.setParentNotFirst()
	}
	h.pushChecked(0, h.frameName(name))
	h.indent++
	return nil
}

// CloseContainer closes the most recently opened container.
func (h *Handle) CloseContainer(name string) error {
	h.indent--
	switch h.style {
	case XML:
		if err := h.writeDirect(h.indentPrefix() + "</" + name + ">" + h.newlineIfPretty()); err != nil {
			return err
		}
		h.popChecked(name, 0)
		return nil
	case JSON:
		h.popChecked(name, 0)
		if err := h.writeDirect(h.newlineIfPretty() + h.indentPrefix() + "}"); err != nil {
			return err
		}
		h.stack.setParentNotFirst()
		return h.closeJSONRootIfDone()
	}
	h.popChecked(name, 0)
	return nil
}

// OpenList opens a named list. JSON-only per spec.md §4.6; other styles only
// track the frame for XPath/warn bookkeeping symmetry with instances opened
// inside it.
func (h *Handle) OpenList(name string) error {
	if h.style != JSON {
		h.pushChecked(frameList, h.frameName(name))
		return nil
	}
	sep := ""
	if h.stack.parentNotFirst() {
		if h.flags.has(Pretty) {
			sep = ",\n"
		} else {
			sep = ", "
		}
	}
	nlPretty := ""
	if h.flags.has(Pretty) {
		nlPretty = "\n"
	}
	if err := h.writeDirect(sep + h.indentPrefix() + `"` + name + `": [` + nlPretty); err != nil {
		return err
	}
	h.stack.setParentNotFirst()
	h.pushChecked(frameList, h.frameName(name))
	h.indent++
	return nil
}

// CloseList closes the most recently opened list.
func (h *Handle) CloseList(name string) error {
	if h.style != JSON {
		h.popChecked(name, frameList)
		return nil
	}
	h.indent--
	h.popChecked(name, frameList)
	if err := h.writeDirect(h.newlineIfPretty() + h.indentPrefix() + "]"); err != nil {
		return err
	}
	h.stack.setParentNotFirst()
	return nil
}

// OpenInstance opens one list instance.
func (h *Handle) OpenInstance(name string) error {
	switch h.style {
	case XML:
		if err := h.writeDirect(h.indentPrefix() + "<" + name + ">" + h.newlineIfPretty()); err != nil {
			return err
		}
	case JSON:
		sep := ""
		if h.stack.parentNotFirst() {
			if h.flags.has(Pretty) {
				sep = ",\n"
			} else {
				sep = ", "
			}
		}
		nlPretty := ""
		if h.flags.has(Pretty) {
			nlPretty = "\n"
		}
		if err := h.writeDirect(sep + h.indentPrefix() + "{" + nlPretty); err != nil {
			return err
		}
		h.stack.setParentNotFirst()
	}
	// An instance is anonymous for XPath purposes: the enclosing list's name
	// already supplies that path segment, so no separate frame name is ever
	// recorded here (unlike container/list pushes).
	h.pushChecked(frameInstance, "")
	h.indent++
	return nil
}

// CloseInstance closes the current list instance.
func (h *Handle) CloseInstance(name string) error {
	h.indent--
	switch h.style {
	case XML:
		if err := h.writeDirect(h.indentPrefix() + "</" + name + ">" + h.newlineIfPretty()); err != nil {
			return err
		}
	case JSON:
		if err := h.writeDirect(h.newlineIfPretty() + h.indentPrefix() + "}"); err != nil {
			return err
		}
	}
	h.popChecked(name, frameInstance)
	return nil
}
