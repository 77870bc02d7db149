package libxo

import (
	"bufio"
	"io"
	"os"
)

// defaultIndentBy is the number of spaces PRETTY indents by default, per
// each nesting level.
const defaultIndentBy = 2

// FormatterHook is invoked once per directive with the raw, unparsed body
// between '{' and the matching '}' (modifiers, content and formats alike). A
// non-empty return value replaces that raw body before DirectiveParser runs.
type FormatterHook func(rawDirective string) string

// Handle is the top-level aggregate a caller emits through. A Handle is not
// safe for concurrent use by multiple goroutines without external
// synchronization — exactly one logical writer owns it at a time, mirroring
// the single-threaded, cooperative model the design assumes throughout.
type Handle struct {
	style    Style
	flags    Flags
	indent   uint
	indentBy uint

	stack stack

	tmplBuf *growBuffer // composite format template, rebuilt every Emit call
	outBuf  *growBuffer // rendered bytes, flushed to the sink every Emit call

	info      *InfoTable
	formatter FormatterHook

	w       io.Writer
	closeFP bool

	// pendingArgs records, in order, how each variadic argument consumed by
	// the current Emit call's template must be transformed before the final
	// fmt.Sprintf substitution (nil entries pass the argument through
	// unchanged). Reset at the start of every Emit call.
	pendingArgs []func(any) any
}

// pushArg queues one transform for the next variadic argument position and
// appends verb (a bare conversion specifier, e.g. "%s") to the template.
func (h *Handle) pushArg(verb string, transform func(any) any) error {
	if err := h.tmplBuf.appendString(verb); err != nil {
		return err
	}
	h.pendingArgs = append(h.pendingArgs, transform)
	return nil
}

// indentPrefix returns the current indentation (or "" when Pretty is off).
func (h *Handle) indentPrefix() string {
	if !h.flags.has(Pretty) {
		return ""
	}
	return spaces(int(h.indent) * int(h.indentBy))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func (h *Handle) newlineIfPretty() string {
	if h.flags.has(Pretty) {
		return "\n"
	}
	return ""
}

// globalMaxBufferSize is the process-wide allocator cap described in
// spec.md §5 ("the allocator is process-global ... changing it mid-lifetime
// of outstanding allocations is the caller's responsibility"). Zero means
// unbounded. It is consulted only when a new Handle is created.
var globalMaxBufferSize int

// SetAllocator installs a process-wide cap (in bytes) on how large either of
// a Handle's internal buffers may grow. This is the Go stand-in for the
// source's realloc/free hook pair: there is no manual allocator to swap in a
// garbage-collected runtime, but the "soft failure past a limit" behavior it
// existed to support is preserved. Pass 0 to remove the cap.
func SetAllocator(maxBufferSize int) {
	globalMaxBufferSize = maxBufferSize
}

// New creates a Handle that writes to standard output.
func New(style Style, flags Flags) *Handle {
	return NewToWriter(os.Stdout, style, flags, false)
}

// NewToWriter creates a Handle writing to an arbitrary sink. If closeFP is
// true, Destroy closes w (when w implements io.Closer) exactly once.
func NewToWriter(w io.Writer, style Style, flags Flags, closeFP bool) *Handle {
	h := &Handle{
		style:    style,
		flags:    flags &^ (divOpen | jsonRoot),
		indentBy: defaultIndentBy,
		tmplBuf:  newGrowBuffer(),
		outBuf:   newGrowBuffer(),
		w:        w,
		closeFP:  closeFP,
	}
	h.tmplBuf.maxSize = globalMaxBufferSize
	h.outBuf.maxSize = globalMaxBufferSize
	return h
}

// NewToFile creates a Handle writing to fp, closing it on Destroy regardless
// of the CloseFP flag (a file a Handle opened for itself is always the
// Handle's to close).
func NewToFile(fp *os.File, style Style, flags Flags) *Handle {
	return NewToWriter(fp, style, flags, true)
}

// Destroy flushes any buffered writer and closes the sink if CloseFP is set
// (or the Handle owns a file via NewToFile). Safe to call once; calling it
// again is a no-op.
func (h *Handle) Destroy() error {
	if h == nil {
		return nil
	}
	var err error
	if bw, ok := h.w.(*bufio.Writer); ok {
		err = bw.Flush()
	}
	if h.closeFP || h.flags.has(CloseFP) {
		if c, ok := h.w.(io.Closer); ok {
			if cerr := c.Close(); err == nil {
				err = cerr
			}
		}
	}
	h.w = nil
	return err
}

// SetStyle changes the rendering style. Valid between calls; it does not
// reset the hierarchy stack, so switching styles mid-hierarchy produces
// whatever the new style's renderers make of the existing nesting (callers'
// responsibility to only do this between top-level documents).
func (h *Handle) SetStyle(s Style) { h.style = s }

// Style reports the Handle's current style.
func (h *Handle) Style() Style { return h.style }

// SetFlags ORs the given public flags into the Handle's flag set.
func (h *Handle) SetFlags(f Flags) { h.flags |= f & publicFlags }

// ClearFlags clears the given public flags from the Handle's flag set.
func (h *Handle) ClearFlags(f Flags) { h.flags &^= f & publicFlags }

// Flags reports the Handle's current public flag set (internal bookkeeping
// flags are never exposed).
func (h *Handle) Flags() Flags { return h.flags & publicFlags }

// SetIndentBy sets how many spaces one indent level is worth under Pretty.
func (h *Handle) SetIndentBy(n uint) { h.indentBy = n }

// SetInfo installs (or clears, with nil) the InfoTable consulted by the HTML
// Info attributes.
func (h *Handle) SetInfo(t *InfoTable) { h.info = t }

// SetFormatter installs (or clears, with nil) the per-directive formatter
// hook.
func (h *Handle) SetFormatter(fn FormatterHook) { h.formatter = fn }

// SetWriter redirects the Handle's sink. If closeFP is true, Destroy will
// close w when w implements io.Closer.
func (h *Handle) SetWriter(w io.Writer, closeFP bool) {
	h.w = w
	h.closeFP = closeFP
}
