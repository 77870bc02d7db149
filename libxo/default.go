package libxo

import "sync"

// defaultHandle is the process-wide singleton every non-handle-taking entry
// point routes through. It is lazily initialized on first use and reset to
// nil (uninitialized) by DestroyDefault, after which it may be re-created.
//
// Per spec.md §5, concurrent use of the default handle from multiple
// goroutines is undefined; defaultMu only protects the pointer swap itself,
// not the Handle's internal state.
var (
	defaultMu     sync.Mutex
	defaultHandle *Handle
)

// Default returns the process-wide default Handle, lazily creating one
// (Text style, LIBXO_OPTIONS-configured flags) on first call.
func Default() *Handle {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultHandle == nil {
		defaultHandle = New(Text, 0)
		applyEnvOptions(defaultHandle)
	}
	return defaultHandle
}

// DestroyDefault destroys the default handle (if any) and resets the
// singleton to its zeroed, uninitialized state so a later call to Default
// (or any package-level entry point) re-initializes it from scratch.
func DestroyDefault() error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultHandle == nil {
		return nil
	}
	err := defaultHandle.Destroy()
	defaultHandle = nil
	return err
}

// resolve returns h, or the default handle when h is nil — the Go
// equivalent of "passing nil handle selects the default handle".
func resolve(h *Handle) *Handle {
	if h != nil {
		return h
	}
	return Default()
}

// The following package-level functions are thin wrappers over the default
// handle, preserving the "nil handle selects default" ergonomic from
// spec.md §6.3 for Emit and the container/list/instance operations. The
// configuration setters (SetStyle, SetFlags, ...) have no package-level
// wrapper; call them on Default().

func Emit(format string, args ...any) (int, error) { return Default().Emit(format, args...) }

func OpenContainer(name string) error  { return Default().OpenContainer(name) }
func CloseContainer(name string) error { return Default().CloseContainer(name) }
func OpenList(name string) error       { return Default().OpenList(name) }
func CloseList(name string) error      { return Default().CloseList(name) }
func OpenInstance(name string) error   { return Default().OpenInstance(name) }
func CloseInstance(name string) error  { return Default().CloseInstance(name) }
