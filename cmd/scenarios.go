package cmd

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/acidburn0zzz/libxo-go/libxo"
)

// runS1 reproduces spec.md's S1 scenario: a pretty-printed JSON container
// holding a list of instances.
func runS1(w io.Writer) error {
	h := libxo.NewToWriter(w, libxo.JSON, libxo.Pretty, false)
	items := []struct {
		name string
		id   string
	}{
		{"gum", uuid.NewString()},
		{"rope", uuid.NewString()},
	}
	if err := h.OpenContainer("top"); err != nil {
		return err
	}
	if err := h.OpenContainer("data"); err != nil {
		return err
	}
	if err := h.OpenList("item"); err != nil {
		return err
	}
	for _, it := range items {
		if err := h.OpenInstance("item"); err != nil {
			return err
		}
		if _, err := h.Emit("{:name/%s}{H:uuid/%s}", it.name, it.id); err != nil {
			return err
		}
		if err := h.CloseInstance("item"); err != nil {
			return err
		}
	}
	if err := h.CloseList("item"); err != nil {
		return err
	}
	if err := h.CloseContainer("data"); err != nil {
		return err
	}
	return h.CloseContainer("top")
}

// runS2 reproduces spec.md's S2 scenario: the same hierarchy as S1, rendered
// as XML.
func runS2(w io.Writer) error {
	h := libxo.NewToWriter(w, libxo.XML, 0, false)
	if err := h.OpenContainer("top"); err != nil {
		return err
	}
	if err := h.OpenContainer("data"); err != nil {
		return err
	}
	if err := h.OpenList("item"); err != nil {
		return err
	}
	for _, name := range []string{"gum", "rope"} {
		if err := h.OpenInstance("item"); err != nil {
			return err
		}
		if _, err := h.Emit("{:name/%s}", name); err != nil {
			return err
		}
		if err := h.CloseInstance("item"); err != nil {
			return err
		}
	}
	if err := h.CloseList("item"); err != nil {
		return err
	}
	if err := h.CloseContainer("data"); err != nil {
		return err
	}
	return h.CloseContainer("top")
}

// runS3 reproduces spec.md's S3 scenario: a labeled value in TEXT style.
func runS3(w io.Writer) error {
	h := libxo.NewToWriter(w, libxo.Text, 0, false)
	_, err := h.Emit("{L:Item} '{:name/%s}':\n", "gum")
	return err
}

// runS4 reproduces spec.md's S4 scenario: JSON quoting for a '%u' encode
// format, with and without the explicit QUOTE modifier.
func runS4(w io.Writer) error {
	h := libxo.NewToWriter(w, libxo.JSON, 0, false)
	if _, err := h.Emit("{:sold/%u}", 1412); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "\n"); err != nil {
		return err
	}
	if _, err := h.Emit("{Q:sold/%u}", 1412); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, "\n")
	return err
}

// runS5 reproduces spec.md's S5 scenario: HTML output with XPath and Info
// attributes on a value nested inside a list instance.
func runS5(w io.Writer) error {
	h := libxo.NewToWriter(w, libxo.HTML, libxo.XPath|libxo.Info, false)
	h.SetInfo(libxo.NewInfoTable([]libxo.InfoEntry{
		{Name: "name", Type: "string", Help: "Name of the item"},
	}))
	if err := h.OpenContainer("top"); err != nil {
		return err
	}
	if err := h.OpenContainer("data"); err != nil {
		return err
	}
	if err := h.OpenList("item"); err != nil {
		return err
	}
	if err := h.OpenInstance("item"); err != nil {
		return err
	}
	if _, err := h.Emit("{:name/%s}", "gum"); err != nil {
		return err
	}
	if err := h.CloseInstance("item"); err != nil {
		return err
	}
	if err := h.CloseList("item"); err != nil {
		return err
	}
	if err := h.CloseContainer("data"); err != nil {
		return err
	}
	return h.CloseContainer("top")
}

// runS6 reproduces spec.md's S6 scenario: a mismatched close under WARN
// logs a diagnostic but leaves the non-error output untouched.
func runS6(w io.Writer) error {
	h := libxo.NewToWriter(w, libxo.XML, libxo.Warn, false)
	if err := h.OpenContainer("right"); err != nil {
		return err
	}
	return h.CloseContainer("wrong")
}
