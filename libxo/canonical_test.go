package libxo

import (
	"bytes"
	"encoding/xml"
	"io"
	"reflect"
	"strings"
	"testing"
)

// xmlTokenStream decodes data with the standard library's streaming decoder
// and reduces it to start/end tag names and non-blank character data, which
// is all TestCanonical_PrettyPreservesStructure needs to compare two
// renderings structurally rather than byte-for-byte.
func xmlTokenStream(t *testing.T, data []byte) []string {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(data))
	var toks []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("decoding xml: %v\n%s", err, data)
		}
		switch v := tok.(type) {
		case xml.StartElement:
			toks = append(toks, "<"+v.Name.Local+">")
		case xml.EndElement:
			toks = append(toks, "</"+v.Name.Local+">")
		case xml.CharData:
			if s := strings.TrimSpace(string(v)); s != "" {
				toks = append(toks, s)
			}
		}
	}
	return toks
}

// TestCanonical_PrettyPreservesStructure exercises spec.md §8's "Pretty mode
// preserves the byte sequence of non-pretty mode minus inserted whitespace"
// invariant: decode both renderings to a token stream and compare those,
// since pretty-printing and non-pretty rendering interleave whitespace
// differently and only the element/text structure should match.
func TestCanonical_PrettyPreservesStructure(t *testing.T) {
	build := func(pretty bool) []byte {
		var buf bytes.Buffer
		var flags Flags
		if pretty {
			flags = Pretty
		}
		h := NewToWriter(&buf, XML, flags, false)
		mustNil(t, h.OpenContainer("top"))
		mustNil(t, h.OpenList("item"))
		for _, name := range []string{"gum", "rope"} {
			mustNil(t, h.OpenInstance("item"))
			mustEmit(t, h, "{:name/%s}", name)
			mustNil(t, h.CloseInstance("item"))
		}
		mustNil(t, h.CloseList("item"))
		mustNil(t, h.CloseContainer("top"))
		return buf.Bytes()
	}

	plain := build(false)
	pretty := build(true)

	plainToks := xmlTokenStream(t, plain)
	prettyToks := xmlTokenStream(t, pretty)

	if !reflect.DeepEqual(plainToks, prettyToks) {
		t.Errorf("token streams differ:\nplain:  %v\npretty: %v", plainToks, prettyToks)
	}

	if !strings.Contains(string(pretty), "\n") {
		t.Error("expected pretty output to contain inserted newlines")
	}
	if strings.Contains(string(plain), "\n") {
		t.Error("expected non-pretty output to contain no newlines")
	}
}
