package libxo

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func testWarnLogger(w *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// ============================================================================
// CONCRETE SCENARIOS (spec.md §8)
// ============================================================================

func TestScenario_S1_JSONPrettyList(t *testing.T) {
	var buf bytes.Buffer
	h := NewToWriter(&buf, JSON, Pretty, false)

	mustNil(t, h.OpenContainer("top"))
	mustNil(t, h.OpenContainer("data"))
	mustNil(t, h.OpenList("item"))

	for _, name := range []string{"gum", "rope"} {
		mustNil(t, h.OpenInstance("item"))
		mustEmit(t, h, "{:name/%s}", name)
		mustNil(t, h.CloseInstance("item"))
	}

	mustNil(t, h.CloseList("item"))
	mustNil(t, h.CloseContainer("data"))
	mustNil(t, h.CloseContainer("top"))

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	top := parsed["top"].(map[string]any)
	data := top["data"].(map[string]any)
	items := data["item"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].(map[string]any)["name"] != "gum" || items[1].(map[string]any)["name"] != "rope" {
		t.Errorf("unexpected items: %v", items)
	}
}

func TestScenario_S2_XML(t *testing.T) {
	var buf bytes.Buffer
	h := NewToWriter(&buf, XML, 0, false)

	mustNil(t, h.OpenContainer("top"))
	mustNil(t, h.OpenContainer("data"))
	mustNil(t, h.OpenList("item"))
	for _, name := range []string{"gum", "rope"} {
		mustNil(t, h.OpenInstance("item"))
		mustEmit(t, h, "{:name/%s}", name)
		mustNil(t, h.CloseInstance("item"))
	}
	mustNil(t, h.CloseList("item"))
	mustNil(t, h.CloseContainer("data"))
	mustNil(t, h.CloseContainer("top"))

	want := "<top><data><item><name>gum</name></item><item><name>rope</name></item></data></top>"
	if buf.String() != want {
		t.Errorf("got  %q\nwant %q", buf.String(), want)
	}
}

func TestScenario_S3_Text(t *testing.T) {
	var buf bytes.Buffer
	h := NewToWriter(&buf, Text, 0, false)
	mustEmit(t, h, "{L:Item} '{:name/%s}':\n", "gum")

	want := "Item 'gum':\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestScenario_S4_JSONQuoting(t *testing.T) {
	var buf bytes.Buffer
	h := NewToWriter(&buf, JSON, 0, false)
	mustEmit(t, h, "{:sold/%u}", 1412)
	if buf.String() != `"sold":1412` {
		t.Errorf("unquoted case: got %q", buf.String())
	}

	buf.Reset()
	mustEmit(t, h, "{Q:sold/%u}", 1412)
	if buf.String() != `"sold":"1412"` {
		t.Errorf("QUOTE case: got %q", buf.String())
	}
}

func TestScenario_S5_HTMLXPathInfo(t *testing.T) {
	var buf bytes.Buffer
	h := NewToWriter(&buf, HTML, XPath|Info, false)
	h.SetInfo(NewInfoTable([]InfoEntry{
		{Name: "name", Type: "string", Help: "Name of the item"},
	}))

	mustNil(t, h.OpenContainer("top"))
	mustNil(t, h.OpenContainer("data"))
	mustNil(t, h.OpenList("item"))
	mustNil(t, h.OpenInstance("item"))
	mustEmit(t, h, "{:name/%s}", "gum")
	mustNil(t, h.CloseInstance("item"))
	mustNil(t, h.CloseList("item"))
	mustNil(t, h.CloseContainer("data"))
	mustNil(t, h.CloseContainer("top"))

	out := buf.String()
	for _, want := range []string{
		`data-tag="name"`,
		`data-xpath="/top/data/item/name"`,
		`data-type="string"`,
		`data-help="Name of the item"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestScenario_S6_WarnOnMismatchedClose(t *testing.T) {
	var buf, warnBuf bytes.Buffer
	h := NewToWriter(&buf, XML, Warn, false)
	SetWarnWriter(testWarnLogger(&warnBuf))
	defer SetWarnWriter(nil)

	mustNil(t, h.OpenContainer("right"))
	mustNil(t, h.CloseContainer("wrong"))

	if warnBuf.Len() == 0 {
		t.Error("expected a diagnostic to be logged")
	}
	// The mismatch is warning-only: the close tag is still written using the
	// caller's given name, exactly as it would be without WARN set.
	want := "<right></wrong>"
	if buf.String() != want {
		t.Errorf("non-error output was altered: got %q, want %q", buf.String(), want)
	}
}

// ============================================================================
// INVARIANTS (spec.md §8)
// ============================================================================

func TestInvariant_BalancedHierarchyReturnsDepthZero(t *testing.T) {
	var buf bytes.Buffer
	h := NewToWriter(&buf, JSON, 0, false)
	mustNil(t, h.OpenContainer("a"))
	mustNil(t, h.OpenList("b"))
	mustNil(t, h.OpenInstance("b"))
	mustNil(t, h.CloseInstance("b"))
	mustNil(t, h.CloseList("b"))
	mustNil(t, h.CloseContainer("a"))

	if h.stack.depth != 0 {
		t.Errorf("expected depth 0, got %d", h.stack.depth)
	}
}

func TestInvariant_HideIsIdenticalInXMLAndJSON(t *testing.T) {
	for _, tc := range []struct {
		style Style
	}{{XML}, {JSON}} {
		var hidden, shown bytes.Buffer
		hh := NewToWriter(&hidden, tc.style, 0, false)
		sh := NewToWriter(&shown, tc.style, 0, false)
		mustEmit(t, hh, "{H:n/%s}", "x")
		mustEmit(t, sh, "{:n/%s}", "x")
		if hidden.String() != shown.String() {
			t.Errorf("style %v: HIDE changed output: hidden=%q shown=%q", tc.style, hidden.String(), shown.String())
		}
	}
}

func TestInvariant_HideSuppressesTextAndHTML(t *testing.T) {
	var buf bytes.Buffer
	h := NewToWriter(&buf, Text, 0, false)
	mustEmit(t, h, "{H:n/%s}", "x")
	if buf.String() != "" {
		t.Errorf("expected empty TEXT output for hidden field, got %q", buf.String())
	}

	buf.Reset()
	h2 := NewToWriter(&buf, HTML, 0, false)
	mustEmit(t, h2, "{H:n/%s}", "x")
	if buf.String() != "" {
		t.Errorf("expected empty HTML output for hidden field, got %q", buf.String())
	}
}

func TestInvariant_JSONDefaultQuotingFollowsEncodeFormatSuffix(t *testing.T) {
	var buf bytes.Buffer
	h := NewToWriter(&buf, JSON, 0, false)
	mustEmit(t, h, "{:n/%s}", "x")
	if buf.String() != `"n":"x"` {
		t.Errorf("expected quoted string value, got %q", buf.String())
	}

	buf.Reset()
	mustEmit(t, h, "{:n/%d}", 7)
	if buf.String() != `"n":7` {
		t.Errorf("expected bare numeric value, got %q", buf.String())
	}

	buf.Reset()
	mustEmit(t, h, "{N:n/%s}", "x")
	if buf.String() != `"n":x` {
		t.Errorf("expected NOQUOTE to suppress quoting, got %q", buf.String())
	}
}

func TestInvariant_SetClearFlagsRoundTrip(t *testing.T) {
	h := New(Text, 0)
	before := h.Flags()
	h.SetFlags(Pretty | Warn)
	h.ClearFlags(Pretty | Warn)
	if h.Flags() != before {
		t.Errorf("expected flags to return to %v, got %v", before, h.Flags())
	}
}

// ============================================================================
// BOUNDARY BEHAVIORS (spec.md §8)
// ============================================================================

func TestBoundary_EmptyFormatString(t *testing.T) {
	var buf bytes.Buffer
	h := NewToWriter(&buf, Text, 0, false)
	n, err := h.Emit("")
	if err != nil || n != 0 || buf.Len() != 0 {
		t.Errorf("expected no output/error, got n=%d err=%v buf=%q", n, err, buf.String())
	}
}

func TestBoundary_NoContentNoFormat(t *testing.T) {
	var buf bytes.Buffer
	h := NewToWriter(&buf, JSON, 0, false)
	mustEmit(t, h, "{:}", "")
	if buf.String() != `"":""` {
		t.Errorf(`expected %q, got %q`, `"":""`, buf.String())
	}
}

func TestBoundary_EscapedBraceAtEndOfString(t *testing.T) {
	var buf bytes.Buffer
	h := NewToWriter(&buf, Text, 0, false)
	mustEmit(t, h, "a{{")
	if buf.String() != "a{" {
		t.Errorf("expected %q, got %q", "a{", buf.String())
	}
}

func TestBoundary_UnterminatedDirective(t *testing.T) {
	var buf bytes.Buffer
	h := NewToWriter(&buf, Text, 0, false)
	n, err := h.Emit("{:name/%s", "gum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == 0 {
		t.Error("expected some output")
	}
}

// ============================================================================
// test helpers
// ============================================================================

func mustNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func mustEmit(t *testing.T, h *Handle, format string, args ...any) {
	t.Helper()
	if _, err := h.Emit(format, args...); err != nil {
		t.Fatalf("Emit(%q) failed: %v", format, err)
	}
}
