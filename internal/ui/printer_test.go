package ui

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRenderEntries(t *testing.T) {
	out := RenderEntries([]string{"first", "", "third line"}, 60)

	for _, want := range []string{"3 entries", "1.", "first", "(empty)", "third line"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderEntries() output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEntries_Singular(t *testing.T) {
	out := RenderEntries([]string{"only"}, 60)
	if !strings.Contains(out, "1 entry") {
		t.Errorf("expected singular title, got:\n%s", out)
	}
}

func TestPrintEntriesYAML(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	if err := p.PrintEntriesYAML([]string{"a", "multi\nline"}); err != nil {
		t.Fatalf("PrintEntriesYAML() error = %v", err)
	}

	var doc struct {
		Entries []string `yaml:"entries"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if len(doc.Entries) != 2 || doc.Entries[1] != "multi\nline" {
		t.Errorf("decoded entries = %#v", doc.Entries)
	}
}

func TestPrintEntriesYAML_Nil(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPrinter(&buf).PrintEntriesYAML(nil); err != nil {
		t.Fatalf("PrintEntriesYAML() error = %v", err)
	}
	if !strings.Contains(buf.String(), "entries: []") {
		t.Errorf("expected empty list, got %q", buf.String())
	}
}

func TestPrinterWidth(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}).WithWidth(72)
	if p.Width() != 72 {
		t.Errorf("Width() = %d, want 72", p.Width())
	}
}
