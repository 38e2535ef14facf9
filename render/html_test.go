package render

import (
	"strings"
	"testing"
)

func TestWriteHTML(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		contains []string
		excludes []string
	}{
		{
			name:     "frame address",
			raw:      "data:text/html;base64,AAAA",
			contains: []string{`<iframe src="data:text/html;base64,AAAA"`, `title="Interactive Visualization"`},
			excludes: []string{"srcdoc"},
		},
		{
			name:     "inline document is escaped into srcdoc",
			raw:      "<html><body>hi</body></html>",
			contains: []string{`<iframe srcdoc="`, "&lt;html&gt;"},
			excludes: []string{` src="`},
		},
		{
			name:     "image",
			raw:      "data:image/png;base64,AAAA",
			contains: []string{`<img src="data:image/png;base64,AAAA"`, `alt="Visualization"`},
		},
		{
			name:     "notice",
			raw:      "plain",
			contains: []string{"<div>Unsupported visualization format.</div>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, ok := Render(tt.raw)
			if !ok {
				t.Fatal("Render() ok = false")
			}
			var sb strings.Builder
			if err := WriteHTML(&sb, inst); err != nil {
				t.Fatalf("WriteHTML() error = %v", err)
			}
			out := sb.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("WriteHTML() = %q, missing %q", out, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(out, bad) {
					t.Errorf("WriteHTML() = %q, must not contain %q", out, bad)
				}
			}
		})
	}
}

func TestWritePage(t *testing.T) {
	inst, _ := Render("data:image/png;base64,AAAA")
	var sb strings.Builder
	if err := WritePage(&sb, inst); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Errorf("WritePage() should start with a doctype, got %q", out[:20])
	}
	if !strings.Contains(out, `<img src="data:image/png;base64,AAAA"`) {
		t.Errorf("WritePage() missing image: %q", out)
	}
}
