package extractions

import (
	"strings"
	"testing"
)

func TestPreviewShortTextUnchanged(t *testing.T) {
	if got := Preview("short text", 100); got != "short text" {
		t.Fatalf("Preview = %q", got)
	}
	if got := Preview("", 100); got != "" {
		t.Fatalf("Preview(\"\") = %q", got)
	}
}

func TestPreviewTruncatesLongText(t *testing.T) {
	text := strings.Repeat("a", 250)
	got := Preview(text, 100)
	if got != strings.Repeat("a", 100)+"..." {
		t.Fatalf("Preview = %q", got)
	}
}

// Text exactly at the cutoff still gets the ellipsis; the original behaved
// this way and callers rely on the marker to mean "possibly more".
func TestPreviewExactCutoffGetsEllipsis(t *testing.T) {
	text := strings.Repeat("b", 100)
	got := Preview(text, 100)
	if got != text+"..." {
		t.Fatalf("Preview = %q", got)
	}

	almost := strings.Repeat("b", 99)
	if got := Preview(almost, 100); got != almost {
		t.Fatalf("Preview one under cutoff = %q", got)
	}
}

func TestPreviewCountsRunes(t *testing.T) {
	text := strings.Repeat("ü", 100)
	got := Preview(text, 100)
	if got != text+"..." {
		t.Fatalf("multibyte preview should keep whole runes, got %q", got)
	}
}
