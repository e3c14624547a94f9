package view

import (
	"strings"
	"testing"
)

func TestSanitizeTextStripsMarkup(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Dolar kuru rekor kırdı", "Dolar kuru rekor kırdı"},
		{"tags dropped", "<b>Breaking</b> news", "Breaking news"},
		{"script neutralized", `<script>alert("x")</script>Headline`, `alert("x")Headline`},
		{"entities decoded", "Fenerbah&ccedil;e &amp; Galatasaray", "Fenerbahçe & Galatasaray"},
		{"whitespace collapsed", "  too \n\t many   spaces ", "too many spaces"},
		{"ansi removed", "\x1b[31mred\x1b[0m alert", "red alert"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeText(tc.in)
			if got != tc.want {
				t.Fatalf("SanitizeText(%q) = %q, want %q", tc.in, got, tc.want)
			}
			if strings.Contains(got, "<") && strings.Contains(tc.in, "<script") {
				t.Fatalf("sanitized output still contains markup: %q", got)
			}
		})
	}
}

func TestEscapeMarkupRoundTrip(t *testing.T) {
	inputs := []string{
		"plain keyword",
		"<img src=x onerror=alert(1)>",
		`a & b < c > d "quoted"`,
		"türkçe karakterler ğüşiöç",
	}
	for _, in := range inputs {
		escaped := EscapeMarkup(in)
		if strings.ContainsAny(escaped, "<>") {
			t.Fatalf("EscapeMarkup(%q) left raw angle brackets: %q", in, escaped)
		}
		if got := UnescapeMarkup(escaped); got != in {
			t.Fatalf("round trip of %q = %q", in, got)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten chars!", 18, "exactly ten chars!"},
		{"a very long headline indeed", 10, "a very lo…"},
		{"çok uzun türkçe başlık", 8, "çok uzu…"},
		{"anything", 0, ""},
		{"ab", 1, "…"},
	}
	for _, tc := range cases {
		if got := truncateRunes(tc.in, tc.max); got != tc.want {
			t.Fatalf("truncateRunes(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestVisibleLenIgnoresANSI(t *testing.T) {
	if got := visibleLen("\x1b[1;31mabc\x1b[0m"); got != 3 {
		t.Fatalf("visibleLen = %d, want 3", got)
	}
}
