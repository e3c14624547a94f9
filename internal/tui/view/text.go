package view

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	xhtml "golang.org/x/net/html"
)

var ansiSequences = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// EscapeMarkup encodes markup metacharacters so a string survives an HTML
// parse unchanged. UnescapeMarkup is its inverse; round-tripping returns the
// original string. Rendering goes through SanitizeText instead, which keeps
// entities like & readable.
func EscapeMarkup(s string) string {
	return html.EscapeString(s)
}

func UnescapeMarkup(s string) string {
	return html.UnescapeString(s)
}

// SanitizeText strips markup from untrusted feed text. Tags are dropped,
// entities decoded, control characters and escape sequences removed, and
// runs of whitespace collapsed to single spaces.
func SanitizeText(raw string) string {
	raw = ansiSequences.ReplaceAllString(raw, "")

	tok := xhtml.NewTokenizer(strings.NewReader(raw))
	var b strings.Builder
	for {
		switch tok.Next() {
		case xhtml.ErrorToken:
			return collapseWhitespace(b.String())
		case xhtml.TextToken:
			b.Write(tok.Text())
		}
	}
}

func collapseWhitespace(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

func stripANSI(s string) string {
	return ansiSequences.ReplaceAllString(s, "")
}

func visibleLen(s string) int {
	return len([]rune(stripANSI(s)))
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
