package view

import (
	"fmt"
	"strings"

	"github.com/serhatramay/trend-hunter-pro/internal/trendhunter"
	"github.com/serhatramay/trend-hunter-pro/internal/tui/theme"
)

type KeywordChipsParams struct {
	Keywords     []trendhunter.Keyword
	ActiveFilter string
	Cursor       int
	Focused      bool
}

// RenderKeywordChips draws the tracked keywords as a row of chips. The
// chip matching the active keyword filter is highlighted.
func RenderKeywordChips(p KeywordChipsParams, th theme.Theme) string {
	if len(p.Keywords) == 0 {
		return th.Empty.Render("No keywords yet. Press a to add one.")
	}

	chips := make([]string, 0, len(p.Keywords))
	for i, kw := range p.Keywords {
		label := SanitizeText(kw.Keyword) + th.ChipCount.Render(fmt.Sprintf(" %d", kw.Count))
		style := th.ChipInactive
		if kw.Keyword == p.ActiveFilter {
			style = th.ChipActive
		}
		chip := style.Render(" " + label + " ")
		if p.Focused && i == p.Cursor {
			chip = "›" + chip
		} else {
			chip = " " + chip
		}
		chips = append(chips, chip)
	}
	return strings.Join(chips, " ")
}
