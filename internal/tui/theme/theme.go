package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/serhatramay/trend-hunter-pro/internal/trendhunter"
)

type Theme struct {
	Title      lipgloss.Style
	Section    lipgloss.Style
	ActiveLine lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style

	BadgeReady    lipgloss.Style
	BadgeScanning lipgloss.Style

	ChipActive   lipgloss.Style
	ChipInactive lipgloss.Style
	ChipCount    lipgloss.Style

	TitleNew    lipgloss.Style
	TitleSignal lipgloss.Style
	TitleSaved  lipgloss.Style
	TitlePlain  lipgloss.Style

	ScoreHigh lipgloss.Style
	ScoreLow  lipgloss.Style

	Breakout    lipgloss.Style
	PagerActive lipgloss.Style
	PagerMuted  lipgloss.Style

	ScanOK   lipgloss.Style
	ScanFail lipgloss.Style

	Notice lipgloss.Style
	Empty  lipgloss.Style
}

func Default() Theme {
	cpRosewater := lipgloss.Color("#f5e0dc")
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		ActiveLine: lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),
		MetaLabel:  lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:  lipgloss.NewStyle().Foreground(cpSubtext1),

		BadgeReady:    lipgloss.NewStyle().Foreground(cpGreen).Bold(true),
		BadgeScanning: lipgloss.NewStyle().Foreground(cpPeach).Bold(true),

		ChipActive:   lipgloss.NewStyle().Foreground(cpSurface0).Background(cpLavender).Padding(0, 1),
		ChipInactive: lipgloss.NewStyle().Foreground(cpLavender).Padding(0, 1),
		ChipCount:    lipgloss.NewStyle().Foreground(cpYellow),

		TitleNew:    lipgloss.NewStyle().Bold(true).Foreground(cpText),
		TitleSignal: lipgloss.NewStyle().Bold(true).Foreground(cpRosewater),
		TitleSaved:  lipgloss.NewStyle().Italic(true).Foreground(cpLavender),
		TitlePlain:  lipgloss.NewStyle().Foreground(cpSubtext0),

		ScoreHigh: lipgloss.NewStyle().Foreground(cpYellow).Bold(true),
		ScoreLow:  lipgloss.NewStyle().Foreground(cpOverlay1),

		Breakout:    lipgloss.NewStyle().Foreground(cpRed).Bold(true),
		PagerActive: lipgloss.NewStyle().Foreground(cpTeal),
		PagerMuted:  lipgloss.NewStyle().Foreground(cpOverlay1),

		ScanOK:   lipgloss.NewStyle().Foreground(cpGreen),
		ScanFail: lipgloss.NewStyle().Foreground(cpRed),

		Notice: lipgloss.NewStyle().Foreground(cpYellow),
		Empty:  lipgloss.NewStyle().Foreground(cpOverlay1).Italic(true),
	}
}

// StyleNewsTitle picks the title style matching the card's flags. Saved is
// the effective value after the local overlay, not the raw server flag.
func (t Theme) StyleNewsTitle(item trendhunter.NewsItem, saved bool, title string) string {
	if title == "" {
		return title
	}
	switch {
	case item.HasTrendSignal():
		return t.TitleSignal.Render(title)
	case item.NewFlag():
		return t.TitleNew.Render(title)
	case saved:
		return t.TitleSaved.Render(title)
	default:
		return t.TitlePlain.Render(title)
	}
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}
