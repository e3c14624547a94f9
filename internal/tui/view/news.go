package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/serhatramay/trend-hunter-pro/internal/trendhunter"
	"github.com/serhatramay/trend-hunter-pro/internal/tui/theme"
)

type NewsListParams struct {
	Items        []trendhunter.NewsItem
	Total        int
	SavedSet     map[int64]bool
	Cursor       int
	Focused      bool
	Width        int
	Compact      bool
	RelativeTime bool
	Now          time.Time
}

// RenderNewsList draws the article feed. Saved status comes from the
// caller's saved set, which already folds local edits over the server
// payload.
func RenderNewsList(p NewsListParams, th theme.Theme) string {
	if len(p.Items) == 0 {
		return th.Empty.Render("No matching articles.")
	}

	width := p.Width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	for i, item := range p.Items {
		saved := p.SavedSet[item.ID]
		line := renderNewsLine(item, saved, width, th)
		if p.Focused && i == p.Cursor {
			line = th.RenderActiveLine(true, line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteByte('\n')
		if !p.Compact {
			b.WriteString("    " + newsMetaLine(item, p.RelativeTime, p.Now, th))
			b.WriteByte('\n')
		}
	}
	b.WriteString(th.MetaLabel.Render(fmt.Sprintf("showing %d of %d", len(p.Items), p.Total)))
	return b.String()
}

func renderNewsLine(item trendhunter.NewsItem, saved bool, width int, th theme.Theme) string {
	var markers []string
	if item.NewFlag() {
		markers = append(markers, th.TitleNew.Render("N"))
	}
	if item.HasTrendSignal() {
		markers = append(markers, th.TitleSignal.Render("▲"))
	}
	if saved {
		markers = append(markers, th.TitleSaved.Render("★"))
	}
	marker := strings.Join(markers, "")
	if marker == "" {
		marker = " "
	}

	score := th.ScoreLow
	if item.TrendScore >= 50 {
		score = th.ScoreHigh
	}
	scoreCol := score.Render(fmt.Sprintf("%3d", item.TrendScore))

	title := SanitizeText(item.Title)
	budget := width - 12
	if budget < 10 {
		budget = 10
	}
	title = truncateRunes(title, budget)

	return marker + " " + scoreCol + " " + th.StyleNewsTitle(item, saved, title)
}

func newsMetaLine(item trendhunter.NewsItem, relative bool, now time.Time, th theme.Theme) string {
	parts := []string{th.MetaValue.Render(SanitizeText(item.Source))}
	if item.Keyword != "" {
		parts = append(parts, th.MetaLabel.Render("via ")+th.MetaValue.Render(SanitizeText(item.Keyword)))
	}
	parts = append(parts, th.MetaLabel.Render(FormatTimestamp(item.PublishedAt, relative, now)))
	return strings.Join(parts, th.MetaLabel.Render(" · "))
}
