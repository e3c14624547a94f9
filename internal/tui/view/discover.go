package view

import (
	"fmt"
	"strings"

	"github.com/serhatramay/trend-hunter-pro/internal/trendhunter"
	"github.com/serhatramay/trend-hunter-pro/internal/tui/state"
	"github.com/serhatramay/trend-hunter-pro/internal/tui/theme"
)

type DiscoverPanelParams struct {
	Result     trendhunter.DiscoverResult
	Timeframe  string
	PerPage    int
	Page       int
	TotalPages int
	Cursor     int
	Focused    bool
	Width      int
}

// DiscoverItemAt resolves a flat cursor index into the rising-then-top
// ordering the panel renders with.
func DiscoverItemAt(res trendhunter.DiscoverResult, idx int) (trendhunter.DiscoverItem, bool) {
	if idx < 0 {
		return trendhunter.DiscoverItem{}, false
	}
	if idx < len(res.Rising.Items) {
		return res.Rising.Items[idx], true
	}
	idx -= len(res.Rising.Items)
	if idx < len(res.Top.Items) {
		return res.Top.Items[idx], true
	}
	return trendhunter.DiscoverItem{}, false
}

// DiscoverItemCount is the number of selectable rows on the current page.
func DiscoverItemCount(res trendhunter.DiscoverResult) int {
	return len(res.Rising.Items) + len(res.Top.Items)
}

// RenderDiscoverPanel draws the rising and top query lists with a shared
// pager line underneath.
func RenderDiscoverPanel(p DiscoverPanelParams, th theme.Theme) string {
	var b strings.Builder

	header := th.Section.Render("Discover") + "  " +
		th.MetaLabel.Render("timeframe ") + th.MetaValue.Render(p.Timeframe) + "  " +
		th.MetaLabel.Render("per page ") + th.MetaValue.Render(fmt.Sprintf("%d", p.PerPage))
	b.WriteString(header)
	b.WriteByte('\n')

	if len(p.Result.SourceKeywords) > 0 {
		clean := make([]string, len(p.Result.SourceKeywords))
		for i, kw := range p.Result.SourceKeywords {
			clean[i] = SanitizeText(kw)
		}
		b.WriteString(th.MetaLabel.Render("from ") + th.MetaValue.Render(strings.Join(clean, ", ")))
		b.WriteByte('\n')
	}

	if DiscoverItemCount(p.Result) == 0 {
		b.WriteString(th.Empty.Render("No discover queries yet."))
		b.WriteByte('\n')
		return b.String()
	}

	idx := 0
	idx = renderDiscoverSection(&b, "Rising", p.Result.Rising.Items, p, idx, th)
	renderDiscoverSection(&b, "Top", p.Result.Top.Items, p, idx, th)

	b.WriteString(renderDiscoverPager(p.Page, p.TotalPages, th))
	return b.String()
}

func renderDiscoverSection(b *strings.Builder, label string, items []trendhunter.DiscoverItem, p DiscoverPanelParams, idx int, th theme.Theme) int {
	if len(items) == 0 {
		return idx
	}
	b.WriteString(th.Section.Render(label))
	b.WriteByte('\n')
	for _, item := range items {
		line := renderDiscoverLine(item, th)
		if p.Focused && idx == p.Cursor {
			line = th.RenderActiveLine(true, line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteByte('\n')
		idx++
	}
	return idx
}

func renderDiscoverLine(item trendhunter.DiscoverItem, th theme.Theme) string {
	value := item.FormattedValue
	if value == "" {
		value = fmt.Sprintf("%d", item.Value)
	}
	valueStyle := th.MetaValue
	if strings.Contains(strings.ToLower(value), "breakout") {
		valueStyle = th.Breakout
	}
	line := SanitizeText(item.Query) + " " + valueStyle.Render(value)
	if len(item.FromKeywords) > 0 {
		clean := make([]string, len(item.FromKeywords))
		for i, kw := range item.FromKeywords {
			clean[i] = SanitizeText(kw)
		}
		line += " " + th.MetaLabel.Render("("+strings.Join(clean, ", ")+")")
	}
	return line
}

func renderDiscoverPager(page, totalPages int, th theme.Theme) string {
	prev := th.PagerMuted.Render("‹ prev")
	if state.CanPrevPage(page) {
		prev = th.PagerActive.Render("‹ prev")
	}
	next := th.PagerMuted.Render("next ›")
	if state.CanNextPage(page, totalPages) {
		next = th.PagerActive.Render("next ›")
	}
	middle := th.MetaValue.Render(fmt.Sprintf("page %d/%d", page, totalPages))
	return prev + "  " + middle + "  " + next
}
