package tui

import (
	"strings"

	"github.com/serhatramay/trend-hunter-pro/internal/tui/view"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.th.Title.Render("Trend Hunter"))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.helpView())
		b.WriteString("\n")
		b.WriteString(m.messagePanel())
		return b.String()
	}

	b.WriteString(view.RenderStatusBar(view.StatusBarParams{
		Status:       m.status,
		ScanPending:  m.scanPending,
		Spinner:      m.spin.View(),
		RelativeTime: m.relativeTime,
		Now:          m.nowFn(),
		Width:        m.width,
	}, m.th))
	b.WriteString("\n\n")

	b.WriteString(m.th.Section.Render("Keywords"))
	if m.keywordFilter != "" {
		b.WriteString(" " + m.th.MetaLabel.Render("filtering by ") + m.th.MetaValue.Render(view.SanitizeText(m.keywordFilter)))
	}
	b.WriteString("\n")
	b.WriteString(view.RenderKeywordChips(view.KeywordChipsParams{
		Keywords:     m.keywords,
		ActiveFilter: m.keywordFilter,
		Cursor:       m.keywordCursor,
		Focused:      m.focus == focusKeywords,
	}, m.th))
	b.WriteString("\n\n")

	b.WriteString(m.th.Section.Render("News") + " " + m.th.MetaLabel.Render("filter ") + m.th.MetaValue.Render(m.filter))
	if m.loading {
		b.WriteString(" " + m.th.MetaLabel.Render("refreshing..."))
	}
	b.WriteString("\n")
	b.WriteString(view.RenderNewsList(view.NewsListParams{
		Items:        m.news,
		Total:        m.newsTotal,
		SavedSet:     m.savedSet,
		Cursor:       m.newsCursor,
		Focused:      m.focus == focusNews,
		Width:        m.width,
		Compact:      m.compact,
		RelativeTime: m.relativeTime,
		Now:          m.nowFn(),
	}, m.th))
	b.WriteString("\n\n")

	b.WriteString(view.RenderDiscoverPanel(view.DiscoverPanelParams{
		Result:     m.discover,
		Timeframe:  m.timeframe,
		PerPage:    m.perPage,
		Page:       m.discoverPage,
		TotalPages: m.discoverTotalPages,
		Cursor:     m.discoverCursor,
		Focused:    m.focus == focusDiscover,
		Width:      m.width,
	}, m.th))
	b.WriteString("\n\n")

	b.WriteString(m.th.Section.Render("Scan History"))
	b.WriteString("\n")
	b.WriteString(view.RenderScanHistory(view.ScanHistoryParams{
		Scans:        m.scans,
		Limit:        5,
		RelativeTime: m.relativeTime,
		Now:          m.nowFn(),
	}, m.th))
	b.WriteString("\n")

	if m.inputActive {
		b.WriteString("\n")
		b.WriteString(m.th.Section.Render("Add keyword") + " " + m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.messagePanel())
	return b.String()
}

func (m Model) messagePanel() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(m.th.Notice.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) footer() string {
	return m.th.MetaLabel.Render("tab: panel | j/k: move | enter: select | f: filter | s: save | o: open | a: add | d: delete | S: scan | m: seen | t/p: timeframe/size | ←/→: page | r: refresh | ?: help | q: quit")
}

func (m Model) helpView() string {
	lines := []string{
		"Navigation",
		"  tab / shift+tab  cycle between news, keywords and discover",
		"  j / k            move within the focused panel",
		"",
		"News",
		"  f                cycle status filter (all, new, saved)",
		"  s                save or unsave the selected article",
		"  o                open the selected article in a browser",
		"  m                mark every new article as seen",
		"",
		"Keywords",
		"  a                track a new keyword",
		"  enter            filter news by the selected keyword",
		"  d / x            stop tracking the selected keyword",
		"",
		"Discover",
		"  enter            track the selected suggestion",
		"  t                switch timeframe",
		"  p                change page size",
		"  left / right     previous or next page",
		"  R                force-refresh suggestions",
		"",
		"Scanning",
		"  S                trigger a scan now",
		"  A                toggle automatic scanning",
		"  [ / ]            shrink or grow the scan interval",
		"",
		"Display",
		"  c                toggle compact layout",
		"  e                toggle relative timestamps",
		"",
		"Press ? or esc to close this help.",
	}
	return strings.Join(lines, "\n")
}
