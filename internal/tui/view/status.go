package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/serhatramay/trend-hunter-pro/internal/trendhunter"
	"github.com/serhatramay/trend-hunter-pro/internal/tui/theme"
)

type StatusBarParams struct {
	Status       trendhunter.DashboardStatus
	ScanPending  bool
	Spinner      string
	RelativeTime bool
	Now          time.Time
	Width        int
}

// RenderStatusBar draws the dashboard header: scan badge, counters and
// the last scan time.
func RenderStatusBar(p StatusBarParams, th theme.Theme) string {
	var badge string
	if p.ScanPending || p.Status.IsScanning {
		marker := p.Spinner
		if marker == "" {
			marker = "●"
		}
		badge = th.BadgeScanning.Render(marker + " scanning")
	} else {
		badge = th.BadgeReady.Render("● ready")
	}

	counters := []string{
		counter(th, "news", p.Status.TotalNews),
		counter(th, "new", p.Status.NewCount),
		counter(th, "saved", p.Status.SavedCount),
		counter(th, "keywords", p.Status.KeywordCount),
		counter(th, "scans", p.Status.ScanCount),
	}

	lastScan := th.MetaLabel.Render("last scan ") +
		th.MetaValue.Render(FormatTimestamp(p.Status.LastScanTime, p.RelativeTime, p.Now))

	auto := "off"
	if p.Status.AutoScan {
		auto = fmt.Sprintf("every %dm", p.Status.IntervalMinutes)
	}
	autoScan := th.MetaLabel.Render("auto-scan ") + th.MetaValue.Render(auto)

	line := badge + "  " + strings.Join(counters, "  ") + "  " + lastScan + "  " + autoScan
	if p.Width > 0 && visibleLen(line) > p.Width {
		line = badge + "  " + strings.Join(counters, "  ")
	}
	return line
}

func counter(th theme.Theme, label string, n int) string {
	return th.MetaValue.Render(fmt.Sprintf("%d", n)) + " " + th.MetaLabel.Render(label)
}
