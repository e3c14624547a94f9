package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/serhatramay/trend-hunter-pro/internal/trendhunter"
	"github.com/serhatramay/trend-hunter-pro/internal/tui/theme"
)

type ScanHistoryParams struct {
	Scans        []trendhunter.ScanRecord
	Limit        int
	RelativeTime bool
	Now          time.Time
}

// RenderScanHistory draws the most recent scans, newest first as the
// server returns them.
func RenderScanHistory(p ScanHistoryParams, th theme.Theme) string {
	if len(p.Scans) == 0 {
		return th.Empty.Render("No scans recorded yet.")
	}

	scans := p.Scans
	if p.Limit > 0 && len(scans) > p.Limit {
		scans = scans[:p.Limit]
	}

	var b strings.Builder
	for i, scan := range scans {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(renderScanLine(scan, p.RelativeTime, p.Now, th))
	}
	return b.String()
}

func renderScanLine(scan trendhunter.ScanRecord, relative bool, now time.Time, th theme.Theme) string {
	when := FormatTimestamp(scan.StartedAt, relative, now)
	if scan.Succeeded() {
		return th.ScanOK.Render("✓") + " " + th.MetaValue.Render(when) + "  " +
			th.MetaValue.Render(fmt.Sprintf("+%d new", scan.NewArticles)) +
			th.MetaLabel.Render(fmt.Sprintf(" / %d total", scan.TotalArticles))
	}
	msg := SanitizeText(scan.Error)
	if msg == "" {
		msg = "scan failed"
	}
	return th.ScanFail.Render("✗") + " " + th.MetaValue.Render(when) + "  " + th.ScanFail.Render(msg)
}
