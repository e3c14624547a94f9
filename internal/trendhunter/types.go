package trendhunter

// DashboardStatus is the aggregate counters panel returned by GET /api/status.
// It is replaced wholesale on every resync.
type DashboardStatus struct {
	TotalNews       int    `json:"total_news"`
	NewCount        int    `json:"new_count"`
	SavedCount      int    `json:"saved_count"`
	KeywordCount    int    `json:"keyword_count"`
	ScanCount       int    `json:"scan_count"`
	LastScanTime    string `json:"last_scan_time"`
	AutoScan        bool   `json:"auto_scan"`
	IntervalMinutes int    `json:"interval_minutes"`
	IsScanning      bool   `json:"is_scanning"`
}

// Keyword is a tracked search term plus how many articles matched it.
type Keyword struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// NewsItem is one scanned article. The backend stores boolean flags as
// 0/1 integers, so they arrive as numbers on the wire.
type NewsItem struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Link         string `json:"link"`
	Source       string `json:"source"`
	Keyword      string `json:"keyword"`
	TrendScore   int    `json:"trend_score"`
	TrendSignal  int    `json:"trend_signal"`
	PublishedAt  string `json:"published_at"`
	DiscoveredAt string `json:"discovered_at"`
	IsNew        int    `json:"is_new"`
	Saved        int    `json:"saved"`
}

func (n NewsItem) HasTrendSignal() bool { return n.TrendSignal != 0 }
func (n NewsItem) NewFlag() bool        { return n.IsNew != 0 }
func (n NewsItem) SavedFlag() bool      { return n.Saved != 0 }

// ScanRecord is one row of the scan history, newest first from the server.
type ScanRecord struct {
	StartedAt     string `json:"started_at"`
	FinishedAt    string `json:"finished_at"`
	NewArticles   int    `json:"new_articles"`
	TotalArticles int    `json:"total_articles"`
	Success       int    `json:"success"`
	Error         string `json:"error"`
}

func (s ScanRecord) Succeeded() bool { return s.Success != 0 }

// ScanResult is the response of a manual scan trigger.
type ScanResult struct {
	NewArticles    int `json:"newArticles"`
	TotalProcessed int `json:"totalProcessed"`
	TotalArticles  int `json:"totalArticles"`
}

// DiscoverItem is one ranked candidate query from the trend collaborator.
type DiscoverItem struct {
	Query          string   `json:"query"`
	Value          int      `json:"value"`
	FormattedValue string   `json:"formatted_value"`
	FromKeywords   []string `json:"from_keywords"`
}

// DiscoverList is one of the two ranked collections (rising or top),
// each carrying its own pagination counters.
type DiscoverList struct {
	Items      []DiscoverItem `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

// DiscoverResult is the full payload of GET /api/discover.
type DiscoverResult struct {
	SourceKeywords []string     `json:"source_keywords"`
	Rising         DiscoverList `json:"rising"`
	Top            DiscoverList `json:"top"`
}

// DiscoverParams selects what one discover fetch asks for. Force bypasses
// the server-side trend cache and is reserved for explicit refreshes.
type DiscoverParams struct {
	Timeframe string
	PerPage   int
	Page      int
	Keyword   string
	Force     bool
}

// SettingsUpdate carries the optional fields of POST /api/settings.
// Nil fields are omitted so the server keeps their current values.
type SettingsUpdate struct {
	AutoScan        *bool `json:"auto_scan,omitempty"`
	IntervalMinutes *int  `json:"interval_minutes,omitempty"`
}
