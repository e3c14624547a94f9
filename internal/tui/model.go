package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/serhatramay/trend-hunter-pro/internal/app"
	"github.com/serhatramay/trend-hunter-pro/internal/trendhunter"
	"github.com/serhatramay/trend-hunter-pro/internal/tui/actions"
	"github.com/serhatramay/trend-hunter-pro/internal/tui/platform"
	"github.com/serhatramay/trend-hunter-pro/internal/tui/state"
	"github.com/serhatramay/trend-hunter-pro/internal/tui/theme"
	"github.com/serhatramay/trend-hunter-pro/internal/tui/view"
)

const (
	focusNews = iota
	focusKeywords
	focusDiscover
)

const (
	defaultPollInterval = 15 * time.Second
	defaultNewsLimit    = 120
	defaultPerPage      = 5

	minScanInterval = 2
	maxScanInterval = 180
)

var timeframes = []string{"4h", "1h"}
var perPageSteps = []int{5, 10, 20}

type clearNoticeMsg struct {
	id int
}

type Model struct {
	service actions.Service
	th      theme.Theme

	status    trendhunter.DashboardStatus
	keywords  []trendhunter.Keyword
	news      []trendhunter.NewsItem
	newsTotal int
	scans     []trendhunter.ScanRecord
	discover  trendhunter.DiscoverResult

	filter        string
	keywordFilter string
	scanPending   bool

	overlay  *state.SavedOverlay
	savedSet map[int64]bool

	timeframe          string
	perPage            int
	discoverPage       int
	discoverTotalPages int

	resyncSeq   uint64
	appliedSeq  uint64
	discSeq     uint64
	discApplied uint64
	loading     bool

	focus          int
	newsCursor     int
	keywordCursor  int
	discoverCursor int

	input       textinput.Model
	inputActive bool
	spin        spinner.Model

	notice   string
	noticeID int
	showHelp bool

	compact      bool
	relativeTime bool

	pollInterval time.Duration
	newsLimit    int

	width  int
	height int

	nowFn     func() time.Time
	openURLFn func(string) error
}

func NewModel(service actions.Service) Model {
	input := textinput.New()
	input.Placeholder = "keyword to track"
	input.CharLimit = 64

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		service:      service,
		th:           theme.Default(),
		filter:       state.FilterAll,
		resyncSeq:    1,
		discSeq:      1,
		overlay:      state.NewSavedOverlay(),
		savedSet:     make(map[int64]bool),
		timeframe:    timeframes[0],
		perPage:      defaultPerPage,
		discoverPage: 1,
		pollInterval: defaultPollInterval,
		newsLimit:    defaultNewsLimit,
		input:        input,
		spin:         spin,
		nowFn:        time.Now,
		openURLFn:    platform.OpenURLInBrowser,
	}
}

// ApplyPreferences restores persisted display toggles before the program
// starts.
func (m *Model) ApplyPreferences(prefs app.Preferences) {
	m.compact = prefs.Compact
	m.relativeTime = prefs.RelativeTime
}

func (m *Model) SetPollInterval(d time.Duration) {
	if d > 0 {
		m.pollInterval = d
	}
}

func (m *Model) SetNewsLimit(limit int) {
	if limit > 0 {
		m.newsLimit = limit
	}
}

func (m Model) Init() tea.Cmd {
	if m.service == nil {
		return nil
	}
	return tea.Batch(
		actions.ResyncCmd(m.service, m.resyncSeq, m.discSeq, m.resyncQuery(), "init"),
		actions.PollCmd(m.pollInterval),
		m.spin.Tick,
	)
}

func (m Model) resyncQuery() app.ResyncQuery {
	return app.ResyncQuery{
		Filter:    m.filter,
		Keyword:   m.keywordFilter,
		NewsLimit: m.newsLimit,
		Discover: trendhunter.DiscoverParams{
			Timeframe: m.timeframe,
			PerPage:   m.perPage,
			Page:      m.discoverPage,
			Keyword:   m.keywordFilter,
		},
	}
}

// startResync issues a sequence-numbered full refresh. Results from older
// sequences are discarded when they arrive. The embedded discover fetch
// takes a slot in the discover sequence too, so it cannot roll back a
// standalone fetch issued after it.
func (m Model) startResync(source string) (Model, tea.Cmd) {
	m.resyncSeq++
	m.discSeq++
	m.loading = true
	return m, actions.ResyncCmd(m.service, m.resyncSeq, m.discSeq, m.resyncQuery(), source)
}

func (m Model) startDiscoverFetch(force bool) (Model, tea.Cmd) {
	m.discSeq++
	params := trendhunter.DiscoverParams{
		Timeframe: m.timeframe,
		PerPage:   m.perPage,
		Page:      m.discoverPage,
		Keyword:   m.keywordFilter,
		Force:     force,
	}
	return m, actions.DiscoverCmd(m.service, m.discSeq, params)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case actions.PollTickMsg:
		next := actions.PollCmd(m.pollInterval)
		if m.inputActive {
			return m, next
		}
		m2, cmd := m.startResync("poll")
		return m2, tea.Batch(cmd, next)

	case actions.ResyncSuccessMsg:
		if msg.Seq <= m.appliedSeq {
			return m, nil
		}
		m.appliedSeq = msg.Seq
		m.loading = false
		m.applySnapshot(msg.Snapshot)
		if msg.DiscSeq > m.discApplied {
			m.discApplied = msg.DiscSeq
			m.applyDiscover(msg.Snapshot.Discover)
		}
		return m, nil

	case actions.ResyncErrorMsg:
		if msg.Seq <= m.appliedSeq {
			return m, nil
		}
		m.loading = false
		return m.withNotice("Refresh failed: "+msg.Err.Error(), 4*time.Second)

	case actions.DiscoverSuccessMsg:
		if msg.Seq <= m.discApplied {
			return m, nil
		}
		m.discApplied = msg.Seq
		m.applyDiscover(msg.Result)
		return m, nil

	case actions.DiscoverErrorMsg:
		if msg.Seq <= m.discApplied {
			return m, nil
		}
		return m.withNotice("Discover failed: "+msg.Err.Error(), 4*time.Second)

	case actions.KeywordAddedMsg:
		m2, cmd := m.startResync("keyword-added")
		notice := "Tracking " + msg.Keyword
		if msg.FromSuggestion {
			notice = "Tracking suggestion " + msg.Keyword
		}
		m3, noticeCmd := m2.withNoticeModel(notice, 3*time.Second)
		return m3, tea.Batch(cmd, noticeCmd)

	case actions.KeywordDeletedMsg:
		if m.keywordFilter == msg.Keyword {
			m.keywordFilter = ""
		}
		m2, cmd := m.startResync("keyword-deleted")
		m3, noticeCmd := m2.withNoticeModel("Stopped tracking "+msg.Keyword, 3*time.Second)
		return m3, tea.Batch(cmd, noticeCmd)

	case actions.KeywordActionErrorMsg:
		return m.withNotice("Keyword "+msg.Keyword+": "+msg.Err.Error(), 4*time.Second)

	case actions.SaveToggledMsg:
		m.overlay.Apply(msg.ID, msg.Saved, msg.At)
		if msg.Saved {
			m.savedSet[msg.ID] = true
		} else {
			delete(m.savedSet, msg.ID)
		}
		m2, cmd := m.startResync("save-toggled")
		return m2, cmd

	case actions.SaveToggleErrorMsg:
		// Revert the optimistic flip.
		saved := !m.savedSet[msg.ID]
		m.overlay.Apply(msg.ID, saved, m.nowFn())
		if saved {
			m.savedSet[msg.ID] = true
		} else {
			delete(m.savedSet, msg.ID)
		}
		return m.withNotice("Save failed: "+msg.Err.Error(), 4*time.Second)

	case actions.ScanFinishedMsg:
		m.scanPending = false
		m2, cmd := m.startResync("scan")
		m3, noticeCmd := m2.withNoticeModel(actions.ScanNotice(msg.Result), 4*time.Second)
		return m3, tea.Batch(cmd, noticeCmd)

	case actions.ScanErrorMsg:
		m.scanPending = false
		return m.withNotice("Scan failed: "+msg.Err.Error(), 4*time.Second)

	case actions.SettingsUpdatedMsg:
		m2, cmd := m.startResync("settings")
		return m2, cmd

	case actions.SettingsErrorMsg:
		return m.withNotice("Settings update failed: "+msg.Err.Error(), 4*time.Second)

	case actions.MarkSeenDoneMsg:
		m2, cmd := m.startResync("mark-seen")
		m3, noticeCmd := m2.withNoticeModel("Marked all articles as seen", 3*time.Second)
		return m3, tea.Batch(cmd, noticeCmd)

	case actions.MarkSeenErrorMsg:
		return m.withNotice("Mark seen failed: "+msg.Err.Error(), 4*time.Second)

	case clearNoticeMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// applySnapshot installs everything but the discover payload, which goes
// through the discover staleness gate in the caller.
func (m *Model) applySnapshot(snap app.Snapshot) {
	m.status = snap.Status
	m.keywords = snap.Keywords
	m.news = snap.News
	m.newsTotal = snap.NewsTotal
	m.scans = snap.Scans
	m.savedSet = m.overlay.Merge(state.ServerSavedSet(snap.News), snap.StartedAt)
	m.newsCursor = state.ClampCursor(m.newsCursor, len(m.news))
	m.keywordCursor = state.ClampCursor(m.keywordCursor, len(m.keywords))
}

func (m *Model) applyDiscover(res trendhunter.DiscoverResult) {
	m.discover = res
	page, totalPages := state.DiscoverPagination(res.Rising, res.Top)
	m.discoverTotalPages = totalPages
	m.discoverPage = state.ClampPage(page, totalPages)
	m.discoverCursor = state.ClampCursor(m.discoverCursor, view.DiscoverItemCount(res))
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputActive {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}

	if m.showHelp {
		if msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "r":
		m2, cmd := m.startResync("manual")
		return m2, cmd
	case "R":
		return m.startDiscoverFetch(true)
	case "tab":
		m.focus = (m.focus + 1) % 3
		return m, nil
	case "shift+tab":
		m.focus = (m.focus + 2) % 3
		return m, nil
	case "j", "down":
		m.moveCursor(1)
		return m, nil
	case "k", "up":
		m.moveCursor(-1)
		return m, nil
	case "f":
		m.filter = state.NextFilter(m.filter)
		m2, cmd := m.startResync("filter")
		return m2, cmd
	case "enter":
		return m.handleEnter()
	case "a":
		m.inputActive = true
		m.input.SetValue("")
		return m, m.input.Focus()
	case "d", "x":
		if m.focus == focusKeywords && m.keywordCursor < len(m.keywords) {
			return m, actions.DeleteKeywordCmd(m.service, m.keywords[m.keywordCursor].Keyword)
		}
		return m, nil
	case "s":
		return m.toggleSaveCurrent()
	case "o":
		return m.openCurrentLink()
	case "S":
		if m.scanPending || m.status.IsScanning {
			return m, nil
		}
		m.scanPending = true
		return m, actions.TriggerScanCmd(m.service)
	case "m":
		return m, actions.MarkSeenCmd(m.service)
	case "t":
		m.timeframe = nextChoice(timeframes, m.timeframe)
		m.discoverPage = 1
		m.discoverCursor = 0
		return m.startDiscoverFetch(false)
	case "p":
		m.perPage = nextIntChoice(perPageSteps, m.perPage)
		m.discoverPage = 1
		m.discoverCursor = 0
		return m.startDiscoverFetch(false)
	case "left", "h":
		if !state.CanPrevPage(m.discoverPage) {
			return m, nil
		}
		m.discoverPage--
		m.discoverCursor = 0
		return m.startDiscoverFetch(false)
	case "right", "l":
		if !state.CanNextPage(m.discoverPage, m.discoverTotalPages) {
			return m, nil
		}
		m.discoverPage++
		m.discoverCursor = 0
		return m.startDiscoverFetch(false)
	case "A":
		auto := !m.status.AutoScan
		return m, actions.UpdateSettingsCmd(m.service, trendhunter.SettingsUpdate{AutoScan: &auto})
	case "[":
		return m.adjustInterval(-5)
	case "]":
		return m.adjustInterval(5)
	case "c":
		m.compact = !m.compact
		return m, actions.SavePreferencesCmd(m.service, m.preferences())
	case "e":
		m.relativeTime = !m.relativeTime
		return m, actions.SavePreferencesCmd(m.service, m.preferences())
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.inputActive = false
		m.input.Blur()
		return m, nil
	case "enter":
		keyword := strings.TrimSpace(m.input.Value())
		m.inputActive = false
		m.input.Blur()
		if keyword == "" {
			return m, nil
		}
		return m, actions.AddKeywordCmd(m.service, keyword, false)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusKeywords:
		if m.keywordCursor >= len(m.keywords) {
			return m, nil
		}
		selected := m.keywords[m.keywordCursor].Keyword
		m.keywordFilter = state.ToggleKeywordFilter(m.keywordFilter, selected)
		m2, cmd := m.startResync("keyword-filter")
		return m2, cmd
	case focusDiscover:
		item, ok := view.DiscoverItemAt(m.discover, m.discoverCursor)
		if !ok {
			return m, nil
		}
		return m, actions.AddKeywordCmd(m.service, item.Query, true)
	}
	return m, nil
}

func (m Model) toggleSaveCurrent() (tea.Model, tea.Cmd) {
	if m.focus != focusNews || m.newsCursor >= len(m.news) {
		return m, nil
	}
	item := m.news[m.newsCursor]
	next := !m.savedSet[item.ID]
	m.overlay.Apply(item.ID, next, m.nowFn())
	if next {
		m.savedSet[item.ID] = true
	} else {
		delete(m.savedSet, item.ID)
	}
	return m, actions.ToggleSaveCmd(m.service, item.ID)
}

func (m Model) openCurrentLink() (tea.Model, tea.Cmd) {
	if m.focus != focusNews || m.newsCursor >= len(m.news) {
		return m, nil
	}
	link, err := platform.ValidateArticleURL(m.news[m.newsCursor].Link)
	if err != nil {
		return m.withNotice(err.Error(), 3*time.Second)
	}
	if err := m.openURLFn(link); err != nil {
		return m.withNotice("Could not open link", 3*time.Second)
	}
	return m.withNotice("Opened link in browser", 3*time.Second)
}

func (m Model) adjustInterval(delta int) (tea.Model, tea.Cmd) {
	interval := m.status.IntervalMinutes + delta
	if interval < minScanInterval {
		interval = minScanInterval
	}
	if interval > maxScanInterval {
		interval = maxScanInterval
	}
	if interval == m.status.IntervalMinutes {
		return m, nil
	}
	return m, actions.UpdateSettingsCmd(m.service, trendhunter.SettingsUpdate{IntervalMinutes: &interval})
}

func (m *Model) moveCursor(delta int) {
	switch m.focus {
	case focusNews:
		m.newsCursor = state.ClampCursor(m.newsCursor+delta, len(m.news))
	case focusKeywords:
		m.keywordCursor = state.ClampCursor(m.keywordCursor+delta, len(m.keywords))
	case focusDiscover:
		m.discoverCursor = state.ClampCursor(m.discoverCursor+delta, view.DiscoverItemCount(m.discover))
	}
}

func (m Model) preferences() app.Preferences {
	return app.Preferences{Compact: m.compact, RelativeTime: m.relativeTime}
}

// withNotice replaces the single notice slot and schedules its dismissal.
// An older pending dismissal is invalidated by bumping the slot id.
func (m Model) withNotice(text string, after time.Duration) (tea.Model, tea.Cmd) {
	m2, cmd := m.withNoticeModel(text, after)
	return m2, cmd
}

func (m Model) withNoticeModel(text string, after time.Duration) (Model, tea.Cmd) {
	m.notice = text
	m.noticeID++
	return m, clearNoticeCmd(m.noticeID, after)
}

func clearNoticeCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}

func nextChoice(choices []string, current string) string {
	for i, c := range choices {
		if c == current {
			return choices[(i+1)%len(choices)]
		}
	}
	return choices[0]
}

func nextIntChoice(choices []int, current int) int {
	for i, c := range choices {
		if c == current {
			return choices[(i+1)%len(choices)]
		}
	}
	return choices[0]
}
