package actions

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/serhatramay/trend-hunter-pro/internal/app"
	"github.com/serhatramay/trend-hunter-pro/internal/trendhunter"
)

type Service interface {
	Resync(ctx context.Context, query app.ResyncQuery) (app.Snapshot, error)
	Discover(ctx context.Context, params trendhunter.DiscoverParams) (trendhunter.DiscoverResult, error)
	AddKeyword(ctx context.Context, keyword string) error
	DeleteKeyword(ctx context.Context, keyword string) error
	ToggleSave(ctx context.Context, id int64) (bool, error)
	TriggerScan(ctx context.Context) (trendhunter.ScanResult, error)
	UpdateSettings(ctx context.Context, update trendhunter.SettingsUpdate) error
	MarkSeen(ctx context.Context) error
	SavePreferences(ctx context.Context, prefs app.Preferences) error
}

// ResyncSuccessMsg carries two sequence numbers: Seq orders whole snapshots,
// DiscSeq orders the embedded discover payload against standalone discover
// fetches so neither can roll the other back.
type ResyncSuccessMsg struct {
	Seq      uint64
	DiscSeq  uint64
	Snapshot app.Snapshot
	Source   string
}

type ResyncErrorMsg struct {
	Seq    uint64
	Err    error
	Source string
}

type DiscoverSuccessMsg struct {
	Seq    uint64
	Result trendhunter.DiscoverResult
}

type DiscoverErrorMsg struct {
	Seq uint64
	Err error
}

type KeywordAddedMsg struct {
	Keyword        string
	FromSuggestion bool
}

type KeywordDeletedMsg struct {
	Keyword string
}

type KeywordActionErrorMsg struct {
	Keyword string
	Err     error
}

type SaveToggledMsg struct {
	ID    int64
	Saved bool
	At    time.Time
}

type SaveToggleErrorMsg struct {
	ID  int64
	Err error
}

type ScanFinishedMsg struct {
	Result trendhunter.ScanResult
}

type ScanErrorMsg struct {
	Err error
}

type SettingsUpdatedMsg struct {
	Update trendhunter.SettingsUpdate
}

type SettingsErrorMsg struct {
	Err error
}

type MarkSeenDoneMsg struct{}

type MarkSeenErrorMsg struct {
	Err error
}

type PollTickMsg struct {
	At time.Time
}

func ResyncCmd(service Service, seq, discSeq uint64, query app.ResyncQuery, source string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		snapshot, err := service.Resync(ctx, query)
		if err != nil {
			return ResyncErrorMsg{Seq: seq, Err: err, Source: source}
		}
		return ResyncSuccessMsg{Seq: seq, DiscSeq: discSeq, Snapshot: snapshot, Source: source}
	}
}

func DiscoverCmd(service Service, seq uint64, params trendhunter.DiscoverParams) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		result, err := service.Discover(ctx, params)
		if err != nil {
			return DiscoverErrorMsg{Seq: seq, Err: err}
		}
		return DiscoverSuccessMsg{Seq: seq, Result: result}
	}
}

func AddKeywordCmd(service Service, keyword string, fromSuggestion bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := service.AddKeyword(ctx, keyword); err != nil {
			return KeywordActionErrorMsg{Keyword: keyword, Err: err}
		}
		return KeywordAddedMsg{Keyword: keyword, FromSuggestion: fromSuggestion}
	}
}

func DeleteKeywordCmd(service Service, keyword string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := service.DeleteKeyword(ctx, keyword); err != nil {
			return KeywordActionErrorMsg{Keyword: keyword, Err: err}
		}
		return KeywordDeletedMsg{Keyword: keyword}
	}
}

func ToggleSaveCmd(service Service, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		saved, err := service.ToggleSave(ctx, id)
		if err != nil {
			return SaveToggleErrorMsg{ID: id, Err: err}
		}
		return SaveToggledMsg{ID: id, Saved: saved, At: time.Now()}
	}
}

// TriggerScanCmd uses a long timeout because a scan walks every feed
// before responding.
func TriggerScanCmd(service Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		result, err := service.TriggerScan(ctx)
		if err != nil {
			return ScanErrorMsg{Err: err}
		}
		return ScanFinishedMsg{Result: result}
	}
}

func UpdateSettingsCmd(service Service, update trendhunter.SettingsUpdate) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := service.UpdateSettings(ctx, update); err != nil {
			return SettingsErrorMsg{Err: err}
		}
		return SettingsUpdatedMsg{Update: update}
	}
}

func MarkSeenCmd(service Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := service.MarkSeen(ctx); err != nil {
			return MarkSeenErrorMsg{Err: err}
		}
		return MarkSeenDoneMsg{}
	}
}

// SavePreferencesCmd persists display toggles in the background. Failures
// are intentionally dropped; preferences are not worth a notice.
func SavePreferencesCmd(service Service, prefs app.Preferences) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = service.SavePreferences(ctx, prefs)
		return nil
	}
}

// PollCmd schedules the next periodic resync tick.
func PollCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PollTickMsg{At: t}
	})
}

// ScanNotice builds the user-facing summary for a finished scan.
func ScanNotice(result trendhunter.ScanResult) string {
	if result.NewArticles == 1 {
		return "1 new article found"
	}
	return fmt.Sprintf("%d new articles found", result.NewArticles)
}
