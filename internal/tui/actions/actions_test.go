package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/serhatramay/trend-hunter-pro/internal/app"
	"github.com/serhatramay/trend-hunter-pro/internal/trendhunter"
)

type fakeService struct {
	snapshot  app.Snapshot
	resyncErr error

	discoverResult trendhunter.DiscoverResult
	discoverErr    error

	keywordErr  error
	toggleSaved bool
	toggleErr   error

	scanResult trendhunter.ScanResult
	scanErr    error

	settingsErr error
	markSeenErr error

	lastResyncDeadline time.Time
	lastScanDeadline   time.Time
	lastQuery          app.ResyncQuery
	lastDiscover       trendhunter.DiscoverParams
	lastKeyword        string
	lastToggleID       int64
	lastUpdate         trendhunter.SettingsUpdate
	lastPrefs          app.Preferences
	markSeenCalled     bool
}

func (f *fakeService) Resync(ctx context.Context, query app.ResyncQuery) (app.Snapshot, error) {
	if dl, ok := ctx.Deadline(); ok {
		f.lastResyncDeadline = dl
	}
	f.lastQuery = query
	if f.resyncErr != nil {
		return app.Snapshot{}, f.resyncErr
	}
	return f.snapshot, nil
}

func (f *fakeService) Discover(ctx context.Context, params trendhunter.DiscoverParams) (trendhunter.DiscoverResult, error) {
	f.lastDiscover = params
	if f.discoverErr != nil {
		return trendhunter.DiscoverResult{}, f.discoverErr
	}
	return f.discoverResult, nil
}

func (f *fakeService) AddKeyword(ctx context.Context, keyword string) error {
	f.lastKeyword = keyword
	return f.keywordErr
}

func (f *fakeService) DeleteKeyword(ctx context.Context, keyword string) error {
	f.lastKeyword = keyword
	return f.keywordErr
}

func (f *fakeService) ToggleSave(ctx context.Context, id int64) (bool, error) {
	f.lastToggleID = id
	if f.toggleErr != nil {
		return false, f.toggleErr
	}
	return f.toggleSaved, nil
}

func (f *fakeService) TriggerScan(ctx context.Context) (trendhunter.ScanResult, error) {
	if dl, ok := ctx.Deadline(); ok {
		f.lastScanDeadline = dl
	}
	if f.scanErr != nil {
		return trendhunter.ScanResult{}, f.scanErr
	}
	return f.scanResult, nil
}

func (f *fakeService) UpdateSettings(ctx context.Context, update trendhunter.SettingsUpdate) error {
	f.lastUpdate = update
	return f.settingsErr
}

func (f *fakeService) MarkSeen(ctx context.Context) error {
	f.markSeenCalled = true
	return f.markSeenErr
}

func (f *fakeService) SavePreferences(ctx context.Context, prefs app.Preferences) error {
	f.lastPrefs = prefs
	return nil
}

func TestResyncCmdCarriesSequence(t *testing.T) {
	svc := &fakeService{snapshot: app.Snapshot{NewsTotal: 7}}
	query := app.ResyncQuery{Filter: "new", NewsLimit: 120}

	msg := ResyncCmd(svc, 42, 7, query, "poll")()

	success, ok := msg.(ResyncSuccessMsg)
	if !ok {
		t.Fatalf("expected ResyncSuccessMsg, got %T", msg)
	}
	if success.Seq != 42 || success.DiscSeq != 7 || success.Source != "poll" {
		t.Fatalf("unexpected msg fields: %+v", success)
	}
	if success.Snapshot.NewsTotal != 7 {
		t.Fatalf("snapshot not propagated: %+v", success.Snapshot)
	}
	if svc.lastQuery.Filter != "new" {
		t.Fatalf("query not forwarded: %+v", svc.lastQuery)
	}
	if svc.lastResyncDeadline.IsZero() {
		t.Fatal("resync ran without a deadline")
	}
}

func TestResyncCmdErrorKeepsSequence(t *testing.T) {
	svc := &fakeService{resyncErr: errors.New("boom")}

	msg := ResyncCmd(svc, 9, 9, app.ResyncQuery{}, "manual")()

	errMsg, ok := msg.(ResyncErrorMsg)
	if !ok {
		t.Fatalf("expected ResyncErrorMsg, got %T", msg)
	}
	if errMsg.Seq != 9 || errMsg.Source != "manual" || errMsg.Err == nil {
		t.Fatalf("unexpected error msg: %+v", errMsg)
	}
}

func TestDiscoverCmdForwardsParams(t *testing.T) {
	svc := &fakeService{discoverResult: trendhunter.DiscoverResult{
		Rising: trendhunter.DiscoverList{Page: 3},
	}}
	params := trendhunter.DiscoverParams{Timeframe: "1h", PerPage: 5, Page: 3, Force: true}

	msg := DiscoverCmd(svc, 5, params)()

	success, ok := msg.(DiscoverSuccessMsg)
	if !ok {
		t.Fatalf("expected DiscoverSuccessMsg, got %T", msg)
	}
	if success.Seq != 5 || success.Result.Rising.Page != 3 {
		t.Fatalf("unexpected msg: %+v", success)
	}
	if svc.lastDiscover != params {
		t.Fatalf("params not forwarded: %+v", svc.lastDiscover)
	}
}

func TestAddKeywordCmd(t *testing.T) {
	svc := &fakeService{}

	msg := AddKeywordCmd(svc, "dolar", true)()

	added, ok := msg.(KeywordAddedMsg)
	if !ok {
		t.Fatalf("expected KeywordAddedMsg, got %T", msg)
	}
	if added.Keyword != "dolar" || !added.FromSuggestion {
		t.Fatalf("unexpected msg: %+v", added)
	}

	svc.keywordErr = errors.New("duplicate")
	msg = AddKeywordCmd(svc, "dolar", false)()
	if errMsg, ok := msg.(KeywordActionErrorMsg); !ok || errMsg.Keyword != "dolar" {
		t.Fatalf("expected KeywordActionErrorMsg for dolar, got %#v", msg)
	}
}

func TestDeleteKeywordCmd(t *testing.T) {
	svc := &fakeService{}

	msg := DeleteKeywordCmd(svc, "euro")()

	deleted, ok := msg.(KeywordDeletedMsg)
	if !ok {
		t.Fatalf("expected KeywordDeletedMsg, got %T", msg)
	}
	if deleted.Keyword != "euro" {
		t.Fatalf("unexpected msg: %+v", deleted)
	}
}

func TestToggleSaveCmd(t *testing.T) {
	svc := &fakeService{toggleSaved: true}

	msg := ToggleSaveCmd(svc, 17)()

	toggled, ok := msg.(SaveToggledMsg)
	if !ok {
		t.Fatalf("expected SaveToggledMsg, got %T", msg)
	}
	if toggled.ID != 17 || !toggled.Saved || toggled.At.IsZero() {
		t.Fatalf("unexpected msg: %+v", toggled)
	}
	if svc.lastToggleID != 17 {
		t.Fatalf("id not forwarded: %d", svc.lastToggleID)
	}
}

func TestTriggerScanCmdUsesLongDeadline(t *testing.T) {
	svc := &fakeService{scanResult: trendhunter.ScanResult{NewArticles: 3}}
	start := time.Now()

	msg := TriggerScanCmd(svc)()

	finished, ok := msg.(ScanFinishedMsg)
	if !ok {
		t.Fatalf("expected ScanFinishedMsg, got %T", msg)
	}
	if finished.Result.NewArticles != 3 {
		t.Fatalf("unexpected result: %+v", finished.Result)
	}
	if svc.lastScanDeadline.Before(start.Add(time.Minute)) {
		t.Fatalf("scan deadline too short: %v", svc.lastScanDeadline.Sub(start))
	}
}

func TestUpdateSettingsCmd(t *testing.T) {
	svc := &fakeService{}
	auto := true
	update := trendhunter.SettingsUpdate{AutoScan: &auto}

	msg := UpdateSettingsCmd(svc, update)()

	updated, ok := msg.(SettingsUpdatedMsg)
	if !ok {
		t.Fatalf("expected SettingsUpdatedMsg, got %T", msg)
	}
	if updated.Update.AutoScan == nil || !*updated.Update.AutoScan {
		t.Fatalf("unexpected msg: %+v", updated)
	}
}

func TestMarkSeenCmd(t *testing.T) {
	svc := &fakeService{}

	if msg := MarkSeenCmd(svc)(); msg != (MarkSeenDoneMsg{}) {
		t.Fatalf("expected MarkSeenDoneMsg, got %#v", msg)
	}
	if !svc.markSeenCalled {
		t.Fatal("mark seen never reached the service")
	}

	svc.markSeenErr = errors.New("offline")
	if _, ok := MarkSeenCmd(svc)().(MarkSeenErrorMsg); !ok {
		t.Fatal("expected MarkSeenErrorMsg")
	}
}

func TestScanNotice(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{0, "0 new articles found"},
		{1, "1 new article found"},
		{3, "3 new articles found"},
	}
	for _, tc := range cases {
		got := ScanNotice(trendhunter.ScanResult{NewArticles: tc.count})
		if got != tc.want {
			t.Fatalf("ScanNotice(%d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}
