package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/serhatramay/trend-hunter-pro/internal/trendhunter"
)

type DashboardClient interface {
	Status(ctx context.Context) (trendhunter.DashboardStatus, error)
	Keywords(ctx context.Context) ([]trendhunter.Keyword, error)
	News(ctx context.Context, filter, keyword string, limit int) ([]trendhunter.NewsItem, int, error)
	Scans(ctx context.Context) ([]trendhunter.ScanRecord, error)
	Discover(ctx context.Context, params trendhunter.DiscoverParams) (trendhunter.DiscoverResult, error)
	AddKeyword(ctx context.Context, keyword string) error
	DeleteKeyword(ctx context.Context, keyword string) error
	ToggleSave(ctx context.Context, id int64) (bool, error)
	TriggerScan(ctx context.Context) (trendhunter.ScanResult, error)
	UpdateSettings(ctx context.Context, update trendhunter.SettingsUpdate) error
	MarkSeen(ctx context.Context) error
}

type PreferencesStore interface {
	LoadPreferences(ctx context.Context) (Preferences, error)
	SavePreferences(ctx context.Context, prefs Preferences) error
}

// Preferences are display-only settings kept across sessions. Dashboard
// state (filters, cursors, saved overlay) is deliberately not persisted.
type Preferences struct {
	Compact      bool
	RelativeTime bool
}

// ResyncQuery selects what one coordinated refetch asks the backend for.
type ResyncQuery struct {
	Filter    string
	Keyword   string
	NewsLimit int
	Discover  trendhunter.DiscoverParams
}

// Snapshot is one consistent view of all five dashboard resources.
// StartedAt marks when the fetches were issued, so the caller can decide
// whether locally applied edits are newer than this data.
type Snapshot struct {
	StartedAt time.Time
	Status    trendhunter.DashboardStatus
	Keywords  []trendhunter.Keyword
	News      []trendhunter.NewsItem
	NewsTotal int
	Scans     []trendhunter.ScanRecord
	Discover  trendhunter.DiscoverResult
}

type Service struct {
	client DashboardClient
	prefs  PreferencesStore
}

func NewService(client DashboardClient, prefs PreferencesStore) *Service {
	return &Service{client: client, prefs: prefs}
}

// Resync fetches status, keywords, news and scan history concurrently, then
// issues the dependent discover fetch with the query's discover parameters.
// Any failure aborts the whole snapshot; there is no partial result.
func (s *Service) Resync(ctx context.Context, query ResyncQuery) (Snapshot, error) {
	snap := Snapshot{StartedAt: time.Now()}

	var wg sync.WaitGroup
	errCh := make(chan error, 4)
	wg.Add(4)

	go func() {
		defer wg.Done()
		status, err := s.client.Status(ctx)
		if err != nil {
			errCh <- fmt.Errorf("fetch status: %w", err)
			return
		}
		snap.Status = status
	}()
	go func() {
		defer wg.Done()
		keywords, err := s.client.Keywords(ctx)
		if err != nil {
			errCh <- fmt.Errorf("fetch keywords: %w", err)
			return
		}
		snap.Keywords = keywords
	}()
	go func() {
		defer wg.Done()
		news, total, err := s.client.News(ctx, query.Filter, query.Keyword, query.NewsLimit)
		if err != nil {
			errCh <- fmt.Errorf("fetch news: %w", err)
			return
		}
		snap.News = news
		snap.NewsTotal = total
	}()
	go func() {
		defer wg.Done()
		scans, err := s.client.Scans(ctx)
		if err != nil {
			errCh <- fmt.Errorf("fetch scan history: %w", err)
			return
		}
		snap.Scans = scans
	}()

	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		return Snapshot{}, err
	}

	discover, err := s.client.Discover(ctx, query.Discover)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch discover queries: %w", err)
	}
	snap.Discover = discover

	return snap, nil
}

func (s *Service) Discover(ctx context.Context, params trendhunter.DiscoverParams) (trendhunter.DiscoverResult, error) {
	result, err := s.client.Discover(ctx, params)
	if err != nil {
		return trendhunter.DiscoverResult{}, fmt.Errorf("fetch discover queries: %w", err)
	}
	return result, nil
}

func (s *Service) AddKeyword(ctx context.Context, keyword string) error {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return fmt.Errorf("keyword must not be empty")
	}
	if err := s.client.AddKeyword(ctx, keyword); err != nil {
		return fmt.Errorf("add keyword %q: %w", keyword, err)
	}
	return nil
}

func (s *Service) DeleteKeyword(ctx context.Context, keyword string) error {
	if err := s.client.DeleteKeyword(ctx, keyword); err != nil {
		return fmt.Errorf("delete keyword %q: %w", keyword, err)
	}
	return nil
}

func (s *Service) ToggleSave(ctx context.Context, id int64) (bool, error) {
	saved, err := s.client.ToggleSave(ctx, id)
	if err != nil {
		return false, fmt.Errorf("toggle save for article %d: %w", id, err)
	}
	return saved, nil
}

func (s *Service) TriggerScan(ctx context.Context) (trendhunter.ScanResult, error) {
	result, err := s.client.TriggerScan(ctx)
	if err != nil {
		return trendhunter.ScanResult{}, fmt.Errorf("trigger scan: %w", err)
	}
	return result, nil
}

func (s *Service) UpdateSettings(ctx context.Context, update trendhunter.SettingsUpdate) error {
	if err := s.client.UpdateSettings(ctx, update); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

func (s *Service) MarkSeen(ctx context.Context) error {
	if err := s.client.MarkSeen(ctx); err != nil {
		return fmt.Errorf("mark articles seen: %w", err)
	}
	return nil
}

func (s *Service) LoadPreferences(ctx context.Context) (Preferences, error) {
	if s.prefs == nil {
		return Preferences{}, nil
	}
	prefs, err := s.prefs.LoadPreferences(ctx)
	if err != nil {
		return Preferences{}, fmt.Errorf("load preferences: %w", err)
	}
	return prefs, nil
}

func (s *Service) SavePreferences(ctx context.Context, prefs Preferences) error {
	if s.prefs == nil {
		return nil
	}
	if err := s.prefs.SavePreferences(ctx, prefs); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}
