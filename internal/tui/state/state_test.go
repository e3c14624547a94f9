package state

import (
	"testing"
	"time"

	"github.com/serhatramay/trend-hunter-pro/internal/trendhunter"
)

func TestToggleKeywordFilter(t *testing.T) {
	if got := ToggleKeywordFilter("", "bitcoin"); got != "bitcoin" {
		t.Fatalf("selecting a keyword should activate it, got %q", got)
	}
	if got := ToggleKeywordFilter("bitcoin", "bitcoin"); got != "" {
		t.Fatalf("selecting the active keyword should clear the filter, got %q", got)
	}
	if got := ToggleKeywordFilter("bitcoin", "dolar"); got != "dolar" {
		t.Fatalf("selecting another keyword should switch the filter, got %q", got)
	}

	// Filtering twice on the same keyword always lands back on "no filter".
	first := ToggleKeywordFilter("", "secim")
	second := ToggleKeywordFilter(first, "secim")
	if second != "" {
		t.Fatalf("double toggle should clear, got %q", second)
	}
}

func TestNextFilter_Cycles(t *testing.T) {
	if got := NextFilter(FilterAll); got != FilterNew {
		t.Fatalf("all should cycle to new, got %q", got)
	}
	if got := NextFilter(FilterNew); got != FilterSaved {
		t.Fatalf("new should cycle to saved, got %q", got)
	}
	if got := NextFilter(FilterSaved); got != FilterAll {
		t.Fatalf("saved should cycle to all, got %q", got)
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		page, totalPages, want int
	}{
		{page: 1, totalPages: 5, want: 1},
		{page: 5, totalPages: 5, want: 5},
		{page: 9, totalPages: 5, want: 5},
		{page: 0, totalPages: 5, want: 1},
		{page: -1, totalPages: 5, want: 1},
		{page: 3, totalPages: 0, want: 1},
	}
	for _, tc := range cases {
		if got := ClampPage(tc.page, tc.totalPages); got != tc.want {
			t.Fatalf("ClampPage(%d, %d) = %d, want %d", tc.page, tc.totalPages, got, tc.want)
		}
	}
}

func TestPrevNextBoundaries(t *testing.T) {
	totalPages := 4
	for page := 1; page <= totalPages; page++ {
		if got, want := CanPrevPage(page), page != 1; got != want {
			t.Fatalf("CanPrevPage(%d) = %v, want %v", page, got, want)
		}
		if got, want := CanNextPage(page, totalPages), page != totalPages; got != want {
			t.Fatalf("CanNextPage(%d, %d) = %v, want %v", page, totalPages, got, want)
		}
	}
	if CanNextPage(1, 0) {
		t.Fatal("next must be disabled before any discover fetch reports pages")
	}
}

func TestDiscoverPagination_RisingTakesPrecedence(t *testing.T) {
	rising := trendhunter.DiscoverList{Page: 2, TotalPages: 7}
	top := trendhunter.DiscoverList{Page: 1, TotalPages: 3}

	page, totalPages := DiscoverPagination(rising, top)
	if page != 2 || totalPages != 7 {
		t.Fatalf("expected rising values, got page=%d totalPages=%d", page, totalPages)
	}
}

func TestDiscoverPagination_FallsBackToTop(t *testing.T) {
	top := trendhunter.DiscoverList{Page: 3, TotalPages: 4}

	page, totalPages := DiscoverPagination(trendhunter.DiscoverList{}, top)
	if page != 3 || totalPages != 4 {
		t.Fatalf("expected top values, got page=%d totalPages=%d", page, totalPages)
	}
}

func TestSavedOverlay_DoubleToggleRestoresOriginal(t *testing.T) {
	overlay := NewSavedOverlay()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	server := map[int64]bool{7: true}

	overlay.Apply(7, false, now.Add(time.Second))
	overlay.Apply(7, true, now.Add(2*time.Second))

	merged := overlay.Merge(server, now)
	if !merged[7] {
		t.Fatal("toggling twice should restore the original saved state")
	}
}

func TestSavedOverlay_FreshEditOverridesStaleServerPayload(t *testing.T) {
	overlay := NewSavedOverlay()
	resyncStart := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// The toggle completed after the resync's fetches went out, so the
	// payload cannot know about it yet.
	overlay.Apply(42, true, resyncStart.Add(500*time.Millisecond))

	merged := overlay.Merge(map[int64]bool{}, resyncStart)
	if !merged[42] {
		t.Fatal("fresh optimistic edit must survive a stale resync payload")
	}
}

func TestSavedOverlay_ConfirmedEditIsDropped(t *testing.T) {
	overlay := NewSavedOverlay()
	editAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	overlay.Apply(42, true, editAt)

	// A resync initiated after the edit carries data at least as new.
	merged := overlay.Merge(map[int64]bool{42: true}, editAt.Add(time.Second))
	if !merged[42] {
		t.Fatal("server-confirmed save should remain in the merged set")
	}
	if len(overlay.edits) != 0 {
		t.Fatalf("confirmed edit should be cleared, still tracking %d", len(overlay.edits))
	}

	// The next resync without the id wins, since no fresher edit exists.
	merged = overlay.Merge(map[int64]bool{}, editAt.Add(2*time.Second))
	if merged[42] {
		t.Fatal("unsave reported by a newer resync must stick")
	}
}

func TestSavedOverlay_UnsaveEditRemovesServerEntry(t *testing.T) {
	overlay := NewSavedOverlay()
	resyncStart := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	overlay.Apply(7, false, resyncStart.Add(time.Second))

	merged := overlay.Merge(map[int64]bool{7: true}, resyncStart)
	if merged[7] {
		t.Fatal("fresh unsave edit must override the server flag")
	}
}

func TestServerSavedSet(t *testing.T) {
	news := []trendhunter.NewsItem{
		{ID: 1, Saved: 1},
		{ID: 2, Saved: 0},
		{ID: 3, Saved: 1},
	}
	set := ServerSavedSet(news)
	if len(set) != 2 || !set[1] || !set[3] || set[2] {
		t.Fatalf("unexpected saved set: %v", set)
	}
}
