package state

import (
	"time"

	"github.com/serhatramay/trend-hunter-pro/internal/trendhunter"
)

// Status facets for the news list. Exactly one is active at a time.
const (
	FilterAll   = "all"
	FilterNew   = "new"
	FilterSaved = "saved"
)

func ValidFilter(filter string) bool {
	return filter == FilterAll || filter == FilterNew || filter == FilterSaved
}

// NextFilter cycles all -> new -> saved -> all.
func NextFilter(filter string) string {
	switch filter {
	case FilterAll:
		return FilterNew
	case FilterNew:
		return FilterSaved
	default:
		return FilterAll
	}
}

// ToggleKeywordFilter returns the next active keyword filter after selecting
// a chip: selecting the already-active keyword clears the filter.
func ToggleKeywordFilter(current, selected string) string {
	if current == selected {
		return ""
	}
	return selected
}

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// ClampPage keeps a 1-based page cursor inside [1, totalPages]. A zero
// totalPages (nothing fetched yet) clamps to page 1.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		return totalPages
	}
	if page < 1 {
		return 1
	}
	return page
}

func CanPrevPage(page int) bool {
	return page > 1
}

func CanNextPage(page, totalPages int) bool {
	return totalPages > 0 && page < totalPages
}

// DiscoverPagination picks the shared page cursor values out of the two
// ranked collections: rising takes precedence whenever it reports anything,
// top is the fallback.
func DiscoverPagination(rising, top trendhunter.DiscoverList) (page, totalPages int) {
	if rising.Page != 0 || rising.TotalPages != 0 {
		return rising.Page, rising.TotalPages
	}
	return top.Page, top.TotalPages
}

type savedEdit struct {
	saved bool
	at    time.Time
}

// SavedOverlay tracks optimistic save toggles keyed by article id. An edit
// stays authoritative until a resync whose data is newer than the edit
// confirms or overrides it; server payloads never clobber a fresher edit.
type SavedOverlay struct {
	edits map[int64]savedEdit
}

func NewSavedOverlay() *SavedOverlay {
	return &SavedOverlay{edits: make(map[int64]savedEdit)}
}

// Apply records the saved state the server settled on for one article.
func (o *SavedOverlay) Apply(id int64, saved bool, at time.Time) {
	o.edits[id] = savedEdit{saved: saved, at: at}
}

// Merge folds the overlay into the server-derived saved set of a resync that
// started at resyncStart. Edits older than the resync are dropped (the
// server data supersedes them); fresher edits override the server value.
func (o *SavedOverlay) Merge(serverSaved map[int64]bool, resyncStart time.Time) map[int64]bool {
	merged := make(map[int64]bool, len(serverSaved))
	for id, saved := range serverSaved {
		if saved {
			merged[id] = true
		}
	}
	for id, edit := range o.edits {
		if !edit.at.After(resyncStart) {
			delete(o.edits, id)
			continue
		}
		if edit.saved {
			merged[id] = true
		} else {
			delete(merged, id)
		}
	}
	return merged
}

// ServerSavedSet extracts the ids a news payload reports as saved.
func ServerSavedSet(news []trendhunter.NewsItem) map[int64]bool {
	set := make(map[int64]bool, len(news))
	for _, item := range news {
		if item.SavedFlag() {
			set[item.ID] = true
		}
	}
	return set
}
