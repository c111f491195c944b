package query

import "github.com/nlaakso/agentpulse/internal/model"

// Page is one window into the filtered, sorted sequence.
type Page struct {
	Items      []model.EnrichedDecision
	Total      int
	Offset     int
	HasMore    bool
	NextCursor int
}

// Paginate slices items at the integer cursor offset. Cursors past the
// end yield an empty page with HasMore=false. NextCursor is only
// meaningful when HasMore is true.
func Paginate(items []model.EnrichedDecision, cursor, limit int) Page {
	if cursor < 0 {
		cursor = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	total := len(items)
	if cursor >= total {
		return Page{Items: []model.EnrichedDecision{}, Total: total, Offset: cursor}
	}

	end := cursor + limit
	if end > total {
		end = total
	}

	page := Page{
		Items:  items[cursor:end],
		Total:  total,
		Offset: cursor,
	}
	if end < total {
		page.HasMore = true
		page.NextCursor = end
	}
	return page
}
