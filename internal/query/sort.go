package query

import (
	"sort"

	"github.com/nlaakso/agentpulse/internal/model"
)

// Sort orders items in place by the requested field and direction.
// The sort is stable: ties preserve original relative order regardless
// of direction.
func Sort(items []model.EnrichedDecision, field SortField, order SortOrder) {
	less := lessFunc(field)
	if order == OrderDesc {
		inner := less
		less = func(a, b model.EnrichedDecision) bool { return inner(b, a) }
	}
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}

func lessFunc(field SortField) func(a, b model.EnrichedDecision) bool {
	switch field {
	case SortConfidence:
		return func(a, b model.EnrichedDecision) bool { return a.Confidence < b.Confidence }
	case SortImpact:
		return func(a, b model.EnrichedDecision) bool {
			return model.ImpactRank[a.Class.Impact] < model.ImpactRank[b.Class.Impact]
		}
	case SortUrgency:
		return func(a, b model.EnrichedDecision) bool {
			return model.UrgencyRank[a.Class.Urgency] < model.UrgencyRank[b.Class.Urgency]
		}
	case SortRisk:
		return func(a, b model.EnrichedDecision) bool { return a.Risk.OverallScore < b.Risk.OverallScore }
	default:
		return func(a, b model.EnrichedDecision) bool { return a.Timestamp.Before(b.Timestamp) }
	}
}
