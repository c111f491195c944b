package query

import "github.com/nlaakso/agentpulse/internal/model"

// Apply filters the batch by the conjunction of every active predicate.
// It returns a fresh slice; the input is never mutated. Filtering is
// idempotent: applying the same Params twice yields the same result.
func Apply(items []model.EnrichedDecision, p Params) []model.EnrichedDecision {
	out := make([]model.EnrichedDecision, 0, len(items))
	for _, d := range items {
		if matches(d, p) {
			out = append(out, d)
		}
	}
	return out
}

func matches(d model.EnrichedDecision, p Params) bool {
	if p.Agent != "" && d.Agent != p.Agent {
		return false
	}
	if !p.Since.IsZero() && d.Timestamp.Before(p.Since) {
		return false
	}
	if d.Confidence < p.MinConfidence || d.Confidence > p.MaxConfidence {
		return false
	}
	if p.Category != "" && d.Class.Category != p.Category {
		return false
	}
	if p.Impact != "" && d.Class.Impact != p.Impact {
		return false
	}
	if p.UrgentOnly && d.Class.Urgency != model.UrgencyUrgent && d.Class.Urgency != model.UrgencyEmergency {
		return false
	}
	if len(p.Tags) > 0 && !hasAllTags(d.Tags, p.Tags) {
		return false
	}
	return true
}

func hasAllTags(have, want []string) bool {
	set := make(map[string]bool, len(have))
	for _, t := range have {
		set[t] = true
	}
	for _, t := range want {
		if !set[t] {
			return false
		}
	}
	return true
}
