// Package classify holds the five pure, total classifiers over event
// text and metadata. Every function returns a label for every input;
// unmatched inputs resolve to the documented default.
package classify

import (
	"strings"

	"github.com/nlaakso/agentpulse/internal/model"
	"github.com/nlaakso/agentpulse/internal/persona"
)

// Complexity grades how involved the decision was: multi-clause
// phrasing, domain jargon, long summaries, and low confidence each add
// a point. 0-1 points is simple, 2 is moderate, 3+ is complex.
func Complexity(summary string, confidence float64) model.Complexity {
	lower := strings.ToLower(summary)
	points := 0
	for _, m := range clauseMarkers {
		if strings.Contains(lower, m) {
			points++
			break
		}
	}
	for _, j := range jargonKeywords {
		if strings.Contains(lower, j) {
			points++
			break
		}
	}
	if len(summary) > 60 {
		points++
	}
	if confidence < 60 {
		points++
	}
	switch {
	case points >= 3:
		return model.ComplexityComplex
	case points == 2:
		return model.ComplexityModerate
	default:
		return model.ComplexitySimple
	}
}

// Category matches the summary against the fixed vocabulary in
// precedence order, falling back to the persona's default category.
func Category(agent model.Persona, summary string) model.Category {
	lower := strings.ToLower(summary)
	for _, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Category
			}
		}
	}
	if def := persona.Lookup(agent); def != nil {
		return def.DefaultCategory
	}
	return model.CategoryDispatch
}

// Impact escalates to critical on safety/emergency/override keywords or
// a constraint violation, to high on complex decisions or low
// confidence, to medium on moderate complexity, else low.
func Impact(summary string, complexity model.Complexity, confidence float64, violation bool) model.Impact {
	if violation || containsAny(summary, criticalKeywords) {
		return model.ImpactCritical
	}
	if complexity == model.ComplexityComplex || confidence < 55 {
		return model.ImpactHigh
	}
	if complexity == model.ComplexityModerate {
		return model.ImpactMedium
	}
	return model.ImpactLow
}

// Urgency escalates on emergency/urgent keywords or impact severity,
// else routine.
func Urgency(summary string, impact model.Impact) model.Urgency {
	if impact == model.ImpactCritical || containsAny(summary, emergencyKeywords) {
		return model.UrgencyEmergency
	}
	if impact == model.ImpactHigh || containsAny(summary, urgentKeywords) {
		return model.UrgencyUrgent
	}
	if impact == model.ImpactMedium {
		return model.UrgencyElevated
	}
	return model.UrgencyRoutine
}

// Sentiment folds urgency and violations into the emotional register.
func Sentiment(urgency model.Urgency, violation bool) model.Sentiment {
	if urgency == model.UrgencyEmergency || violation {
		return model.SentimentEmergency
	}
	if urgency == model.UrgencyUrgent || urgency == model.UrgencyElevated {
		return model.SentimentStressed
	}
	return model.SentimentCalm
}

// All runs the five classifiers in dependency order over one event.
func All(e model.DecisionEvent) model.Classifications {
	complexity := Complexity(e.Summary, e.Confidence)
	category := Category(e.Agent, e.Summary)
	impact := Impact(e.Summary, complexity, e.Confidence, e.Violation)
	urgency := Urgency(e.Summary, impact)
	sentiment := Sentiment(urgency, e.Violation)
	return model.Classifications{
		Complexity: complexity,
		Category:   category,
		Impact:     impact,
		Urgency:    urgency,
		Sentiment:  sentiment,
	}
}

func containsAny(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
