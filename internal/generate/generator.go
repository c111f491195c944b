// Package generate produces batches of raw decision events from the
// seeded random source and the persona text banks.
package generate

import (
	"fmt"
	"sort"
	"time"

	"github.com/nlaakso/agentpulse/internal/model"
	"github.com/nlaakso/agentpulse/internal/persona"
	"github.com/nlaakso/agentpulse/internal/rng"
)

// Sampling constants. Violations force the low confidence band and a
// critical impact; coordination swaps in a cross-agent summary.
const (
	violationProb    = 0.08
	coordinationProb = 0.25
	ambientLowProb   = 0.15
	activeProb       = 0.85

	violationConfMin = 30
	violationConfMax = 60
	ambientConfMin   = 55
	ambientConfMax   = 75
	normalConfMin    = 75
	normalConfMax    = 99
)

// Config holds parameters for batch generation.
type Config struct {
	Count  int
	Window time.Duration // timestamps fall in [Now-Window, Now); default 6h
	Now    time.Time     // zero means time.Now().UTC()
}

// Batch generates cfg.Count raw decision events, sorted by timestamp
// descending. Generation is total: it always succeeds. The caller's
// random source is consumed in a fixed per-event order; identical seeds
// and configs yield identical batches.
func Batch(src *rng.Source, cfg Config) []model.DecisionEvent {
	if cfg.Count <= 0 {
		return []model.DecisionEvent{}
	}
	window := cfg.Window
	if window <= 0 {
		window = 6 * time.Hour
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	events := make([]model.DecisionEvent, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		events = append(events, one(src, i, window, now))
	}

	sort.SliceStable(events, func(a, b int) bool {
		return events[a].Timestamp.After(events[b].Timestamp)
	})
	return events
}

// one draws a single event. The draw order below is part of the
// determinism contract; do not reorder.
func one(src *rng.Source, index int, window time.Duration, now time.Time) model.DecisionEvent {
	agent := rng.Pick(src, model.Personas)
	def := persona.Lookup(agent)

	offset := time.Duration(src.FloatBetween(0, window.Seconds()) * float64(time.Second))
	ts := now.Add(-offset)

	violation := src.Bool(violationProb)
	coordination := src.Bool(coordinationProb)

	confidence := sampleConfidence(src, violation)
	impact := sampleImpact(src, confidence, violation)
	summary := sampleSummary(src, def, violation, coordination)
	maintenance := src.Bool(def.MaintenanceProb)

	constraints := src.IntBetween(1, 6)
	if violation {
		constraints += 2
	}

	return model.DecisionEvent{
		ID:              fmt.Sprintf("dec-%04d", index+1),
		Agent:           agent,
		Summary:         summary,
		Confidence:      confidence,
		Timestamp:       ts,
		Impact:          impact,
		Active:          src.Bool(activeProb),
		ConstraintCount: constraints,
		InputCount:      src.IntBetween(3, 12),
		Violation:       violation,
		Maintenance:     maintenance,
		Coordination:    coordination,
	}
}

// sampleConfidence picks from one of three tiers. A violation always
// forces the low band.
func sampleConfidence(src *rng.Source, violation bool) float64 {
	if violation {
		return src.FloatBetween(violationConfMin, violationConfMax)
	}
	if src.Bool(ambientLowProb) {
		return src.FloatBetween(ambientConfMin, ambientConfMax)
	}
	return src.FloatBetween(normalConfMin, normalConfMax)
}

// sampleImpact derives the base impact label. Violations force critical;
// otherwise impact trends inversely with confidence.
func sampleImpact(src *rng.Source, confidence float64, violation bool) model.Impact {
	if violation {
		return model.ImpactCritical
	}
	levels := []model.Impact{model.ImpactLow, model.ImpactMedium, model.ImpactHigh, model.ImpactCritical}
	switch {
	case confidence >= 90:
		return rng.WeightedPick(src, levels, []float64{0.60, 0.30, 0.09, 0.01})
	case confidence >= 75:
		return rng.WeightedPick(src, levels, []float64{0.35, 0.45, 0.17, 0.03})
	default:
		return rng.WeightedPick(src, levels, []float64{0.10, 0.35, 0.45, 0.10})
	}
}

func sampleSummary(src *rng.Source, def *persona.Definition, violation, coordination bool) string {
	switch {
	case violation:
		return rng.Pick(src, def.ViolationSummaries)
	case coordination:
		return rng.Pick(src, def.CoordinationPhrases)
	default:
		return rng.Pick(src, def.Summaries)
	}
}
