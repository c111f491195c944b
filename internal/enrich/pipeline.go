// Package enrich composes the derivation stages that turn a raw
// DecisionEvent into an EnrichedDecision. Stages run in a fixed order
// over an accumulator; several draw from the shared random source, so
// batch iteration order is part of the determinism contract.
package enrich

import (
	"time"

	"github.com/nlaakso/agentpulse/internal/model"
	"github.com/nlaakso/agentpulse/internal/risk"
	"github.com/nlaakso/agentpulse/internal/rng"
	"github.com/nlaakso/agentpulse/internal/trust"
)

// Context carries the read-only inputs every stage may consult.
type Context struct {
	// Batch is the full generated batch; relational stages read it but
	// never write to any entry.
	Batch []model.DecisionEvent
	// Index is the position of the event under enrichment.
	Index int
	// Src is the shared random source. Stage order and batch order
	// both affect the stream; reordering voids reproducibility.
	Src *rng.Source
	// Trust holds the ladder thresholds and decay rate.
	Trust trust.Config
	// Weights holds the risk-factor weights.
	Weights risk.Weights
	// Window is the generation window the batch was spread over; it
	// calibrates burst detection. Non-positive means six hours.
	Window time.Duration
	// Now is the wall-clock reference for age and decay.
	Now time.Time
}

// Stage derives one attribute group onto the accumulator.
type Stage func(*model.EnrichedDecision, *Context)

// Pipeline returns the canonical stage order. Classification must
// precede risk; risk and conflicts must precede notifications.
func Pipeline() []Stage {
	return []Stage{
		StageTrust,
		StageTemporal,
		StageClassify,
		StageLinks,
		StageConflicts,
		StageConsensus,
		StagePattern,
		StageRisk,
		StageCompliance,
		StageResources,
		StageWorkload,
		StageNotifications,
		StageAuditTrail,
		StageTags,
		StageQuality,
	}
}

// One enriches a single event against the batch by reducing the stage
// pipeline over an accumulator seeded with the raw event.
func One(ctx *Context) model.EnrichedDecision {
	d := model.EnrichedDecision{DecisionEvent: ctx.Batch[ctx.Index]}
	for _, stage := range Pipeline() {
		stage(&d, ctx)
	}
	return d
}

// Batch enriches every event in order with default risk weights and
// the default six-hour window. The sequential array-order scan is
// required for bit-for-bit reproducibility of the random stream.
func Batch(src *rng.Source, events []model.DecisionEvent, trustCfg trust.Config, now time.Time) []model.EnrichedDecision {
	return BatchWeighted(src, events, trustCfg, risk.DefaultWeights(), 6*time.Hour, now)
}

// BatchWeighted is Batch with explicit risk-factor weights and
// generation window.
func BatchWeighted(src *rng.Source, events []model.DecisionEvent, trustCfg trust.Config, weights risk.Weights, window time.Duration, now time.Time) []model.EnrichedDecision {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	out := make([]model.EnrichedDecision, 0, len(events))
	for i := range events {
		ctx := &Context{Batch: events, Index: i, Src: src, Trust: trustCfg, Weights: weights, Window: window, Now: now}
		out = append(out, One(ctx))
	}
	return out
}
