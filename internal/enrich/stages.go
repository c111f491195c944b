package enrich

import (
	"fmt"
	"time"

	"github.com/nlaakso/agentpulse/internal/classify"
	"github.com/nlaakso/agentpulse/internal/model"
	"github.com/nlaakso/agentpulse/internal/persona"
	"github.com/nlaakso/agentpulse/internal/relate"
	"github.com/nlaakso/agentpulse/internal/risk"
	"github.com/nlaakso/agentpulse/internal/rng"
	"github.com/nlaakso/agentpulse/internal/trust"
)

// StageTrust samples 2-5 witness feeds from the persona's source pool
// and computes the trust block.
func StageTrust(d *model.EnrichedDecision, ctx *Context) {
	def := persona.Lookup(d.Agent)
	feeds := []string{"core-telemetry"}
	if def != nil {
		feeds = def.WitnessFeeds
	}

	count := ctx.Src.IntBetween(2, 5)
	if count > len(feeds) {
		count = len(feeds)
	}
	witnesses := append([]string(nil), feeds[:count]...)

	d.Trust = trust.Evaluate(ctx.Trust, d.Confidence, witnesses, ctx.Src)
}

// StageTemporal computes age against the wall clock at enrichment time,
// the decay percentage, and a degradation-curve label.
func StageTemporal(d *model.EnrichedDecision, ctx *Context) {
	age := ctx.Now.Sub(d.Timestamp)
	if age < 0 {
		age = 0
	}
	curves := []model.DegradationCurve{model.CurveLinear, model.CurveExponential, model.CurveLogarithmic}
	d.Temporal = model.Temporal{
		AgeSeconds:       age.Seconds(),
		TrustDecay:       ctx.Trust.Decay(age),
		DegradationCurve: rng.WeightedPick(ctx.Src, curves, []float64{0.5, 0.3, 0.2}),
	}
}

// StageClassify runs the five total classifiers.
func StageClassify(d *model.EnrichedDecision, ctx *Context) {
	d.Class = classify.All(d.DecisionEvent)
}

// StageLinks draws chain linkage against batch neighbors.
func StageLinks(d *model.EnrichedDecision, ctx *Context) {
	d.ParentID, d.ChildIDs, d.Related = relate.Links(ctx.Src, ctx.Batch, ctx.Index)
}

// StageConflicts scans the batch window for contradictory decisions.
func StageConflicts(d *model.EnrichedDecision, ctx *Context) {
	d.Conflicts = relate.Conflicts(ctx.Batch, ctx.Index)
}

// StageConsensus tracks cross-persona agreement.
func StageConsensus(d *model.EnrichedDecision, ctx *Context) {
	d.Consensus = relate.Consensus(ctx.Batch, ctx.Index)
}

// StagePattern summarizes same-persona temporal density.
func StagePattern(d *model.EnrichedDecision, ctx *Context) {
	d.Pattern = relate.Pattern(ctx.Batch, ctx.Index, ctx.Window)
}

// StageRisk folds the classified impact/urgency, confidence, and
// violation count into the weighted risk score.
func StageRisk(d *model.EnrichedDecision, ctx *Context) {
	violations := 0
	if d.Violation {
		violations = 1
	}
	w := ctx.Weights
	if w == (risk.Weights{}) {
		w = risk.DefaultWeights()
	}
	d.Risk = risk.Score(w, d.Class.Impact, d.Class.Urgency, d.Confidence, violations)
}

// StageCompliance runs the three-axis compliance check.
func StageCompliance(d *model.EnrichedDecision, ctx *Context) {
	d.Comply = risk.Compliance(ctx.Src, d.Class.Category, d.Violation)
}

// StageResources fabricates the resource-impact estimate.
func StageResources(d *model.EnrichedDecision, ctx *Context) {
	d.Resources = risk.Resources(ctx.Src, d.Class.Complexity, d.Trust.WitnessCount)
}

// StageWorkload snapshots the simulated agent cognitive load.
func StageWorkload(d *model.EnrichedDecision, ctx *Context) {
	active := ctx.Src.IntBetween(1, 9)
	queue := ctx.Src.IntBetween(0, 14)
	load := ctx.Src.FloatBetween(10, 95)
	if d.Class.Urgency == model.UrgencyEmergency && load < 60 {
		load += 25
	}
	if load > 100 {
		load = 100
	}
	d.Load = model.Workload{ActiveTasks: active, QueueDepth: queue, CognitiveLoad: load}
}

// StageNotifications derives trigger messages from the scored record.
func StageNotifications(d *model.EnrichedDecision, ctx *Context) {
	var notes []string
	if d.Violation {
		notes = append(notes, "constraint-violation: operator review required")
	}
	if d.Risk.Level == model.RiskHigh || d.Risk.Level == model.RiskExtreme {
		notes = append(notes, fmt.Sprintf("risk-%s: decision flagged for the risk channel", d.Risk.Level))
	}
	if d.Conflicts.Severity == model.ConflictModerate || d.Conflicts.Severity == model.ConflictSevere {
		notes = append(notes, fmt.Sprintf("conflict-%s: cross-decision contradiction detected", d.Conflicts.Severity))
	}
	if d.Class.Urgency == model.UrgencyEmergency {
		notes = append(notes, "urgency-emergency: paged on-call rotation")
	}
	d.Notifications = notes
}

// StageAuditTrail fabricates the decision's audit lineage.
func StageAuditTrail(d *model.EnrichedDecision, ctx *Context) {
	trail := []model.AuditEntry{
		{At: d.Timestamp, Actor: string(d.Agent), Note: "decision issued"},
		{At: d.Timestamp.Add(time.Duration(ctx.Src.IntBetween(50, 900)) * time.Millisecond), Actor: "pipeline", Note: "enrichment completed"},
	}
	if d.Violation {
		trail = append(trail, model.AuditEntry{
			At:    d.Timestamp.Add(time.Second),
			Actor: "governor",
			Note:  "violation recorded for policy audit",
		})
	}
	d.AuditTrail = trail
}

// StageTags attaches the free-form tag set.
func StageTags(d *model.EnrichedDecision, ctx *Context) {
	tags := []string{string(d.Agent), string(d.Class.Category)}
	if d.Violation {
		tags = append(tags, "violation")
	}
	if d.Coordination {
		tags = append(tags, "coordination")
	}
	if d.Maintenance {
		tags = append(tags, "maintenance-window")
	}
	if d.Pattern.Burst {
		tags = append(tags, "burst")
	}
	d.Tags = tags
}

// StageQuality folds confidence, compliance, consensus, and witness
// coverage into the 0-100 quality score.
func StageQuality(d *model.EnrichedDecision, ctx *Context) {
	witnessBonus := float64(d.Trust.WitnessCount) * 2
	if witnessBonus > 10 {
		witnessBonus = 10
	}
	q := 0.4*d.Confidence + 0.3*d.Comply.Score + 0.2*d.Consensus.Strength + witnessBonus
	if q < 0 {
		q = 0
	}
	if q > 100 {
		q = 100
	}
	d.QualityScore = q
}
