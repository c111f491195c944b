// Package format projects enriched decisions down to the requested
// output shape and explanation depth, and computes the aggregate
// statistics block for list responses.
package format

import (
	"fmt"
	"time"

	"github.com/nlaakso/agentpulse/internal/model"
	"github.com/nlaakso/agentpulse/internal/query"
)

// Minimal is the lightest projection: identity and headline figures.
type Minimal struct {
	ID         string           `json:"id"`
	Agent      model.Persona    `json:"agent"`
	Summary    string           `json:"summary"`
	Confidence float64          `json:"confidence"`
	Timestamp  time.Time        `json:"timestamp"`
	TrustGrade model.TrustGrade `json:"trust_grade"`
}

// Standard adds classifications, risk, and freshness to Minimal.
type Standard struct {
	Minimal

	Classifications model.Classifications `json:"classifications"`
	RiskLevel       model.RiskLevel       `json:"risk_level"`
	RiskScore       float64               `json:"risk_score"`
	TrustDecay      float64               `json:"trust_decay"`
	Violation       bool                  `json:"constraint_violation"`
	Coordination    bool                  `json:"coordination_event"`
	Tags            []string              `json:"tags"`
	Explanation     string                `json:"explanation"`
}

// Full wraps the entire enriched record plus the depth-scaled
// explanation text.
type Full struct {
	model.EnrichedDecision

	Explanation string `json:"explanation"`
}

// Project shapes one enriched decision for the response. Unknown
// formats fall back to standard.
func Project(d model.EnrichedDecision, f query.Format, depth query.Depth) any {
	switch f {
	case query.FormatMinimal:
		return minimal(d)
	case query.FormatFull:
		return Full{EnrichedDecision: d, Explanation: Explanation(d, depth)}
	default:
		return Standard{
			Minimal:         minimal(d),
			Classifications: d.Class,
			RiskLevel:       d.Risk.Level,
			RiskScore:       d.Risk.OverallScore,
			TrustDecay:      d.Temporal.TrustDecay,
			Violation:       d.Violation,
			Coordination:    d.Coordination,
			Tags:            d.Tags,
			Explanation:     Explanation(d, depth),
		}
	}
}

// ProjectAll shapes a page of decisions.
func ProjectAll(items []model.EnrichedDecision, f query.Format, depth query.Depth) []any {
	out := make([]any, 0, len(items))
	for _, d := range items {
		out = append(out, Project(d, f, depth))
	}
	return out
}

// Explanation renders the depth-scaled narrative for one decision.
// Beginner keeps to plain language; intermediate names the drivers;
// expert adds the numeric evidence.
func Explanation(d model.EnrichedDecision, depth query.Depth) string {
	switch depth {
	case query.DepthBeginner:
		return fmt.Sprintf("The %s agent decided: %s. It is %.0f%% confident and the decision is rated %s trust.",
			d.Agent, d.Summary, d.Confidence, d.Trust.Grade)
	case query.DepthExpert:
		return fmt.Sprintf(
			"%s agent, category=%s, complexity=%s. Confidence %.1f (sigma %.2f across %d witnesses, decay %.1f%% at %.0fs). Risk %.1f (%s): impact=%s urgency=%s. Compliance %s (%.0f). Consensus %.0f with %d agreeing.",
			d.Agent, d.Class.Category, d.Class.Complexity,
			d.Confidence, d.Trust.DeviationSigma, d.Trust.WitnessCount,
			d.Temporal.TrustDecay, d.Temporal.AgeSeconds,
			d.Risk.OverallScore, d.Risk.Level, d.Class.Impact, d.Class.Urgency,
			d.Comply.Status, d.Comply.Score,
			d.Consensus.Strength, len(d.Consensus.Agreeing))
	default:
		return fmt.Sprintf("%s decision in the %s category with %s trust (confidence %.0f, %d witnesses). Risk is %s; urgency is %s.",
			d.Agent, d.Class.Category, d.Trust.Grade, d.Confidence,
			d.Trust.WitnessCount, d.Risk.Level, d.Class.Urgency)
	}
}

func minimal(d model.EnrichedDecision) Minimal {
	return Minimal{
		ID:         d.ID,
		Agent:      d.Agent,
		Summary:    d.Summary,
		Confidence: d.Confidence,
		Timestamp:  d.Timestamp,
		TrustGrade: d.Trust.Grade,
	}
}
