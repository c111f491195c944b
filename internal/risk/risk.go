// Package risk scores decisions along risk, compliance, and resource
// axes. Figures are synthetic and internally consistent; they are never
// inputs to real capacity or compliance decisions.
package risk

import (
	"fmt"

	"github.com/nlaakso/agentpulse/internal/model"
)

// Weights are the fixed factor weights for the overall risk score.
// They must sum to 1.0.
type Weights struct {
	Impact     float64 `yaml:"impact"`
	Urgency    float64 `yaml:"urgency"`
	Confidence float64 `yaml:"confidence"`
	Violations float64 `yaml:"violations"`
}

// DefaultWeights returns the documented factor weights.
func DefaultWeights() Weights {
	return Weights{Impact: 0.35, Urgency: 0.25, Confidence: 0.25, Violations: 0.15}
}

// Validate rejects weights that do not sum to 1.0 (within epsilon).
func (w Weights) Validate() error {
	sum := w.Impact + w.Urgency + w.Confidence + w.Violations
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("risk weights must sum to 1.0, got %v", sum)
	}
	return nil
}

// Risk level bucket boundaries on the 0-100 score.
const (
	moderateMin = 30
	highMin     = 55
	extremeMin  = 75
)

// Score computes the weighted risk score and its factor breakdown.
// Each raw factor is normalized to 0-100 before weighting: impact and
// urgency by severity rank, confidence by its complement, and the
// violation count capped at three.
func Score(w Weights, impact model.Impact, urgency model.Urgency, confidence float64, violations int) model.RiskAssessment {
	if violations > 3 {
		violations = 3
	}
	if violations < 0 {
		violations = 0
	}

	factors := []model.RiskFactor{
		{Name: "impact_severity", Weight: w.Impact, Raw: float64(model.ImpactRank[impact]) / 3 * 100},
		{Name: "urgency_severity", Weight: w.Urgency, Raw: float64(model.UrgencyRank[urgency]) / 3 * 100},
		{Name: "confidence_complement", Weight: w.Confidence, Raw: 100 - confidence},
		{Name: "constraint_violations", Weight: w.Violations, Raw: float64(violations) / 3 * 100},
	}

	var total float64
	for i := range factors {
		factors[i].Weighted = factors[i].Weight * factors[i].Raw
		total += factors[i].Weighted
	}
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return model.RiskAssessment{
		OverallScore: total,
		Level:        level(total),
		Factors:      factors,
	}
}

func level(score float64) model.RiskLevel {
	switch {
	case score < moderateMin:
		return model.RiskLow
	case score < highMin:
		return model.RiskModerate
	case score < extremeMin:
		return model.RiskHigh
	default:
		return model.RiskExtreme
	}
}
