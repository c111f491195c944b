package format

import (
	"math"

	"github.com/nlaakso/agentpulse/internal/model"
)

// Stats is the aggregate statistics block computed over the filtered
// result set (not just the returned page).
type Stats struct {
	AvgConfidence     float64                        `json:"avg_confidence"`
	AvgQualityScore   float64                        `json:"avg_quality_score"`
	TrustGrades       map[model.TrustGrade]int       `json:"trust_grade_distribution"`
	CategoryBreakdown map[model.Category]int         `json:"category_breakdown"`
	ImpactBreakdown   map[model.Impact]int           `json:"impact_breakdown"`
	UrgencyBreakdown  map[model.Urgency]int          `json:"urgency_breakdown"`
	RiskLevels        map[model.RiskLevel]int        `json:"risk_level_breakdown"`
	Compliance        map[model.ComplianceStatus]int `json:"compliance_breakdown"`
}

// Aggregate computes the stats block. An empty input yields zeroed
// averages and empty (non-nil) distributions.
func Aggregate(items []model.EnrichedDecision) Stats {
	s := Stats{
		TrustGrades:       make(map[model.TrustGrade]int),
		CategoryBreakdown: make(map[model.Category]int),
		ImpactBreakdown:   make(map[model.Impact]int),
		UrgencyBreakdown:  make(map[model.Urgency]int),
		RiskLevels:        make(map[model.RiskLevel]int),
		Compliance:        make(map[model.ComplianceStatus]int),
	}
	if len(items) == 0 {
		return s
	}

	var confSum, qualSum float64
	for _, d := range items {
		confSum += d.Confidence
		qualSum += d.QualityScore
		s.TrustGrades[d.Trust.Grade]++
		s.CategoryBreakdown[d.Class.Category]++
		s.ImpactBreakdown[d.Class.Impact]++
		s.UrgencyBreakdown[d.Class.Urgency]++
		s.RiskLevels[d.Risk.Level]++
		s.Compliance[d.Comply.Status]++
	}

	n := float64(len(items))
	s.AvgConfidence = round2(confSum / n)
	s.AvgQualityScore = round2(qualSum / n)
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
