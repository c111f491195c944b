package risk

import (
	"github.com/nlaakso/agentpulse/internal/model"
	"github.com/nlaakso/agentpulse/internal/rng"
)

// Per-axis synthetic failure probabilities.
const (
	financialFailProb   = 0.10
	operationalFailProb = 0.10
)

// Compliance runs the three near-binary axis checks. Safety is tied
// directly to the absence of violations; financial and operational each
// sample a small failure chance when the category exposes that axis.
// Consumes exactly two draws from src.
func Compliance(src *rng.Source, category model.Category, violation bool) model.Compliance {
	financialExposed := category == model.CategoryTrading
	operationalExposed := category == model.CategoryMaintenance || category == model.CategoryDispatch

	// Both draws always happen to keep the stream position fixed.
	financialFail := src.Bool(financialFailProb) && financialExposed
	operationalFail := src.Bool(operationalFailProb) && operationalExposed

	c := model.Compliance{
		Safety:      !violation,
		Financial:   !financialFail,
		Operational: !operationalFail,
	}

	failed := 0
	for _, ok := range []bool{c.Safety, c.Financial, c.Operational} {
		if !ok {
			failed++
		}
	}

	switch {
	case !c.Safety:
		c.Status = model.NonCompliant
	case failed >= 2:
		c.Status = model.PendingReview
	case failed == 1:
		c.Status = model.ConditionallyCompliant
	default:
		c.Status = model.FullyCompliant
	}

	c.Score = 100 - 30*float64(failed)
	if c.Status == model.PendingReview {
		c.Score -= 10
	}
	if c.Score < 0 {
		c.Score = 0
	}
	return c
}
