package risk

import (
	"math"

	"github.com/nlaakso/agentpulse/internal/model"
	"github.com/nlaakso/agentpulse/internal/rng"
)

const costPerCall = 0.0023

// Resources fabricates a resource-impact estimate from the complexity
// tier and witness count. Purely illustrative. Consumes three draws
// from src.
func Resources(src *rng.Source, complexity model.Complexity, witnessCount int) model.ResourceImpact {
	var minMs, maxMs int
	switch complexity {
	case model.ComplexityComplex:
		minMs, maxMs = 1200, 2800
	case model.ComplexityModerate:
		minMs, maxMs = 500, 1400
	default:
		minMs, maxMs = 120, 600
	}

	inference := src.IntBetween(minMs, maxMs)
	memory := src.IntBetween(64, 512)
	calls := src.IntBetween(1, 3) + witnessCount/2
	if calls > 6 {
		calls = 6
	}

	efficiency := 100 - float64(inference)/30
	if efficiency < 5 {
		efficiency = 5
	}
	if efficiency > 99 {
		efficiency = 99
	}

	return model.ResourceImpact{
		InferenceMillis: inference,
		MemoryMB:        memory,
		ModelCalls:      calls,
		CostUSD:         math.Round(float64(calls)*costPerCall*10000) / 10000,
		Efficiency:      efficiency,
	}
}
