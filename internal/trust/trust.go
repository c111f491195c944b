// Package trust implements the simulated trust mathematics: grade
// ladder, deviation sigma, threshold checks, and time decay. All
// figures are synthetic and internally consistent, not empirically
// accurate.
package trust

import (
	"fmt"
	"math"
	"time"

	"github.com/nlaakso/agentpulse/internal/model"
	"github.com/nlaakso/agentpulse/internal/rng"
)

// Config holds the trust ladder thresholds and the per-minute decay
// rate. Thresholds are confidence cutoffs on a 0-100 scale and must be
// strictly descending; DecayPerMinute must lie in (0,1).
type Config struct {
	ExcellentMin   float64 `yaml:"excellent_min"`
	GoodMin        float64 `yaml:"good_min"`
	FairMin        float64 `yaml:"fair_min"`
	PoorMin        float64 `yaml:"poor_min"`
	DecayPerMinute float64 `yaml:"decay_per_minute"`
}

// DefaultConfig returns the standard ladder and decay rate.
func DefaultConfig() Config {
	return Config{
		ExcellentMin:   90,
		GoodMin:        75,
		FairMin:        60,
		PoorMin:        40,
		DecayPerMinute: 0.95,
	}
}

// Validate checks threshold ordering and decay range.
func (c Config) Validate() error {
	if !(c.ExcellentMin > c.GoodMin && c.GoodMin > c.FairMin && c.FairMin > c.PoorMin) {
		return fmt.Errorf("trust thresholds must be strictly descending: %v/%v/%v/%v",
			c.ExcellentMin, c.GoodMin, c.FairMin, c.PoorMin)
	}
	if c.DecayPerMinute <= 0 || c.DecayPerMinute >= 1 {
		return fmt.Errorf("decay_per_minute must be in (0,1), got %v", c.DecayPerMinute)
	}
	return nil
}

// Grade assigns the five-level trust grade via the ordered threshold
// ladder. Monotone: a higher confidence never yields a lower grade.
func (c Config) Grade(confidence float64) model.TrustGrade {
	switch {
	case confidence >= c.ExcellentMin:
		return model.TrustExcellent
	case confidence >= c.GoodMin:
		return model.TrustGood
	case confidence >= c.FairMin:
		return model.TrustFair
	case confidence >= c.PoorMin:
		return model.TrustPoor
	default:
		return model.TrustSuspect
	}
}

// Exceeds reports whether confidence clears the "good" cutoff.
func (c Config) Exceeds(confidence float64) bool {
	return confidence >= c.GoodMin
}

// Decay returns the trust-decay percentage for an age: 100 at age 0,
// strictly decreasing, approaching 0 as age grows without bound.
func (c Config) Decay(age time.Duration) float64 {
	if age < 0 {
		age = 0
	}
	d := 100 * math.Pow(c.DecayPerMinute, age.Minutes())
	if d > 100 {
		d = 100
	}
	return d
}

// Evaluate builds the trust block for a confidence value and its
// contributing sources. The sigma draw is narrower at confidence >= 90.
// Consumes exactly one draw from src.
func Evaluate(c Config, confidence float64, witnesses []string, src *rng.Source) model.TrustMath {
	var sigma float64
	if confidence >= 90 {
		sigma = src.FloatBetween(0.5, 2.0)
	} else {
		sigma = src.FloatBetween(1.5, 6.0)
	}
	return model.TrustMath{
		ConfidenceScore:  confidence,
		WitnessCount:     len(witnesses),
		Witnesses:        witnesses,
		DeviationSigma:   sigma,
		ExceedsThreshold: c.Exceeds(confidence),
		Grade:            c.Grade(confidence),
	}
}
