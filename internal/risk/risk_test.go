package risk

import (
	"testing"

	"github.com/nlaakso/agentpulse/internal/model"
	"github.com/nlaakso/agentpulse/internal/rng"
)

func TestDefaultWeightsSumToOne(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights invalid: %v", err)
	}
}

func TestValidateRejectsBadWeights(t *testing.T) {
	w := Weights{Impact: 0.5, Urgency: 0.5, Confidence: 0.5, Violations: 0.5}
	if err := w.Validate(); err == nil {
		t.Error("expected error for weights summing to 2.0")
	}
}

func TestScoreBounds(t *testing.T) {
	w := DefaultWeights()
	low := Score(w, model.ImpactLow, model.UrgencyRoutine, 100, 0)
	if low.OverallScore != 0 {
		t.Errorf("floor score = %v, want 0", low.OverallScore)
	}
	if low.Level != model.RiskLow {
		t.Errorf("floor level = %q, want low", low.Level)
	}

	high := Score(w, model.ImpactCritical, model.UrgencyEmergency, 0, 3)
	if high.OverallScore != 100 {
		t.Errorf("ceiling score = %v, want 100", high.OverallScore)
	}
	if high.Level != model.RiskExtreme {
		t.Errorf("ceiling level = %q, want extreme", high.Level)
	}
}

func TestScoreFactorBreakdownSums(t *testing.T) {
	a := Score(DefaultWeights(), model.ImpactHigh, model.UrgencyUrgent, 62, 1)
	var sum float64
	for _, f := range a.Factors {
		sum += f.Weighted
	}
	if diff := sum - a.OverallScore; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("factor sum %v != overall %v", sum, a.OverallScore)
	}
	if len(a.Factors) != 4 {
		t.Errorf("expected 4 factors, got %d", len(a.Factors))
	}
}

// A violation with critical impact must never score below high. The
// classifier forces urgency to emergency for critical impact and the
// generator caps violation confidence at 60, so the worst case is
// 35 + 25 + 0.25*40 + 0.15*33.3 = 75.
func TestViolationCriticalNeverLow(t *testing.T) {
	w := DefaultWeights()
	for conf := 30.0; conf < 60; conf += 1.5 {
		a := Score(w, model.ImpactCritical, model.UrgencyEmergency, conf, 1)
		if a.Level != model.RiskHigh && a.Level != model.RiskExtreme {
			t.Fatalf("violation+critical at confidence %v scored %q (%v)", conf, a.Level, a.OverallScore)
		}
	}
}

func TestViolationCountCapped(t *testing.T) {
	w := DefaultWeights()
	three := Score(w, model.ImpactLow, model.UrgencyRoutine, 90, 3)
	ten := Score(w, model.ImpactLow, model.UrgencyRoutine, 90, 10)
	if three.OverallScore != ten.OverallScore {
		t.Errorf("violation factor not capped: %v vs %v", three.OverallScore, ten.OverallScore)
	}
}

func TestLevelBuckets(t *testing.T) {
	cases := []struct {
		score float64
		want  model.RiskLevel
	}{
		{0, model.RiskLow},
		{29.9, model.RiskLow},
		{30, model.RiskModerate},
		{54.9, model.RiskModerate},
		{55, model.RiskHigh},
		{74.9, model.RiskHigh},
		{75, model.RiskExtreme},
		{100, model.RiskExtreme},
	}
	for _, tc := range cases {
		if got := level(tc.score); got != tc.want {
			t.Errorf("level(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestComplianceSafetyAxis(t *testing.T) {
	src := rng.New(1)
	c := Compliance(src, model.CategoryGovernance, true)
	if c.Safety {
		t.Error("safety must fail on violation")
	}
	if c.Status != model.NonCompliant {
		t.Errorf("status = %q, want non_compliant", c.Status)
	}
}

func TestComplianceCleanGovernance(t *testing.T) {
	// Governance exposes neither financial nor operational axes, so a
	// non-violating event is always fully compliant.
	src := rng.New(2)
	for i := 0; i < 200; i++ {
		c := Compliance(src, model.CategoryGovernance, false)
		if c.Status != model.FullyCompliant || c.Score != 100 {
			t.Fatalf("clean governance event not fully compliant: %+v", c)
		}
	}
}

func TestComplianceFinancialOnlyForTrading(t *testing.T) {
	src := rng.New(3)
	sawFail := false
	for i := 0; i < 500; i++ {
		c := Compliance(src, model.CategoryTrading, false)
		if !c.Financial {
			sawFail = true
			if c.Status != model.ConditionallyCompliant {
				t.Fatalf("single financial fail should be conditional, got %q", c.Status)
			}
			if c.Score != 70 {
				t.Fatalf("single-fail score = %v, want 70", c.Score)
			}
		}
		if !c.Operational {
			t.Fatal("operational axis must not fail for trading")
		}
	}
	if !sawFail {
		t.Error("500 trading events produced no financial failures")
	}
}

func TestComplianceScoreInRange(t *testing.T) {
	src := rng.New(4)
	for i := 0; i < 500; i++ {
		c := Compliance(src, model.CategoryDispatch, i%13 == 0)
		if c.Score < 0 || c.Score > 100 {
			t.Fatalf("compliance score %v outside [0,100]", c.Score)
		}
	}
}

func TestResourcesScaleWithComplexity(t *testing.T) {
	src := rng.New(5)
	for i := 0; i < 300; i++ {
		simple := Resources(src, model.ComplexitySimple, 3)
		if simple.InferenceMillis < 120 || simple.InferenceMillis > 600 {
			t.Fatalf("simple inference %d outside [120,600]", simple.InferenceMillis)
		}
		complexR := Resources(src, model.ComplexityComplex, 3)
		if complexR.InferenceMillis < 1200 || complexR.InferenceMillis > 2800 {
			t.Fatalf("complex inference %d outside [1200,2800]", complexR.InferenceMillis)
		}
	}
}

func TestResourcesInvariants(t *testing.T) {
	src := rng.New(6)
	for i := 0; i < 300; i++ {
		r := Resources(src, model.ComplexityModerate, 5)
		if r.ModelCalls < 1 || r.ModelCalls > 6 {
			t.Fatalf("model calls %d outside [1,6]", r.ModelCalls)
		}
		if r.Efficiency < 5 || r.Efficiency > 99 {
			t.Fatalf("efficiency %v outside [5,99]", r.Efficiency)
		}
		if r.CostUSD <= 0 {
			t.Fatalf("cost %v not positive", r.CostUSD)
		}
		if r.MemoryMB < 64 || r.MemoryMB > 512 {
			t.Fatalf("memory %d outside [64,512]", r.MemoryMB)
		}
	}
}
