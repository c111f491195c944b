package classify

import (
	"testing"

	"github.com/nlaakso/agentpulse/internal/model"
)

func TestComplexityEscalation(t *testing.T) {
	cases := []struct {
		summary    string
		confidence float64
		want       model.Complexity
	}{
		{"Hold bidding", 95, model.ComplexitySimple},
		{"Halt charging on bank A after repeated voltage excursions", 95, model.ComplexityModerate},
		{"Increase hedge ratio to 0.7 against the volatile evening block while congestion persists", 50, model.ComplexityComplex},
	}
	for _, tc := range cases {
		if got := Complexity(tc.summary, tc.confidence); got != tc.want {
			t.Errorf("Complexity(%q, %v) = %q, want %q", tc.summary, tc.confidence, got, tc.want)
		}
	}
}

func TestComplexityTotal(t *testing.T) {
	if got := Complexity("", 0); got == "" {
		t.Error("Complexity returned empty label")
	}
}

func TestCategoryKeywordMatch(t *testing.T) {
	cases := []struct {
		agent   model.Persona
		summary string
		want    model.Category
	}{
		{model.PersonaOperations, "Dispatch unit 7 to sector C", model.CategoryDispatch},
		{model.PersonaOperations, "Charge battery bank A", model.CategoryDispatch},
		{model.PersonaMarkets, "Buy 40 MWh in the day-ahead auction", model.CategoryTrading},
		{model.PersonaSentinel, "Schedule preventive maintenance for the transformer", model.CategoryMaintenance},
		{model.PersonaGovernor, "Approve the revised exposure quota", model.CategoryGovernance},
		{model.PersonaGovernor, "Grant temporary override authority", model.CategoryOverride},
	}
	for _, tc := range cases {
		if got := Category(tc.agent, tc.summary); got != tc.want {
			t.Errorf("Category(%q, %q) = %q, want %q", tc.agent, tc.summary, got, tc.want)
		}
	}
}

func TestCategoryOverridePrecedence(t *testing.T) {
	// "override" and "approve" both present; override wins by precedence.
	got := Category(model.PersonaGovernor, "Approve the override request for depot 3")
	if got != model.CategoryOverride {
		t.Errorf("expected override precedence, got %q", got)
	}
}

func TestCategoryPersonaDefault(t *testing.T) {
	cases := []struct {
		agent model.Persona
		want  model.Category
	}{
		{model.PersonaOperations, model.CategoryDispatch},
		{model.PersonaMarkets, model.CategoryTrading},
		{model.PersonaSentinel, model.CategoryMaintenance},
		{model.PersonaGovernor, model.CategoryGovernance},
	}
	for _, tc := range cases {
		if got := Category(tc.agent, "no matching vocabulary here"); got != tc.want {
			t.Errorf("default Category(%q) = %q, want %q", tc.agent, got, tc.want)
		}
	}
}

func TestCategoryUnknownPersonaFallback(t *testing.T) {
	if got := Category(model.Persona("ghost"), "nothing matches"); got != model.CategoryDispatch {
		t.Errorf("unknown persona fallback = %q, want dispatch", got)
	}
}

func TestImpactEscalation(t *testing.T) {
	if got := Impact("Safety interlock tripped", model.ComplexitySimple, 95, false); got != model.ImpactCritical {
		t.Errorf("safety keyword impact = %q, want critical", got)
	}
	if got := Impact("Routine summary", model.ComplexitySimple, 95, true); got != model.ImpactCritical {
		t.Errorf("violation impact = %q, want critical", got)
	}
	if got := Impact("Routine summary", model.ComplexityComplex, 95, false); got != model.ImpactHigh {
		t.Errorf("complex impact = %q, want high", got)
	}
	if got := Impact("Routine summary", model.ComplexitySimple, 40, false); got != model.ImpactHigh {
		t.Errorf("low-confidence impact = %q, want high", got)
	}
	if got := Impact("Routine summary", model.ComplexityModerate, 90, false); got != model.ImpactMedium {
		t.Errorf("moderate impact = %q, want medium", got)
	}
	if got := Impact("Routine summary", model.ComplexitySimple, 90, false); got != model.ImpactLow {
		t.Errorf("base impact = %q, want low", got)
	}
}

func TestUrgencyEscalation(t *testing.T) {
	if got := Urgency("anything", model.ImpactCritical); got != model.UrgencyEmergency {
		t.Errorf("critical impact urgency = %q, want emergency", got)
	}
	if got := Urgency("respond immediately", model.ImpactLow); got != model.UrgencyEmergency {
		t.Errorf("emergency keyword urgency = %q, want emergency", got)
	}
	if got := Urgency("halt charging now", model.ImpactLow); got != model.UrgencyUrgent {
		t.Errorf("urgent keyword urgency = %q, want urgent", got)
	}
	if got := Urgency("anything", model.ImpactMedium); got != model.UrgencyElevated {
		t.Errorf("medium impact urgency = %q, want elevated", got)
	}
	if got := Urgency("calm summary", model.ImpactLow); got != model.UrgencyRoutine {
		t.Errorf("base urgency = %q, want routine", got)
	}
}

func TestSentimentFolding(t *testing.T) {
	if got := Sentiment(model.UrgencyEmergency, false); got != model.SentimentEmergency {
		t.Errorf("emergency urgency sentiment = %q", got)
	}
	if got := Sentiment(model.UrgencyRoutine, true); got != model.SentimentEmergency {
		t.Errorf("violation sentiment = %q, want emergency", got)
	}
	if got := Sentiment(model.UrgencyUrgent, false); got != model.SentimentStressed {
		t.Errorf("urgent sentiment = %q, want stressed", got)
	}
	if got := Sentiment(model.UrgencyElevated, false); got != model.SentimentStressed {
		t.Errorf("elevated sentiment = %q, want stressed", got)
	}
	if got := Sentiment(model.UrgencyRoutine, false); got != model.SentimentCalm {
		t.Errorf("routine sentiment = %q, want calm", got)
	}
}

func TestAllFieldsPopulated(t *testing.T) {
	e := model.DecisionEvent{
		Agent:      model.PersonaMarkets,
		Summary:    "Sell surplus capacity from bank B into the intraday market",
		Confidence: 82,
	}
	c := All(e)
	if c.Complexity == "" || c.Category == "" || c.Impact == "" || c.Urgency == "" || c.Sentiment == "" {
		t.Errorf("classifier left a field empty: %+v", c)
	}
}
