package model

// Persona identifies one of the four autonomous decision-making roles.
type Persona string

const (
	PersonaOperations Persona = "operations"
	PersonaMarkets    Persona = "markets"
	PersonaSentinel   Persona = "sentinel"
	PersonaGovernor   Persona = "governor"
)

// Personas lists every valid persona in declaration order.
var Personas = []Persona{PersonaOperations, PersonaMarkets, PersonaSentinel, PersonaGovernor}

// ValidPersona reports whether p names a known persona.
func ValidPersona(p Persona) bool {
	for _, known := range Personas {
		if p == known {
			return true
		}
	}
	return false
}

// Impact grades the blast radius of a decision.
type Impact string

const (
	ImpactLow      Impact = "low"
	ImpactMedium   Impact = "medium"
	ImpactHigh     Impact = "high"
	ImpactCritical Impact = "critical"
)

// ImpactRank maps impact to a comparable integer for sorting and escalation.
var ImpactRank = map[Impact]int{
	ImpactLow:      0,
	ImpactMedium:   1,
	ImpactHigh:     2,
	ImpactCritical: 3,
}

// Urgency grades how quickly a decision demands attention.
type Urgency string

const (
	UrgencyRoutine   Urgency = "routine"
	UrgencyElevated  Urgency = "elevated"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

// UrgencyRank maps urgency to a comparable integer.
var UrgencyRank = map[Urgency]int{
	UrgencyRoutine:   0,
	UrgencyElevated:  1,
	UrgencyUrgent:    2,
	UrgencyEmergency: 3,
}

// Complexity grades how involved a decision was to reach.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// Category buckets a decision by operational domain.
type Category string

const (
	CategoryDispatch    Category = "dispatch"
	CategoryTrading     Category = "trading"
	CategoryMaintenance Category = "maintenance"
	CategoryGovernance  Category = "governance"
	CategoryOverride    Category = "override"
)

// Sentiment grades the emotional register of a decision's context.
type Sentiment string

const (
	SentimentCalm      Sentiment = "calm"
	SentimentStressed  Sentiment = "stressed"
	SentimentEmergency Sentiment = "emergency"
)

// TrustGrade is the five-level categorical trust label.
type TrustGrade string

const (
	TrustExcellent TrustGrade = "excellent"
	TrustGood      TrustGrade = "good"
	TrustFair      TrustGrade = "fair"
	TrustPoor      TrustGrade = "poor"
	TrustSuspect   TrustGrade = "suspect"
)

// TrustRank maps trust grades to a comparable integer, higher is better.
var TrustRank = map[TrustGrade]int{
	TrustSuspect:   0,
	TrustPoor:      1,
	TrustFair:      2,
	TrustGood:      3,
	TrustExcellent: 4,
}

// RiskLevel buckets the overall risk score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskExtreme  RiskLevel = "extreme"
)

// ComplianceStatus is the folded four-state compliance outcome.
type ComplianceStatus string

const (
	FullyCompliant         ComplianceStatus = "fully_compliant"
	ConditionallyCompliant ComplianceStatus = "conditionally_compliant"
	NonCompliant           ComplianceStatus = "non_compliant"
	PendingReview          ComplianceStatus = "pending_review"
)

// DegradationCurve names the shape of the health-degradation model.
type DegradationCurve string

const (
	CurveLinear      DegradationCurve = "linear"
	CurveExponential DegradationCurve = "exponential"
	CurveLogarithmic DegradationCurve = "logarithmic"
)

// ConflictSeverity tiers the conflict-detection result.
type ConflictSeverity string

const (
	ConflictNone     ConflictSeverity = "none"
	ConflictMinor    ConflictSeverity = "minor"
	ConflictModerate ConflictSeverity = "moderate"
	ConflictSevere   ConflictSeverity = "severe"
)

// ConflictRank maps conflict severity to a comparable integer.
var ConflictRank = map[ConflictSeverity]int{
	ConflictNone:     0,
	ConflictMinor:    1,
	ConflictModerate: 2,
	ConflictSevere:   3,
}

// RelationKind labels how two decisions relate.
type RelationKind string

const (
	RelationParent      RelationKind = "parent"
	RelationChild       RelationKind = "child"
	RelationAlternative RelationKind = "alternative"
	RelationFollowup    RelationKind = "followup"
)
