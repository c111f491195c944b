package model

import "time"

// TrustMath carries the simulated cross-source trust computation.
type TrustMath struct {
	ConfidenceScore  float64    `json:"confidence_score"`
	WitnessCount     int        `json:"witness_count"`
	Witnesses        []string   `json:"witnesses"`
	DeviationSigma   float64    `json:"deviation_sigma"`
	ExceedsThreshold bool       `json:"exceeds_threshold"`
	Grade            TrustGrade `json:"trust_grade"`
}

// Temporal carries age-derived freshness figures, computed against
// wall-clock time at enrichment, not at read time.
type Temporal struct {
	AgeSeconds       float64          `json:"age_seconds"`
	TrustDecay       float64          `json:"trust_decay"`
	DegradationCurve DegradationCurve `json:"degradation_curve"`
}

// Classifications groups the five independent classifier outputs.
type Classifications struct {
	Complexity Complexity `json:"complexity"`
	Category   Category   `json:"category"`
	Impact     Impact     `json:"impact"`
	Urgency    Urgency    `json:"urgency"`
	Sentiment  Sentiment  `json:"sentiment"`
}

// Relation links this decision to another with a kind.
type Relation struct {
	ID   string       `json:"id"`
	Kind RelationKind `json:"kind"`
}

// ConflictReport is the batch-relative conflict-detection result.
type ConflictReport struct {
	HasConflicts bool             `json:"has_conflicts"`
	Severity     ConflictSeverity `json:"severity"`
	ConflictIDs  []string         `json:"conflict_ids"`
	Reasons      []string         `json:"reasons"`
}

// Consensus tracks multi-agent agreement within the batch window.
type Consensus struct {
	Agreeing    []Persona `json:"agreeing_agents"`
	Disagreeing []Persona `json:"disagreeing_agents"`
	Strength    float64   `json:"consensus_strength"`
}

// TemporalPattern summarizes same-persona decision density.
type TemporalPattern struct {
	HourlyCount  int     `json:"hourly_count"`
	ClusterScore float64 `json:"cluster_score"`
	Burst        bool    `json:"burst_detected"`
}

// RiskFactor is one weighted contribution to the overall risk score.
type RiskFactor struct {
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	Raw      float64 `json:"raw"`
	Weighted float64 `json:"weighted"`
}

// RiskAssessment is the weighted risk score with its factor breakdown.
type RiskAssessment struct {
	OverallScore float64      `json:"overall_risk_score"`
	Level        RiskLevel    `json:"risk_level"`
	Factors      []RiskFactor `json:"factors"`
}

// Compliance carries the three-axis check and its folded status.
type Compliance struct {
	Safety      bool             `json:"safety"`
	Financial   bool             `json:"financial"`
	Operational bool             `json:"operational"`
	Score       float64          `json:"score"`
	Status      ComplianceStatus `json:"status"`
}

// ResourceImpact is a purely illustrative cost estimate; never used for
// real capacity planning.
type ResourceImpact struct {
	InferenceMillis int     `json:"inference_ms"`
	MemoryMB        int     `json:"memory_mb"`
	ModelCalls      int     `json:"model_calls"`
	CostUSD         float64 `json:"cost_usd"`
	Efficiency      float64 `json:"efficiency"`
}

// Workload is the simulated agent cognitive-load snapshot.
type Workload struct {
	ActiveTasks   int     `json:"active_tasks"`
	QueueDepth    int     `json:"queue_depth"`
	CognitiveLoad float64 `json:"cognitive_load"`
}

// AuditEntry is one fabricated audit-trail line.
type AuditEntry struct {
	At    time.Time `json:"at"`
	Actor string    `json:"actor"`
	Note  string    `json:"note"`
}

// EnrichedDecision is a DecisionEvent plus every derived group the
// pipeline attaches. All score and percentage fields stay in [0,100].
type EnrichedDecision struct {
	DecisionEvent

	Trust     TrustMath       `json:"trust_mathematics"`
	Temporal  Temporal        `json:"temporal"`
	Class     Classifications `json:"classifications"`
	ParentID  string          `json:"parent_id,omitempty"`
	ChildIDs  []string        `json:"child_ids,omitempty"`
	Related   []Relation      `json:"related,omitempty"`
	Conflicts ConflictReport  `json:"conflict_analysis"`
	Consensus Consensus       `json:"consensus"`
	Pattern   TemporalPattern `json:"temporal_pattern"`
	Risk      RiskAssessment  `json:"risk_assessment"`
	Comply    Compliance      `json:"compliance"`
	Resources ResourceImpact  `json:"resource_impact"`
	Load      Workload        `json:"agent_workload"`

	Notifications []string     `json:"notifications,omitempty"`
	AuditTrail    []AuditEntry `json:"audit_trail"`
	Tags          []string     `json:"tags"`
	QualityScore  float64      `json:"quality_score"`
}
