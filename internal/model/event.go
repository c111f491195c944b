package model

import "time"

// DecisionEvent is one raw generated agent decision. Events are created
// fresh per batch, never persisted, and immutable once created.
type DecisionEvent struct {
	ID              string    `json:"id"`
	Agent           Persona   `json:"agent"`
	Summary         string    `json:"summary"`
	Confidence      float64   `json:"confidence"`
	Timestamp       time.Time `json:"timestamp"`
	Impact          Impact    `json:"impact"`
	Active          bool      `json:"active"`
	ConstraintCount int       `json:"constraint_count"`
	InputCount      int       `json:"input_count"`
	Violation       bool      `json:"constraint_violation"`
	Maintenance     bool      `json:"maintenance_flag"`
	Coordination    bool      `json:"coordination_event"`
}
