package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nlaakso/agentpulse/internal/config"
	"github.com/nlaakso/agentpulse/internal/model"
	"github.com/nlaakso/agentpulse/internal/rng"
	"github.com/nlaakso/agentpulse/internal/tracer"
	"github.com/nlaakso/agentpulse/internal/trust"
)

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Question      string          `json:"question"`
	Intent        string          `json:"intent"`
	Answer        string          `json:"answer"`
	SupportingIDs []string        `json:"supporting_ids,omitempty"`
	Trust         model.TrustMath `json:"trust_mathematics"`
	TraceID       string          `json:"trace_id"`
}

// handleAsk answers free-form questions by keyword intent matching over
// the current batch. It is a demo surface: no model call, no retrieval.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		writeError(w, http.StatusBadRequest, "question must not be empty")
		return
	}

	cfg, _ := s.snapshot()
	items := s.batch(cfg, time.Now().UTC())

	intent, answer, ids := answerQuestion(question, items)
	writeJSON(w, http.StatusOK, askResponse{
		Question:      question,
		Intent:        intent,
		Answer:        answer,
		SupportingIDs: ids,
		Trust:         answerTrust(cfg, question, ids, items),
		TraceID:       tracer.NewTraceID(),
	})
}

// answerTrust scores the answer itself with the same trust block the
// decisions carry. Confidence averages the supporting decisions, or the
// whole batch when the answer has no specific support. The sigma source
// is seeded from the question so repeat questions score identically.
func answerTrust(cfg config.Config, question string, ids []string, items []model.EnrichedDecision) model.TrustMath {
	byID := make(map[string]model.EnrichedDecision, len(items))
	for _, d := range items {
		byID[d.ID] = d
	}

	var conf float64
	var n int
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			conf += d.Confidence
			n++
		}
	}
	if n == 0 {
		for _, d := range items {
			conf += d.Confidence
			n++
		}
	}
	if n > 0 {
		conf /= float64(n)
	}

	var seed int64
	for _, r := range question {
		seed = seed*31 + int64(r)
	}
	src := rng.New(cfg.Seed ^ seed)
	return trust.Evaluate(cfg.Trust, conf, []string{"batch-aggregate", "intent-matcher"}, src)
}

func answerQuestion(question string, items []model.EnrichedDecision) (intent, answer string, ids []string) {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "risk"):
		answer, ids = riskiestAnswer(items)
		return "riskiest", answer, ids
	case strings.Contains(q, "violat"):
		answer, ids = violationsAnswer(items)
		return "violations", answer, ids
	case strings.Contains(q, "conflict"):
		answer, ids = conflictsAnswer(items)
		return "conflicts", answer, ids
	case strings.Contains(q, "trust") || strings.Contains(q, "confiden"):
		answer, ids = trustAnswer(items)
		return "trust", answer, ids
	case strings.Contains(q, "busiest") || strings.Contains(q, "who") || strings.Contains(q, "agent"):
		answer, ids = busiestAnswer(items)
		return "busiest-agent", answer, ids
	default:
		answer, ids = overviewAnswer(items)
		return "overview", answer, ids
	}
}

func riskiestAnswer(items []model.EnrichedDecision) (string, []string) {
	if len(items) == 0 {
		return "No decisions in the current window.", nil
	}
	top := items[0]
	for _, d := range items[1:] {
		if d.Risk.OverallScore > top.Risk.OverallScore {
			top = d
		}
	}
	return fmt.Sprintf("The riskiest decision is %s by the %s agent: %q, scored %.1f (%s).",
		top.ID, top.Agent, top.Summary, top.Risk.OverallScore, top.Risk.Level), []string{top.ID}
}

func violationsAnswer(items []model.EnrichedDecision) (string, []string) {
	var ids []string
	for _, d := range items {
		if d.Violation {
			ids = append(ids, d.ID)
		}
	}
	if len(ids) == 0 {
		return "No constraint violations in the current window.", nil
	}
	return fmt.Sprintf("%d of %d decisions carry constraint violations.", len(ids), len(items)), ids
}

func conflictsAnswer(items []model.EnrichedDecision) (string, []string) {
	var ids []string
	worst := model.ConflictNone
	for _, d := range items {
		if d.Conflicts.HasConflicts {
			ids = append(ids, d.ID)
			if model.ConflictRank[d.Conflicts.Severity] > model.ConflictRank[worst] {
				worst = d.Conflicts.Severity
			}
		}
	}
	if len(ids) == 0 {
		return "No cross-decision conflicts detected.", nil
	}
	return fmt.Sprintf("%d decisions are in conflict; worst severity is %s.", len(ids), worst), ids
}

func trustAnswer(items []model.EnrichedDecision) (string, []string) {
	if len(items) == 0 {
		return "No decisions in the current window.", nil
	}
	var sum float64
	low := items[0]
	for _, d := range items {
		sum += d.Confidence
		if d.Confidence < low.Confidence {
			low = d
		}
	}
	return fmt.Sprintf("Average confidence is %.1f across %d decisions; lowest is %s at %.1f (%s trust).",
		sum/float64(len(items)), len(items), low.ID, low.Confidence, low.Trust.Grade), []string{low.ID}
}

func busiestAnswer(items []model.EnrichedDecision) (string, []string) {
	counts := make(map[model.Persona]int)
	for _, d := range items {
		counts[d.Agent]++
	}
	var busiest model.Persona
	for _, p := range model.Personas {
		if counts[p] > counts[busiest] {
			busiest = p
		}
	}
	if busiest == "" {
		return "No decisions in the current window.", nil
	}
	return fmt.Sprintf("The %s agent is busiest with %d of %d decisions.", busiest, counts[busiest], len(items)), nil
}

func overviewAnswer(items []model.EnrichedDecision) (string, []string) {
	var violations, urgent int
	for _, d := range items {
		if d.Violation {
			violations++
		}
		if d.Class.Urgency == model.UrgencyUrgent || d.Class.Urgency == model.UrgencyEmergency {
			urgent++
		}
	}
	return fmt.Sprintf("%d decisions in the window: %d urgent, %d with violations.", len(items), urgent, violations), nil
}
