package server

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/nlaakso/agentpulse/internal/format"
	"github.com/nlaakso/agentpulse/internal/model"
	"github.com/nlaakso/agentpulse/internal/persona"
	"github.com/nlaakso/agentpulse/internal/query"
	"github.com/nlaakso/agentpulse/internal/tracer"
)

var decisionIDPattern = regexp.MustCompile(`^dec-\d{4}$`)

// explainResponse is the deep single-decision record.
type explainResponse struct {
	Decision     any      `json:"decision"`
	Reasoning    []string `json:"reasoning_chain"`
	Alternatives []string `json:"alternatives_considered"`
	Depth        string   `json:"explainability_depth"`
	TraceID      string   `json:"trace_id"`
}

// handleExplain serves GET /api/decisions/{id}. Decision IDs are stable
// across requests for a fixed seed and batch size, so a dashboard can
// fetch a list and drill into any row afterwards.
func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !decisionIDPattern.MatchString(id) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("malformed decision id %q", id))
		return
	}
	depth := query.Parse(r.URL.Query()).Depth

	cfg, _ := s.snapshot()
	items := s.batch(cfg, time.Now().UTC())

	for _, d := range items {
		if d.ID == id {
			writeJSON(w, http.StatusOK, explainResponse{
				Decision:     format.Project(d, query.FormatFull, depth),
				Reasoning:    reasoningChain(d),
				Alternatives: alternatives(d),
				Depth:        string(depth),
				TraceID:      tracer.NewTraceID(),
			})
			return
		}
	}
	writeError(w, http.StatusNotFound, fmt.Sprintf("decision %q not found", id))
}

// reasoningChain renders the enrichment evidence as ordered steps.
func reasoningChain(d model.EnrichedDecision) []string {
	chain := []string{
		fmt.Sprintf("Gathered %d witness feeds: %v", d.Trust.WitnessCount, d.Trust.Witnesses),
		fmt.Sprintf("Cross-source deviation sigma %.2f yields %s trust at confidence %.1f", d.Trust.DeviationSigma, d.Trust.Grade, d.Confidence),
		fmt.Sprintf("Classified as %s / %s complexity, impact %s, urgency %s", d.Class.Category, d.Class.Complexity, d.Class.Impact, d.Class.Urgency),
		fmt.Sprintf("Weighted risk factors total %.1f (%s)", d.Risk.OverallScore, d.Risk.Level),
		fmt.Sprintf("Compliance checks resolved to %s with score %.0f", d.Comply.Status, d.Comply.Score),
	}
	if d.Violation {
		chain = append(chain, "Constraint violation recorded; operator review flagged")
	}
	if d.Conflicts.HasConflicts {
		chain = append(chain, fmt.Sprintf("Conflicts with %v (%s)", d.Conflicts.ConflictIDs, d.Conflicts.Severity))
	}
	chain = append(chain, fmt.Sprintf("Consensus strength %.0f with %d agreeing agents", d.Consensus.Strength, len(d.Consensus.Agreeing)))
	return chain
}

// alternatives lists other decision texts from the same persona's bank.
// Selection keys off the numeric id so the list is stable per decision.
func alternatives(d model.EnrichedDecision) []string {
	def := persona.Lookup(d.Agent)
	if def == nil || len(def.Summaries) == 0 {
		return nil
	}
	n, _ := strconv.Atoi(d.ID[len("dec-"):])

	var alts []string
	for i := 0; len(alts) < 2 && i < len(def.Summaries); i++ {
		candidate := def.Summaries[(n+i)%len(def.Summaries)]
		if candidate != d.Summary {
			alts = append(alts, candidate)
		}
	}
	return alts
}
