package server

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/nlaakso/agentpulse/internal/format"
	"github.com/nlaakso/agentpulse/internal/model"
	"github.com/nlaakso/agentpulse/internal/persona"
	"github.com/nlaakso/agentpulse/internal/query"
	"github.com/nlaakso/agentpulse/internal/tracer"
)

// Envelope is the list-response wrapper. Stats cover the full filtered
// set, not just the returned page. NextCursor is a decimal string so
// the cursor scheme can change without breaking clients.
type Envelope struct {
	Data        []any        `json:"data"`
	Count       int          `json:"count"`
	Total       int          `json:"total"`
	Offset      int          `json:"offset"`
	HasMore     bool         `json:"has_more"`
	NextCursor  string       `json:"next_cursor,omitempty"`
	Stats       format.Stats `json:"stats"`
	Cached      bool         `json:"cached"`
	TraceID     string       `json:"trace_id"`
	GeneratedAt string       `json:"generated_at"`
}

func (s *Server) handleDecisions(w http.ResponseWriter, r *http.Request) {
	params := query.Parse(r.URL.Query())
	cfg, results := s.snapshot()

	key := params.CacheKey()
	if v, ok := results.Get(key); ok {
		env := v.(Envelope)
		env.Cached = true
		writeJSON(w, http.StatusOK, env)
		return
	}

	items := s.batch(cfg, time.Now().UTC())
	filtered := query.Apply(items, params)
	query.Sort(filtered, params.SortBy, params.Order)
	page := query.Paginate(filtered, params.Cursor, params.Limit)

	env := Envelope{
		Data:        format.ProjectAll(page.Items, params.Format, params.Depth),
		Count:       len(page.Items),
		Total:       page.Total,
		Offset:      page.Offset,
		HasMore:     page.HasMore,
		Stats:       format.Aggregate(filtered),
		TraceID:     tracer.NewTraceID(),
		GeneratedAt: tracer.UTCNowISO(),
	}
	if page.HasMore {
		env.NextCursor = strconv.Itoa(page.NextCursor)
	}

	results.Put(key, env)
	writeJSON(w, http.StatusOK, env)
}

// agentSummary is one row of the /api/agents response.
type agentSummary struct {
	Name            model.Persona  `json:"name"`
	Role            string         `json:"role"`
	DefaultCategory model.Category `json:"default_category"`
	WitnessFeeds    []string       `json:"witness_feeds"`
	Decisions       int            `json:"decisions"`
	AvgConfidence   float64        `json:"avg_confidence"`
	Violations      int            `json:"violations"`
	ActiveDecisions int            `json:"active_decisions"`
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	cfg, _ := s.snapshot()
	items := s.batch(cfg, time.Now().UTC())

	summaries := make([]agentSummary, 0, len(model.Personas))
	for _, def := range persona.All() {
		row := agentSummary{
			Name:            def.Name,
			Role:            def.Role,
			DefaultCategory: def.DefaultCategory,
			WitnessFeeds:    def.WitnessFeeds,
		}
		var confSum float64
		for _, d := range items {
			if d.Agent != def.Name {
				continue
			}
			row.Decisions++
			confSum += d.Confidence
			if d.Violation {
				row.Violations++
			}
			if d.Active {
				row.ActiveDecisions++
			}
		}
		if row.Decisions > 0 {
			row.AvgConfidence = math.Round(confSum/float64(row.Decisions)*100) / 100
		}
		summaries = append(summaries, row)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"agents":   summaries,
		"count":    len(summaries),
		"trace_id": tracer.NewTraceID(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	cfg, results := s.snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"service":        Name,
		"version":        Version,
		"status":         "ok",
		"uptime_seconds": int(time.Since(s.start).Seconds()),
		"batch_size":     cfg.BatchSize,
		"cache_entries":  results.Len(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"error":    msg,
		"trace_id": tracer.NewTraceID(),
	})
}
