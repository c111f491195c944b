// Package query implements the in-memory engine over an enriched
// batch: parameter parsing with silent defaulting, conjunctive
// filtering, stable sorting, and offset-cursor pagination.
package query

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nlaakso/agentpulse/internal/model"
)

// Format selects the response projection shape.
type Format string

const (
	FormatMinimal  Format = "minimal"
	FormatStandard Format = "standard"
	FormatFull     Format = "full"
)

// Depth selects explanation verbosity.
type Depth string

const (
	DepthBeginner     Depth = "beginner"
	DepthIntermediate Depth = "intermediate"
	DepthExpert       Depth = "expert"
)

// SortField names one of the sortable keys.
type SortField string

const (
	SortTimestamp  SortField = "timestamp"
	SortConfidence SortField = "confidence"
	SortImpact     SortField = "impact"
	SortUrgency    SortField = "urgency"
	SortRisk       SortField = "risk"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// DefaultLimit and MaxLimit bound page sizes.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params is the full canonicalized query parameter tuple.
type Params struct {
	Agent         model.Persona
	Since         time.Time
	MinConfidence float64
	MaxConfidence float64
	Category      model.Category
	Impact        model.Impact
	UrgentOnly    bool
	Tags          []string
	SortBy        SortField
	Order         SortOrder
	Limit         int
	Cursor        int
	Format        Format
	Depth         Depth
}

// Defaults returns the documented parameter defaults.
func Defaults() Params {
	return Params{
		MinConfidence: 0,
		MaxConfidence: 100,
		SortBy:        SortTimestamp,
		Order:         OrderDesc,
		Limit:         DefaultLimit,
		Cursor:        0,
		Format:        FormatStandard,
		Depth:         DepthIntermediate,
	}
}

// Parse builds Params from raw query values. Malformed or missing
// values silently degrade to their documented defaults; parsing never
// fails.
func Parse(v url.Values) Params {
	p := Defaults()

	if a := model.Persona(v.Get("agent")); model.ValidPersona(a) {
		p.Agent = a
	}
	if s := v.Get("since"); s != "" {
		if ts, err := time.Parse(time.RFC3339, s); err == nil {
			p.Since = ts.UTC()
		}
	}
	if f, ok := parseFloat(v.Get("minConfidence")); ok && f >= 0 && f <= 100 {
		p.MinConfidence = f
	}
	if f, ok := parseFloat(v.Get("maxConfidence")); ok && f >= 0 && f <= 100 {
		p.MaxConfidence = f
	}
	if p.MaxConfidence < p.MinConfidence {
		p.MinConfidence, p.MaxConfidence = Defaults().MinConfidence, Defaults().MaxConfidence
	}
	switch c := model.Category(v.Get("category")); c {
	case model.CategoryDispatch, model.CategoryTrading, model.CategoryMaintenance,
		model.CategoryGovernance, model.CategoryOverride:
		p.Category = c
	}
	switch i := model.Impact(v.Get("impact")); i {
	case model.ImpactLow, model.ImpactMedium, model.ImpactHigh, model.ImpactCritical:
		p.Impact = i
	}
	if v.Get("urgentOnly") == "true" {
		p.UrgentOnly = true
	}
	if raw := v.Get("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				p.Tags = append(p.Tags, t)
			}
		}
		sort.Strings(p.Tags)
	}
	switch s := SortField(v.Get("sortBy")); s {
	case SortTimestamp, SortConfidence, SortImpact, SortUrgency, SortRisk:
		p.SortBy = s
	}
	switch o := SortOrder(v.Get("order")); o {
	case OrderAsc, OrderDesc:
		p.Order = o
	}
	if n, err := strconv.Atoi(v.Get("limit")); err == nil && n > 0 {
		p.Limit = n
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if n, err := strconv.Atoi(v.Get("cursor")); err == nil && n >= 0 {
		p.Cursor = n
	}
	switch f := Format(v.Get("format")); f {
	case FormatMinimal, FormatStandard, FormatFull:
		p.Format = f
	}
	switch d := Depth(v.Get("explainabilityDepth")); d {
	case DepthBeginner, DepthIntermediate, DepthExpert:
		p.Depth = d
	}

	return p
}

// CacheKey is the canonical serialization of the full parameter tuple.
// Two Params describing the same query always produce the same key.
func (p Params) CacheKey() string {
	return fmt.Sprintf("agent=%s|since=%d|conf=%g-%g|cat=%s|imp=%s|urgent=%t|tags=%s|sort=%s:%s|limit=%d|cursor=%d|format=%s|depth=%s",
		p.Agent, p.Since.UnixNano(), p.MinConfidence, p.MaxConfidence,
		p.Category, p.Impact, p.UrgentOnly, strings.Join(p.Tags, ","),
		p.SortBy, p.Order, p.Limit, p.Cursor, p.Format, p.Depth)
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
