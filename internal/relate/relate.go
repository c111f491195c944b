// Package relate derives batch-relative attributes: chain linkage,
// conflict detection, multi-agent consensus, and temporal patterns.
// Every function reads the full batch but never mutates any event other
// than its own output; per-batch cost is O(n²) and acceptable only for
// the bounded batch sizes this service generates.
package relate

import (
	"fmt"
	"strings"
	"time"

	"github.com/nlaakso/agentpulse/internal/model"
	"github.com/nlaakso/agentpulse/internal/rng"
)

const (
	parentLinkProb      = 0.15
	childLinkProb       = 0.10
	followupLinkProb    = 0.05
	alternativeLinkProb = 0.08

	// conflictWindow bounds the scan for conflicting and consensus
	// decisions around the event's own timestamp.
	conflictWindow = 30 * time.Minute

	// clusterWindow is the density window for burst detection.
	clusterWindow = 5 * time.Minute

	// similarityThreshold is the keyword-overlap cutoff above which
	// another persona counts as agreeing.
	similarityThreshold = 0.25

	// burstMultiple scales the expected per-slot rate into the burst
	// cutoff.
	burstMultiple = 3.0
)

// oppositePair is a pair of semantically opposite action keywords.
type oppositePair struct {
	A, B string
}

// oppositePairs is the fixed table of contradictory action keywords.
var oppositePairs = []oppositePair{
	{"charge", "discharge"},
	{"buy", "sell"},
	{"increase", "decrease"},
	{"halt", "resume"},
	{"approve", "reject"},
	{"open", "close"},
}

// negationMarkers mark a summary as disagreeing in consensus tracking.
var negationMarkers = []string{"not ", "never ", "reject", "refuse", "deny", "halt"}

// Links draws chain linkage for event i: with small independent
// probabilities the immediately preceding batch entry becomes its
// parent, the immediately following entry its child, and the nearest
// same-persona entry an alternative it considered. Consumes a fixed
// number of draws from src per call.
func Links(src *rng.Source, batch []model.DecisionEvent, i int) (parentID string, childIDs []string, related []model.Relation) {
	linkParent := src.Bool(parentLinkProb)
	linkChild := src.Bool(childLinkProb)
	linkFollowup := src.Bool(followupLinkProb)
	linkAlternative := src.Bool(alternativeLinkProb)

	if linkParent && i > 0 {
		parentID = batch[i-1].ID
		related = append(related, model.Relation{ID: parentID, Kind: model.RelationParent})
	}
	if linkChild && i < len(batch)-1 {
		id := batch[i+1].ID
		childIDs = append(childIDs, id)
		related = append(related, model.Relation{ID: id, Kind: model.RelationChild})
	}
	if linkFollowup && i >= 2 {
		related = append(related, model.Relation{ID: batch[i-2].ID, Kind: model.RelationFollowup})
	}
	if linkAlternative {
		if j := nearestSameAgent(batch, i); j >= 0 {
			related = append(related, model.Relation{ID: batch[j].ID, Kind: model.RelationAlternative})
		}
	}
	return parentID, childIDs, related
}

// nearestSameAgent returns the index of the batch entry closest to i
// that shares its persona, or -1 when the persona decided alone.
func nearestSameAgent(batch []model.DecisionEvent, i int) int {
	for d := 1; d < len(batch); d++ {
		if j := i - d; j >= 0 && batch[j].Agent == batch[i].Agent {
			return j
		}
		if j := i + d; j < len(batch) && batch[j].Agent == batch[i].Agent {
			return j
		}
	}
	return -1
}

// Conflicts scans all other events within ±30 minutes for semantically
// opposite action keywords, and flags the event itself when it carries
// a constraint violation. Severity escalates with the conflict count.
func Conflicts(batch []model.DecisionEvent, i int) model.ConflictReport {
	self := batch[i]
	report := model.ConflictReport{Severity: model.ConflictNone}

	for j, other := range batch {
		if j == i {
			continue
		}
		if absDuration(self.Timestamp.Sub(other.Timestamp)) > conflictWindow {
			continue
		}
		if pair, ok := opposes(self.Summary, other.Summary); ok {
			report.ConflictIDs = append(report.ConflictIDs, other.ID)
			report.Reasons = append(report.Reasons,
				fmt.Sprintf("opposite actions %q/%q with %s", pair.A, pair.B, other.ID))
		}
	}

	if self.Violation {
		report.Reasons = append(report.Reasons, "constraint violation on this decision")
	}

	count := len(report.ConflictIDs)
	if self.Violation {
		count++
	}
	report.HasConflicts = count > 0
	switch {
	case count == 0:
		report.Severity = model.ConflictNone
	case count == 1:
		report.Severity = model.ConflictMinor
	case count == 2:
		report.Severity = model.ConflictModerate
	default:
		report.Severity = model.ConflictSevere
	}
	return report
}

// Consensus computes keyword-overlap similarity against events from
// other personas within ±30 minutes. Personas above the similarity
// threshold agree; those whose text carries negation markers disagree.
// Strength blends the agreeing ratio with the event's own confidence.
func Consensus(batch []model.DecisionEvent, i int) model.Consensus {
	self := batch[i]
	selfTokens := tokens(self.Summary)

	agreeing := map[model.Persona]bool{}
	disagreeing := map[model.Persona]bool{}

	for j, other := range batch {
		if j == i || other.Agent == self.Agent {
			continue
		}
		if absDuration(self.Timestamp.Sub(other.Timestamp)) > conflictWindow {
			continue
		}
		if hasNegation(other.Summary) {
			disagreeing[other.Agent] = true
			continue
		}
		if jaccard(selfTokens, tokens(other.Summary)) >= similarityThreshold {
			agreeing[other.Agent] = true
		}
	}

	c := model.Consensus{}
	for _, p := range model.Personas {
		if agreeing[p] && !disagreeing[p] {
			c.Agreeing = append(c.Agreeing, p)
		}
		if disagreeing[p] {
			c.Disagreeing = append(c.Disagreeing, p)
		}
	}

	others := float64(len(model.Personas) - 1)
	ratio := float64(len(c.Agreeing)) / others
	c.Strength = clamp(60*ratio+0.4*self.Confidence, 0, 100)
	return c
}

// Pattern summarizes same-persona decision density around event i:
// the count sharing the event's clock hour, a clustering score from
// ±5-minute density, and a burst flag when that density exceeds a
// fixed multiple of the batch's expected per-slot rate. window is the
// generation window the batch was spread over; non-positive values
// fall back to six hours.
func Pattern(batch []model.DecisionEvent, i int, window time.Duration) model.TemporalPattern {
	self := batch[i]
	if window <= 0 {
		window = 6 * time.Hour
	}

	hourly := 0
	neighbors := 0
	for j, other := range batch {
		if other.Agent != self.Agent {
			continue
		}
		if other.Timestamp.Truncate(time.Hour).Equal(self.Timestamp.Truncate(time.Hour)) {
			hourly++
		}
		if j != i && absDuration(self.Timestamp.Sub(other.Timestamp)) <= clusterWindow {
			neighbors++
		}
	}

	// Expected events per 5-minute slot over the generation window.
	expected := float64(len(batch)) / (float64(window) / float64(clusterWindow))
	return model.TemporalPattern{
		HourlyCount:  hourly,
		ClusterScore: clamp(25*float64(neighbors), 0, 100),
		Burst:        float64(neighbors) > burstMultiple*expected,
	}
}

// opposes reports whether the two summaries contain opposite halves of
// any keyword pair. Matching is on whole words so "discharge" never
// reads as "charge", and each summary must carry exactly one half of
// the pair: a summary mentioning both ("close the open position") is
// not an opposing action.
func opposes(a, b string) (oppositePair, bool) {
	wa, wb := words(a), words(b)
	for _, p := range oppositePairs {
		if (wa[p.A] && !wa[p.B] && wb[p.B] && !wb[p.A]) ||
			(wa[p.B] && !wa[p.A] && wb[p.A] && !wb[p.B]) {
			return p, true
		}
	}
	return oppositePair{}, false
}

// words lowercases and splits a summary into a word set. Unlike tokens
// it keeps short words; the opposite-pair table has three-letter
// entries.
func words(s string) map[string]bool {
	out := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		out[strings.Trim(w, ".,;:!?%\"'()")] = true
	}
	return out
}

func hasNegation(s string) bool {
	lower := strings.ToLower(s)
	for _, m := range negationMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// tokens lowercases and splits a summary into a word set, dropping
// short stopword-length tokens.
func tokens(s string) map[string]bool {
	out := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ".,;:!?%")
		if len(w) > 3 {
			out[w] = true
		}
	}
	return out
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if b[w] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
