package query

import (
	"net/url"
	"testing"
	"time"

	"github.com/nlaakso/agentpulse/internal/enrich"
	"github.com/nlaakso/agentpulse/internal/generate"
	"github.com/nlaakso/agentpulse/internal/model"
	"github.com/nlaakso/agentpulse/internal/rng"
	"github.com/nlaakso/agentpulse/internal/trust"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func fixtureBatch(t *testing.T, seed int64, count int) []model.EnrichedDecision {
	t.Helper()
	src := rng.New(seed)
	events := generate.Batch(src, generate.Config{Count: count, Now: testNow})
	return enrich.Batch(src, events, trust.DefaultConfig(), testNow)
}

// --- Parse tests ---

func TestParseDefaults(t *testing.T) {
	p := Parse(url.Values{})
	if p.Limit != 20 || p.SortBy != SortTimestamp || p.Order != OrderDesc ||
		p.Format != FormatStandard || p.Depth != DepthIntermediate ||
		p.MinConfidence != 0 || p.MaxConfidence != 100 {
		t.Errorf("unexpected defaults: %+v", p)
	}
}

func TestParseMalformedDegradesToDefaults(t *testing.T) {
	v := url.Values{}
	v.Set("agent", "nonsense")
	v.Set("limit", "banana")
	v.Set("minConfidence", "-40")
	v.Set("maxConfidence", "900")
	v.Set("sortBy", "color")
	v.Set("order", "sideways")
	v.Set("cursor", "-5")
	v.Set("format", "xml")
	p := Parse(v)
	if p.CacheKey() != Defaults().CacheKey() {
		t.Errorf("malformed params did not degrade to defaults: %+v", p)
	}
}

func TestParseLimitCapped(t *testing.T) {
	v := url.Values{}
	v.Set("limit", "500")
	if p := Parse(v); p.Limit != MaxLimit {
		t.Errorf("limit = %d, want capped at %d", p.Limit, MaxLimit)
	}
}

func TestParseInvertedConfidenceRangeReset(t *testing.T) {
	v := url.Values{}
	v.Set("minConfidence", "80")
	v.Set("maxConfidence", "20")
	p := Parse(v)
	if p.MinConfidence != 0 || p.MaxConfidence != 100 {
		t.Errorf("inverted range not reset: [%v,%v]", p.MinConfidence, p.MaxConfidence)
	}
}

func TestParseTagsSortedForCanonicalKey(t *testing.T) {
	a := Parse(url.Values{"tags": {"violation,markets"}})
	b := Parse(url.Values{"tags": {"markets,violation"}})
	if a.CacheKey() != b.CacheKey() {
		t.Error("tag order changed the cache key")
	}
}

func TestCacheKeyDistinguishesParams(t *testing.T) {
	a := Parse(url.Values{"agent": {"markets"}})
	b := Parse(url.Values{"agent": {"sentinel"}})
	if a.CacheKey() == b.CacheKey() {
		t.Error("different agents share a cache key")
	}
	c := Parse(url.Values{"cursor": {"20"}})
	if c.CacheKey() == Parse(url.Values{}).CacheKey() {
		t.Error("cursor not part of the cache key")
	}
}

// --- Filter tests ---

func TestFilterAgentAndConfidence(t *testing.T) {
	batch := fixtureBatch(t, 42, 60)
	p := Defaults()
	p.Agent = model.PersonaMarkets
	p.MinConfidence = 70
	got := Apply(batch, p)
	if len(got) == 0 {
		t.Fatal("expected at least one markets decision with confidence >= 70")
	}
	for _, d := range got {
		if d.Agent != model.PersonaMarkets {
			t.Fatalf("%s: agent %q leaked through filter", d.ID, d.Agent)
		}
		if d.Confidence < 70 {
			t.Fatalf("%s: confidence %v below minimum", d.ID, d.Confidence)
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	batch := fixtureBatch(t, 7, 50)
	p := Defaults()
	p.Agent = model.PersonaOperations
	p.UrgentOnly = true
	once := Apply(batch, p)
	twice := Apply(once, p)
	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("filter reordered on second application at %d", i)
		}
	}
}

func TestFilterSince(t *testing.T) {
	batch := fixtureBatch(t, 7, 50)
	p := Defaults()
	p.Since = testNow.Add(-time.Hour)
	for _, d := range Apply(batch, p) {
		if d.Timestamp.Before(p.Since) {
			t.Fatalf("%s: timestamp %v before since", d.ID, d.Timestamp)
		}
	}
}

func TestFilterUrgentOnly(t *testing.T) {
	batch := fixtureBatch(t, 13, 80)
	p := Defaults()
	p.UrgentOnly = true
	for _, d := range Apply(batch, p) {
		if d.Class.Urgency != model.UrgencyUrgent && d.Class.Urgency != model.UrgencyEmergency {
			t.Fatalf("%s: urgency %q leaked through urgentOnly", d.ID, d.Class.Urgency)
		}
	}
}

func TestFilterTagsSuperset(t *testing.T) {
	batch := fixtureBatch(t, 13, 80)
	p := Defaults()
	p.Tags = []string{"violation"}
	got := Apply(batch, p)
	for _, d := range got {
		if !d.Violation {
			t.Fatalf("%s: tag filter matched non-violation", d.ID)
		}
	}
}

// --- Sort tests ---

func TestSortRiskDescending(t *testing.T) {
	batch := fixtureBatch(t, 21, 10)
	Sort(batch, SortRisk, OrderDesc)
	for i := 1; i < len(batch); i++ {
		if batch[i].Risk.OverallScore > batch[i-1].Risk.OverallScore {
			t.Fatalf("risk not non-increasing at %d", i)
		}
	}
}

func TestSortConfidenceAscending(t *testing.T) {
	batch := fixtureBatch(t, 21, 40)
	Sort(batch, SortConfidence, OrderAsc)
	for i := 1; i < len(batch); i++ {
		if batch[i].Confidence < batch[i-1].Confidence {
			t.Fatalf("confidence not non-decreasing at %d", i)
		}
	}
}

func TestSortStableOnTies(t *testing.T) {
	mk := func(id string, impact model.Impact) model.EnrichedDecision {
		d := model.EnrichedDecision{}
		d.ID = id
		d.Class.Impact = impact
		return d
	}
	items := []model.EnrichedDecision{
		mk("a", model.ImpactHigh),
		mk("b", model.ImpactLow),
		mk("c", model.ImpactHigh),
		mk("d", model.ImpactLow),
	}
	Sort(items, SortImpact, OrderDesc)
	if items[0].ID != "a" || items[1].ID != "c" || items[2].ID != "b" || items[3].ID != "d" {
		t.Errorf("tie order not preserved: %v", idsOf(items))
	}

	items = []model.EnrichedDecision{
		mk("a", model.ImpactHigh),
		mk("b", model.ImpactLow),
		mk("c", model.ImpactHigh),
		mk("d", model.ImpactLow),
	}
	Sort(items, SortImpact, OrderAsc)
	if items[0].ID != "b" || items[1].ID != "d" || items[2].ID != "a" || items[3].ID != "c" {
		t.Errorf("tie order not preserved ascending: %v", idsOf(items))
	}
}

func idsOf(items []model.EnrichedDecision) []string {
	out := make([]string, len(items))
	for i, d := range items {
		out[i] = d.ID
	}
	return out
}

// --- Pagination tests ---

func TestPaginateCoversSequenceExactlyOnce(t *testing.T) {
	batch := fixtureBatch(t, 31, 45)
	seen := make(map[string]int)
	cursor := 0
	for {
		page := Paginate(batch, cursor, 10)
		for _, d := range page.Items {
			seen[d.ID]++
		}
		if !page.HasMore {
			break
		}
		cursor = page.NextCursor
	}
	if len(seen) != 45 {
		t.Fatalf("pagination covered %d items, want 45", len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("item %s appeared %d times", id, n)
		}
	}
}

func TestPaginateScenario(t *testing.T) {
	batch := fixtureBatch(t, 31, 45)
	page := Paginate(batch, 20, 20)
	if !page.HasMore {
		t.Error("expected hasMore=true for cursor=20, limit=20 over 45 items")
	}
	if page.NextCursor != 40 {
		t.Errorf("nextCursor = %d, want 40", page.NextCursor)
	}
	if page.Total != 45 || page.Offset != 20 || len(page.Items) != 20 {
		t.Errorf("unexpected page metadata: %+v", page)
	}
}

func TestPaginatePastEnd(t *testing.T) {
	batch := fixtureBatch(t, 31, 10)
	page := Paginate(batch, 50, 20)
	if len(page.Items) != 0 || page.HasMore {
		t.Errorf("expected empty final page, got %+v", page)
	}
	if page.Total != 10 {
		t.Errorf("total = %d, want 10", page.Total)
	}
}

func TestPaginateLastPartialPage(t *testing.T) {
	batch := fixtureBatch(t, 31, 45)
	page := Paginate(batch, 40, 20)
	if len(page.Items) != 5 || page.HasMore {
		t.Errorf("expected 5 items and hasMore=false, got %d/%v", len(page.Items), page.HasMore)
	}
}
