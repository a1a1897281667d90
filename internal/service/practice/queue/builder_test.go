package queue

import (
	"slices"
	"testing"
	"time"

	"github.com/heartmarshall/palipractice-backend/internal/catalog"
	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/internal/formid"
	"github.com/heartmarshall/palipractice-backend/internal/service/practice/mastery"
)

var (
	testNow  = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	testSeed = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
)

// declensionCatalog builds a catalog of masculine nouns with every case and
// number attested. Patterns are assigned round robin.
func declensionCatalog(lemmas int, patterns ...string) *catalog.Catalog {
	if len(patterns) == 0 {
		patterns = []string{"a masc"}
	}
	b := catalog.NewBuilder()
	for i := range lemmas {
		id := formid.DeclensionLemmaMin + i
		b.AddLemma(domain.Lemma{ID: id, Frequency: 10_000 - i, Gender: domain.GenderMasculine, Pattern: patterns[i%len(patterns)]})
		for _, c := range domain.AllCases {
			for _, n := range domain.AllNumbers {
				b.MarkAttested(formid.EncodeDeclension(id, c, domain.GenderMasculine, n, 1))
			}
		}
	}
	return b.Build()
}

func declensionScope(lemmas int) domain.PracticeScope {
	return domain.PracticeScope{
		Kind:  domain.PracticeKindDeclension,
		Axes:  domain.DefaultAxisSelections(domain.PracticeKindDeclension),
		Ranks: domain.RankWindow{Min: 1, Max: lemmas},
	}
}

func formIDs(items []domain.PracticeItem) []domain.FormID {
	out := make([]domain.FormID, len(items))
	for i, it := range items {
		out[i] = it.FormID
	}
	return out
}

// dueRecords marks every other candidate as practiced long enough ago to be
// due at any level, spreading levels across all buckets.
func dueRecords(eligible []Candidate) map[domain.FormID]domain.MasteryRecord {
	recs := make(map[domain.FormID]domain.MasteryRecord)
	for i, c := range eligible {
		if i%2 == 1 {
			continue
		}
		recs[c.FormID] = domain.MasteryRecord{
			FormID:          c.FormID,
			Level:           i%10 + 1,
			LastPracticedAt: testNow.Add(-200 * 24 * time.Hour),
		}
	}
	return recs
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	cat := declensionCatalog(12, "a masc", "i masc", "u masc")
	eligible := Resolve(cat, declensionScope(12))
	in := Input{Eligible: eligible, Mastery: dueRecords(eligible), Now: testNow, SeedDate: testSeed, Count: 60}

	first := Build(in)
	for range 5 {
		again := Build(in)
		if !slices.Equal(first, again) {
			t.Fatal("identical inputs produced different queues")
		}
	}

	// The time of day of the seed does not matter.
	in.SeedDate = testSeed.Add(17 * time.Hour)
	if !slices.Equal(first, Build(in)) {
		t.Fatal("seed must depend on the calendar date only")
	}
}

func TestBuild_DifferentSeedsDiffer(t *testing.T) {
	t.Parallel()

	cat := declensionCatalog(20, "a masc", "i masc", "u masc", "ar masc")
	eligible := Resolve(cat, declensionScope(20))

	a := Build(Input{Eligible: eligible, Now: testNow, SeedDate: testSeed, Count: 60})
	b := Build(Input{Eligible: eligible, Now: testNow, SeedDate: testSeed.AddDate(0, 0, 1), Count: 60})

	differ := 0
	for i := range a {
		if a[i].FormID != b[i].FormID {
			differ++
		}
	}
	if differ < len(a)/2 {
		t.Errorf("only %d of %d positions differ between seeds", differ, len(a))
	}
}

func TestBuild_RoundChangesStreamWithinDay(t *testing.T) {
	t.Parallel()

	cat := declensionCatalog(20, "a masc", "i masc", "u masc", "ar masc")
	eligible := Resolve(cat, declensionScope(20))

	base := Input{Eligible: eligible, Now: testNow, SeedDate: testSeed, Count: 60}
	first := Build(base)
	again := Build(base)
	if !slices.Equal(formIDs(first), formIDs(again)) {
		t.Fatal("round 0 must stay deterministic")
	}

	base.Round = 60
	refill := Build(base)
	differ := 0
	for i := range first {
		if first[i].FormID != refill[i].FormID {
			differ++
		}
	}
	if differ < len(first)/2 {
		t.Errorf("only %d of %d positions differ between rounds", differ, len(first))
	}
}

func TestBuild_LengthAndUniqueness(t *testing.T) {
	t.Parallel()

	cat := declensionCatalog(3, "a masc", "ā fem")
	eligible := Resolve(cat, declensionScope(3)) // 3 * 8 * 2 = 48
	recs := dueRecords(eligible)

	for _, count := range []int{0, 1, 7, 48, 100} {
		items := Build(Input{Eligible: eligible, Mastery: recs, Now: testNow, SeedDate: testSeed, Count: count})
		if want := min(count, len(eligible)); len(items) != want {
			t.Errorf("count %d: got %d items, want %d", count, len(items), want)
		}
		seen := make(map[domain.FormID]bool)
		for _, it := range items {
			if seen[it.FormID] {
				t.Fatalf("count %d: duplicate form %d", count, it.FormID)
			}
			seen[it.FormID] = true
		}
	}
}

func TestBuild_ExcludesCoolingAndRetired(t *testing.T) {
	t.Parallel()

	cat := declensionCatalog(4)
	eligible := Resolve(cat, declensionScope(4))

	recs := make(map[domain.FormID]domain.MasteryRecord)
	status := make(map[domain.FormID]string)
	for i, c := range eligible {
		switch i % 4 {
		case 0:
			recs[c.FormID] = domain.MasteryRecord{Level: int(mastery.LevelRetired), LastPracticedAt: testNow.AddDate(-5, 0, 0)}
			status[c.FormID] = "retired"
		case 1:
			recs[c.FormID] = domain.MasteryRecord{Level: 6, LastPracticedAt: testNow.Add(-time.Hour)}
			status[c.FormID] = "cooling"
		case 2:
			recs[c.FormID] = domain.MasteryRecord{Level: 2, LastPracticedAt: testNow.Add(-5 * time.Hour)}
			status[c.FormID] = "due"
		default:
			status[c.FormID] = "new"
		}
	}

	items := Build(Input{Eligible: eligible, Mastery: recs, Now: testNow, SeedDate: testSeed, Count: len(eligible)})
	if len(items) != len(eligible)/2 {
		t.Errorf("got %d items, want only due and new (%d)", len(items), len(eligible)/2)
	}
	for _, it := range items {
		switch status[it.FormID] {
		case "retired", "cooling":
			t.Fatalf("form %d is %s and must not be queued", it.FormID, status[it.FormID])
		case "new":
			if it.Source != domain.PracticeSourceNew || it.MasteryLevel != 0 {
				t.Errorf("new form %d reported as %s level %d", it.FormID, it.Source, it.MasteryLevel)
			}
		case "due":
			if it.Source != domain.PracticeSourceReview || it.MasteryLevel != 2 {
				t.Errorf("due form %d reported as %s level %d", it.FormID, it.Source, it.MasteryLevel)
			}
		}
	}
}

func TestBuild_AxisPermutationInvariant(t *testing.T) {
	t.Parallel()

	cat := declensionCatalog(6, "a masc", "i masc")
	a := declensionScope(6)
	a.Axes.Cases = []domain.Case{domain.CaseLocative, domain.CaseNominative, domain.CaseDative}
	a.Axes.Numbers = []domain.Number{domain.NumberPlural, domain.NumberSingular}
	b := a
	b.Axes.Cases = []domain.Case{domain.CaseNominative, domain.CaseDative, domain.CaseLocative, domain.CaseDative}
	b.Axes.Numbers = []domain.Number{domain.NumberSingular, domain.NumberPlural}

	qa := Build(Input{Eligible: Resolve(cat, a), Now: testNow, SeedDate: testSeed, Count: 30})
	qb := Build(Input{Eligible: Resolve(cat, b), Now: testNow, SeedDate: testSeed, Count: 30})
	if !slices.Equal(qa, qb) {
		t.Errorf("reordered axes changed the queue:\n%v\n%v", formIDs(qa), formIDs(qb))
	}
}

func TestBuild_FortyEligibleAllNew(t *testing.T) {
	t.Parallel()

	cat := declensionCatalog(5)
	scope := declensionScope(5)
	scope.Axes.Numbers = []domain.Number{domain.NumberSingular}

	eligible := Resolve(cat, scope)
	if len(eligible) != 40 {
		t.Fatalf("eligible = %d, want 40", len(eligible))
	}
	items := Build(Input{Eligible: eligible, Now: testNow, SeedDate: testSeed, Count: 40})
	if len(items) != 40 {
		t.Fatalf("got %d items, want 40", len(items))
	}
	for _, it := range items {
		if it.Source != domain.PracticeSourceNew {
			t.Fatalf("form %d has source %s", it.FormID, it.Source)
		}
	}
}

func TestBuild_SingleLemma(t *testing.T) {
	t.Parallel()

	cat := declensionCatalog(1)
	eligible := Resolve(cat, declensionScope(1))
	items := Build(Input{Eligible: eligible, Now: testNow, SeedDate: testSeed, Count: 50})

	if len(items) != len(eligible) {
		t.Fatalf("got %d items, want %d", len(items), len(eligible))
	}
	for _, it := range items {
		if it.LemmaID != formid.DeclensionLemmaMin {
			t.Fatalf("unexpected lemma %d", it.LemmaID)
		}
	}
}

func TestBuild_SpacesNewForms(t *testing.T) {
	t.Parallel()

	cat := declensionCatalog(20, "a masc", "i masc", "u masc", "ar masc")
	eligible := Resolve(cat, declensionScope(20))
	byID := make(map[domain.FormID]Candidate, len(eligible))
	for _, c := range eligible {
		byID[c.FormID] = c
	}

	items := Build(Input{Eligible: eligible, Now: testNow, SeedDate: testSeed, Count: 60})
	for i, it := range items {
		cur := byID[it.FormID]
		for j := max(0, i-3); j < i; j++ {
			prev := byID[items[j].FormID]
			if prev.LemmaID == cur.LemmaID {
				t.Errorf("position %d repeats lemma %d from position %d", i, cur.LemmaID, j)
			}
			if prev.Combo == cur.Combo {
				t.Errorf("position %d repeats combo %d from position %d", i, cur.Combo, j)
			}
		}
		for j := max(0, i-2); j < i; j++ {
			if byID[items[j].FormID].Category == cur.Category {
				t.Errorf("position %d repeats category %q from position %d", i, cur.Category, j)
			}
		}
	}
}

func TestBuild_InterleavesNewAfterReviewRuns(t *testing.T) {
	t.Parallel()

	cat := declensionCatalog(12, "a masc", "i masc", "u masc")
	eligible := Resolve(cat, declensionScope(12)) // 192, half due
	items := Build(Input{Eligible: eligible, Mastery: dueRecords(eligible), Now: testNow, SeedDate: testSeed, Count: 80})

	run := 0
	news := 0
	for _, it := range items {
		if it.Source == domain.PracticeSourceReview {
			run++
			continue
		}
		news++
		if run < 4 || run > 6 {
			t.Errorf("new form after %d reviews, want 4-6", run)
		}
		run = 0
	}
	if news == 0 {
		t.Fatal("no new forms interleaved")
	}
}

func TestBuild_FillsFromRemainingPool(t *testing.T) {
	t.Parallel()

	cat := declensionCatalog(2)
	eligible := Resolve(cat, declensionScope(2)) // 32

	// Only two reviews: after they run out every slot is new.
	recs := map[domain.FormID]domain.MasteryRecord{
		eligible[0].FormID: {Level: 3, LastPracticedAt: testNow.Add(-48 * time.Hour)},
		eligible[5].FormID: {Level: 8, LastPracticedAt: testNow.AddDate(0, -2, 0)},
	}
	items := Build(Input{Eligible: eligible, Mastery: recs, Now: testNow, SeedDate: testSeed, Count: 32})
	if len(items) != 32 {
		t.Fatalf("got %d items, want 32", len(items))
	}
	reviews := 0
	for _, it := range items {
		if it.Source == domain.PracticeSourceReview {
			reviews++
		}
	}
	if reviews != 2 {
		t.Errorf("reviews = %d, want 2", reviews)
	}
}

func TestBuild_ReviewRotationAcrossBuckets(t *testing.T) {
	t.Parallel()

	a := Candidate{FormID: 100010110, LemmaID: 10001}
	b := Candidate{FormID: 100010120, LemmaID: 10001}
	c := Candidate{FormID: 100012110, LemmaID: 10001}
	d := Candidate{FormID: 100013110, LemmaID: 10001}
	// a and b share the 1-2 bucket, a being more overdue; c sits in 5-6 and
	// d in 9-10.
	recs := map[domain.FormID]domain.MasteryRecord{
		a.FormID: {Level: 1, LastPracticedAt: testNow.Add(-10 * time.Hour)},
		b.FormID: {Level: 2, LastPracticedAt: testNow.Add(-5 * time.Hour)},
		c.FormID: {Level: 5, LastPracticedAt: testNow.Add(-72 * time.Hour)},
		d.FormID: {Level: 9, LastPracticedAt: testNow.Add(-40 * 24 * time.Hour)},
	}

	items := Build(Input{Eligible: []Candidate{b, d, a, c}, Mastery: recs, Now: testNow, SeedDate: testSeed, Count: 10})
	want := []domain.FormID{a.FormID, c.FormID, d.FormID, b.FormID}
	if got := formIDs(items); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestRotation_NextReportsExhaustion(t *testing.T) {
	t.Parallel()

	due := ReviewCandidate{Candidate: Candidate{FormID: 100010110, LemmaID: 10001}, Level: mastery.Level3}
	retired := ReviewCandidate{Candidate: Candidate{FormID: 100010120, LemmaID: 10001}, Level: mastery.LevelRetired}
	r := newRotation([]ReviewCandidate{due, retired})

	if r.remaining() != 1 {
		t.Fatalf("remaining = %d, want 1", r.remaining())
	}
	got, ok := r.next()
	if !ok || got.FormID != due.FormID {
		t.Fatalf("next = %v, %v; want %d, true", got.FormID, ok, due.FormID)
	}
	if _, ok := r.next(); ok {
		t.Error("empty rotation must report false")
	}
	if r.remaining() != 0 {
		t.Errorf("remaining = %d after exhaustion, want 0", r.remaining())
	}
}

func TestGapFor(t *testing.T) {
	t.Parallel()

	mk := func(lemmas ...int) []Candidate {
		out := make([]Candidate, len(lemmas))
		for i, l := range lemmas {
			out[i] = Candidate{LemmaID: l}
		}
		return out
	}
	tests := []struct {
		name string
		pool []Candidate
		want int
	}{
		{"empty", nil, 0},
		{"one lemma", mk(1, 1, 1), 0},
		{"two lemmas", mk(1, 2, 1), 1},
		{"three lemmas", mk(1, 2, 3), 2},
		{"capped", mk(1, 2, 3, 4, 5, 6), 3},
	}
	for _, tt := range tests {
		if got := gapFor(tt.pool, lemmaKey, 3); got != tt.want {
			t.Errorf("%s: gapFor = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestFallbackChain_PrefersComboOverLemma(t *testing.T) {
	t.Parallel()

	chain := fallbackChain(nil, DefaultOptions())
	names := make([]string, len(chain))
	for i, s := range chain {
		names[i] = s.name
	}
	want := []string{"lemma+combo+category", "lemma+combo", "combo", "lemma", "none"}
	if !slices.Equal(names, want) {
		t.Errorf("chain = %v, want %v", names, want)
	}
}

func TestSelectNew_FallsBackToComboWhenLemmaUnsatisfiable(t *testing.T) {
	t.Parallel()

	// Two lemmas, but only lemma 1 remains unplaced. Lemma spacing cannot hold
	// after a lemma-1 item, so the combo-only strategy must decide.
	pool := []Candidate{
		{FormID: 1, LemmaID: 1, Combo: 11},
		{FormID: 2, LemmaID: 2, Combo: 12},
		{FormID: 3, LemmaID: 1, Combo: 21},
	}
	b := &builder{
		rng:    NewRand(testSeed, 0),
		fresh:  []Candidate{pool[0], pool[2]},
		chain:  fallbackChain(pool, DefaultOptions()),
		placed: []Candidate{{FormID: 9, LemmaID: 1, Combo: 11}},
	}
	if got := b.fresh[b.selectNew()]; got.FormID != 3 {
		t.Errorf("picked form %d, want 3 (different combo)", got.FormID)
	}
}
