package queue

// constraint keeps a candidate key away from the same key among the last gap
// placed items.
type constraint struct {
	gap int
	key func(Candidate) any
}

func (c constraint) holds(cand Candidate, placed []Candidate) bool {
	if c.gap <= 0 {
		return true
	}
	k := c.key(cand)
	for i := len(placed) - 1; i >= 0 && i >= len(placed)-c.gap; i-- {
		if c.key(placed[i]) == k {
			return false
		}
	}
	return true
}

// strategy is one step of the new-form fallback chain.
type strategy struct {
	name        string
	constraints []constraint
}

func (s strategy) admits(cand Candidate, placed []Candidate) bool {
	for _, c := range s.constraints {
		if !c.holds(cand, placed) {
			return false
		}
	}
	return true
}

func lemmaKey(c Candidate) any    { return c.LemmaID }
func comboKey(c Candidate) any    { return c.Combo }
func categoryKey(c Candidate) any { return c.Category }

// fallbackChain builds the ordered strategies for a pool. Each gap grows
// with the number of distinct values in the pool, so a pool with a single
// lemma gets no lemma spacing at all. Dropping lemma spacing is preferred
// over dropping combo spacing.
func fallbackChain(eligible []Candidate, opts Options) []strategy {
	lemma := constraint{gap: gapFor(eligible, lemmaKey, opts.LemmaGapCap), key: lemmaKey}
	combo := constraint{gap: gapFor(eligible, comboKey, opts.ComboGapCap), key: comboKey}
	category := constraint{gap: gapFor(eligible, categoryKey, opts.CategoryGapCap), key: categoryKey}

	return []strategy{
		{name: "lemma+combo+category", constraints: []constraint{lemma, combo, category}},
		{name: "lemma+combo", constraints: []constraint{lemma, combo}},
		{name: "combo", constraints: []constraint{combo}},
		{name: "lemma", constraints: []constraint{lemma}},
		{name: "none"},
	}
}

// gapFor returns min(distinct-1, limit).
func gapFor(eligible []Candidate, key func(Candidate) any, limit int) int {
	seen := make(map[any]struct{})
	for _, c := range eligible {
		seen[key(c)] = struct{}{}
		if len(seen) > limit {
			break
		}
	}
	return min(max(len(seen)-1, 0), limit)
}
