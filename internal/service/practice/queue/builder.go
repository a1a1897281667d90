package queue

import (
	"cmp"
	"hash/fnv"
	"math/rand/v2"
	"slices"
	"strconv"
	"time"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/internal/service/practice/mastery"
)

// Options tunes spacing and interleaving. Zero fields take the defaults.
type Options struct {
	LemmaGapCap    int // max distance enforced between forms of one lemma
	ComboGapCap    int // max distance enforced between equal axis combos
	CategoryGapCap int // max distance enforced between equal patterns
	MinReviewRun   int // fewest reviews between two new forms
	MaxReviewRun   int // most reviews between two new forms
}

// DefaultOptions returns the built-in spacing and interleaving values.
func DefaultOptions() Options {
	return Options{
		LemmaGapCap:    3,
		ComboGapCap:    3,
		CategoryGapCap: 2,
		MinReviewRun:   4,
		MaxReviewRun:   6,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.LemmaGapCap <= 0 {
		o.LemmaGapCap = def.LemmaGapCap
	}
	if o.ComboGapCap <= 0 {
		o.ComboGapCap = def.ComboGapCap
	}
	if o.CategoryGapCap <= 0 {
		o.CategoryGapCap = def.CategoryGapCap
	}
	if o.MinReviewRun <= 0 {
		o.MinReviewRun = def.MinReviewRun
	}
	if o.MaxReviewRun < o.MinReviewRun {
		o.MaxReviewRun = max(def.MaxReviewRun, o.MinReviewRun)
	}
	return o
}

// Input is everything a build depends on.
type Input struct {
	Eligible []Candidate                            // from Resolve
	Mastery  map[domain.FormID]domain.MasteryRecord // records for eligible forms
	Now      time.Time                              // decides due-ness
	SeedDate time.Time                              // only its calendar date is used
	Round    int                                    // 0 for a day's first build; refills pass a distinct value
	Count    int
	Options  Options
}

// Build produces the practice queue. The result holds at most Count items,
// never repeats a form, and is identical for identical inputs.
func Build(in Input) []domain.PracticeItem {
	if in.Count <= 0 || len(in.Eligible) == 0 {
		return nil
	}
	opts := in.Options.withDefaults()

	fresh, review := Split(in.Eligible, in.Mastery, in.Now)
	rng := NewRand(in.SeedDate, in.Round)

	b := &builder{
		rng:     rng,
		fresh:   fresh,
		reviews: newRotation(review),
		chain:   fallbackChain(in.Eligible, opts),
		out:     make([]domain.PracticeItem, 0, min(in.Count, len(fresh)+len(review))),
	}

	run := drawRun(rng, opts)
	sinceNew := 0
	for len(b.out) < in.Count {
		haveNew, haveReview := len(b.fresh) > 0, b.reviews.remaining() > 0
		switch {
		case haveNew && haveReview:
			if sinceNew >= run {
				b.takeNew()
				sinceNew = 0
				run = drawRun(rng, opts)
			} else {
				b.takeReview()
				sinceNew++
			}
		case haveReview:
			b.takeReview()
		case haveNew:
			b.takeNew()
		default:
			return b.out
		}
	}
	return b.out
}

// NewRand returns the generator a build uses for seedDate. The seed is the
// FNV-1a hash of the calendar date, so any time of day maps to the same
// stream. A non-zero round is hashed in after the date and yields a
// different stream for the same day.
func NewRand(seedDate time.Time, round int) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seedDate.Format(time.DateOnly)))
	if round != 0 {
		_, _ = h.Write([]byte("#" + strconv.Itoa(round)))
	}
	s := h.Sum64()
	//nolint:gosec // deterministic ordering, not cryptographic
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

func drawRun(rng *rand.Rand, opts Options) int {
	return opts.MinReviewRun + rng.IntN(opts.MaxReviewRun-opts.MinReviewRun+1)
}

type builder struct {
	rng     *rand.Rand
	fresh   []Candidate
	reviews *rotation
	chain   []strategy
	out     []domain.PracticeItem
	placed  []Candidate // parallel to out, for spacing checks
}

func (b *builder) takeReview() {
	rc, ok := b.reviews.next()
	if !ok {
		return
	}
	b.place(rc.Candidate, domain.PracticeSourceReview, int(rc.Level))
}

func (b *builder) takeNew() {
	i := b.selectNew()
	c := b.fresh[i]
	last := len(b.fresh) - 1
	b.fresh[i] = b.fresh[last]
	b.fresh = b.fresh[:last]
	b.place(c, domain.PracticeSourceNew, int(mastery.LevelNew))
}

func (b *builder) place(c Candidate, src domain.PracticeSource, level int) {
	b.placed = append(b.placed, c)
	b.out = append(b.out, domain.PracticeItem{
		FormID:       c.FormID,
		LemmaID:      c.LemmaID,
		Source:       src,
		MasteryLevel: level,
	})
}

// selectNew walks the fallback chain and picks uniformly among the
// candidates the first satisfiable strategy admits. The last strategy has no
// constraints, so it always succeeds while fresh is non-empty.
func (b *builder) selectNew() int {
	var admitted []int
	for _, s := range b.chain {
		admitted = admitted[:0]
		for i, c := range b.fresh {
			if s.admits(c, b.placed) {
				admitted = append(admitted, i)
			}
		}
		if len(admitted) > 0 {
			return admitted[b.rng.IntN(len(admitted))]
		}
	}
	return b.rng.IntN(len(b.fresh))
}

// ---------------------------------------------------------------------------
// Review rotation
// ---------------------------------------------------------------------------

// rotation cycles over the mastery buckets, taking the most overdue form
// from the next bucket that still has one.
type rotation struct {
	buckets [mastery.NumBuckets][]ReviewCandidate
	cursor  int
	left    int
}

func newRotation(review []ReviewCandidate) *rotation {
	r := &rotation{left: len(review)}
	for _, rc := range review {
		bk, ok := mastery.BucketOf(rc.Level)
		if !ok {
			r.left--
			continue
		}
		r.buckets[bk] = append(r.buckets[bk], rc)
	}
	for i := range r.buckets {
		slices.SortFunc(r.buckets[i], func(a, b ReviewCandidate) int {
			if c := a.DueAt.Compare(b.DueAt); c != 0 {
				return c
			}
			return cmp.Compare(a.FormID, b.FormID)
		})
	}
	return r
}

func (r *rotation) remaining() int { return r.left }

// next pops the earliest-due candidate of the next non-empty bucket. It
// reports false and zeroes remaining() once every bucket is empty.
func (r *rotation) next() (ReviewCandidate, bool) {
	for i := range mastery.NumBuckets {
		idx := (r.cursor + i) % mastery.NumBuckets
		if len(r.buckets[idx]) == 0 {
			continue
		}
		rc := r.buckets[idx][0]
		r.buckets[idx] = r.buckets[idx][1:]
		r.cursor = (idx + 1) % mastery.NumBuckets
		r.left--
		return rc, true
	}
	r.left = 0
	return ReviewCandidate{}, false
}
