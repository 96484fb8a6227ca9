package search

import (
	"math"
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/runnerr0/diascope/internal/record"
)

// sourceWeight biases results toward current user intent: an open tab
// outranks a saved bookmark, which outranks a plain history visit. This
// table is independent of the merge precedence in internal/record even
// though the two orderings currently agree.
var sourceWeight = [...]float64{
	record.SourceHistory:  1.0,
	record.SourceBookmark: 1.1,
	record.SourceTab:      1.3,
}

// freqBoostWeight scales the logarithmic visit-count boost.
const freqBoostWeight = 0.1

// noMatch marks a record neither of whose fields matched the pattern.
const noMatch = math.MinInt

type scored struct {
	rec   *record.Record
	score float64
}

// Engine ranks records against free-text queries. Scratch buffers are
// cleared and reused across calls to avoid per-record allocation, so a
// single Engine must not be used by more than one caller at a time; give
// each concurrent searcher its own Engine.
type Engine struct {
	haystack []string // two entries per record: TitleNorm then URLNorm
	best     []int    // best fuzzy sub-score per record
	scored   []scored
}

func NewEngine() *Engine {
	return &Engine{
		haystack: make([]string, 0, 1024),
		best:     make([]int, 0, 512),
		scored:   make([]scored, 0, 512),
	}
}

// Search returns up to limit records ranked by descending relevance to
// query. An empty query is browse mode: the first limit records in input
// order, unscored. Returned pointers borrow into records; Search never
// fails, and no matches yields an empty slice.
//
// Ties carry no ordering guarantee: equal-score records may appear in any
// relative order, and when a tie straddles the limit cutoff, which of them
// survive is unspecified.
func (e *Engine) Search(records []record.Record, query string, limit int) []*record.Record {
	if limit <= 0 {
		return nil
	}

	if query == "" {
		n := limit
		if n > len(records) {
			n = len(records)
		}
		out := make([]*record.Record, n)
		for i := range out {
			out[i] = &records[i]
		}
		return out
	}

	e.haystack = e.haystack[:0]
	for i := range records {
		e.haystack = append(e.haystack, records[i].TitleNorm, records[i].URLNorm)
	}

	// One pattern per call. Both the pattern and the haystack are
	// case-folded, so matching is case-insensitive.
	matches := fuzzy.Find(record.Normalize(query), e.haystack)

	e.best = e.best[:0]
	for range records {
		e.best = append(e.best, noMatch)
	}
	for _, m := range matches {
		ri := m.Index / 2
		if m.Score > e.best[ri] {
			// Title and URL compete; the better sub-score wins.
			e.best[ri] = m.Score
		}
	}

	e.scored = e.scored[:0]
	for i := range records {
		if e.best[i] == noMatch {
			continue
		}
		rec := &records[i]

		var visits uint64
		if rec.VisitCount != nil {
			visits = *rec.VisitCount
		}
		boost := 1 + math.Log1p(float64(visits))*freqBoostWeight

		e.scored = append(e.scored, scored{
			rec:   rec,
			score: float64(e.best[i]) * boost * sourceWeight[rec.Source],
		})
	}

	if len(e.scored) > limit {
		selectTop(e.scored, limit)
		e.scored = e.scored[:limit]
	}

	sort.Slice(e.scored, func(i, j int) bool {
		return e.scored[i].score > e.scored[j].score
	})

	out := make([]*record.Record, len(e.scored))
	for i, s := range e.scored {
		out[i] = s.rec
	}
	return out
}
