package balatro

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

const (
	// maxSearchHand bounds subset enumeration; cards past the cap are
	// ignored so a pathological hand size can't blow up the search.
	maxSearchHand = 16

	// parallelThreshold is the subset count below which fan-out costs
	// more than it saves
	parallelThreshold = 256
)

// BestHands enumerates every playable subset of hand (sizes maxPlay down
// to 1, combinations in index order), scores each with the complement as
// the held set, and returns the topN breakdowns sorted descending by
// final score. Ties keep enumeration order. Indices in the returned
// breakdowns refer to positions in hand. topN <= 0 uses the engine
// default.
func (e *Engine) BestHands(hand []Card, jokers []Joker, levels *HandLevels, topN int) []Breakdown {
	if topN <= 0 {
		topN = e.TopN
	}
	if topN <= 0 {
		topN = 3
	}
	if len(hand) > maxSearchHand {
		hand = hand[:maxSearchHand]
	}
	if len(hand) == 0 {
		return nil
	}

	maxSize := e.MaxPlay
	if maxSize <= 0 {
		maxSize = 5
	}
	if maxSize > len(hand) {
		maxSize = len(hand)
	}

	combos := enumerateSubsets(len(hand), maxSize)
	results := make([]Breakdown, len(combos))

	if len(combos) >= parallelThreshold {
		e.evalParallel(hand, jokers, levels, combos, results)
	} else {
		for i, combo := range combos {
			results[i] = e.evalSubset(hand, combo, jokers, levels)
		}
	}

	// Stable sort over enumeration order gives deterministic ties
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})
	if len(results) > topN {
		results = results[:topN]
	}
	return results
}

// evalParallel splits the subsets across workers. Each worker writes to
// its own slice range, so no locking is needed; ranking happens after
// the merge and is identical to the sequential path.
func (e *Engine) evalParallel(hand []Card, jokers []Joker, levels *HandLevels, combos [][]int, results []Breakdown) {
	workers := e.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > 8 {
		workers = 8
	}
	if workers > len(combos) {
		workers = len(combos)
	}

	var g errgroup.Group
	chunk := (len(combos) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(combos) {
			hi = len(combos)
		}
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				results[i] = e.evalSubset(hand, combos[i], jokers, levels)
			}
			return nil
		})
	}
	g.Wait() //nolint:errcheck // workers never return errors
}

// evalSubset scores one candidate play and remaps its indices back to
// the original hand positions.
func (e *Engine) evalSubset(hand []Card, combo []int, jokers []Joker, levels *HandLevels) Breakdown {
	played := make([]Card, len(combo))
	var inPlay uint32
	for i, idx := range combo {
		played[i] = hand[idx]
		inPlay |= 1 << idx
	}
	held := make([]Card, 0, len(hand)-len(combo))
	for i, c := range hand {
		if inPlay&(1<<i) == 0 {
			held = append(held, c)
		}
	}

	b := e.Score(played, held, jokers, levels)
	for i, s := range b.ScoringCards {
		b.ScoringCards[i] = combo[s]
	}
	b.AllCards = append([]int(nil), combo...)
	return b
}

// enumerateSubsets lists index combinations of 1..maxSize elements out
// of n, largest sizes first and lexicographic within a size, so ranking
// ties always break the same way.
func enumerateSubsets(n, maxSize int) [][]int {
	var out [][]int
	combo := make([]int, maxSize)
	for size := maxSize; size >= 1; size-- {
		var walk func(start, depth int)
		walk = func(start, depth int) {
			if depth == size {
				out = append(out, append([]int(nil), combo[:size]...))
				return
			}
			for i := start; i <= n-(size-depth); i++ {
				combo[depth] = i
				walk(i+1, depth+1)
			}
		}
		walk(0, 0)
	}
	return out
}
