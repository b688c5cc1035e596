package balatro

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func TestBestHandsFindsThePair(t *testing.T) {
	e := NewEngine()
	hand := mustCards(t, "2h 3d Kh 5c 7s 9d Ks 4h")

	results := e.BestHands(hand, nil, nil, 3)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	best := results[0]
	if best.HandType != Pair {
		t.Errorf("best hand type = %s, want Pair", best.HandType)
	}
	if !reflect.DeepEqual(best.ScoringCards, []int{2, 6}) {
		t.Errorf("scoring cards = %v, want the kings at 2 and 6", best.ScoringCards)
	}
	if best.FinalScore != 60 {
		t.Errorf("best score = %v, want 60", best.FinalScore)
	}
}

func TestBestHandsRespectsMaxPlay(t *testing.T) {
	e := NewEngine()
	hand := mustCards(t, "2h 3d Kh 5c 7s 9d Ks 4h Ah Td Jc 6s")

	for _, b := range e.BestHands(hand, nil, nil, 10) {
		if len(b.AllCards) > e.MaxPlay {
			t.Errorf("subset of %d cards exceeds max play %d", len(b.AllCards), e.MaxPlay)
		}
	}
}

func TestBestHandsSortedDescending(t *testing.T) {
	e := NewEngine()
	hand := mustCards(t, "2h 3d Kh 5c 7s 9d Ks 4h")

	results := e.BestHands(hand, nil, nil, 20)
	for i := 1; i < len(results); i++ {
		if results[i].FinalScore > results[i-1].FinalScore {
			t.Fatalf("results not descending at %d: %v > %v",
				i, results[i].FinalScore, results[i-1].FinalScore)
		}
	}
}

func TestBestHandsEmptyHand(t *testing.T) {
	e := NewEngine()
	if got := e.BestHands(nil, nil, nil, 3); got != nil {
		t.Errorf("empty hand returned %v", got)
	}
}

func TestBestHandsDefaultTopN(t *testing.T) {
	e := NewEngine()
	hand := mustCards(t, "2h 3d Kh 5c")
	if got := len(e.BestHands(hand, nil, nil, 0)); got != 3 {
		t.Errorf("default top-n returned %d results", got)
	}
}

// TestBestHandsParallelMatchesSequential pushes the subset count past
// the fan-out threshold and checks the ranking is byte-identical to a
// plain sequential evaluation.
func TestBestHandsParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	hand := NewDeck(rng).Deal(12)
	jokers := []Joker{{Name: "The Duo"}, {Name: "Lusty Joker"}, {Name: "Joker"}}

	e := NewEngine()
	combos := enumerateSubsets(len(hand), e.MaxPlay)
	if len(combos) < parallelThreshold {
		t.Fatalf("test hand too small to exercise the parallel path: %d subsets", len(combos))
	}

	sequential := make([]Breakdown, len(combos))
	for i, combo := range combos {
		sequential[i] = e.evalSubset(hand, combo, jokers, nil)
	}
	sort.SliceStable(sequential, func(i, j int) bool {
		return sequential[i].FinalScore > sequential[j].FinalScore
	})

	parallel := e.BestHands(hand, jokers, nil, 10)
	if !reflect.DeepEqual(parallel, sequential[:10]) {
		t.Errorf("parallel ranking differs from sequential")
	}
}

func TestBestHandsCapsEnumeration(t *testing.T) {
	e := NewEngine()
	deck := NewDeck(rand.New(rand.NewSource(1)))
	hand := deck.Deal(20)

	for _, b := range e.BestHands(hand, nil, nil, 50) {
		for _, idx := range b.AllCards {
			if idx >= maxSearchHand {
				t.Fatalf("subset references card %d past the enumeration cap", idx)
			}
		}
	}
}

func TestBestHandsRemapsHeldSet(t *testing.T) {
	// Blackboard only fires when every held card is dark; the pair of
	// kings leaves exactly the dark cards behind.
	e := NewEngine()
	hand := mustCards(t, "Kh Kd 2s 3c")
	results := e.BestHands(hand, []Joker{{Name: "Blackboard"}}, nil, 1)
	if len(results) != 1 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].FinalScore != 30*(2*3) {
		t.Errorf("best = %v, want %v (pair of kings with Blackboard x3)",
			results[0].FinalScore, 30*(2*3))
	}
	// Several plays tie at 180; enumeration order (largest sizes first,
	// lexicographic) makes [0 1 2] the stable winner.
	if !reflect.DeepEqual(results[0].AllCards, []int{0, 1, 2}) {
		t.Errorf("best play = %v, want [0 1 2]", results[0].AllCards)
	}
}
