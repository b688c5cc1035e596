package server

import (
	"fmt"

	"github.com/coder/quartz"

	"github.com/pmcca/balatro-sim/balatro"
)

// Advisor answers scoring queries against a shared engine. The clock is
// injectable so request timing is testable.
type Advisor struct {
	engine *balatro.Engine
	clock  quartz.Clock
}

// NewAdvisor creates an advisor around a configured engine
func NewAdvisor(engine *balatro.Engine, clock quartz.Clock) *Advisor {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Advisor{engine: engine, clock: clock}
}

// Classify resolves a classify request
func (a *Advisor) Classify(req ClassifyData) (*ClassifyResultData, error) {
	if len(req.Cards) == 0 {
		return nil, fmt.Errorf("no cards in request")
	}
	cards := make([]balatro.Card, len(req.Cards))
	for i, cs := range req.Cards {
		cards[i] = cs.Card(i)
	}
	handType, scoring := balatro.Classify(cards)
	return &ClassifyResultData{
		HandType:     handType.String(),
		HandRank:     handType.Rank(),
		ScoringCards: scoring,
	}, nil
}

// Score resolves a score request; the snapshot's hand is the played set
func (a *Advisor) Score(req ScoreData) (*ScoreResultData, error) {
	snap := &req.Snapshot
	if len(snap.Hand) == 0 {
		return nil, fmt.Errorf("no cards in snapshot")
	}
	start := a.clock.Now()
	b := a.engine.Score(snap.Cards(), snap.HeldCards(), snap.JokerSlots(), snap.Levels())
	return &ScoreResultData{
		Breakdown:  BreakdownFromEngine(b),
		DurationMs: a.clock.Since(start).Milliseconds(),
	}, nil
}

// BestHands resolves a best-plays search over the snapshot's hand
func (a *Advisor) BestHands(req BestHandsData) (*BestHandsResultData, error) {
	snap := &req.Snapshot
	if len(snap.Hand) == 0 {
		return nil, fmt.Errorf("no cards in snapshot")
	}
	start := a.clock.Now()
	results := a.engine.BestHands(snap.Cards(), snap.JokerSlots(), snap.Levels(), req.TopN)
	data := make([]BreakdownData, len(results))
	for i, b := range results {
		data[i] = BreakdownFromEngine(b)
	}
	return &BestHandsResultData{
		Results:    data,
		HandSize:   len(snap.Hand),
		DurationMs: a.clock.Since(start).Milliseconds(),
	}, nil
}
