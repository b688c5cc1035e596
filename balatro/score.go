package balatro

import "sort"

// Scoring value tables. These are game data, not approximations; the
// approximation constants live on Tunables.
var (
	enhancementChips = map[Enhancement]int{
		EnhBonus: 30,
		EnhStone: 50,
	}
	enhancementMult = map[Enhancement]int{
		EnhMult: 4,
	}
	enhancementXMult = map[Enhancement]float64{
		EnhGlass: 2.0,
	}

	editionChips = map[Edition]int{
		EdFoil: 50,
	}
	editionMult = map[Edition]int{
		EdHolographic: 10,
	}
	editionXMult = map[Edition]float64{
		EdPolychrome: 1.5,
	}
)

// scoreState is the single mutable accumulator the pipeline threads
// through every trigger. Chips are only ever added to; mult is both
// added to and multiplied, strictly in trigger order, which is what
// makes the result order-sensitive. The tally fields record how much
// each operation type contributed for diagnostics and never feed back
// into the arithmetic.
type scoreState struct {
	chips int
	mult  float64

	cardChips int
	addChips  int
	addMult   int
	xMult     float64
}

// scoreCard adds chips from a card's own value (rank, stone, bonus)
func (st *scoreState) scoreCard(n int) {
	st.chips += n
	st.cardChips += n
}

// bonusChips adds chips from editions and joker effects
func (st *scoreState) bonusChips(n int) {
	st.chips += n
	st.addChips += n
}

// bonusMult adds to the running mult
func (st *scoreState) bonusMult(n int) {
	st.mult += float64(n)
	st.addMult += n
}

// times multiplies the running mult
func (st *scoreState) times(x float64) {
	st.mult *= x
	st.xMult *= x
}

// Engine evaluates plays. It is stateless between calls; every Score
// invocation builds a fresh accumulator, so an Engine is safe for
// concurrent use once configured.
type Engine struct {
	// Tunables holds the approximation constants, see DefaultTunables
	Tunables Tunables
	// MaxPlay is the largest playable subset (the game rule is 5)
	MaxPlay int
	// TopN is the default result count for BestHands
	TopN int
	// Workers caps search parallelism; 0 means one per CPU
	Workers int
}

// NewEngine returns an engine with game-standard settings
func NewEngine() *Engine {
	return &Engine{
		Tunables: DefaultTunables(),
		MaxPlay:  5,
		TopN:     3,
	}
}

// Score computes the full breakdown for playing played while holding
// held, with jokers in equipped slot order. levels may be nil for an
// unupgraded run. Identical inputs always produce identical breakdowns;
// nothing outside the returned value is mutated.
func (e *Engine) Score(played, held []Card, jokers []Joker, levels *HandLevels) Breakdown {
	handType, scoring := Classify(played)
	baseChips, baseMult := levels.Base(handType)

	st := &scoreState{
		chips: baseChips,
		mult:  float64(baseMult),
		xMult: 1.0,
	}
	ctx := &scoreContext{
		tun:      e.Tunables,
		handType: handType,
		played:   played,
		scoring:  scoring,
		held:     held,
		jokers:   jokers,
	}

	// Scoring cards trigger in ascending position order regardless of
	// the order the classifier listed them in.
	ordered := append([]int(nil), scoring...)
	sort.Ints(ordered)
	for _, idx := range ordered {
		card := played[idx]
		triggerCard(st, ctx, card)
		if card.Seal == SealRed {
			triggerCard(st, ctx, card)
		}
	}

	// Held cards contribute only their narrow while-held effects
	for _, card := range held {
		triggerHeld(st, ctx, card)
		if card.Seal == SealRed {
			triggerHeld(st, ctx, card)
		}
	}

	// Independent joker effects, each immediately followed by its own
	// edition so order sensitivity between neighbouring slots survives.
	for _, j := range jokers {
		if eff, ok := jokerEffects[j.Name]; ok && eff.independent != nil {
			eff.independent(st, ctx, j)
		}
		applyEdition(st, j.Edition)
	}

	final := float64(st.chips) * st.mult

	return Breakdown{
		HandType:     handType,
		HandRank:     handType.Rank(),
		BaseChips:    baseChips,
		BaseMult:     baseMult,
		CardChips:    st.cardChips,
		AddChips:     st.addChips,
		AddMult:      st.addMult,
		XMult:        st.xMult,
		FinalScore:   final,
		ScoringCards: scoring,
		AllCards:     allIndices(len(played)),
	}
}

// triggerCard runs one full scoring pass for a scoring card: chip value,
// enhancement, edition, then every joker's per-card hook in slot order.
// A red seal re-runs the whole pass once.
func triggerCard(st *scoreState, ctx *scoreContext, card Card) {
	// Stone cards have no rank or suit; they contribute a flat value
	if card.Enhancement == EnhStone {
		st.scoreCard(enhancementChips[EnhStone])
	} else {
		st.scoreCard(card.Rank.Chips())
		if n, ok := enhancementChips[card.Enhancement]; ok {
			st.scoreCard(n)
		}
	}
	if n, ok := enhancementMult[card.Enhancement]; ok {
		st.bonusMult(n)
	}
	if x, ok := enhancementXMult[card.Enhancement]; ok {
		st.times(x)
	}
	// Lucky cards roll for +mult in the real game; the simulator books
	// the expected value instead.
	if card.Enhancement == EnhLucky {
		st.bonusMult(ctx.tun.LuckyMult)
	}

	applyEdition(st, card.Edition)

	for _, j := range ctx.jokers {
		if eff, ok := jokerEffects[j.Name]; ok && eff.perCard != nil {
			eff.perCard(st, ctx, card)
		}
	}
}

// triggerHeld applies while-held effects: a steel card multiplies the
// running mult, amplified by its own multiplicative edition.
func triggerHeld(st *scoreState, ctx *scoreContext, card Card) {
	if card.Enhancement != EnhSteel {
		return
	}
	st.times(ctx.tun.SteelHeldXMult)
	if x, ok := editionXMult[card.Edition]; ok {
		st.times(x)
	}
}

// applyEdition books an edition's bonus onto the accumulator
func applyEdition(st *scoreState, ed Edition) {
	if n, ok := editionChips[ed]; ok {
		st.bonusChips(n)
	}
	if n, ok := editionMult[ed]; ok {
		st.bonusMult(n)
	}
	if x, ok := editionXMult[ed]; ok {
		st.times(x)
	}
}
