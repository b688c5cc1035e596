package balatro

// HandType enumerates hand classifications from weakest to strongest.
type HandType int

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
	FlushHouse
	FlushFive

	numHandTypes
)

// String returns the hand type name as the game reports it
func (h HandType) String() string {
	switch h {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case FiveOfAKind:
		return "Five of a Kind"
	case FlushHouse:
		return "Flush House"
	case FlushFive:
		return "Flush Five"
	default:
		return "Unknown"
	}
}

// ParseHandType maps a game-reported hand name to its HandType.
// Unknown names map to HighCard, the weakest type.
func ParseHandType(name string) HandType {
	for h := HighCard; h < numHandTypes; h++ {
		if h.String() == name {
			return h
		}
	}
	return HighCard
}

// baseScore is the level-1 scoring for a hand type plus its rank number,
// used by callers for escalation heuristics.
type baseScore struct {
	chips int
	mult  int
	rank  int
}

// handBase holds the game's level-1 base scoring per hand type.
var handBase = [numHandTypes]baseScore{
	HighCard:      {5, 1, 1},
	Pair:          {10, 2, 2},
	TwoPair:       {20, 2, 3},
	ThreeOfAKind:  {30, 3, 4},
	Straight:      {30, 4, 5},
	Flush:         {35, 4, 6},
	FullHouse:     {40, 4, 7},
	FourOfAKind:   {60, 7, 8},
	StraightFlush: {100, 8, 9},
	FiveOfAKind:   {120, 12, 10},
	FlushHouse:    {140, 14, 11},
	FlushFive:     {160, 16, 12},
}

// planetBonus holds the per-level chips/mult gained from planet cards.
type levelBonus struct {
	chips int
	mult  int
}

var planetBonus = [numHandTypes]levelBonus{
	HighCard:      {10, 1},
	Pair:          {15, 1},
	TwoPair:       {20, 2},
	ThreeOfAKind:  {20, 2},
	Straight:      {30, 3},
	Flush:         {15, 2},
	FullHouse:     {25, 2},
	FourOfAKind:   {30, 3},
	StraightFlush: {40, 4},
	FiveOfAKind:   {35, 3},
	FlushHouse:    {40, 4},
	FlushFive:     {50, 3},
}

// Rank returns the hand type's rank number (1 = High Card .. 12 = Flush
// Five), used by strategy layers for tie-break and escalation decisions.
func (h HandType) Rank() int {
	if h < 0 || h >= numHandTypes {
		return handBase[HighCard].rank
	}
	return handBase[h].rank
}

// containment states which weaker hand-type conditions a classification
// also satisfies. Joker conditions of the form "hand contains X" consult
// this table rather than comparing hand types directly, so a joker keyed
// on Pair fires for Two Pair, Full House, Four of a Kind and Five of a
// Kind as well.
var containment = [numHandTypes][]HandType{
	HighCard:      {},
	Pair:          {},
	TwoPair:       {Pair},
	ThreeOfAKind:  {},
	Straight:      {},
	Flush:         {},
	FullHouse:     {Pair, TwoPair, ThreeOfAKind},
	FourOfAKind:   {Pair, ThreeOfAKind},
	StraightFlush: {Straight, Flush},
	FiveOfAKind:   {Pair, ThreeOfAKind, FourOfAKind},
	FlushHouse:    {Flush},
	FlushFive:     {Flush},
}

// Contains reports whether a hand classified as h also satisfies the
// weaker classification other.
func (h HandType) Contains(other HandType) bool {
	if h == other {
		return true
	}
	if h < 0 || h >= numHandTypes {
		return false
	}
	for _, t := range containment[h] {
		if t == other {
			return true
		}
	}
	return false
}

// HandLevels tracks planet-card upgrade levels per hand type, plus an
// optional authoritative (chips, mult) override sourced from the live
// game. A nil *HandLevels behaves as all hands at level 1.
type HandLevels struct {
	levels   map[HandType]int
	override map[HandType]levelBonus
}

// NewHandLevels returns a table with every hand at level 1
func NewHandLevels() *HandLevels {
	return &HandLevels{
		levels:   make(map[HandType]int),
		override: make(map[HandType]levelBonus),
	}
}

// Level returns the upgrade level for a hand type (minimum 1)
func (hl *HandLevels) Level(h HandType) int {
	if hl == nil {
		return 1
	}
	if lvl, ok := hl.levels[h]; ok && lvl > 0 {
		return lvl
	}
	return 1
}

// SetLevel records an upgrade level for a hand type
func (hl *HandLevels) SetLevel(h HandType, level int) {
	if level > 0 {
		hl.levels[h] = level
	}
}

// SetOverride records the game-reported (chips, mult) for a hand type.
// The game reporting zero for both means "no data", not "worth nothing",
// so an all-non-positive pair is discarded and level-derived values are
// used instead.
func (hl *HandLevels) SetOverride(h HandType, chips, mult int) {
	if chips <= 0 && mult <= 0 {
		return
	}
	hl.override[h] = levelBonus{chips, mult}
}

// Base returns the (chips, mult) a hand type scores from, preferring the
// game-reported override and falling back to level-derived computation.
func (hl *HandLevels) Base(h HandType) (chips, mult int) {
	if hl != nil {
		if ov, ok := hl.override[h]; ok {
			return ov.chips, ov.mult
		}
	}
	base := handBase[HighCard]
	bonus := planetBonus[HighCard]
	if h >= 0 && h < numHandTypes {
		base = handBase[h]
		bonus = planetBonus[h]
	}
	extra := hl.Level(h) - 1
	return base.chips + bonus.chips*extra, base.mult + bonus.mult*extra
}

// Breakdown is the full scoring result for one candidate play. The
// CardChips/AddChips/AddMult/XMult fields are diagnostic tallies of how
// much each operation type contributed; the arithmetic itself runs on a
// single ordered accumulator, so FinalScore is authoritative and is not
// reconstructible from the tallies alone.
type Breakdown struct {
	HandType   HandType
	HandRank   int
	BaseChips  int
	BaseMult   int
	CardChips  int
	AddChips   int
	AddMult    int
	XMult      float64
	FinalScore float64

	// ScoringCards are the indices of cards that actually scored;
	// AllCards are the indices of every card in the play. Both refer
	// to positions in the original hand once remapped by BestHands.
	ScoringCards []int
	AllCards     []int
}

// TotalChips returns the chip total after all additive contributions
func (b Breakdown) TotalChips() int {
	return b.BaseChips + b.CardChips + b.AddChips
}
