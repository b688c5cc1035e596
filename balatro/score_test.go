package balatro

import (
	"reflect"
	"testing"
)

func TestScoreThreeOfAKindBaseline(t *testing.T) {
	e := NewEngine()
	played := mustCards(t, "Th Td Ts 2c 3d")

	b := e.Score(played, nil, nil, nil)

	if b.HandType != ThreeOfAKind {
		t.Fatalf("hand type = %s, want Three of a Kind", b.HandType)
	}
	if !reflect.DeepEqual(b.ScoringCards, []int{0, 1, 2}) {
		t.Errorf("scoring cards = %v, want the three tens", b.ScoringCards)
	}
	if b.BaseChips != 30 || b.BaseMult != 3 {
		t.Errorf("base = (%d, %d), want (30, 3)", b.BaseChips, b.BaseMult)
	}
	if b.CardChips != 30 {
		t.Errorf("card chips = %d, want 30", b.CardChips)
	}
	if b.FinalScore != 180 {
		t.Errorf("final score = %v, want 180", b.FinalScore)
	}
}

// TestScoreJokerOrderSensitivity is the canonical regression for the
// single-accumulator model: an additive and a multiplicative mult effect
// must land in equipped slot order, not in separate pools.
func TestScoreJokerOrderSensitivity(t *testing.T) {
	e := NewEngine()
	kings := mustCards(t, "Kh Kd")
	duo := Joker{Name: "The Duo"}
	plain := Joker{Name: "Joker"}

	// (2 x 2) + 4 = 8 -> 30 x 8
	b := e.Score(kings, nil, []Joker{duo, plain}, nil)
	if b.FinalScore != 240 {
		t.Errorf("[Duo, Joker] final = %v, want 240", b.FinalScore)
	}

	// (2 + 4) x 2 = 12 -> 30 x 12
	b = e.Score(kings, nil, []Joker{plain, duo}, nil)
	if b.FinalScore != 360 {
		t.Errorf("[Joker, Duo] final = %v, want 360", b.FinalScore)
	}
}

func TestScoreIdempotent(t *testing.T) {
	e := NewEngine()
	played := mustCards(t, "Kh:steel:foil Kd:red 2h 2d 5c")
	held := mustCards(t, "3h:steel 9c")
	jokers := []Joker{
		{Name: "Jolly Joker"},
		{Name: "The Duo", Edition: EdPolychrome},
		{Name: "Lusty Joker"},
	}
	levels := NewHandLevels()
	levels.SetLevel(TwoPair, 3)

	a := e.Score(played, held, jokers, levels)
	b := e.Score(played, held, jokers, levels)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical inputs produced different breakdowns:\n%+v\n%+v", a, b)
	}
}

func TestScoreMonotonicUnderFlatMultJoker(t *testing.T) {
	e := NewEngine()
	hands := []string{
		"Kh Kd",
		"Th Td Ts 2c 3d",
		"2h 5h 9h Jh Kh",
		"Ah 2c 3d 4s 5h",
		"2d 7c",
	}
	base := []Joker{{Name: "The Duo"}, {Name: "Bloodstone"}}
	for _, h := range hands {
		cards := mustCards(t, h)
		before := e.Score(cards, nil, base, nil).FinalScore
		after := e.Score(cards, nil, append(base, Joker{Name: "Joker"}), nil).FinalScore
		if after < before {
			t.Errorf("hand %q: adding a flat +mult joker decreased score: %v -> %v", h, before, after)
		}
	}
}

func TestScoreOverridePrecedence(t *testing.T) {
	e := NewEngine()
	kings := mustCards(t, "Kh Kd")

	// All-zero report means "no override": level-derived base applies
	levels := NewHandLevels()
	levels.SetOverride(Pair, 0, 0)
	b := e.Score(kings, nil, nil, levels)
	if b.BaseChips != 10 || b.BaseMult != 2 {
		t.Errorf("zero override not ignored: base = (%d, %d)", b.BaseChips, b.BaseMult)
	}
	if b.FinalScore != 60 {
		t.Errorf("final = %v, want 60", b.FinalScore)
	}

	// A real override is authoritative
	levels.SetOverride(Pair, 100, 5)
	b = e.Score(kings, nil, nil, levels)
	if b.BaseChips != 100 || b.BaseMult != 5 {
		t.Errorf("override not applied: base = (%d, %d)", b.BaseChips, b.BaseMult)
	}
	if b.FinalScore != 600 { // (100 + 20) x 5
		t.Errorf("final = %v, want 600", b.FinalScore)
	}
}

func TestScoreLevelDerivedBase(t *testing.T) {
	e := NewEngine()
	kings := mustCards(t, "Kh Kd")
	levels := NewHandLevels()
	levels.SetLevel(Pair, 3)

	b := e.Score(kings, nil, nil, levels)
	// Pair gains +15 chips / +1 mult per level past 1
	if b.BaseChips != 40 || b.BaseMult != 4 {
		t.Errorf("level 3 pair base = (%d, %d), want (40, 4)", b.BaseChips, b.BaseMult)
	}
	if b.FinalScore != 240 { // (40 + 20) x 4
		t.Errorf("final = %v, want 240", b.FinalScore)
	}
}

func TestScoreRedSealRetriggers(t *testing.T) {
	e := NewEngine()
	b := e.Score(mustCards(t, "Kh:red Kd"), nil, nil, nil)
	// The sealed king scores twice: 10 + 10 + 10 card chips
	if b.CardChips != 30 {
		t.Errorf("card chips = %d, want 30", b.CardChips)
	}
	if b.FinalScore != 80 { // (10 + 30) x 2
		t.Errorf("final = %v, want 80", b.FinalScore)
	}
}

func TestScoreStoneCardFlatValue(t *testing.T) {
	e := NewEngine()
	b := e.Score(mustCards(t, "2c:stone"), nil, nil, nil)
	// Stone replaces the rank value entirely: 5 base + 50 stone
	if b.CardChips != 50 {
		t.Errorf("card chips = %d, want 50", b.CardChips)
	}
	if b.FinalScore != 55 {
		t.Errorf("final = %v, want 55", b.FinalScore)
	}
}

func TestScoreEnhancements(t *testing.T) {
	e := NewEngine()
	tests := []struct {
		name  string
		cards string
		want  float64
	}{
		{"bonus card adds 30 chips", "Kh:bonus Kd", (10 + 20 + 30) * 2},
		{"mult card adds 4 mult", "Kh:mult Kd", 30 * (2 + 4)},
		{"glass card doubles mult", "Kh:glass Kd", 30 * (2 * 2)},
		{"lucky card books its expectation", "Kh:lucky Kd", 30 * (2 + 4)},
		{"gold card has no play effect", "Kh:gold Kd", 30 * 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := e.Score(mustCards(t, tt.cards), nil, nil, nil)
			if b.FinalScore != tt.want {
				t.Errorf("final = %v, want %v", b.FinalScore, tt.want)
			}
		})
	}
}

func TestScoreEditions(t *testing.T) {
	e := NewEngine()
	tests := []struct {
		name  string
		cards string
		want  float64
	}{
		{"foil adds 50 chips", "Kh:foil Kd", (30 + 50) * 2},
		{"holographic adds 10 mult", "Kh:holo Kd", 30 * (2 + 10)},
		{"polychrome multiplies by 1.5", "Kh:poly Kd", 30 * (2 * 1.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := e.Score(mustCards(t, tt.cards), nil, nil, nil)
			if b.FinalScore != tt.want {
				t.Errorf("final = %v, want %v", b.FinalScore, tt.want)
			}
		})
	}
}

func TestScoreSteelHeld(t *testing.T) {
	e := NewEngine()
	kings := mustCards(t, "Kh Kd")

	b := e.Score(kings, mustCards(t, "5h:steel"), nil, nil)
	if b.FinalScore != 90 { // 30 x (2 x 1.5)
		t.Errorf("steel held final = %v, want 90", b.FinalScore)
	}

	// Polychrome steel amplifies the held factor
	b = e.Score(kings, mustCards(t, "5h:steel:poly"), nil, nil)
	if b.FinalScore != 135 { // 30 x (2 x 1.5 x 1.5)
		t.Errorf("polychrome steel final = %v, want 135", b.FinalScore)
	}

	// A red seal runs the held trigger twice
	b = e.Score(kings, mustCards(t, "5h:steel:red"), nil, nil)
	if b.FinalScore != 135 { // 30 x (2 x 1.5 x 1.5)
		t.Errorf("sealed steel final = %v, want 135", b.FinalScore)
	}

	// Non-steel held cards contribute nothing
	b = e.Score(kings, mustCards(t, "5h:bonus 9c:foil"), nil, nil)
	if b.FinalScore != 60 {
		t.Errorf("plain held final = %v, want 60", b.FinalScore)
	}
}

func TestScoreJokerEditionAppliesEvenWhenUnrecognized(t *testing.T) {
	e := NewEngine()
	b := e.Score(mustCards(t, "Kh Kd"), nil, []Joker{{Name: "Canio", Edition: EdHolographic}}, nil)
	// The effect is unmodeled but the edition still books
	if b.FinalScore != 360 { // 30 x (2 + 10)
		t.Errorf("final = %v, want 360", b.FinalScore)
	}
}

func TestScoreEmptyPlay(t *testing.T) {
	e := NewEngine()
	b := e.Score(nil, nil, nil, nil)
	if b.HandType != HighCard {
		t.Errorf("hand type = %s, want High Card", b.HandType)
	}
	if b.FinalScore != 5 { // base-only: 5 x 1
		t.Errorf("final = %v, want 5", b.FinalScore)
	}
}

func TestScoreDiagnosticTallies(t *testing.T) {
	e := NewEngine()
	b := e.Score(mustCards(t, "Kh:glass:foil Kd"), nil, []Joker{{Name: "Joker"}}, nil)
	if b.CardChips != 20 {
		t.Errorf("card chips = %d, want 20", b.CardChips)
	}
	if b.AddChips != 50 {
		t.Errorf("add chips = %d, want 50", b.AddChips)
	}
	if b.AddMult != 4 {
		t.Errorf("add mult = %d, want 4", b.AddMult)
	}
	if b.XMult != 2 {
		t.Errorf("x mult = %v, want 2", b.XMult)
	}
	if b.TotalChips() != 80 {
		t.Errorf("total chips = %d, want 80", b.TotalChips())
	}
	if b.FinalScore != 80*(2*2+4) {
		t.Errorf("final = %v, want %v", b.FinalScore, 80*(2*2+4))
	}
}
