package balatro

import (
	"reflect"
	"testing"
)

func mustCards(t *testing.T, s string) []Card {
	t.Helper()
	cards, err := ParseCards(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return cards
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		want     HandType
		scoring  []int
	}{
		{"mixed suit straight", "9h Tc Jd Qs Kh", Straight, []int{0, 1, 2, 3, 4}},
		{"wheel straight", "Ah 2c 3d 4s 5h", Straight, []int{0, 1, 2, 3, 4}},
		{"wheel straight flush", "Ah 2h 3h 4h 5h", StraightFlush, []int{0, 1, 2, 3, 4}},
		{"straight flush", "5h 6h 7h 8h 9h", StraightFlush, []int{0, 1, 2, 3, 4}},
		{"flush", "2h 5h 9h Jh Kh", Flush, []int{0, 1, 2, 3, 4}},
		{"five of a kind", "Kh Kd Ks Kc Kh", FiveOfAKind, []int{0, 1, 2, 3, 4}},
		{"flush five", "Kh Kh Kh Kh Kh", FlushFive, []int{0, 1, 2, 3, 4}},
		{"four of a kind trailing kicker", "Kh Kd Ks Kc 2h", FourOfAKind, []int{0, 1, 2, 3, 4}},
		{"four of a kind leading kicker", "2h Kh Kd Ks Kc", FourOfAKind, []int{1, 2, 3, 4, 0}},
		{"four of a kind no kicker", "Kh Kd Ks Kc", FourOfAKind, []int{0, 1, 2, 3}},
		{"full house", "Kh Kd Kc 2h 2d", FullHouse, []int{0, 1, 2, 3, 4}},
		{"flush house", "Kh Kh Kh 2h 2h", FlushHouse, []int{0, 1, 2, 3, 4}},
		{"three of a kind", "Th Td Ts 2c 3d", ThreeOfAKind, []int{0, 1, 2}},
		{"two pair", "Kh Kd 2h 2d 5c", TwoPair, []int{0, 1, 2, 3}},
		{"pair", "Kh Kd 5c", Pair, []int{0, 1}},
		{"high card picks highest", "2d Kh 5c", HighCard, []int{1}},
		{"four same suit is not a flush", "2h 5h 9h Jh", HighCard, []int{3}},
		{"lone card", "Ah", HighCard, []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, scoring := Classify(mustCards(t, tt.cards))
			if got != tt.want {
				t.Errorf("Classify(%s) = %s, want %s", tt.cards, got, tt.want)
			}
			if !reflect.DeepEqual(scoring, tt.scoring) {
				t.Errorf("Classify(%s) scoring = %v, want %v", tt.cards, scoring, tt.scoring)
			}
		})
	}
}

func TestClassifyEmptyHand(t *testing.T) {
	got, scoring := Classify(nil)
	if got != HighCard {
		t.Errorf("Classify(nil) = %s, want High Card", got)
	}
	if len(scoring) != 0 {
		t.Errorf("Classify(nil) scoring = %v, want empty", scoring)
	}
}

func TestClassifyUnknownSuitNeverFlushes(t *testing.T) {
	cards := make([]Card, 5)
	for i, r := range []Rank{Two, Five, Nine, Jack, King} {
		cards[i] = Card{Rank: r, Suit: SuitNone, Index: i}
	}
	got, _ := Classify(cards)
	if got == Flush {
		t.Errorf("unknown-suit cards classified as Flush")
	}
}

func TestClassifyUnknownRankNeverStraightens(t *testing.T) {
	cards := mustCards(t, "9h Tc Jd Qs Kh")
	cards[0].Rank = RankNone
	got, _ := Classify(cards)
	if got == Straight {
		t.Errorf("unknown-rank card participated in a straight")
	}
}

func TestContainment(t *testing.T) {
	tests := []struct {
		hand   HandType
		target HandType
		want   bool
	}{
		{Pair, Pair, true},
		{TwoPair, Pair, true},
		{FullHouse, Pair, true},
		{FourOfAKind, Pair, true},
		{FiveOfAKind, Pair, true},
		{ThreeOfAKind, Pair, false},
		{FullHouse, TwoPair, true},
		{FourOfAKind, TwoPair, false},
		{FullHouse, ThreeOfAKind, true},
		{FiveOfAKind, FourOfAKind, true},
		{StraightFlush, Straight, true},
		{StraightFlush, Flush, true},
		{FlushHouse, Flush, true},
		{FlushFive, Flush, true},
		{Flush, Straight, false},
		{HighCard, Pair, false},
	}
	for _, tt := range tests {
		if got := tt.hand.Contains(tt.target); got != tt.want {
			t.Errorf("%s.Contains(%s) = %v, want %v", tt.hand, tt.target, got, tt.want)
		}
	}
}
