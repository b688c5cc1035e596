// Package balatro implements a deterministic score simulator for
// Balatro-style hands: hand classification, the ordered scoring pipeline
// (chips, mult, joker effects), and best-play search over a hand.
package balatro

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. SuitNone marks a suit the game reported
// with a symbol we don't know; such cards never participate in flushes.
type Suit int

const (
	SuitNone Suit = iota
	Spades
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Name returns the full suit name as the game reports it
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	default:
		return "?"
	}
}

// ParseSuit accepts both the game's full names ("Hearts") and the short
// one-letter form ("h"). Unknown symbols map to SuitNone.
func ParseSuit(s string) Suit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "spades":
		return Spades
	case "h", "hearts":
		return Hearts
	case "d", "diamonds":
		return Diamonds
	case "c", "clubs":
		return Clubs
	default:
		return SuitNone
	}
}

// Rank represents a card rank. Values 2-14 mirror the game's ordering
// with ace high; RankNone marks an unrecognized rank symbol.
type Rank int

const (
	RankNone Rank = 0

	Two Rank = iota + 1
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Chips returns the chip value a card of this rank contributes when it
// scores: face value for 2-10, 10 for face cards, 11 for aces.
func (r Rank) Chips() int {
	switch {
	case r == RankNone:
		return 0
	case r >= Two && r <= Ten:
		return int(r)
	case r == Ace:
		return 11
	default: // Jack, Queen, King
		return 10
	}
}

// Num returns the ordering number (2-14, ace high), 0 for unknown ranks.
func (r Rank) Num() int {
	return int(r)
}

// IsFace returns true for Jack, Queen and King
func (r Rank) IsFace() bool {
	return r >= Jack && r <= King
}

// String returns the rank as the game names it ("2".."10", "Jack", ...)
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "Jack"
	case r == Queen:
		return "Queen"
	case r == King:
		return "King"
	case r == Ace:
		return "Ace"
	default:
		return "?"
	}
}

// Short returns the one-character rank used in compact card notation
func (r Rank) Short() string {
	switch {
	case r >= Two && r <= Nine:
		return fmt.Sprintf("%d", int(r))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// ParseRank accepts the game's names ("10", "Jack") and short forms
// ("T", "j"). Unknown symbols map to RankNone.
func ParseRank(s string) Rank {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2":
		return Two
	case "3":
		return Three
	case "4":
		return Four
	case "5":
		return Five
	case "6":
		return Six
	case "7":
		return Seven
	case "8":
		return Eight
	case "9":
		return Nine
	case "10", "t":
		return Ten
	case "jack", "j":
		return Jack
	case "queen", "q":
		return Queen
	case "king", "k":
		return King
	case "ace", "a":
		return Ace
	default:
		return RankNone
	}
}

// Enhancement is a per-card modifier altering its scoring contribution
// or enabling a held-card effect.
type Enhancement int

const (
	EnhNone Enhancement = iota
	EnhBonus
	EnhMult
	EnhGlass
	EnhSteel
	EnhStone
	EnhGold
	EnhLucky
)

func (e Enhancement) String() string {
	switch e {
	case EnhBonus:
		return "Bonus Card"
	case EnhMult:
		return "Mult Card"
	case EnhGlass:
		return "Glass Card"
	case EnhSteel:
		return "Steel Card"
	case EnhStone:
		return "Stone Card"
	case EnhGold:
		return "Gold Card"
	case EnhLucky:
		return "Lucky Card"
	default:
		return "None"
	}
}

// ParseEnhancement canonicalizes the game's no-enhancement sentinels
// ("Default Base", "Base", "") to EnhNone; unknown names also map to
// EnhNone so they contribute nothing.
func ParseEnhancement(s string) Enhancement {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.ToLower(s), " card")
	switch s {
	case "bonus":
		return EnhBonus
	case "mult":
		return EnhMult
	case "glass":
		return EnhGlass
	case "steel":
		return EnhSteel
	case "stone":
		return EnhStone
	case "gold":
		return EnhGold
	case "lucky":
		return EnhLucky
	default:
		return EnhNone
	}
}

// Edition is a cosmetic-tier bonus carried by cards and jokers.
type Edition int

const (
	EdNone Edition = iota
	EdFoil
	EdHolographic
	EdPolychrome
	EdNegative
)

func (e Edition) String() string {
	switch e {
	case EdFoil:
		return "Foil"
	case EdHolographic:
		return "Holographic"
	case EdPolychrome:
		return "Polychrome"
	case EdNegative:
		return "Negative"
	default:
		return "None"
	}
}

// ParseEdition maps unknown edition names to EdNone
func ParseEdition(s string) Edition {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "foil":
		return EdFoil
	case "holographic", "holo":
		return EdHolographic
	case "polychrome", "poly":
		return EdPolychrome
	case "negative":
		return EdNegative
	default:
		return EdNone
	}
}

// Seal is a per-card flag; only the red seal affects scoring (retrigger).
type Seal int

const (
	SealNone Seal = iota
	SealRed
	SealBlue
	SealGold
	SealPurple
)

func (s Seal) String() string {
	switch s {
	case SealRed:
		return "Red Seal"
	case SealBlue:
		return "Blue Seal"
	case SealGold:
		return "Gold Seal"
	case SealPurple:
		return "Purple Seal"
	default:
		return "None"
	}
}

// ParseSeal maps unknown seal names to SealNone
func ParseSeal(s string) Seal {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), " seal") {
	case "red":
		return SealRed
	case "blue":
		return SealBlue
	case "gold":
		return SealGold
	case "purple":
		return SealPurple
	default:
		return SealNone
	}
}

// Card is a playing card with all its modifiers. Cards are immutable
// once built from game state; Index is the card's stable position in
// the hand it came from.
type Card struct {
	Rank        Rank
	Suit        Suit
	Enhancement Enhancement
	Edition     Edition
	Seal        Seal
	Index       int
}

// NewCard creates a plain card with no modifiers
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns compact notation, e.g. "K♥" or "K♥ (Steel Card, Foil)"
func (c Card) String() string {
	base := c.Rank.Short() + c.Suit.String()
	var mods []string
	if c.Enhancement != EnhNone {
		mods = append(mods, c.Enhancement.String())
	}
	if c.Edition != EdNone {
		mods = append(mods, c.Edition.String())
	}
	if c.Seal != SealNone {
		mods = append(mods, c.Seal.String())
	}
	if len(mods) == 0 {
		return base
	}
	return fmt.Sprintf("%s (%s)", base, strings.Join(mods, ", "))
}

// IsFace returns true if the card is a face card (J, Q, K)
func (c Card) IsFace() bool {
	return c.Rank.IsFace()
}

// ParseCard parses compact notation: a rank character followed by a suit
// character, with optional colon-separated modifiers, e.g. "Ah",
// "Td:bonus", "Kh:steel:foil:red". Modifiers are matched against the
// enhancement, edition and seal vocabularies in that order.
func ParseCard(s string) (Card, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	base := parts[0]
	if len(base) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	rank := ParseRank(base[:len(base)-1])
	suit := ParseSuit(base[len(base)-1:])
	if rank == RankNone || suit == SuitNone {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	c := Card{Rank: rank, Suit: suit}
	for _, mod := range parts[1:] {
		if enh := ParseEnhancement(mod); enh != EnhNone {
			c.Enhancement = enh
			continue
		}
		if ed := ParseEdition(mod); ed != EdNone {
			c.Edition = ed
			continue
		}
		if seal := ParseSeal(mod); seal != SealNone {
			c.Seal = seal
			continue
		}
		return Card{}, fmt.Errorf("unknown card modifier %q in %q", mod, s)
	}
	return c, nil
}

// ParseCards parses a whitespace or comma separated list of cards and
// assigns hand indices in order.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ','
	})
	cards := make([]Card, 0, len(fields))
	for i, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		c.Index = i
		cards = append(cards, c)
	}
	return cards, nil
}
