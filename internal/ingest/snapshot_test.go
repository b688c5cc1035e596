package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmcca/balatro-sim/balatro"
)

const sampleSnapshot = `{
  "hand": [
    {"value": "King", "suit": "Hearts", "enhancement": "Steel Card", "edition": "Foil", "seal": "Red Seal"},
    {"rank": "King", "suit": "Diamonds"},
    {"value": "2", "suit": "Spades", "enhancement": "Default Base"}
  ],
  "held": [
    {"value": "Queen", "suit": "Clubs"}
  ],
  "jokers": [
    {"name": "The Duo", "edition": "Polychrome", "sell_value": 5},
    {"label": "Joker"}
  ],
  "hand_levels": {
    "Pair": {"level": 3, "chips": 0, "mult": 0},
    "Flush": {"level": 1, "chips": 90, "mult": 11}
  }
}`

func TestDecodeSnapshot(t *testing.T) {
	snap, err := Decode(strings.NewReader(sampleSnapshot))
	require.NoError(t, err)

	cards := snap.Cards()
	require.Len(t, cards, 3)
	assert.Equal(t, balatro.King, cards[0].Rank)
	assert.Equal(t, balatro.Hearts, cards[0].Suit)
	assert.Equal(t, balatro.EnhSteel, cards[0].Enhancement)
	assert.Equal(t, balatro.EdFoil, cards[0].Edition)
	assert.Equal(t, balatro.SealRed, cards[0].Seal)
	assert.Equal(t, 0, cards[0].Index)

	// Rank arrives under "rank" when "value" is absent
	assert.Equal(t, balatro.King, cards[1].Rank)
	assert.Equal(t, 1, cards[1].Index)

	// "Default Base" means no enhancement
	assert.Equal(t, balatro.EnhNone, cards[2].Enhancement)

	held := snap.HeldCards()
	require.Len(t, held, 1)
	assert.Equal(t, balatro.Queen, held[0].Rank)

	jokers := snap.JokerSlots()
	require.Len(t, jokers, 2)
	assert.Equal(t, "The Duo", jokers[0].Name)
	assert.Equal(t, balatro.EdPolychrome, jokers[0].Edition)
	assert.Equal(t, 5, jokers[0].SellValue)
	// Label stands in for a missing name
	assert.Equal(t, "Joker", jokers[1].Name)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := DecodeBytes([]byte(`{"hand": [`))
	assert.Error(t, err)
}

func TestLevelsOverridePrecedence(t *testing.T) {
	snap, err := DecodeBytes([]byte(sampleSnapshot))
	require.NoError(t, err)

	levels := snap.Levels()
	require.NotNil(t, levels)

	// Pair reported zero chips and mult: level-derived values apply
	chips, mult := levels.Base(balatro.Pair)
	assert.Equal(t, 40, chips)
	assert.Equal(t, 4, mult)

	// Flush carries an authoritative override
	chips, mult = levels.Base(balatro.Flush)
	assert.Equal(t, 90, chips)
	assert.Equal(t, 11, mult)
}

func TestEmptySnapshotSections(t *testing.T) {
	snap, err := DecodeBytes([]byte(`{"hand": []}`))
	require.NoError(t, err)
	assert.Empty(t, snap.Cards())
	assert.Nil(t, snap.HeldCards())
	assert.Nil(t, snap.JokerSlots())
	assert.Nil(t, snap.Levels())
}

func TestUnknownSymbolsDegrade(t *testing.T) {
	snap, err := DecodeBytes([]byte(`{
	  "hand": [{"value": "Joker?", "suit": "Wands", "enhancement": "Cursed"}]
	}`))
	require.NoError(t, err)
	cards := snap.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, balatro.RankNone, cards[0].Rank)
	assert.Equal(t, balatro.SuitNone, cards[0].Suit)
	assert.Equal(t, balatro.EnhNone, cards[0].Enhancement)
}
