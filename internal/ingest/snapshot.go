// Package ingest decodes live game-state snapshots into simulator types.
// The snapshot format is forgiving: ranks arrive under either a "value"
// or "rank" key, enhancement sentinels like "Default Base" mean none,
// and hand-level entries reporting zero for both chips and mult carry no
// override data.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pmcca/balatro-sim/balatro"
)

// CardState is one card as the game serializes it
type CardState struct {
	Value       string `json:"value,omitempty"`
	Rank        string `json:"rank,omitempty"`
	Suit        string `json:"suit"`
	Enhancement string `json:"enhancement,omitempty"`
	Edition     string `json:"edition,omitempty"`
	Seal        string `json:"seal,omitempty"`
}

// Card converts the serialized form. Unknown rank or suit symbols
// degrade to the zero values rather than failing the whole snapshot.
func (cs CardState) Card(index int) balatro.Card {
	rank := cs.Value
	if rank == "" {
		rank = cs.Rank
	}
	return balatro.Card{
		Rank:        balatro.ParseRank(rank),
		Suit:        balatro.ParseSuit(cs.Suit),
		Enhancement: balatro.ParseEnhancement(cs.Enhancement),
		Edition:     balatro.ParseEdition(cs.Edition),
		Seal:        balatro.ParseSeal(cs.Seal),
		Index:       index,
	}
}

// JokerState is one joker as the game serializes it
type JokerState struct {
	Name      string `json:"name,omitempty"`
	Label     string `json:"label,omitempty"`
	Edition   string `json:"edition,omitempty"`
	SellValue int    `json:"sell_value,omitempty"`
}

// Joker converts the serialized form, preferring the name over the label
func (js JokerState) Joker() balatro.Joker {
	name := js.Name
	if name == "" {
		name = js.Label
	}
	return balatro.Joker{
		Name:      name,
		Edition:   balatro.ParseEdition(js.Edition),
		SellValue: js.SellValue,
	}
}

// HandLevelState is the per-hand upgrade record the game reports
type HandLevelState struct {
	Level int `json:"level"`
	Chips int `json:"chips"`
	Mult  int `json:"mult"`
}

// Snapshot is a point-in-time capture of the scoring-relevant game state
type Snapshot struct {
	Hand       []CardState               `json:"hand"`
	Held       []CardState               `json:"held,omitempty"`
	Jokers     []JokerState              `json:"jokers,omitempty"`
	HandLevels map[string]HandLevelState `json:"hand_levels,omitempty"`
}

// Decode reads a JSON snapshot
func Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &snap, nil
}

// DecodeBytes reads a JSON snapshot from a byte slice
func DecodeBytes(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &snap, nil
}

// Cards converts the hand, assigning indices in order
func (s *Snapshot) Cards() []balatro.Card {
	cards := make([]balatro.Card, len(s.Hand))
	for i, cs := range s.Hand {
		cards[i] = cs.Card(i)
	}
	return cards
}

// HeldCards converts the held set, assigning indices in order
func (s *Snapshot) HeldCards() []balatro.Card {
	if len(s.Held) == 0 {
		return nil
	}
	cards := make([]balatro.Card, len(s.Held))
	for i, cs := range s.Held {
		cards[i] = cs.Card(i)
	}
	return cards
}

// JokerSlots converts the joker row in slot order
func (s *Snapshot) JokerSlots() []balatro.Joker {
	if len(s.Jokers) == 0 {
		return nil
	}
	jokers := make([]balatro.Joker, len(s.Jokers))
	for i, js := range s.Jokers {
		jokers[i] = js.Joker()
	}
	return jokers
}

// Levels builds the hand-level table. Reported chips/mult become
// authoritative overrides when present; zero-for-both entries only
// contribute their level.
func (s *Snapshot) Levels() *balatro.HandLevels {
	if len(s.HandLevels) == 0 {
		return nil
	}
	levels := balatro.NewHandLevels()
	for name, st := range s.HandLevels {
		h := balatro.ParseHandType(name)
		levels.SetLevel(h, st.Level)
		levels.SetOverride(h, st.Chips, st.Mult)
	}
	return levels
}
