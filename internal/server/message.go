package server

import (
	"encoding/json"
	"time"

	"github.com/pmcca/balatro-sim/balatro"
	"github.com/pmcca/balatro-sim/internal/ingest"
)

// MessageType identifies the kind of WebSocket message
type MessageType string

const (
	// Client → Server
	MessageTypeClassify  MessageType = "classify"
	MessageTypeScore     MessageType = "score"
	MessageTypeBestHands MessageType = "best_hands"

	// Server → Client
	MessageTypeClassifyResult  MessageType = "classify_result"
	MessageTypeScoreResult     MessageType = "score_result"
	MessageTypeBestHandsResult MessageType = "best_hands_result"
	MessageTypeError           MessageType = "error"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server Messages

// ClassifyData asks for the hand type of a set of played cards
type ClassifyData struct {
	Cards []ingest.CardState `json:"cards"`
}

// ScoreData asks for a full scoring breakdown of a play
type ScoreData struct {
	Snapshot ingest.Snapshot `json:"snapshot"`
}

// BestHandsData asks for the top plays out of a hand
type BestHandsData struct {
	Snapshot ingest.Snapshot `json:"snapshot"`
	TopN     int             `json:"topN,omitempty"`
}

// Server → Client Messages

type ClassifyResultData struct {
	HandType     string `json:"handType"`
	HandRank     int    `json:"handRank"`
	ScoringCards []int  `json:"scoringCards"`
}

// BreakdownData is the wire form of a scoring breakdown
type BreakdownData struct {
	HandType     string  `json:"handType"`
	HandRank     int     `json:"handRank"`
	BaseChips    int     `json:"baseChips"`
	BaseMult     int     `json:"baseMult"`
	CardChips    int     `json:"cardChips"`
	AddChips     int     `json:"addChips"`
	AddMult      int     `json:"addMult"`
	XMult        float64 `json:"xMult"`
	FinalScore   float64 `json:"finalScore"`
	ScoringCards []int   `json:"scoringCards"`
	AllCards     []int   `json:"allCards"`
}

type ScoreResultData struct {
	Breakdown  BreakdownData `json:"breakdown"`
	DurationMs int64         `json:"durationMs"`
}

type BestHandsResultData struct {
	Results    []BreakdownData `json:"results"`
	HandSize   int             `json:"handSize"`
	DurationMs int64           `json:"durationMs"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BreakdownFromEngine converts an engine breakdown to its wire form
func BreakdownFromEngine(b balatro.Breakdown) BreakdownData {
	return BreakdownData{
		HandType:     b.HandType.String(),
		HandRank:     b.HandRank,
		BaseChips:    b.BaseChips,
		BaseMult:     b.BaseMult,
		CardChips:    b.CardChips,
		AddChips:     b.AddChips,
		AddMult:      b.AddMult,
		XMult:        b.XMult,
		FinalScore:   b.FinalScore,
		ScoringCards: b.ScoringCards,
		AllCards:     b.AllCards,
	}
}
