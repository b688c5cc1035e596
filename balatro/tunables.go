package balatro

// Tunables collects every closed-form substitution the simulator makes
// for game context it cannot see at evaluation time (round history,
// discards remaining, deck composition) and for genuinely random effects
// (replaced by their expected value, never sampled). The defaults are
// approximations, not tuned facts; override them via config rather than
// editing the effect table.
type Tunables struct {
	// GreenJokerMult approximates "+1 mult per hand played this round"
	GreenJokerMult int
	// BlueJokerChipsPerCard is the real per-card bonus; DeckRemaining
	// estimates how many cards are left in the deck.
	BlueJokerChipsPerCard int
	DeckRemaining         int
	// RedCardMult approximates "+3 mult per booster pack skipped"
	RedCardMult int
	// SwashbucklerFallbackMult is used when no peer sell values are known
	SwashbucklerFallbackMult int
	// BloodstoneHeartEV is the expected extra factor per scoring heart
	// (a coin flip for x1.5 contributes 0.25 each)
	BloodstoneHeartEV float64
	// StencilSlots is the assumed joker slot count
	StencilSlots int
	// MisprintMult is the mean of the 0-23 roll
	MisprintMult int
	// BannerMult approximates the remaining-discards bonus
	BannerMult int
	// MysticSummitMult approximates "+15 mult at 0 discards" at even odds
	MysticSummitMult int
	// LoyaltyXMult spreads the every-6-hands burst over all hands
	LoyaltyXMult float64
	// RideTheBusMult approximates the consecutive non-face-hand counter
	RideTheBusMult int
	// SupernovaMult approximates the times-hand-played counter
	SupernovaMult int
	// HikerChips approximates the permanent per-card chip growth
	HikerChips int
	// SteelJokerEV is the expected factor gained per steel card held
	SteelJokerEV float64
	// SteelHeldXMult is the factor a held steel card applies
	SteelHeldXMult float64
	// LuckyMult is the expected mult of the 1-in-5 +20 roll
	LuckyMult int
}

// DefaultTunables returns the stock approximation constants.
func DefaultTunables() Tunables {
	return Tunables{
		GreenJokerMult:           3,
		BlueJokerChipsPerCard:    2,
		DeckRemaining:            30,
		RedCardMult:              3,
		SwashbucklerFallbackMult: 8,
		BloodstoneHeartEV:        0.25,
		StencilSlots:             5,
		MisprintMult:             12,
		BannerMult:               30,
		MysticSummitMult:         8,
		LoyaltyXMult:             1.2,
		RideTheBusMult:           3,
		SupernovaMult:            3,
		HikerChips:               15,
		SteelJokerEV:             0.2,
		SteelHeldXMult:           1.5,
		LuckyMult:                4,
	}
}
