package balatro

import "sort"

// Joker is an equipped modifier card. Slot order (position in the
// equipped slice) is semantically significant: effects apply strictly in
// slot order and must never be reordered. SellValue feeds effects that
// read peer sell values.
type Joker struct {
	Name      string
	Edition   Edition
	SellValue int
}

// scoreContext carries the read-only inputs one scoring invocation sees.
// Handlers mutate only the accumulator; the firstFaceSeen flag is
// per-invocation scratch for the one effect that keys on play order.
type scoreContext struct {
	tun      Tunables
	handType HandType
	played   []Card
	scoring  []int
	held     []Card
	jokers   []Joker

	firstFaceSeen bool
}

// cardEffect applies a joker's per-scoring-card contribution for the
// card currently being scored.
type cardEffect func(st *scoreState, ctx *scoreContext, c Card)

// handEffect applies a joker's independent (once per play) contribution.
type handEffect func(st *scoreState, ctx *scoreContext, j Joker)

// jokerEffect pairs the two trigger points a joker may hook
type jokerEffect struct {
	perCard     cardEffect
	independent handEffect
}

// jokerEffects is the static effect registry keyed by joker name.
// Unrecognized names have no entry and contribute nothing, which keeps
// the engine forward-compatible with content it doesn't model. Several
// handlers use Tunables fields where the real effect depends on game
// history the snapshot doesn't carry.
var jokerEffects = map[string]jokerEffect{
	"Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		st.bonusMult(4)
	}},
	"Green Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		st.bonusMult(ctx.tun.GreenJokerMult)
	}},
	"Blue Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		st.bonusChips(ctx.tun.BlueJokerChipsPerCard * ctx.tun.DeckRemaining)
	}},
	"Red Card": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		st.bonusMult(ctx.tun.RedCardMult)
	}},
	// Swashbuckler adds the sell value of every other owned joker; when
	// the snapshot carries no sell values, fall back to a flat estimate.
	"Swashbuckler": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		total := -j.SellValue
		for _, peer := range ctx.jokers {
			total += peer.SellValue
		}
		if total <= 0 {
			total = ctx.tun.SwashbucklerFallbackMult
		}
		st.bonusMult(total)
	}},

	// Suit jokers fire once per matching scoring card
	"Greedy Joker": {perCard: func(st *scoreState, ctx *scoreContext, c Card) {
		if c.Suit == Diamonds {
			st.bonusChips(3)
		}
	}},
	"Lusty Joker": {perCard: func(st *scoreState, ctx *scoreContext, c Card) {
		if c.Suit == Hearts {
			st.bonusMult(3)
		}
	}},
	"Wrathful Joker": {perCard: func(st *scoreState, ctx *scoreContext, c Card) {
		if c.Suit == Spades {
			st.bonusMult(3)
		}
	}},
	"Gluttonous Joker": {perCard: func(st *scoreState, ctx *scoreContext, c Card) {
		if c.Suit == Clubs {
			st.bonusMult(3)
		}
	}},
	"Arrowhead": {perCard: func(st *scoreState, ctx *scoreContext, c Card) {
		if c.Suit == Spades {
			st.bonusChips(50)
		}
	}},
	"Onyx Agate": {perCard: func(st *scoreState, ctx *scoreContext, c Card) {
		if c.Suit == Clubs {
			st.bonusMult(7)
		}
	}},
	// Bloodstone's coin flips collapse to a linear expected factor over
	// the scoring hearts, applied once.
	"Bloodstone": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		hearts := ctx.countScoringSuit(Hearts)
		if hearts > 0 {
			st.times(1.0 + ctx.tun.BloodstoneHeartEV*float64(hearts))
		}
	}},

	// Hand-type jokers consult the containment relation, not equality
	"Jolly Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if ctx.handType.Contains(Pair) {
			st.bonusMult(8)
		}
	}},
	"Zany Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if ctx.handType.Contains(ThreeOfAKind) {
			st.bonusMult(12)
		}
	}},
	"Mad Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if ctx.handType.Contains(TwoPair) {
			st.bonusMult(10)
		}
	}},
	"Crazy Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if ctx.handType.Contains(Straight) {
			st.bonusMult(12)
		}
	}},
	"Droll Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if ctx.handType.Contains(Flush) {
			st.bonusMult(10)
		}
	}},
	"Sly Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if ctx.handType.Contains(Pair) {
			st.bonusChips(50)
		}
	}},
	"Wily Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if ctx.handType.Contains(ThreeOfAKind) {
			st.bonusChips(100)
		}
	}},
	"Clever Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if ctx.handType.Contains(TwoPair) {
			st.bonusChips(80)
		}
	}},
	"Devious Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if ctx.handType.Contains(Straight) {
			st.bonusChips(100)
		}
	}},
	"Crafty Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if ctx.handType.Contains(Flush) {
			st.bonusChips(80)
		}
	}},

	"Half Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if len(ctx.played) <= 3 {
			st.bonusMult(20)
		}
	}},
	"Stencil Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		empty := ctx.tun.StencilSlots - len(ctx.jokers)
		if empty > 0 {
			st.times(1.0 + float64(empty))
		}
	}},
	"Misprint": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		st.bonusMult(ctx.tun.MisprintMult)
	}},
	"Raised Fist": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if len(ctx.held) == 0 {
			return
		}
		lowest := ctx.held[0].Rank.Num()
		for _, c := range ctx.held[1:] {
			if c.Rank.Num() < lowest {
				lowest = c.Rank.Num()
			}
		}
		st.bonusMult(lowest)
	}},
	"Banner": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		st.bonusMult(ctx.tun.BannerMult)
	}},
	"Mystic Summit": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		st.bonusMult(ctx.tun.MysticSummitMult)
	}},
	"Loyalty Card": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		st.times(ctx.tun.LoyaltyXMult)
	}},
	"Scary Face": {perCard: func(st *scoreState, ctx *scoreContext, c Card) {
		if c.IsFace() {
			st.bonusChips(30)
		}
	}},
	"Abstract Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		st.bonusMult(3 * len(ctx.jokers))
	}},
	"Ride the Bus": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		st.bonusMult(ctx.tun.RideTheBusMult)
	}},
	"Supernova": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		st.bonusMult(ctx.tun.SupernovaMult)
	}},
	"Blackboard": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if len(ctx.held) == 0 {
			return
		}
		for _, c := range ctx.held {
			if c.Suit != Spades && c.Suit != Clubs {
				return
			}
		}
		st.times(3.0)
	}},
	"The Duo": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if ctx.handType.Contains(Pair) {
			st.times(2.0)
		}
	}},
	"The Trio": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if ctx.handType.Contains(ThreeOfAKind) {
			st.times(3.0)
		}
	}},
	"The Family": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if ctx.handType.Contains(FourOfAKind) {
			st.times(4.0)
		}
	}},
	"The Order": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if ctx.handType.Contains(Straight) {
			st.times(3.0)
		}
	}},
	"The Tribe": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		if ctx.handType.Contains(Flush) {
			st.times(2.0)
		}
	}},
	"Fibonacci": {perCard: func(st *scoreState, ctx *scoreContext, c Card) {
		switch c.Rank {
		case Ace, Two, Three, Five, Eight:
			st.bonusMult(8)
		}
	}},
	// Steel Joker scales with steel cards held, collapsed to a linear
	// factor rather than compounding per card.
	"Steel Joker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		steel := 0
		for _, c := range ctx.held {
			if c.Enhancement == EnhSteel {
				steel++
			}
		}
		if steel > 0 {
			st.times(1.0 + ctx.tun.SteelJokerEV*float64(steel))
		}
	}},
	"Photograph": {perCard: func(st *scoreState, ctx *scoreContext, c Card) {
		if c.IsFace() && !ctx.firstFaceSeen {
			ctx.firstFaceSeen = true
			st.times(2.0)
		}
	}},
	"Even Steven": {perCard: func(st *scoreState, ctx *scoreContext, c Card) {
		switch c.Rank {
		case Two, Four, Six, Eight, Ten:
			st.bonusMult(4)
		}
	}},
	"Odd Todd": {perCard: func(st *scoreState, ctx *scoreContext, c Card) {
		switch c.Rank {
		case Three, Five, Seven, Nine, Ace:
			st.bonusChips(31)
		}
	}},
	"Scholar": {perCard: func(st *scoreState, ctx *scoreContext, c Card) {
		if c.Rank == Ace {
			st.bonusChips(20)
			st.bonusMult(4)
		}
	}},
	"Walkie Talkie": {perCard: func(st *scoreState, ctx *scoreContext, c Card) {
		if c.Rank == Ten || c.Rank == Four {
			st.bonusChips(10)
			st.bonusMult(4)
		}
	}},
	"Hiker": {independent: func(st *scoreState, ctx *scoreContext, j Joker) {
		st.bonusChips(ctx.tun.HikerChips)
	}},
}

// countScoringSuit counts scoring cards of the given suit
func (ctx *scoreContext) countScoringSuit(suit Suit) int {
	n := 0
	for _, idx := range ctx.scoring {
		if ctx.played[idx].Suit == suit {
			n++
		}
	}
	return n
}

// ImplementedJokers returns the sorted names the effect registry models.
// Callers that need to distinguish "not implemented" from "implemented
// but inactive" consult this rather than score outcomes.
func ImplementedJokers() []string {
	names := make([]string, 0, len(jokerEffects))
	for name := range jokerEffects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
