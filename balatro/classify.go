package balatro

// rankCount pairs a rank ordering number with its frequency in a play.
type rankCount struct {
	num   int
	count int
}

// countRanks tallies rank frequencies ordered by count descending, with
// ties broken by first appearance in the play. The tie-break matters:
// scoring-card selection for full houses and two pairs follows it.
func countRanks(cards []Card) []rankCount {
	var order []int
	counts := make(map[int]int, len(cards))
	for _, c := range cards {
		n := c.Rank.Num()
		if counts[n] == 0 {
			order = append(order, n)
		}
		counts[n]++
	}
	rc := make([]rankCount, 0, len(order))
	for _, n := range order {
		rc = append(rc, rankCount{num: n, count: counts[n]})
	}
	// Stable insertion sort by count descending preserves first-seen
	// order among equal counts.
	for i := 1; i < len(rc); i++ {
		v := rc[i]
		j := i - 1
		for j >= 0 && rc[j].count < v.count {
			rc[j+1] = rc[j]
			j--
		}
		rc[j+1] = v
	}
	return rc
}

// Classify determines the hand type of a play and which cards score for
// it. The second return value holds indices into cards. Classification
// is a priority cascade: the first matching branch wins and later
// branches are alternatives, never refinements. Classify never fails; an
// empty play is the weakest type with no scoring cards.
func Classify(cards []Card) (HandType, []int) {
	if len(cards) == 0 {
		return HighCard, nil
	}

	n := len(cards)
	rc := countRanks(cards)

	isFlush := n >= 5 && sameKnownSuit(cards)
	isStraight := n >= 5 && hasStraight(cards)

	// Five of a kind needs rank duplication beyond a standard deck
	if rc[0].count >= 5 {
		idxs := indicesOfRank(cards, rc[0].num, 5)
		if isFlush {
			return FlushFive, idxs
		}
		return FiveOfAKind, idxs
	}

	if isFlush && isStraight {
		return StraightFlush, allIndices(n)
	}

	if rc[0].count >= 4 {
		idxs := indicesOfRank(cards, rc[0].num, 4)
		// One kicker joins the quads, first remaining card by position
		for i := 0; i < n && len(idxs) < 5; i++ {
			if cards[i].Rank.Num() != rc[0].num {
				idxs = append(idxs, i)
				break
			}
		}
		return FourOfAKind, idxs
	}

	if len(rc) >= 2 && rc[0].count == 3 && rc[1].count >= 2 {
		idxs := indicesOfRank(cards, rc[0].num, 3)
		idxs = append(idxs, indicesOfRank(cards, rc[1].num, 2)...)
		if isFlush {
			return FlushHouse, idxs
		}
		return FullHouse, idxs
	}

	if isFlush {
		return Flush, allIndices(n)
	}

	if isStraight {
		return Straight, allIndices(n)
	}

	if rc[0].count == 3 {
		return ThreeOfAKind, indicesOfRank(cards, rc[0].num, 3)
	}

	if len(rc) >= 2 && rc[0].count == 2 && rc[1].count == 2 {
		idxs := make([]int, 0, 4)
		for i, c := range cards {
			num := c.Rank.Num()
			if num == rc[0].num || num == rc[1].num {
				idxs = append(idxs, i)
			}
			if len(idxs) == 4 {
				break
			}
		}
		return TwoPair, idxs
	}

	if rc[0].count == 2 {
		return Pair, indicesOfRank(cards, rc[0].num, 2)
	}

	// High card: only the single highest card scores
	best := 0
	for i := 1; i < n; i++ {
		if cards[i].Rank.Num() > cards[best].Rank.Num() {
			best = i
		}
	}
	return HighCard, []int{best}
}

// sameKnownSuit reports whether every card shares one recognized suit.
// Cards with an unrecognized suit never form part of a flush.
func sameKnownSuit(cards []Card) bool {
	suit := cards[0].Suit
	if suit == SuitNone {
		return false
	}
	for _, c := range cards[1:] {
		if c.Suit != suit {
			return false
		}
	}
	return true
}

// hasStraight reports whether the distinct ranks form five consecutive
// values, including the ace-low wheel A-2-3-4-5.
func hasStraight(cards []Card) bool {
	var mask uint
	distinct := 0
	for _, c := range cards {
		num := c.Rank.Num()
		if num == 0 {
			return false
		}
		if mask&(1<<num) == 0 {
			distinct++
		}
		mask |= 1 << num
	}
	if distinct != 5 {
		return false
	}
	const wheel = 1<<14 | 1<<2 | 1<<3 | 1<<4 | 1<<5
	if mask == wheel {
		return true
	}
	lo, hi := 0, 0
	for num := 2; num <= 14; num++ {
		if mask&(1<<num) != 0 {
			if lo == 0 {
				lo = num
			}
			hi = num
		}
	}
	return hi-lo == 4
}

// indicesOfRank returns up to max indices of cards with the given rank
// ordering number, in position order.
func indicesOfRank(cards []Card, num, max int) []int {
	idxs := make([]int, 0, max)
	for i, c := range cards {
		if c.Rank.Num() == num {
			idxs = append(idxs, i)
			if len(idxs) == max {
				break
			}
		}
	}
	return idxs
}

func allIndices(n int) []int {
	idxs := make([]int, n)
	for i := range idxs {
		idxs[i] = i
	}
	return idxs
}
