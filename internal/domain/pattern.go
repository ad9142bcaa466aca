package domain

import (
	"errors"
	"sort"
)

var (
	// ErrNoPattern is returned when no pattern recognizes a set of cards.
	ErrNoPattern = errors.New("cards do not form a recognized pattern")
	// ErrPatternMismatch is returned when a follower plays a different pattern than the trick.
	ErrPatternMismatch = errors.New("cards do not match the trick's pattern")
	// ErrNotHigher is returned when a follower's play does not outrank the leading play.
	ErrNotHigher = errors.New("cards do not outrank the leading play")
)

// Kind identifies a pattern shape.
type Kind int

const (
	KindNone Kind = iota
	KindSingle
	KindPair
	KindStraight
	KindFullHouse
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindPair:
		return "pair"
	case KindStraight:
		return "straight"
	case KindFullHouse:
		return "full house"
	default:
		return "none"
	}
}

// Pattern recognizes, ranks and searches for plays of a single Kind.
// Implementations are stateless values and safe to share.
type Pattern interface {
	// Kind reports which shape this pattern handles.
	Kind() Kind
	// Matches reports whether cards form this pattern's shape.
	Matches(cards []Card) bool
	// Representative returns the card used to rank a matched set.
	Representative(cards []Card) Card
	// Outranks reports whether cards beat reference. Both must match the pattern.
	Outranks(cards, reference []Card) bool
	// Generate picks cards from hand that beat leading, or nil to pass.
	// The hand is not modified.
	Generate(hand, leading []Card) []Card
}

// Patterns returns the built-in patterns in dispatch priority.
func Patterns() []Pattern {
	return []Pattern{Single{}, Pair{}, Straight{}, FullHouse{}}
}

// PatternFor returns the built-in pattern of the given kind.
func PatternFor(k Kind) (Pattern, bool) {
	for _, p := range Patterns() {
		if p.Kind() == k {
			return p, true
		}
	}
	return nil, false
}

func outranks(p Pattern, cards, reference []Card) bool {
	return p.Representative(cards).Beats(p.Representative(reference))
}

// groupByRank splits cards into same-rank groups, lowest rank first.
// Each group is in ascending order.
func groupByRank(cards []Card) [][]Card {
	byRank := make(map[Rank][]Card)
	for _, c := range cards {
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}

	ranks := make([]int, 0, len(byRank))
	for r := range byRank {
		ranks = append(ranks, int(r))
	}
	sort.Ints(ranks)

	groups := make([][]Card, 0, len(ranks))
	for _, r := range ranks {
		g := byRank[Rank(r)]
		SortCards(g)
		groups = append(groups, g)
	}
	return groups
}
