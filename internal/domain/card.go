package domain

import (
	"fmt"
	"strings"
)

// Suit is a card suit. Suits order Club < Diamond < Heart < Spade.
type Suit int32

const (
	Club Suit = iota
	Diamond
	Heart
	Spade
)

var suitLetters = [...]string{"C", "D", "H", "S"}

func (s Suit) String() string {
	if s < Club || s > Spade {
		return "?"
	}
	return suitLetters[s]
}

// Rank is a position in the Big Two rank cycle: 3 is lowest, 2 is highest.
type Rank int32

const (
	Three Rank = iota
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
	Two
)

var rankLabels = [...]string{"3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "2"}

func (r Rank) String() string {
	if r < Three || r > Two {
		return "?"
	}
	return rankLabels[r]
}

// Card is a single playing card in the Big Two deck.
type Card struct {
	Suit Suit // C, D, H, S
	Rank Rank // 0..12 (3=0, A=11, 2=12)
}

// LowestCard is the card that must open a game dealt from a full deck.
var LowestCard = Card{Suit: Club, Rank: Three}

// Power is the card's position in the total order: rank first, suit as tie-break.
func (c Card) Power() int32 {
	return int32(c.Rank)*4 + int32(c.Suit)
}

// Beats reports whether c is strictly higher than other.
func (c Card) Beats(other Card) bool {
	return c.Power() > other.Power()
}

// String renders the card as suit letter and bracketed rank, e.g. "C[3]".
func (c Card) String() string {
	return c.Suit.String() + "[" + c.Rank.String() + "]"
}

// ParseCard reads the String form of a card.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '[')
	if open != 1 || !strings.HasSuffix(s, "]") {
		return Card{}, fmt.Errorf("malformed card %q", s)
	}

	suit := Suit(-1)
	for i, l := range suitLetters {
		if strings.EqualFold(s[:1], l) {
			suit = Suit(i)
		}
	}
	if suit < 0 {
		return Card{}, fmt.Errorf("unknown suit in %q", s)
	}

	label := strings.ToUpper(s[open+1 : len(s)-1])
	for i, l := range rankLabels {
		if l == label {
			return Card{Suit: suit, Rank: Rank(i)}, nil
		}
	}
	return Card{}, fmt.Errorf("unknown rank in %q", s)
}

// MustParseCards parses a space separated list of cards and panics on error.
// Intended for fixtures.
func MustParseCards(s string) []Card {
	fields := strings.Fields(s)
	out := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}

// FormatCards joins the String form of each card with spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
