package domain

import "testing"

func TestCardBeats(t *testing.T) {
	tests := []struct {
		name string
		a, b Card
		want bool
	}{
		{name: "higher rank", a: Card{Suit: Club, Rank: Four}, b: Card{Suit: Spade, Rank: Three}, want: true},
		{name: "lower rank", a: Card{Suit: Spade, Rank: Three}, b: Card{Suit: Club, Rank: Four}, want: false},
		{name: "two beats ace", a: Card{Suit: Club, Rank: Two}, b: Card{Suit: Spade, Rank: Ace}, want: true},
		{name: "suit breaks tie", a: Card{Suit: Spade, Rank: Ten}, b: Card{Suit: Heart, Rank: Ten}, want: true},
		{name: "club lowest suit", a: Card{Suit: Club, Rank: Ten}, b: Card{Suit: Diamond, Rank: Ten}, want: false},
		{name: "same card", a: Card{Suit: Heart, Rank: King}, b: Card{Suit: Heart, Rank: King}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Beats(tt.b); got != tt.want {
				t.Errorf("%s.Beats(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCardOrderIsStrict(t *testing.T) {
	cards := NewDeck().Cards()
	for _, a := range cards {
		for _, b := range cards {
			if a == b {
				continue
			}
			if a.Beats(b) == b.Beats(a) {
				t.Fatalf("%s and %s are not strictly ordered", a, b)
			}
		}
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in      string
		want    Card
		wantErr bool
	}{
		{in: "C[3]", want: Card{Suit: Club, Rank: Three}},
		{in: "h[10]", want: Card{Suit: Heart, Rank: Ten}},
		{in: "S[2]", want: Card{Suit: Spade, Rank: Two}},
		{in: "D[a]", want: Card{Suit: Diamond, Rank: Ace}},
		{in: "X[3]", wantErr: true},
		{in: "C[1]", wantErr: true},
		{in: "C3", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCard(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCard(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseCard(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCardStringRoundTrip(t *testing.T) {
	for _, c := range NewDeck().Cards() {
		got, err := ParseCard(c.String())
		if err != nil || got != c {
			t.Fatalf("round trip of %s gave %v, %v", c, got, err)
		}
	}
}
