package bot

import (
	"bigtwo/internal/bot/internal"
)

// SelectionContext holds the state for the lead decision pipeline. Each rule
// narrows Candidates; the first remaining candidate is played.
type SelectionContext struct {
	Candidates []internal.Lead
}

// Best returns the current choice.
func (c *SelectionContext) Best() internal.Lead {
	return c.Candidates[0]
}

// SelectionRule represents a logic unit that can influence which lead is chosen.
type SelectionRule interface {
	Name() string
	Apply(ctx *SelectionContext)
}

// FavorMostCardsRule keeps the leads that shed the most cards.
type FavorMostCardsRule struct{}

func (r *FavorMostCardsRule) Name() string { return "FavorMostCards" }

func (r *FavorMostCardsRule) Apply(ctx *SelectionContext) {
	most := 0
	for _, c := range ctx.Candidates {
		most = max(most, len(c.Cards))
	}

	kept := ctx.Candidates[:0:0]
	for _, c := range ctx.Candidates {
		if len(c.Cards) == most {
			kept = append(kept, c)
		}
	}
	if len(kept) > 0 {
		ctx.Candidates = kept
	}
}

// FavorLowestRule orders the remaining leads by representative, lowest first.
type FavorLowestRule struct{}

func (r *FavorLowestRule) Name() string { return "FavorLowest" }

func (r *FavorLowestRule) Apply(ctx *SelectionContext) {
	internal.SortByRepresentative(ctx.Candidates)
}
