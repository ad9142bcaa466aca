package bot

import (
	"bigtwo/internal/domain"
)

// SmartBot leads through a rule pipeline that sheds as many cards as it can
// at the lowest rank that allows it.
type SmartBot struct {
	Rules []SelectionRule
}

// NewSmartBot returns a SmartBot with the default rule order.
func NewSmartBot() *SmartBot {
	return &SmartBot{Rules: []SelectionRule{&FavorMostCardsRule{}, &FavorLowestRule{}}}
}

func (b *SmartBot) CalculateMove(view domain.TurnView) (Move, error) {
	if len(view.Hand) == 0 {
		return Move{Pass: true}, nil
	}
	if !view.Leader {
		return followMove(view), nil
	}

	leads := legalLeads(view)
	if len(leads) == 0 {
		return Move{}, ErrNoLegalLead
	}

	ctx := &SelectionContext{Candidates: leads}
	for _, rule := range b.Rules {
		rule.Apply(ctx)
	}
	return Move{Cards: ctx.Best().Cards}, nil
}
