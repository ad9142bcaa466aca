package bot

import (
	"bigtwo/internal/bot/internal"
	"bigtwo/internal/domain"
)

// GoodBot leads its lowest-ranked legal play and follows with the first
// answer the bound pattern finds.
type GoodBot struct{}

func (b *GoodBot) CalculateMove(view domain.TurnView) (Move, error) {
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
	internal.SortByRepresentative(leads)
	return Move{Cards: leads[0].Cards}, nil
}
