package bot

import (
	"bigtwo/internal/bot/internal"
	"bigtwo/internal/domain"
)

// followMove answers a standing play with the bound pattern's own generator.
// Both levels follow this way; they differ only in how they lead.
func followMove(view domain.TurnView) Move {
	if view.Pattern == nil || len(view.Leading) == 0 {
		return Move{Pass: true}
	}
	cards := view.Pattern.Generate(view.Hand, view.Leading)
	if cards == nil {
		return Move{Pass: true}
	}
	return Move{Cards: cards}
}

// legalLeads lists the leads the seat may open with, honouring the opening card.
func legalLeads(view domain.TurnView) []internal.Lead {
	leads := internal.GetLeadMoves(view.Hand)
	if view.Required != nil {
		leads = internal.FilterContaining(leads, *view.Required)
	}
	return leads
}
