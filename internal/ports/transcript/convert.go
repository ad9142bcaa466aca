package transcript

import (
	"bigtwo/internal/app"
	"bigtwo/internal/domain"
)

func cardsToValue(cards []domain.Card) []interface{} {
	out := make([]interface{}, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.String())
	}
	return out
}

func stringsToValue(ss []string) []interface{} {
	out := make([]interface{}, 0, len(ss))
	for _, s := range ss {
		out = append(out, s)
	}
	return out
}

// eventToMap flattens an event into the JSON-compatible shape structpb accepts.
func eventToMap(ev app.Event) map[string]interface{} {
	m := map[string]interface{}{
		"kind":    string(ev.Kind),
		"game_id": ev.GameID,
	}
	if len(ev.Recipients) > 0 {
		recipients := make([]interface{}, 0, len(ev.Recipients))
		for _, r := range ev.Recipients {
			recipients = append(recipients, r)
		}
		m["recipients"] = recipients
	}

	switch p := ev.Payload.(type) {
	case app.PlayerJoinedPayload:
		m["seat"] = p.Seat
		m["name"] = p.Name
	case app.GameStartedPayload:
		m["players"] = stringsToValue(p.Players)
		m["first_leader_seat"] = p.FirstLeaderSeat
		m["required_card"] = p.RequiredCard.String()
	case app.HandShownPayload:
		m["seat"] = p.Seat
		m["name"] = p.Name
		m["hand"] = cardsToValue(p.Hand)
		m["leading"] = cardsToValue(p.Leading)
		m["leader"] = p.Leader
	case app.CardPlayedPayload:
		m["seat"] = p.Seat
		m["name"] = p.Name
		m["pattern"] = p.Pattern
		m["cards"] = cardsToValue(p.Cards)
		m["remaining"] = p.Remaining
	case app.TurnPassedPayload:
		m["seat"] = p.Seat
		m["name"] = p.Name
	case app.PlayRejectedPayload:
		m["seat"] = p.Seat
		m["name"] = p.Name
		m["reason"] = p.Reason
	case app.TrickClosedPayload:
		m["next_leader_seat"] = p.NextLeaderSeat
		m["name"] = p.Name
	case app.GameEndedPayload:
		m["winner_seat"] = p.WinnerSeat
		m["winner"] = p.Winner
	}
	return m
}
