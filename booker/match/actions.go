package match

import "github.com/squaredcircle/booker/booker/game"

// DefaultActions is the static in-ring action catalog. Damage, momentum
// and difficulty numbers are balancing policy; they are reproduced
// exactly, not rescaled.
var DefaultActions = []game.MatchAction{
	{
		ID:          "strike",
		Name:        "Strike Attack",
		Type:        game.ActionStrike,
		Damage:      8,
		Momentum:    5,
		Stamina:     5,
		Difficulty:  20,
		Description: "A basic striking attack",
	},
	{
		ID:          "grapple",
		Name:        "Grapple Move",
		Type:        game.ActionGrapple,
		Damage:      12,
		Momentum:    8,
		Stamina:     8,
		Difficulty:  35,
		Description: "A technical grappling maneuver",
	},
	{
		ID:           "aerial",
		Name:         "High-Flying Move",
		Type:         game.ActionAerial,
		Damage:       15,
		Momentum:     12,
		Stamina:      15,
		Difficulty:   50,
		Description:  "A spectacular aerial attack",
		Requirements: game.ActionRequirements{Momentum: 30},
	},
	{
		ID:           "signature",
		Name:         "Signature Move",
		Type:         game.ActionSignature,
		Damage:       20,
		Momentum:     15,
		Stamina:      12,
		Difficulty:   40,
		Description:  "Your signature wrestling move",
		Requirements: game.ActionRequirements{Momentum: 50},
	},
	{
		ID:           "finisher",
		Name:         "Finisher",
		Type:         game.ActionFinisher,
		Damage:       35,
		Momentum:     25,
		Stamina:      20,
		Difficulty:   60,
		Description:  "Your devastating finishing move",
		Requirements: game.ActionRequirements{Momentum: 75},
	},
}

// ActionByID looks up a catalog action.
func ActionByID(id string) (game.MatchAction, bool) {
	for _, a := range DefaultActions {
		if a.ID == id {
			return a, true
		}
	}
	return game.MatchAction{}, false
}

// availableActions filters the catalog by the momentum gate.
func availableActions(actions []game.MatchAction, momentum int) []game.MatchAction {
	var out []game.MatchAction
	for _, a := range actions {
		if !a.Gated() || momentum >= a.Requirements.Momentum {
			out = append(out, a)
		}
	}
	return out
}
