package match

import "github.com/squaredcircle/booker/booker/game"

// momentumBonus is a step function modelling the comeback mechanic.
func momentumBonus(momentum int) int {
	switch {
	case momentum >= 70:
		return 20
	case momentum >= 40:
		return 10
	default:
		return 0
	}
}

// successChance is the player-side roll target: skill average plus the
// momentum bonus minus the action difficulty. The draw is uniform in
// [0,100); the attempt succeeds when it lands below this value.
func successChance(w game.Wrestler, action game.MatchAction, momentum int) float64 {
	base := float64(w.Wrestling + w.Strength + w.Speed)
	return base/3 + float64(momentumBonus(momentum)) - float64(action.Difficulty)
}

// opponentChance is the simplified AI-side roll target: an average of two
// attributes, no momentum bonus, no difficulty modifier.
func opponentChance(w game.Wrestler) float64 {
	return float64(w.Wrestling+w.Strength) / 2
}
