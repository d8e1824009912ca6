package engine

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/squaredcircle/booker/booker/data"
	"github.com/squaredcircle/booker/booker/game"
)

const (
	baseMatchRating  = 50
	injuryChance     = 0.05
	winPopularity    = 2
	lossPopularity   = -1
	popularitySpread = 3
)

// Engine holds the booking-side game logic: match ratings, storylines,
// post-match rolls and starter objectives. All randomness comes from the
// injected source.
type Engine struct {
	rng *rand.Rand
}

// New builds an engine around the injected random source.
func New(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// MatchRating scores a booked match from its participants' workrate and
// the match-type gimmick bonuses, clamped to [0,100].
func (e *Engine) MatchRating(m game.Match, wrestlers map[string]game.Wrestler) int {
	// Workrate contributions keep their fractions until the single
	// rounding at the end.
	rating := float64(baseMatchRating)

	for _, id := range m.Participants {
		w, ok := wrestlers[id]
		if !ok {
			continue
		}
		rating += float64(w.Wrestling+w.Charisma+w.Entertainment) / 15
	}

	if strings.Contains(m.Type, "Championship") {
		rating += 10
	}
	if strings.Contains(m.Type, "Cage") || strings.Contains(m.Type, "Cell") {
		rating += 8
	}
	if strings.Contains(m.Type, "Ladder") || strings.Contains(m.Type, "TLC") {
		rating += 12
	}

	return game.Clamp(int(math.Round(rating)))
}

var storylines = []string{
	"%s challenges %s to a match after a backstage altercation.",
	"A heated rivalry develops between %s and %s over championship gold.",
	"%s turns heel and attacks %s during a victory celebration.",
	"%s and %s form an unlikely alliance against a common enemy.",
	"%s accuses %s of stealing their spotlight and demands a match.",
	"Family drama unfolds as %s and %s face off in a personal feud.",
	"%s returns from injury seeking revenge against %s.",
	"A tournament is announced with %s and %s as top contenders.",
}

// moveStorylines additionally name a move from the shared pool.
var moveStorylines = []string{
	"%s lays out %s with a %s on the go-home show.",
	"%s vows to finish %s with the %s once and for all.",
	"%s blames %s for the botched %s that cost them the main event.",
}

// Storyline writes a narrative hook for two wrestlers.
func (e *Engine) Storyline(first, second string) string {
	n := e.rng.Intn(len(storylines) + len(moveStorylines))
	if n < len(storylines) {
		return fmt.Sprintf(storylines[n], first, second)
	}
	move := data.Moves[e.rng.Intn(len(data.Moves))]
	return fmt.Sprintf(moveStorylines[n-len(storylines)], first, second, move)
}

// InjuryRoll is the post-match injury check.
func (e *Engine) InjuryRoll() bool {
	return e.rng.Float64() < injuryChance
}

// PopularityChange is the post-match popularity swing for one wrestler.
func (e *Engine) PopularityChange(won bool) int {
	base := lossPopularity
	if won {
		base = winPopularity
	}
	return base + e.rng.Intn(popularitySpread)
}

// StarterObjectives seeds a new booker game with its opening goals.
func (e *Engine) StarterObjectives() []game.Objective {
	return []game.Objective{
		{
			ID:          "obj-1",
			Title:       "Increase Company Revenue",
			Description: "Earn $1,000,000 in revenue this quarter",
			Reward:      50_000,
			Type:        "financial",
		},
		{
			ID:          "obj-2",
			Title:       "Sign a Top Star",
			Description: "Sign a wrestler with 90+ overall rating",
			Reward:      25_000,
			Type:        "wrestler",
		},
		{
			ID:          "obj-3",
			Title:       "Host a 5-Star Match",
			Description: "Book a match that receives a 95+ rating",
			Reward:      75_000,
			Type:        "booking",
		},
	}
}
