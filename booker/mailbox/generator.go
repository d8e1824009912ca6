package mailbox

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/squaredcircle/booker/booker/game"
)

var (
	// ErrUnknownEmail means the inbox has no email with that id.
	ErrUnknownEmail = errors.New("mailbox: unknown email")
	// ErrUnknownChoice means the choice index is out of range.
	ErrUnknownChoice = errors.New("mailbox: unknown choice")
	// ErrUnknownEffect means a persisted effect kind the engine cannot
	// interpret, which points at a corrupt or newer save.
	ErrUnknownEffect = errors.New("mailbox: unknown effect kind")
)

// Generator produces narrative emails from the template catalog.
// Template selection and the player's later choice are the only two
// decision points; content is static per template.
type Generator struct {
	rng       *rand.Rand
	templates []Template
}

// NewGenerator builds a generator around the injected random source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, templates: Templates}
}

// Generate picks a template uniformly and stamps it with the given
// receipt time.
func (g *Generator) Generate(now time.Time) game.Email {
	t := g.templates[g.rng.Intn(len(g.templates))]
	return game.Email{
		ID:      fmt.Sprintf("email-%d", now.UnixNano()),
		From:    t.From,
		Subject: t.Subject,
		Content: t.Content,
		Date:    now,
		Read:    false,
		Choices: append([]game.EmailChoice(nil), t.Choices...),
	}
}

// MarkRead returns a snapshot with the email's read flag set. The flag
// flips exactly once; re-reading is a no-op and nothing else mutates.
func MarkRead(state game.GameState, emailID string) (game.GameState, error) {
	idx, err := findEmail(state, emailID)
	if err != nil {
		return state, err
	}
	if state.Inbox[idx].Read {
		return state, nil
	}
	next := state.Clone()
	next.Inbox[idx].Read = true
	return next, nil
}

// ApplyChoice interprets the tagged effect of the chosen response and
// returns the adjusted snapshot.
func ApplyChoice(state game.GameState, emailID string, choice int) (game.GameState, error) {
	idx, err := findEmail(state, emailID)
	if err != nil {
		return state, err
	}
	email := state.Inbox[idx]
	if choice < 0 || choice >= len(email.Choices) {
		return state, ErrUnknownChoice
	}

	next := state.Clone()
	effect := email.Choices[choice].Effect
	switch effect.Kind {
	case game.EffectAdjustMoney:
		next.Money += effect.Amount
	case game.EffectAdjustReputation:
		next.Reputation += int(effect.Amount)
	default:
		return state, fmt.Errorf("%w: %q", ErrUnknownEffect, effect.Kind)
	}
	return next, nil
}

func findEmail(state game.GameState, emailID string) (int, error) {
	for i, e := range state.Inbox {
		if e.ID == emailID {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownEmail, emailID)
}
