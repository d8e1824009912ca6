package mailbox

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/squaredcircle/booker/booker/game"
)

func stateWithEmail(choices ...game.EmailChoice) game.GameState {
	return game.GameState{
		Money:      1_000_000,
		Reputation: 50,
		Inbox: []game.Email{{
			ID:      "email-1",
			Subject: "Test",
			Choices: choices,
		}},
	}
}

func TestGenerate(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))
	now := time.Now()

	email := g.Generate(now)
	if email.ID == "" || email.Read {
		t.Errorf("email = %+v", email)
	}
	if !email.Date.Equal(now) {
		t.Errorf("Date = %v, want %v", email.Date, now)
	}

	// Content must come from the catalog.
	found := false
	for _, tmpl := range Templates {
		if tmpl.Subject == email.Subject && tmpl.From == email.From {
			found = true
			if len(email.Choices) != len(tmpl.Choices) {
				t.Errorf("choices = %d, want %d", len(email.Choices), len(tmpl.Choices))
			}
		}
	}
	if !found {
		t.Errorf("email %q not from the template catalog", email.Subject)
	}
}

func TestMarkRead(t *testing.T) {
	state := stateWithEmail()

	next, err := MarkRead(state, "email-1")
	if err != nil {
		t.Fatal(err)
	}
	if !next.Inbox[0].Read {
		t.Error("email not marked read")
	}
	if state.Inbox[0].Read {
		t.Error("original state mutated")
	}

	// Re-reading is a no-op, not an error.
	again, err := MarkRead(next, "email-1")
	if err != nil {
		t.Fatal(err)
	}
	if !again.Inbox[0].Read {
		t.Error("read flag lost")
	}

	if _, err := MarkRead(state, "missing"); !errors.Is(err, ErrUnknownEmail) {
		t.Errorf("err = %v, want ErrUnknownEmail", err)
	}
}

func TestApplyChoice(t *testing.T) {
	tests := []struct {
		name     string
		effect   game.Effect
		wantGold int64
		wantRep  int
	}{
		{
			name:     "money gain",
			effect:   game.Effect{Kind: game.EffectAdjustMoney, Amount: 100_000},
			wantGold: 1_100_000,
			wantRep:  50,
		},
		{
			name:     "money loss",
			effect:   game.Effect{Kind: game.EffectAdjustMoney, Amount: -200_000},
			wantGold: 800_000,
			wantRep:  50,
		},
		{
			name:     "reputation gain",
			effect:   game.Effect{Kind: game.EffectAdjustReputation, Amount: 5},
			wantGold: 1_000_000,
			wantRep:  55,
		},
		{
			name:     "reputation loss",
			effect:   game.Effect{Kind: game.EffectAdjustReputation, Amount: -15},
			wantGold: 1_000_000,
			wantRep:  35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := stateWithEmail(game.EmailChoice{Text: "x", Effect: tt.effect})

			next, err := ApplyChoice(state, "email-1", 0)
			if err != nil {
				t.Fatal(err)
			}
			if next.Money != tt.wantGold {
				t.Errorf("Money = %d, want %d", next.Money, tt.wantGold)
			}
			if next.Reputation != tt.wantRep {
				t.Errorf("Reputation = %d, want %d", next.Reputation, tt.wantRep)
			}
			if state.Money != 1_000_000 || state.Reputation != 50 {
				t.Error("original state mutated")
			}
		})
	}
}

func TestApplyChoice_Errors(t *testing.T) {
	state := stateWithEmail(game.EmailChoice{Text: "x", Effect: game.Effect{Kind: game.EffectAdjustMoney}})

	if _, err := ApplyChoice(state, "missing", 0); !errors.Is(err, ErrUnknownEmail) {
		t.Errorf("err = %v, want ErrUnknownEmail", err)
	}
	if _, err := ApplyChoice(state, "email-1", 5); !errors.Is(err, ErrUnknownChoice) {
		t.Errorf("err = %v, want ErrUnknownChoice", err)
	}
	if _, err := ApplyChoice(state, "email-1", -1); !errors.Is(err, ErrUnknownChoice) {
		t.Errorf("err = %v, want ErrUnknownChoice", err)
	}

	bad := stateWithEmail(game.EmailChoice{Text: "x", Effect: game.Effect{Kind: "explode"}})
	if _, err := ApplyChoice(bad, "email-1", 0); !errors.Is(err, ErrUnknownEffect) {
		t.Errorf("err = %v, want ErrUnknownEffect", err)
	}
}
