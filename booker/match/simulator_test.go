package match

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/squaredcircle/booker/booker/game"
)

func testWrestlers() (game.Wrestler, game.Wrestler) {
	player := game.Wrestler{ID: "p", Name: "Player", Wrestling: 90, Strength: 85, Speed: 80}
	opponent := game.Wrestler{ID: "o", Name: "Opponent", Wrestling: 70, Strength: 70, Speed: 70}
	return player, opponent
}

func TestNewSimulator_MissingCombatant(t *testing.T) {
	player, _ := testWrestlers()
	if _, err := NewSimulator(DefaultConfig(), rand.New(rand.NewSource(1)), player, game.Wrestler{}); !errors.Is(err, ErrNoCombatant) {
		t.Errorf("err = %v, want ErrNoCombatant", err)
	}
	if _, err := NewSimulator(DefaultConfig(), rand.New(rand.NewSource(1)), game.Wrestler{}, player); !errors.Is(err, ErrNoCombatant) {
		t.Errorf("err = %v, want ErrNoCombatant", err)
	}
}

func TestExecuteAction_GateBlockedCostsNothing(t *testing.T) {
	player, opponent := testWrestlers()
	sim, err := NewSimulator(DefaultConfig(), rand.New(rand.NewSource(1)), player, opponent)
	if err != nil {
		t.Fatal(err)
	}

	finisher, _ := ActionByID("finisher")
	turn, err := sim.ExecuteAction(finisher)
	if err != nil {
		t.Fatal(err)
	}

	if !turn.Player.Blocked {
		t.Error("finisher at 50 momentum should be blocked")
	}
	if turn.Opponent != nil {
		t.Error("blocked action must not trigger an opponent turn")
	}
	ph, oh := sim.Health()
	if ph != 100 || oh != 100 {
		t.Errorf("health = %d/%d, want untouched", ph, oh)
	}
	pm, _ := sim.Momentum()
	if pm != 50 {
		t.Errorf("momentum = %d, want unchanged 50", pm)
	}
}

func TestExecuteAction_RunsToCompletion(t *testing.T) {
	player, opponent := testWrestlers()
	sim, err := NewSimulator(DefaultConfig(), rand.New(rand.NewSource(42)), player, opponent)
	if err != nil {
		t.Fatal(err)
	}

	strike, _ := ActionByID("strike")
	var last Turn
	for i := 0; i < 200; i++ {
		turn, err := sim.ExecuteAction(strike)
		if err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
		last = turn
		if turn.Finished {
			break
		}
	}

	if !last.Finished {
		t.Fatal("match never finished in 200 turns")
	}
	if last.Winner != "p" && last.Winner != "o" {
		t.Errorf("winner = %q", last.Winner)
	}
	ph, oh := sim.Health()
	if ph != 0 && oh != 0 {
		t.Errorf("health = %d/%d, the loser must be at exactly zero", ph, oh)
	}
	if sim.Phase() != PhaseFinished {
		t.Errorf("phase = %s, want finished", sim.Phase())
	}

	if _, err := sim.ExecuteAction(strike); !errors.Is(err, ErrMatchOver) {
		t.Errorf("post-match action err = %v, want ErrMatchOver", err)
	}
}

func TestCommentary_Bounded(t *testing.T) {
	player, opponent := testWrestlers()
	cfg := DefaultConfig()
	sim, err := NewSimulator(cfg, rand.New(rand.NewSource(7)), player, opponent)
	if err != nil {
		t.Fatal(err)
	}

	strike, _ := ActionByID("strike")
	for i := 0; i < 10; i++ {
		if turn, err := sim.ExecuteAction(strike); err != nil || turn.Finished {
			break
		}
	}

	if got := len(sim.Commentary()); got > cfg.LogBound {
		t.Errorf("commentary length = %d, bound is %d", got, cfg.LogBound)
	}
}

func TestExecuteAction_Deterministic(t *testing.T) {
	player, opponent := testWrestlers()
	strike, _ := ActionByID("strike")

	run := func(seed int64) []string {
		sim, err := NewSimulator(DefaultConfig(), rand.New(rand.NewSource(seed)), player, opponent)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 5; i++ {
			if turn, err := sim.ExecuteAction(strike); err != nil || turn.Finished {
				break
			}
		}
		return sim.Commentary()
	}

	first := run(99)
	second := run(99)
	if len(first) != len(second) {
		t.Fatalf("runs diverged: %d vs %d lines", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line %d differs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestApplyCareer(t *testing.T) {
	player, opponent := testWrestlers()

	tests := []struct {
		name         string
		winner       string
		startMom     int
		wantWins     int
		wantLosses   int
		wantMomentum int
	}{
		{name: "win", winner: "p", startMom: 50, wantWins: 1, wantMomentum: 70},
		{name: "loss", winner: "o", startMom: 50, wantLosses: 1, wantMomentum: 40},
		{name: "win clamped", winner: "p", startMom: 95, wantWins: 1, wantMomentum: 100},
		{name: "loss clamped", winner: "o", startMom: 5, wantLosses: 1, wantMomentum: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := NewSimulator(DefaultConfig(), rand.New(rand.NewSource(1)), player, opponent)
			if err != nil {
				t.Fatal(err)
			}
			sim.winner = tt.winner
			sim.phase = PhaseFinished

			stats := &game.BeAProStats{CurrentMomentum: tt.startMom}
			sim.ApplyCareer(stats)

			if stats.Wins != tt.wantWins || stats.Losses != tt.wantLosses {
				t.Errorf("record = %d-%d, want %d-%d", stats.Wins, stats.Losses, tt.wantWins, tt.wantLosses)
			}
			if stats.CurrentMomentum != tt.wantMomentum {
				t.Errorf("momentum = %d, want %d", stats.CurrentMomentum, tt.wantMomentum)
			}
		})
	}

	t.Run("unfinished match is a no-op", func(t *testing.T) {
		sim, _ := NewSimulator(DefaultConfig(), rand.New(rand.NewSource(1)), player, opponent)
		stats := &game.BeAProStats{CurrentMomentum: 50}
		sim.ApplyCareer(stats)
		if stats.Wins != 0 || stats.Losses != 0 || stats.CurrentMomentum != 50 {
			t.Errorf("stats mutated: %+v", stats)
		}
	})
}
