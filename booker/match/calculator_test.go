package match

import (
	"testing"

	"github.com/squaredcircle/booker/booker/game"
)

func TestMomentumBonus(t *testing.T) {
	tests := []struct {
		name     string
		momentum int
		want     int
	}{
		{name: "low", momentum: 0, want: 0},
		{name: "just below mid", momentum: 39, want: 0},
		{name: "mid threshold", momentum: 40, want: 10},
		{name: "just below high", momentum: 69, want: 10},
		{name: "high threshold", momentum: 70, want: 20},
		{name: "maxed", momentum: 100, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := momentumBonus(tt.momentum); got != tt.want {
				t.Errorf("momentumBonus(%d) = %d, want %d", tt.momentum, got, tt.want)
			}
		})
	}
}

func TestSuccessChance(t *testing.T) {
	w := game.Wrestler{Wrestling: 90, Strength: 85, Speed: 80}
	action := game.MatchAction{Difficulty: 20}

	// (90+85+80)/3 = 85, momentum 75 adds 20, difficulty removes 20.
	if got := successChance(w, action, 75); got != 85 {
		t.Errorf("successChance = %v, want 85", got)
	}

	// No bonus below 40 momentum.
	if got := successChance(w, action, 10); got != 65 {
		t.Errorf("successChance = %v, want 65", got)
	}
}

func TestOpponentChance(t *testing.T) {
	w := game.Wrestler{Wrestling: 80, Strength: 60}
	if got := opponentChance(w); got != 70 {
		t.Errorf("opponentChance = %v, want 70", got)
	}
}

func TestAvailableActions(t *testing.T) {
	tests := []struct {
		name     string
		momentum int
		wantIDs  []string
	}{
		{name: "no momentum", momentum: 0, wantIDs: []string{"strike", "grapple"}},
		{name: "aerial unlocked", momentum: 30, wantIDs: []string{"strike", "grapple", "aerial"}},
		{name: "signature unlocked", momentum: 50, wantIDs: []string{"strike", "grapple", "aerial", "signature"}},
		{name: "everything", momentum: 75, wantIDs: []string{"strike", "grapple", "aerial", "signature", "finisher"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := availableActions(DefaultActions, tt.momentum)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d actions, want %d", len(got), len(tt.wantIDs))
			}
			for i, a := range got {
				if a.ID != tt.wantIDs[i] {
					t.Errorf("action[%d] = %s, want %s", i, a.ID, tt.wantIDs[i])
				}
			}
		})
	}
}
