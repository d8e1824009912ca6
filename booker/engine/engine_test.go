package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/squaredcircle/booker/booker/data"
	"github.com/squaredcircle/booker/booker/game"
)

func testRoster() map[string]game.Wrestler {
	return map[string]game.Wrestler{
		"a": {ID: "a", Name: "A", Wrestling: 90, Charisma: 90, Entertainment: 90},
		"b": {ID: "b", Name: "B", Wrestling: 60, Charisma: 60, Entertainment: 60},
		"c": {ID: "c", Name: "C", Wrestling: 85, Charisma: 85, Entertainment: 80},
	}
}

func TestMatchRating(t *testing.T) {
	e := New(rand.New(rand.NewSource(1)))
	roster := testRoster()

	tests := []struct {
		name  string
		match game.Match
		want  int
	}{
		{
			// 50 + 270/15 + 180/15 = 80
			name:  "singles",
			match: game.Match{Type: "Singles Match", Participants: []string{"a", "b"}},
			want:  80,
		},
		{
			name:  "championship bonus",
			match: game.Match{Type: "Championship Match", Participants: []string{"a", "b"}},
			want:  90,
		},
		{
			name:  "cage bonus",
			match: game.Match{Type: "Steel Cage Match", Participants: []string{"a", "b"}},
			want:  88,
		},
		{
			name:  "tlc bonus",
			match: game.Match{Type: "TLC Match", Participants: []string{"a", "b"}},
			want:  92,
		},
		{
			name:  "missing participant skipped",
			match: game.Match{Type: "Singles Match", Participants: []string{"a", "ghost"}},
			want:  68,
		},
		{
			// 50 + 250/15 + 180/15 = 78.67 rounds to 79; truncating each
			// contribution would lose a point.
			name:  "fractions accumulate before rounding",
			match: game.Match{Type: "Singles Match", Participants: []string{"c", "b"}},
			want:  79,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.MatchRating(tt.match, roster); got != tt.want {
				t.Errorf("MatchRating = %d, want %d", got, tt.want)
			}
		})
	}

	t.Run("clamped at 100", func(t *testing.T) {
		stacked := map[string]game.Wrestler{}
		ids := []string{"w1", "w2", "w3", "w4", "w5", "w6"}
		for _, id := range ids {
			stacked[id] = game.Wrestler{ID: id, Wrestling: 100, Charisma: 100, Entertainment: 100}
		}
		m := game.Match{Type: "TLC Championship Match", Participants: ids}
		if got := e.MatchRating(m, stacked); got != 100 {
			t.Errorf("MatchRating = %d, want clamped 100", got)
		}
	})
}

func TestStoryline(t *testing.T) {
	e := New(rand.New(rand.NewSource(3)))

	line := e.Storyline("Roman Reigns", "Cody Rhodes")
	if !strings.Contains(line, "Roman Reigns") || !strings.Contains(line, "Cody Rhodes") {
		t.Errorf("storyline %q does not name both wrestlers", line)
	}
}

func TestStoryline_DrawsFromMovePool(t *testing.T) {
	e := New(rand.New(rand.NewSource(7)))

	for i := 0; i < 200; i++ {
		line := e.Storyline("A", "B")
		for _, move := range data.Moves {
			if strings.Contains(line, move) {
				return
			}
		}
	}
	t.Error("no storyline named a move from the pool")
}

func TestPopularityChange(t *testing.T) {
	e := New(rand.New(rand.NewSource(5)))

	for i := 0; i < 100; i++ {
		if got := e.PopularityChange(true); got < 2 || got > 4 {
			t.Fatalf("win change = %d, want within [2,4]", got)
		}
		if got := e.PopularityChange(false); got < -1 || got > 1 {
			t.Fatalf("loss change = %d, want within [-1,1]", got)
		}
	}
}

func TestInjuryRoll_Rate(t *testing.T) {
	e := New(rand.New(rand.NewSource(11)))

	injuries := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		if e.InjuryRoll() {
			injuries++
		}
	}

	// 5% rate; a seeded run lands close.
	if injuries < 300 || injuries > 700 {
		t.Errorf("injuries = %d out of %d, want around 500", injuries, trials)
	}
}

func TestStarterObjectives(t *testing.T) {
	e := New(rand.New(rand.NewSource(1)))

	objectives := e.StarterObjectives()
	if len(objectives) != 3 {
		t.Fatalf("got %d objectives, want 3", len(objectives))
	}

	rewards := map[string]int64{"obj-1": 50_000, "obj-2": 25_000, "obj-3": 75_000}
	for _, obj := range objectives {
		if obj.Completed {
			t.Errorf("%s starts completed", obj.ID)
		}
		if want, ok := rewards[obj.ID]; !ok || obj.Reward != want {
			t.Errorf("%s reward = %d, want %d", obj.ID, obj.Reward, want)
		}
	}
}
