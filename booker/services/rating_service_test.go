package services

import (
	"context"
	"math/rand"
	"testing"

	"github.com/squaredcircle/booker/booker/engine"
	"github.com/squaredcircle/booker/booker/game"
)

func TestRatingService_MatchRating(t *testing.T) {
	s := NewRatingService(engine.New(rand.New(rand.NewSource(1))))
	roster := map[string]game.Wrestler{
		"a": {ID: "a", Wrestling: 90, Charisma: 90, Entertainment: 90},
		"b": {ID: "b", Wrestling: 60, Charisma: 60, Entertainment: 60},
	}
	m := game.Match{Type: "Singles Match", Participants: []string{"a", "b"}}

	first := s.MatchRating(m, roster)
	if first != 80 {
		t.Errorf("rating = %d, want 80", first)
	}

	// The cached value survives a roster change until invalidation.
	roster["a"] = game.Wrestler{ID: "a"}
	if got := s.MatchRating(m, roster); got != first {
		t.Errorf("cached rating = %d, want %d", got, first)
	}

	s.InvalidateCache()
	if got := s.MatchRating(m, roster); got == first {
		t.Error("rating unchanged after invalidation")
	}
}

func TestRatingService_ShowRating(t *testing.T) {
	s := NewRatingService(engine.New(rand.New(rand.NewSource(1))))
	roster := map[string]game.Wrestler{
		"a": {ID: "a", Wrestling: 90, Charisma: 90, Entertainment: 90},
		"b": {ID: "b", Wrestling: 90, Charisma: 90, Entertainment: 90},
	}

	show := game.Show{
		Matches: []game.Match{
			{Type: "Singles Match", Participants: []string{"a", "b"}},
			{Type: "Championship Match", Participants: []string{"a", "b"}},
		},
	}

	got, err := s.ShowRating(context.Background(), show, roster)
	if err != nil {
		t.Fatal(err)
	}
	// Matches rate 86 and 96, averaging 91.
	if got != 91 {
		t.Errorf("show rating = %d, want 91", got)
	}

	empty, err := s.ShowRating(context.Background(), game.Show{}, roster)
	if err != nil || empty != 0 {
		t.Errorf("empty show = %d, %v; want 0, nil", empty, err)
	}
}
