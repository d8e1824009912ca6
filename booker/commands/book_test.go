package commands

import (
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/squaredcircle/booker/booker/data"
)

func TestBookStipulationChoices(t *testing.T) {
	var opt discord.ApplicationCommandOptionString
	found := false
	for _, o := range Book.Options {
		if s, ok := o.(discord.ApplicationCommandOptionString); ok && s.Name == "type" {
			opt = s
			found = true
		}
	}
	if !found {
		t.Fatal("book command has no type option")
	}

	if len(opt.Choices) != len(data.MatchTypes) {
		t.Fatalf("got %d stipulation choices, want %d", len(opt.Choices), len(data.MatchTypes))
	}
	for i, c := range opt.Choices {
		if c.Name != data.MatchTypes[i] || c.Value != data.MatchTypes[i] {
			t.Errorf("choice %d = %q/%q, want %q", i, c.Name, c.Value, data.MatchTypes[i])
		}
	}

	// Discord rejects more than 25 choices per option.
	if len(opt.Choices) > 25 {
		t.Errorf("%d choices exceeds the API limit", len(opt.Choices))
	}
}
