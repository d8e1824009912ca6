package game

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "below zero", in: -10, want: 0},
		{name: "zero", in: 0, want: 0},
		{name: "in range", in: 55, want: 55},
		{name: "hundred", in: 100, want: 100},
		{name: "above hundred", in: 140, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.in); got != tt.want {
				t.Errorf("Clamp(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestWrestler_Normalize(t *testing.T) {
	w := Wrestler{
		Wrestling:  120,
		Momentum:   -30,
		Fatigue:    250,
		Popularity: 101,
		InjuryDays: -2,
	}
	w.Normalize()

	if w.Wrestling != 100 {
		t.Errorf("Wrestling = %d, want 100", w.Wrestling)
	}
	if w.Momentum != 0 {
		t.Errorf("Momentum = %d, want 0", w.Momentum)
	}
	if w.Fatigue != 100 {
		t.Errorf("Fatigue = %d, want 100", w.Fatigue)
	}
	if w.Popularity != 100 {
		t.Errorf("Popularity = %d, want 100", w.Popularity)
	}
	if w.InjuryDays != 0 {
		t.Errorf("InjuryDays = %d, want 0", w.InjuryDays)
	}
}

func TestGameState_Clone_Independence(t *testing.T) {
	state := NewGameState(Setup{
		PlayerName: "Tester",
		CompanyID:  "wwe",
		Mode:       ModeBooker,
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Wrestlers: []Wrestler{
			{ID: "a", Name: "A", Moveset: []string{"Suplex"}, Heat: map[string]int{"b": 5}},
		},
		Companies: []Company{
			{ID: "wwe", Name: "WWE", Money: 1000, Roster: []string{"a"}},
		},
	})
	state.Inbox = append(state.Inbox, Email{ID: "e1", Subject: "Hello"})

	clone := state.Clone()

	// Mutate the clone every way that shares backing storage if the copy
	// is shallow.
	w := clone.Wrestlers["a"]
	w.Name = "Changed"
	w.Moveset[0] = "Changed"
	w.Heat["b"] = 99
	clone.Wrestlers["a"] = w
	c := clone.Companies["wwe"]
	c.Roster[0] = "changed"
	clone.Companies["wwe"] = c
	clone.Inbox[0].Read = true

	if state.Wrestlers["a"].Name != "A" {
		t.Error("clone shares wrestler struct with original")
	}
	if state.Wrestlers["a"].Moveset[0] != "Suplex" {
		t.Error("clone shares moveset slice with original")
	}
	if state.Wrestlers["a"].Heat["b"] != 5 {
		t.Error("clone shares heat map with original")
	}
	if state.Companies["wwe"].Roster[0] != "a" {
		t.Error("clone shares roster slice with original")
	}
	if state.Inbox[0].Read {
		t.Error("clone shares inbox with original")
	}
}

func TestNewGameState_Modes(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	companies := []Company{{ID: "wwe", Name: "WWE", Money: 555}}

	t.Run("booker inherits company money", func(t *testing.T) {
		state := NewGameState(Setup{
			PlayerName: "Booker",
			CompanyID:  "wwe",
			Mode:       ModeBooker,
			StartDate:  start,
			Companies:  companies,
		})
		if state.Money != 555 {
			t.Errorf("Money = %d, want 555", state.Money)
		}
		if state.PlayerCompany != "wwe" {
			t.Errorf("PlayerCompany = %q, want wwe", state.PlayerCompany)
		}
		if state.BeAPro != nil {
			t.Error("booker mode should not carry career stats")
		}
	})

	t.Run("wrestler gets rookie and career stats", func(t *testing.T) {
		state := NewGameState(Setup{
			PlayerName: "Rookie",
			CompanyID:  "wwe",
			Mode:       ModeWrestler,
			StartDate:  start,
			Companies:  companies,
		})
		if state.Money != 100_000 {
			t.Errorf("Money = %d, want 100000", state.Money)
		}
		if state.PlayerWrestler != PlayerWrestlerID {
			t.Errorf("PlayerWrestler = %q, want %q", state.PlayerWrestler, PlayerWrestlerID)
		}
		rookie, ok := state.Wrestlers[PlayerWrestlerID]
		if !ok {
			t.Fatal("rookie wrestler missing from roster")
		}
		if rookie.Name != "Rookie" || rookie.Momentum != 50 {
			t.Errorf("rookie = %+v", rookie)
		}
		if state.BeAPro == nil || state.BeAPro.CurrentHealth != 100 || state.BeAPro.CurrentMomentum != 50 {
			t.Errorf("BeAPro = %+v", state.BeAPro)
		}
	})
}

func TestGameState_UpcomingEvents(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	state := GameState{
		CurrentDate: now,
		Calendar: []CalendarEvent{
			{ID: "past", Date: now.AddDate(0, 0, -1)},
			{ID: "later", Date: now.AddDate(0, 0, 5)},
			{ID: "today", Date: now},
			{ID: "soon", Date: now.AddDate(0, 0, 1)},
		},
	}

	got := state.UpcomingEvents(0)
	ids := make([]string, len(got))
	for i, ev := range got {
		ids[i] = ev.ID
	}
	want := []string{"soon", "later"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("UpcomingEvents ids = %v, want %v", ids, want)
	}

	if got := state.UpcomingEvents(1); len(got) != 1 || got[0].ID != "soon" {
		t.Errorf("UpcomingEvents(1) = %v", got)
	}
}

func TestGameState_Bundle(t *testing.T) {
	now := time.Now()
	state := GameState{
		PlayerName:    "Vince",
		PlayerCompany: "wwe",
		Money:         42,
		Mode:          ModeBooker,
		Companies:     map[string]Company{"wwe": {ID: "wwe"}},
	}

	bundle := state.Bundle(now)
	if bundle.Name != "Vince's Empire" {
		t.Errorf("Name = %q", bundle.Name)
	}
	if !bundle.Date.Equal(now) || bundle.Money != 42 || bundle.PlayerCompany != "wwe" {
		t.Errorf("bundle = %+v", bundle)
	}

	state.Mode = ModeWrestler
	if got := state.Bundle(now).Name; got != "Vince's Career" {
		t.Errorf("Name = %q, want Vince's Career", got)
	}
}

func TestGameState_JSONRoundTrip(t *testing.T) {
	state := NewGameState(Setup{
		PlayerName: "RT",
		CompanyID:  "wwe",
		Mode:       ModeWrestler,
		StartDate:  time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		Wrestlers:  []Wrestler{{ID: "a", Name: "A", Heat: map[string]int{}}},
		Companies:  []Company{{ID: "wwe", Name: "WWE"}},
	})
	state.Inbox = []Email{{
		ID:      "e1",
		Subject: "Offer",
		Choices: []EmailChoice{{Text: "Take it", Effect: Effect{Kind: EffectAdjustMoney, Amount: 100}}},
	}}

	raw, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded GameState
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.PlayerWrestler != PlayerWrestlerID {
		t.Errorf("PlayerWrestler = %q", decoded.PlayerWrestler)
	}
	if decoded.Inbox[0].Choices[0].Effect.Kind != EffectAdjustMoney {
		t.Errorf("effect kind lost in round trip: %+v", decoded.Inbox[0].Choices[0])
	}
	if decoded.BeAPro == nil || decoded.BeAPro.CurrentHealth != 100 {
		t.Errorf("career stats lost in round trip: %+v", decoded.BeAPro)
	}
}
