package migration

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/squaredcircle/booker/booker/game"
)

func legacyDoc(t *testing.T, slot int) legacySave {
	t.Helper()

	state := game.GameState{
		PlayerName:    "Importer",
		PlayerCompany: "wwe",
		Money:         777,
		Mode:          game.ModeBooker,
		Companies: map[string]game.Company{
			"wwe": {ID: "wwe", Name: "WWE"},
		},
	}
	raw, err := json.Marshal(state)
	if err != nil {
		t.Fatal(err)
	}

	return legacySave{
		Slot:       slot,
		Name:       "Old Save",
		Date:       time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
		PlayerName: "Importer",
		Money:      777,
		GameState:  string(raw),
	}
}

func TestConvertLegacySave(t *testing.T) {
	row, err := convertLegacySave(legacyDoc(t, 2))
	if err != nil {
		t.Fatal(err)
	}

	if row.Slot != 2 || row.Name != "Old Save" || row.Money != 777 {
		t.Errorf("row = %+v", row)
	}

	var state game.GameState
	if err := json.Unmarshal(row.State, &state); err != nil {
		t.Fatalf("re-encoded state does not decode: %v", err)
	}
	if state.PlayerName != "Importer" {
		t.Errorf("state = %+v", state)
	}

	// Companies fall back to the embedded state when the legacy export
	// lacks a separate blob.
	var companies map[string]game.Company
	if err := json.Unmarshal(row.Companies, &companies); err != nil {
		t.Fatal(err)
	}
	if companies["wwe"].Name != "WWE" {
		t.Errorf("companies = %+v", companies)
	}
}

func TestConvertLegacySave_Rejects(t *testing.T) {
	t.Run("slot out of range", func(t *testing.T) {
		if _, err := convertLegacySave(legacyDoc(t, 9)); err == nil {
			t.Error("slot 9 should be rejected")
		}
	})

	t.Run("undecodable state", func(t *testing.T) {
		doc := legacyDoc(t, 1)
		doc.GameState = `{"money": [broken`
		if _, err := convertLegacySave(doc); err == nil {
			t.Error("corrupt state should be rejected")
		}
	})

	t.Run("undecodable companies", func(t *testing.T) {
		doc := legacyDoc(t, 1)
		doc.Companies = `not json`
		if _, err := convertLegacySave(doc); err == nil {
			t.Error("corrupt companies should be rejected")
		}
	})
}

func TestConvertLegacySave_Defaults(t *testing.T) {
	doc := legacyDoc(t, 3)
	doc.Name = ""
	doc.Date = time.Time{}

	row, err := convertLegacySave(doc)
	if err != nil {
		t.Fatal(err)
	}
	if row.Name != "Imported Save 3" {
		t.Errorf("Name = %q", row.Name)
	}
	if row.SavedAt.IsZero() {
		t.Error("SavedAt not defaulted")
	}
}
