package repositories

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/squaredcircle/booker/booker/database/models"
	"github.com/squaredcircle/booker/booker/game"
)

func TestCheckSlot(t *testing.T) {
	tests := []struct {
		name    string
		slot    int
		wantErr bool
	}{
		{name: "below range", slot: 0, wantErr: true},
		{name: "min", slot: 1},
		{name: "max", slot: 5},
		{name: "above range", slot: 6, wantErr: true},
		{name: "negative", slot: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSlot(tt.slot)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkSlot(%d) = %v, wantErr %v", tt.slot, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrBadSlot) {
				t.Errorf("err = %v, want ErrBadSlot", err)
			}
		})
	}
}

func TestEncodeDecodeSave_RoundTrip(t *testing.T) {
	save := &game.SaveGame{
		Name:          "Tester's Empire",
		Date:          time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		PlayerName:    "Tester",
		PlayerCompany: "wwe",
		Money:         1_234_567,
		State: game.GameState{
			PlayerName:    "Tester",
			PlayerCompany: "wwe",
			Money:         1_234_567,
			Mode:          game.ModeBooker,
			Wrestlers: map[string]game.Wrestler{
				"a": {ID: "a", Name: "A", Heat: map[string]int{}},
			},
			Companies: map[string]game.Company{
				"wwe": {ID: "wwe", Name: "WWE"},
			},
		},
		Companies: map[string]game.Company{
			"wwe": {ID: "wwe", Name: "WWE"},
		},
	}

	row, err := encodeSave(3, save)
	if err != nil {
		t.Fatal(err)
	}
	if row.Slot != 3 || row.Name != save.Name || row.Money != save.Money {
		t.Errorf("row = %+v", row)
	}

	decoded, err := decodeSave(row)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.PlayerName != "Tester" || decoded.State.Money != 1_234_567 {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.State.Wrestlers["a"].Name != "A" {
		t.Error("wrestler lost in round trip")
	}
	if decoded.Companies["wwe"].Name != "WWE" {
		t.Error("companies lost in round trip")
	}
}

func TestDecodeSave_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		row  *models.SaveSlot
	}{
		{
			name: "garbage state",
			row: &models.SaveSlot{
				Slot:  1,
				State: json.RawMessage(`{"money": "not-a-number"`),
			},
		},
		{
			name: "garbage companies",
			row: &models.SaveSlot{
				Slot:      2,
				State:     json.RawMessage(`{}`),
				Companies: json.RawMessage(`[broken`),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeSave(tt.row)
			if !errors.Is(err, ErrCorruptSave) {
				t.Errorf("err = %v, want ErrCorruptSave", err)
			}
		})
	}
}
