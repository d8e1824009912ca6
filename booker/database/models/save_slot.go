package models

import (
	"encoding/json"
	"time"

	"github.com/uptrace/bun"
)

// SaveSlot is one named save slot. The full game state rides along as an
// opaque jsonb blob; the summary columns exist so the load screen can
// list slots without decoding whole saves.
type SaveSlot struct {
	bun.BaseModel `bun:"table:save_slots,alias:ss"`

	Slot          int             `bun:"slot,pk"`
	Name          string          `bun:"name,notnull"`
	SavedAt       time.Time       `bun:"saved_at,notnull"`
	PlayerName    string          `bun:"player_name,notnull"`
	PlayerCompany string          `bun:"player_company"`
	Money         int64           `bun:"money,notnull,default:0"`
	State         json.RawMessage `bun:"state,type:jsonb,notnull"`
	Companies     json.RawMessage `bun:"companies,type:jsonb"`

	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
