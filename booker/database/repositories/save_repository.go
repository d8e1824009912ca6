package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/squaredcircle/booker/booker/database/models"
	"github.com/squaredcircle/booker/booker/game"
	"github.com/squaredcircle/booker/booker/logger"
	"github.com/uptrace/bun"
)

const (
	// MinSlot and MaxSlot bound the named save slots.
	MinSlot = 1
	MaxSlot = 5
)

var (
	// ErrNoSave means the slot is empty; it is a normal outcome, not a
	// failure path.
	ErrNoSave = errors.New("save: slot is empty")
	// ErrCorruptSave means the stored blob did not decode into a game
	// state. Saves from incompatible engine versions land here instead
	// of being silently coerced.
	ErrCorruptSave = errors.New("save: corrupt data")
	// ErrBadSlot rejects slot numbers outside 1..5.
	ErrBadSlot = errors.New("save: slot out of range")
)

// SlotSummary is the listing row for the load screen.
type SlotSummary struct {
	Slot          int
	Name          string
	SavedAt       time.Time
	PlayerName    string
	PlayerCompany string
	Money         int64
}

type SaveRepository interface {
	Save(ctx context.Context, slot int, save *game.SaveGame) error
	Load(ctx context.Context, slot int) (*game.SaveGame, error)
	List(ctx context.Context) ([]SlotSummary, error)
	Delete(ctx context.Context, slot int) error
}

type saveRepository struct {
	db *bun.DB
}

func NewSaveRepository(db *bun.DB) SaveRepository {
	return &saveRepository{db: db}
}

func (r *saveRepository) Save(ctx context.Context, slot int, save *game.SaveGame) error {
	if err := checkSlot(slot); err != nil {
		return err
	}

	row, err := encodeSave(slot, save)
	if err != nil {
		return err
	}

	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now

	start := time.Now()
	_, err = r.db.NewInsert().
		Model(row).
		On("CONFLICT (slot) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("saved_at = EXCLUDED.saved_at").
		Set("player_name = EXCLUDED.player_name").
		Set("player_company = EXCLUDED.player_company").
		Set("money = EXCLUDED.money").
		Set("state = EXCLUDED.state").
		Set("companies = EXCLUDED.companies").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	logger.LogQuery("write", slot, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to write save slot %d: %w", slot, err)
	}
	return nil
}

func (r *saveRepository) Load(ctx context.Context, slot int) (*game.SaveGame, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}

	row := new(models.SaveSlot)
	start := time.Now()
	err := r.db.NewSelect().
		Model(row).
		Where("slot = ?", slot).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSave
		}
		logger.LogQuery("read", slot, time.Since(start), err)
		return nil, fmt.Errorf("failed to read save slot %d: %w", slot, err)
	}
	logger.LogQuery("read", slot, time.Since(start), nil)

	return decodeSave(row)
}

func (r *saveRepository) List(ctx context.Context) ([]SlotSummary, error) {
	var rows []*models.SaveSlot
	err := r.db.NewSelect().
		Model(&rows).
		Column("slot", "name", "saved_at", "player_name", "player_company", "money").
		Order("slot ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list save slots: %w", err)
	}

	out := make([]SlotSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, SlotSummary{
			Slot:          row.Slot,
			Name:          row.Name,
			SavedAt:       row.SavedAt,
			PlayerName:    row.PlayerName,
			PlayerCompany: row.PlayerCompany,
			Money:         row.Money,
		})
	}
	return out, nil
}

func (r *saveRepository) Delete(ctx context.Context, slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	start := time.Now()
	_, err := r.db.NewDelete().
		Model((*models.SaveSlot)(nil)).
		Where("slot = ?", slot).
		Exec(ctx)
	logger.LogQuery("delete", slot, time.Since(start), err)
	return err
}

func checkSlot(slot int) error {
	if slot < MinSlot || slot > MaxSlot {
		return fmt.Errorf("%w: %d", ErrBadSlot, slot)
	}
	return nil
}

// encodeSave flattens the bundle into a slot row.
func encodeSave(slot int, save *game.SaveGame) (*models.SaveSlot, error) {
	state, err := json.Marshal(save.State)
	if err != nil {
		return nil, fmt.Errorf("failed to encode game state: %w", err)
	}
	companies, err := json.Marshal(save.Companies)
	if err != nil {
		return nil, fmt.Errorf("failed to encode companies: %w", err)
	}
	return &models.SaveSlot{
		Slot:          slot,
		Name:          save.Name,
		SavedAt:       save.Date,
		PlayerName:    save.PlayerName,
		PlayerCompany: save.PlayerCompany,
		Money:         save.Money,
		State:         state,
		Companies:     companies,
	}, nil
}

// decodeSave rebuilds the bundle, rejecting undecodable blobs as corrupt
// rather than propagating a partially-typed state.
func decodeSave(row *models.SaveSlot) (*game.SaveGame, error) {
	var state game.GameState
	if err := json.Unmarshal(row.State, &state); err != nil {
		return nil, fmt.Errorf("%w: slot %d: %v", ErrCorruptSave, row.Slot, err)
	}
	companies := map[string]game.Company{}
	if len(row.Companies) > 0 {
		if err := json.Unmarshal(row.Companies, &companies); err != nil {
			return nil, fmt.Errorf("%w: slot %d: %v", ErrCorruptSave, row.Slot, err)
		}
	}
	return &game.SaveGame{
		Name:          row.Name,
		Date:          row.SavedAt,
		State:         state,
		PlayerName:    row.PlayerName,
		PlayerCompany: row.PlayerCompany,
		Money:         row.Money,
		Companies:     companies,
	}, nil
}
