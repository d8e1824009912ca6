package migration

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/squaredcircle/booker/booker/database/models"
	"github.com/squaredcircle/booker/booker/database/repositories"
	"github.com/squaredcircle/booker/booker/game"
	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// legacySave mirrors the document layout the old browser build synced to
// Mongo: one document per slot with the whole state as a JSON string.
type legacySave struct {
	Slot          int       `bson:"slot"`
	Name          string    `bson:"name"`
	Date          time.Time `bson:"date"`
	PlayerName    string    `bson:"playerName"`
	PlayerCompany string    `bson:"playerCompany"`
	Money         int64     `bson:"money"`
	GameState     string    `bson:"gameState"`
	Companies     string    `bson:"companies"`
}

// Stats counts the migration outcome per slot.
type Stats struct {
	Found     int
	Imported  int
	Skipped   int
	StartTime time.Time
}

// Migrator copies legacy browser saves from Mongo into the save_slots
// table. Undecodable documents are skipped and counted, never imported
// half-parsed.
type Migrator struct {
	pgDB     *bun.DB
	mongoURI string
	dbName   string
	collName string
	stats    Stats
}

func NewMigrator(pgDB *bun.DB, mongoURI, dbName string) *Migrator {
	return &Migrator{
		pgDB:     pgDB,
		mongoURI: mongoURI,
		dbName:   dbName,
		collName: "saves",
		stats:    Stats{StartTime: time.Now()},
	}
}

// SetCollection overrides the source collection name.
func (m *Migrator) SetCollection(name string) {
	if name != "" {
		m.collName = name
	}
}

// MigrateAll imports every legacy save document into Postgres.
func (m *Migrator) MigrateAll(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.mongoURI))
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	coll := client.Database(m.dbName).Collection(m.collName)
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query legacy saves: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc legacySave
		if err := cursor.Decode(&doc); err != nil {
			m.stats.Skipped++
			slog.Warn("Skipping undecodable legacy save",
				slog.String("type", "db"),
				slog.Any("error", err))
			continue
		}
		m.stats.Found++

		row, err := convertLegacySave(doc)
		if err != nil {
			m.stats.Skipped++
			slog.Warn("Skipping legacy save",
				slog.String("type", "db"),
				slog.Int("slot", doc.Slot),
				slog.Any("error", err))
			continue
		}

		if err := m.upsert(ctx, row); err != nil {
			return err
		}
		m.stats.Imported++
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("legacy save cursor failed: %w", err)
	}

	slog.Info("Legacy save migration finished",
		slog.String("type", "db"),
		slog.Int("found", m.stats.Found),
		slog.Int("imported", m.stats.Imported),
		slog.Int("skipped", m.stats.Skipped),
		slog.Duration("took", time.Since(m.stats.StartTime)))
	return nil
}

// Stats returns the migration counters.
func (m *Migrator) Stats() Stats {
	return m.stats
}

func (m *Migrator) upsert(ctx context.Context, row *models.SaveSlot) error {
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now

	_, err := m.pgDB.NewInsert().
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
	if err != nil {
		return fmt.Errorf("failed to import save slot %d: %w", row.Slot, err)
	}
	return nil
}

// convertLegacySave validates a legacy document and re-encodes it as a
// slot row. The state must round-trip through the current GameState
// shape; anything else is a corrupt export.
func convertLegacySave(doc legacySave) (*models.SaveSlot, error) {
	if doc.Slot < repositories.MinSlot || doc.Slot > repositories.MaxSlot {
		return nil, fmt.Errorf("slot %d out of range", doc.Slot)
	}

	var state game.GameState
	if err := json.Unmarshal([]byte(doc.GameState), &state); err != nil {
		return nil, fmt.Errorf("state does not decode: %w", err)
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}

	companies := map[string]game.Company{}
	if doc.Companies != "" {
		if err := json.Unmarshal([]byte(doc.Companies), &companies); err != nil {
			return nil, fmt.Errorf("companies do not decode: %w", err)
		}
	} else {
		companies = state.Companies
	}
	companiesJSON, err := json.Marshal(companies)
	if err != nil {
		return nil, err
	}

	name := doc.Name
	if name == "" {
		name = fmt.Sprintf("Imported Save %d", doc.Slot)
	}
	savedAt := doc.Date
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	return &models.SaveSlot{
		Slot:          doc.Slot,
		Name:          name,
		SavedAt:       savedAt,
		PlayerName:    doc.PlayerName,
		PlayerCompany: doc.PlayerCompany,
		Money:         doc.Money,
		State:         stateJSON,
		Companies:     companiesJSON,
	}, nil
}
