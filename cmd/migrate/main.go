package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/squaredcircle/booker/booker"
	"github.com/squaredcircle/booker/booker/database"
	"github.com/squaredcircle/booker/booker/logger"
	"github.com/squaredcircle/booker/booker/migration"
)

func main() {
	slog.SetDefault(slog.New(logger.NewHandler()))

	configPath := flag.String("config", "config.toml", "path to config")
	mongoURI := flag.String("mongo-uri", "mongodb://localhost:27017", "legacy mongo connection string")
	mongoDB := flag.String("mongo-db", "wrestling", "legacy mongo database name")
	collection := flag.String("collection", "saves", "legacy mongo collection name")
	flag.Parse()

	cfg, err := booker.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed", slog.Any("error", err))
		os.Exit(-1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema", slog.Any("error", err))
		os.Exit(-1)
	}

	migrator := migration.NewMigrator(db.BunDB(), *mongoURI, *mongoDB)
	migrator.SetCollection(*collection)

	if err := migrator.MigrateAll(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(-1)
	}

	stats := migrator.Stats()
	slog.Info("Migration completed successfully",
		slog.Int("imported", stats.Imported),
		slog.Int("skipped", stats.Skipped))
}
