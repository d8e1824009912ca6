package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
	"github.com/squaredcircle/booker/booker"
	"github.com/squaredcircle/booker/booker/commands"
	"github.com/squaredcircle/booker/booker/components"
	"github.com/squaredcircle/booker/booker/database"
	"github.com/squaredcircle/booker/booker/database/repositories"
	"github.com/squaredcircle/booker/booker/engine"
	"github.com/squaredcircle/booker/booker/handlers"
	"github.com/squaredcircle/booker/booker/logger"
	"github.com/squaredcircle/booker/booker/services"
	"github.com/squaredcircle/booker/booker/session"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	// Initialize custom logger
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting Booker",
		slog.String("version", version),
		slog.String("commit", commit))

	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := booker.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Configuration loaded successfully")

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}

	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	slog.Info("Initializing database schema...")
	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	slog.Info("Database schema initialized successfully")

	defer db.Close()

	b := booker.New(*cfg, version, commit)
	b.DB = db

	// Initialize repositories
	b.SaveRepository = repositories.NewSaveRepository(db.BunDB())

	// Seeded randomness makes a whole career replayable
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Initialize the game session and its timers
	b.Session = session.New(cfg.Game.SessionConfig(), rng, b.SaveRepository)
	sessionCtx, sessionCancel := context.WithCancel(context.Background())
	defer sessionCancel()
	go b.Session.Run(sessionCtx)
	defer b.Session.Close()

	// Initialize services
	b.SearchService = services.NewSearchService()
	b.RatingService = services.NewRatingService(engine.New(rng))
	b.PosterService = services.NewPosterService()
	if cfg.Spaces.Key != "" {
		b.BackupService = services.NewBackupService(
			cfg.Spaces.Key,
			cfg.Spaces.Secret,
			cfg.Spaces.Region,
			cfg.Spaces.Bucket,
		)
	}

	slog.Info("Game engine initialized successfully",
		slog.String("type", "sys"),
		slog.Int64("seed", seed))

	h := handler.New()

	// Game lifecycle commands
	h.Command("/newgame", handlers.WrapWithLogging("newgame", commands.NewGameHandler(b)))
	h.Command("/dashboard", handlers.WrapWithLogging("dashboard", commands.DashboardHandler(b)))
	h.Command("/advance", handlers.WrapWithLogging("advance", commands.AdvanceHandler(b)))
	h.Command("/pause", handlers.WrapWithLogging("pause", commands.PauseHandler(b)))

	// Inbox
	h.Command("/inbox", handlers.WrapWithLogging("inbox", commands.InboxHandler(b)))
	h.Component("/email-choice/", handlers.WrapComponentWithLogging("email-choice", components.EmailChoiceHandler(b)))

	// Matches
	h.Command("/match", handlers.WrapWithLogging("match", commands.MatchHandler(b)))
	h.Component("/match-action/", handlers.WrapComponentWithLogging("match-action", components.MatchActionHandler(b)))

	// Roster
	h.Command("/roster", handlers.WrapWithLogging("roster", commands.RosterHandler(b)))
	h.Command("/search", handlers.WrapWithLogging("search", commands.SearchHandler(b)))
	h.Command("/train", handlers.WrapWithLogging("train", commands.TrainHandler(b)))
	h.Command("/release", handlers.WrapWithLogging("release", commands.ReleaseHandler(b)))

	// Booking and saves
	h.Command("/book", handlers.WrapWithLogging("book", commands.BookHandler(b)))
	h.Command("/saves", handlers.WrapWithLogging("saves", commands.SavesHandler(b)))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("error_details", fmt.Sprintf("%+v", err)),
			slog.String("component", "bot_setup"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds),
		)
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err),
				slog.String("error_details", fmt.Sprintf("%+v", err)),
				slog.String("component", "command_sync"),
				slog.String("status", "failed"),
			)
		}
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = b.Client.OpenGateway(ctx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("error_details", fmt.Sprintf("%+v", err)),
			slog.String("component", "gateway"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	slog.Info("Booker is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	slog.Info("Shutting down...")
}
