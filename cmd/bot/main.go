package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/forgo/party/internal/config"
	"github.com/forgo/party/internal/discord"
	"github.com/forgo/party/internal/handler"
	"github.com/forgo/party/internal/jobs"
	"github.com/forgo/party/internal/repository"
	"github.com/forgo/party/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize Discord session
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		slog.Error("failed to create discord session", slog.String("error", err.Error()))
		os.Exit(1)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	// Initialize repositories
	draftRepo := repository.NewDraftRepository()
	partyRepo := repository.NewPartyRepository()
	cleanupRepo := repository.NewCleanupRepository()

	// Initialize services
	messenger := discord.NewMessenger(session)

	draftService := service.NewDraftService(service.DraftServiceConfig{
		DraftRepo: draftRepo,
		PartyRepo: partyRepo,
	})

	partyService := service.NewPartyService(service.PartyServiceConfig{
		PartyRepo: partyRepo,
	})

	cleanupService := service.NewCleanupService(service.CleanupServiceConfig{
		Repo:      cleanupRepo,
		Messenger: messenger,
		Retention: cfg.Party.ThreadRetention,
	})

	lifecycleService := service.NewLifecycleService(service.LifecycleServiceConfig{
		PartyRepo:   partyRepo,
		Messenger:   messenger,
		Cleanup:     cleanupService,
		WarnAfter:   cfg.Party.WarnAfter,
		ExpireAfter: cfg.Party.ExpireAfter,
	})

	// Initialize interaction handling
	interactions := handler.NewInteractionHandler(handler.InteractionHandlerConfig{
		Drafts:    draftService,
		Parties:   partyService,
		Lifecycle: lifecycleService,
		GuildID:   cfg.Discord.GuildID,
	})
	session.AddHandler(interactions.Handle)

	if err := session.Open(); err != nil {
		slog.Error("failed to open gateway connection", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = session.Close() }()

	if err := discord.RegisterCommands(session, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		slog.Error("failed to register commands", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize background sweeps
	lifecycleSweeper := jobs.NewLifecycleSweeper(lifecycleService, cfg.Party.SweepInterval)
	lifecycleSweeper.Start()
	defer lifecycleSweeper.Stop()

	cleanupSweeper := jobs.NewCleanupSweeper(cleanupService, cfg.Party.CleanupInterval)
	cleanupSweeper.Start()
	defer cleanupSweeper.Stop()

	slog.Info("bot running",
		slog.String("guild", cfg.Discord.GuildID),
		slog.Duration("warn_after", cfg.Party.WarnAfter),
		slog.Duration("expire_after", cfg.Party.ExpireAfter),
	)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")
}
