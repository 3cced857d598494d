package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	discordrouter "github.com/jose-valero/modtools-bot/internal/adapters/discord"
	"github.com/jose-valero/modtools-bot/internal/adapters/httpapi"
	"github.com/jose-valero/modtools-bot/internal/app/service"
	"github.com/jose-valero/modtools-bot/internal/infra/config"
	"github.com/jose-valero/modtools-bot/internal/infra/logging"
	"github.com/jose-valero/modtools-bot/internal/infra/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// DB
	db, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("db")
	}
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		log.WithError(err).Fatal("migrate")
	}
	log.Info("✅ DB lista y migrada")

	// Repos
	settingsRepo := storage.NewSettingsRepo(db)
	recordsRepo := storage.NewRecordsRepo(db)

	// Discord session
	auth := cfg.DiscordToken
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(auth)), "bot ") {
		auth = "Bot " + strings.TrimSpace(auth)
	}
	s, err := discordgo.New(auth)
	if err != nil {
		log.WithError(err).Fatal("discord session")
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	if err := s.Open(); err != nil {
		log.WithError(err).Fatal("discord open")
	}
	defer s.Close()
	log.Infof("✅ Conectado como %s (%s)", s.State.User.Username, s.State.User.ID)

	// Services
	platform := discordrouter.NewPlatform(s, settingsRepo, log)
	rolesSvc := service.NewRoleService(settingsRepo, platform, log)
	modSvc := service.NewModerationService(recordsRepo, platform, log)
	changelogSvc := service.NewChangelogService(settingsRepo, platform, log)

	// Health
	health := httpapi.New(db, log)
	go func() {
		if err := health.Start(ctx, cfg.HTTPAddr); err != nil {
			log.WithError(err).Error("health server")
		}
	}()

	// Router
	r := discordrouter.NewRouter(
		s,
		discordrouter.Options{
			GuildID:        cfg.DiscordGuild,
			OwnerIDs:       cfg.OwnerIDs,
			CommandTimeout: cfg.CommandTimeout,
			ReportCooldown: cfg.ReportCooldown,
		},
		platform,
		settingsRepo,
		rolesSvc,
		modSvc,
		changelogSvc,
		log,
	)
	if err := r.Register(); err != nil {
		log.WithError(err).Fatal("registrando comandos")
	}
	r.Handlers()
	if cfg.DiscordGuild == "" {
		log.Info("✅ comandos registrados globalmente")
	} else {
		log.WithField("guild_id", cfg.DiscordGuild).Info("✅ comandos registrados")
	}

	// Esperar señal
	<-ctx.Done()
	log.Info("apagando")
}
