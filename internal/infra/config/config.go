package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseURL  string `env:"DATABASE_URL,required,notEmpty"`
	DiscordToken string `env:"DISCORD_BOT_TOKEN,required,notEmpty"`

	// vacío = comandos globales
	DiscordGuild string `env:"DISCORD_GUILD_ID"`

	OwnerIDs []string `env:"OWNER_IDS" envSeparator:","`
	HTTPAddr string   `env:"HTTP_ADDR" envDefault:":8080"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	CommandTimeout time.Duration `env:"COMMAND_TIMEOUT" envDefault:"12s"`

	// 0 = sin cooldown para /report
	ReportCooldown time.Duration `env:"REPORT_COOLDOWN" envDefault:"0s"`
}

// JanitorConfig: la lambda sólo necesita la DB y la retención.
type JanitorConfig struct {
	DatabaseURL   string `env:"DATABASE_URL"`
	RetentionDays int    `env:"RECORD_RETENTION_DAYS" envDefault:"0"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"json"`
}

func Load() (Config, error) {
	return env.ParseAs[Config]()
}

func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func LoadJanitor() (JanitorConfig, error) {
	return env.ParseAs[JanitorConfig]()
}
