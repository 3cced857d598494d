package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/mod")
	t.Setenv("DISCORD_BOT_TOKEN", "token")
	t.Setenv("OWNER_IDS", "1,2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 12*time.Second, cfg.CommandTimeout)
	assert.Zero(t, cfg.ReportCooldown)
	assert.Equal(t, []string{"1", "2"}, cfg.OwnerIDs)
	assert.Empty(t, cfg.DiscordGuild)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DISCORD_BOT_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadJanitor(t *testing.T) {
	t.Setenv("RECORD_RETENTION_DAYS", "30")

	cfg, err := LoadJanitor()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.RetentionDays)
	assert.Equal(t, "json", cfg.LogFormat)
}
