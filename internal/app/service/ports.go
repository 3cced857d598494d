package service

import (
	"context"

	"github.com/jose-valero/modtools-bot/internal/domain"
)

// Lo implementa internal/infra/storage.SettingsRepo
type SettingsStore interface {
	GetInt(ctx context.Context, guildID, key string) (int64, bool, error)
	SetInt(ctx context.Context, guildID, key string, value int64) error
}

// Lo implementa internal/infra/storage.RecordsRepo
type RecordStore interface {
	CreateReport(ctx context.Context, r domain.Report) error
	CreateWarn(ctx context.Context, w domain.Warn) error
}

// Lo implementa internal/adapters/discord.Platform
type Platform interface {
	// ResolveRole devuelve nil, nil si el rol ya no existe en el guild.
	ResolveRole(ctx context.Context, guildID, roleID string) (*domain.Role, error)
	SendDirect(ctx context.Context, userID, content string) domain.Delivery
	SendChangelog(ctx context.Context, guildID, content string) error
}

// Responder contesta en el contexto donde se invocó el comando.
type Responder interface {
	Reply(ctx context.Context, content string) error
}

// Invocation: quién, dónde y cómo contestarle.
type Invocation struct {
	GuildID   string
	GuildName string
	Author    domain.Member
	Reply     Responder
}
