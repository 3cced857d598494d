package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/jose-valero/modtools-bot/internal/app/service"
	"github.com/jose-valero/modtools-bot/internal/domain"
)

type Ctx struct {
	Log     logrus.FieldLogger
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Data    discordgo.ApplicationCommandInteractionData
	Inv     service.Invocation
}

type CommandHandler func(ctx context.Context, c *Ctx) error

// Command: gates que aplica el router antes de llamar al handler.
type Command struct {
	Name      string
	MinLevel  domain.PermissionLevel
	GuildOnly bool
	Handler   CommandHandler

	// opcional: cooldown por usuario
	Limiter *userLimiter
}
