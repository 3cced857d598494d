// aqui solo manejamos la interaccion del usuario: gates, parseo de opciones y
// despacho a los servicios. La logica vive en internal/app/service.
package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jose-valero/modtools-bot/internal/app/service"
	"github.com/jose-valero/modtools-bot/internal/domain"
)

func (r *Router) handleSlashCommand(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	data := ic.ApplicationCommandData()
	cmd, ok := r.commands[data.Name]
	if !ok {
		return
	}

	user := interactionUser(ic)
	if user == nil {
		return
	}
	log := r.log.WithFields(logrus.Fields{"cmd": data.Name, "user_id": user.ID, "guild_id": ic.GuildID})
	log.Info("slash command")

	defer func() {
		if rec := recover(); rec != nil {
			log.WithField("panic", rec).Error("panic in slash command")
			ReplyEphemeral(s, ic, log, msgGenericError)
		}
	}()

	_ = DeferEphemeral(s, ic, log)
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	defer step(log, "cmd."+data.Name)()

	guildName, deny := r.admit(ctx, log, cmd, ic, user)
	if deny != "" {
		ReplyEphemeral(s, ic, log, deny)
		return
	}

	c := &Ctx{
		Log:     log,
		Session: s,
		Event:   ic,
		Data:    data,
		Inv: service.Invocation{
			GuildID:   ic.GuildID,
			GuildName: guildName,
			Author:    domain.Member{ID: user.ID, Username: user.Username},
			Reply:     interactionResponder{s: s, ic: ic},
		},
	}
	if err := cmd.Handler(ctx, c); err != nil {
		log.WithError(err).Error("command failed")
		ReplyEphemeral(s, ic, log, msgGenericError)
	}
}

// admit aplica los gates del comando: guild-only, nivel y cooldown.
// deny != "" es lo que hay que contestarle al usuario.
func (r *Router) admit(ctx context.Context, log logrus.FieldLogger, cmd Command, ic *discordgo.InteractionCreate, user *discordgo.User) (guildName, deny string) {
	if cmd.GuildOnly && ic.GuildID == "" {
		return "", msgGuildOnly
	}

	var ownerID string
	if ic.GuildID != "" {
		// sin owner no se puede calcular el nivel
		name, owner, err := r.platform.GuildInfo(ctx, ic.GuildID)
		if err != nil {
			log.WithError(err).Error("guild info")
			return "", msgGenericError
		}
		guildName, ownerID = name, owner
	}

	ok, err := r.requireLevel(ctx, ic, ownerID, cmd.MinLevel)
	if err != nil {
		log.WithError(err).Error("permission lookup failed")
		return "", msgGenericError
	}
	if !ok {
		return "", msgForbidden
	}
	if !cmd.Limiter.Allow(user.ID) {
		return "", msgCooldown
	}
	return guildName, ""
}

func (r *Router) handleRoles(ctx context.Context, c *Ctx) error {
	req, ok, err := rolesRequest(c.Data)
	if err != nil {
		return err
	}
	if !ok {
		// sin subcomando: ayuda, nada de settings
		return c.Inv.Reply.Reply(ctx, rolesHelp())
	}
	return r.roles.ConfigureRole(ctx, c.Inv, req)
}

func (r *Router) handleReport(ctx context.Context, c *Ctx) error {
	member, reason, err := memberAndReason(c.Data)
	if err != nil {
		return err
	}
	return r.mod.Report(ctx, c.Inv, member, reason)
}

func (r *Router) handleWarn(ctx context.Context, c *Ctx) error {
	member, reason, err := memberAndReason(c.Data)
	if err != nil {
		return err
	}
	return r.mod.Warn(ctx, c.Inv, member, reason)
}

func (r *Router) handleChangelog(ctx context.Context, c *Ctx) error {
	channelID, _ := optID(c.Data.Options, "channel")
	return errors.WithMessage(r.changelog.ConfigureChangelog(ctx, c.Inv, channelID), "changelog")
}
