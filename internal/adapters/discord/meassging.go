package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

const (
	msgGenericError = "❌ Ocurrió un error inesperado procesando el comando. Contacta con un administrador."
	msgGuildOnly    = "🚫 Este comando sólo funciona dentro de un servidor."
	msgForbidden    = "🔒 No tienes permisos para esta acción."
	msgCooldown     = "⏳ Esperá un poco antes de volver a usar este comando."
)

// Defer efímero (para trabajos >3s)
func DeferEphemeral(s *discordgo.Session, ic *discordgo.InteractionCreate, log logrus.FieldLogger) error {
	err := s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.WithError(err).Warn("DeferEphemeral")
	}
	return err
}

// FollowupEphemeral manda un followup; si la interacción todavía no tiene
// respuesta (webhook desconocido) cae a InteractionRespond.
func FollowupEphemeral(s *discordgo.Session, ic *discordgo.InteractionCreate, content string, opts ...discordgo.RequestOption) error {
	_, err := s.FollowupMessageCreate(ic.Interaction, true, &discordgo.WebhookParams{
		Content:         content,
		Flags:           discordgo.MessageFlagsEphemeral,
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	}, opts...)
	if err == nil {
		return nil
	}

	var reqErr *discordgo.RESTError
	if errors.As(err, &reqErr) && reqErr.Message != nil && reqErr.Message.Code == discordgo.ErrCodeUnknownWebhook {
		return s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: content,
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		}, opts...)
	}
	return err
}

// ReplyEphemeral: igual que FollowupEphemeral pero sólo loguea el error.
func ReplyEphemeral(s *discordgo.Session, ic *discordgo.InteractionCreate, log logrus.FieldLogger, content string) {
	if err := FollowupEphemeral(s, ic, content); err != nil {
		log.WithError(err).Warn("ReplyEphemeral")
	}
}

// interactionResponder implementa service.Responder para una interacción.
type interactionResponder struct {
	s  *discordgo.Session
	ic *discordgo.InteractionCreate
}

func (r interactionResponder) Reply(ctx context.Context, content string) error {
	return FollowupEphemeral(r.s, r.ic, content, discordgo.WithContext(ctx))
}
