package discord

import (
	"context"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jose-valero/modtools-bot/internal/domain"
)

// discordAPI es el subconjunto de *discordgo.Session que usa Platform.
type discordAPI interface {
	Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error)
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type settingsReader interface {
	GetInt(ctx context.Context, guildID, key string) (int64, bool, error)
	GetInts(ctx context.Context, guildID string, keys []string) (map[string]int64, error)
}

// Platform implementa service.Platform sobre discordgo.
type Platform struct {
	api      discordAPI
	state    *discordgo.State // puede ser nil
	settings settingsReader
	log      logrus.FieldLogger
}

func NewPlatform(s *discordgo.Session, settings settingsReader, log logrus.FieldLogger) *Platform {
	return &Platform{api: s, state: s.State, settings: settings, log: log}
}

func (p *Platform) ResolveRole(ctx context.Context, guildID, roleID string) (*domain.Role, error) {
	if p.state != nil {
		if r, err := p.state.Role(guildID, roleID); err == nil && r != nil {
			return &domain.Role{ID: r.ID, Name: r.Name}, nil
		}
	}
	roles, err := p.api.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "guild roles")
	}
	for _, r := range roles {
		if r.ID == roleID {
			return &domain.Role{ID: r.ID, Name: r.Name}, nil
		}
	}
	return nil, nil
}

// SendDirect nunca devuelve error: cualquier falla (DMs cerrados, 403, red) es Delivery fallido.
func (p *Platform) SendDirect(ctx context.Context, userID, content string) domain.Delivery {
	ch, err := p.api.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return domain.Failed(err)
	}
	if _, err := p.api.ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{
		Content:         content,
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	}, discordgo.WithContext(ctx)); err != nil {
		return domain.Failed(err)
	}
	return domain.Delivered()
}

// SendChangelog publica en el canal configurado; sin canal no hace nada.
func (p *Platform) SendChangelog(ctx context.Context, guildID, content string) error {
	id, ok, err := p.settings.GetInt(ctx, guildID, domain.ChangelogSettingsKey)
	if err != nil {
		return err
	}
	if !ok {
		p.log.WithField("guild_id", guildID).Debug("no changelog channel, skipping")
		return nil
	}
	_, err = p.api.ChannelMessageSendComplex(formatID(id), &discordgo.MessageSend{
		Content:         content,
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	}, discordgo.WithContext(ctx))
	return errors.Wrap(err, "send changelog")
}

// GuildInfo: nombre y owner, primero del state y si no por REST.
func (p *Platform) GuildInfo(ctx context.Context, guildID string) (name, ownerID string, err error) {
	if p.state != nil {
		if g, err := p.state.Guild(guildID); err == nil && g != nil {
			return g.Name, g.OwnerID, nil
		}
	}
	g, err := p.api.Guild(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", "", errors.Wrap(err, "guild")
	}
	return g.Name, g.OwnerID, nil
}

func formatID(id int64) string { return strconv.FormatInt(id, 10) }
