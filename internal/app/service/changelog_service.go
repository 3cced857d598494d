package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jose-valero/modtools-bot/internal/domain"
)

type ChangelogService struct {
	settings SettingsStore
	platform Platform
	log      logrus.FieldLogger
}

func NewChangelogService(settings SettingsStore, platform Platform, log logrus.FieldLogger) *ChangelogService {
	return &ChangelogService{settings: settings, platform: platform, log: log}
}

// ConfigureChangelog: channelID vacío consulta, si no lo reemplaza.
func (s *ChangelogService) ConfigureChangelog(ctx context.Context, inv Invocation, channelID string) error {
	if channelID == "" {
		id, ok, err := s.settings.GetInt(ctx, inv.GuildID, domain.ChangelogSettingsKey)
		if err != nil {
			return err
		}
		if !ok {
			return inv.Reply.Reply(ctx, msgNoChangelog)
		}
		return inv.Reply.Reply(ctx, fmt.Sprintf("<#%d> (%d)", id, id))
	}

	id, err := strconv.ParseInt(channelID, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "bad channel id %q", channelID)
	}
	if err := s.settings.SetInt(ctx, inv.GuildID, domain.ChangelogSettingsKey, id); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"guild_id":   inv.GuildID,
		"user_id":    inv.Author.ID,
		"channel_id": channelID,
	}).Info("changelog channel configured")

	if err := inv.Reply.Reply(ctx, msgChangelogSet); err != nil {
		return err
	}
	return s.platform.SendChangelog(ctx, inv.GuildID, fmt.Sprintf(logChangelogSetFm, channelID))
}
