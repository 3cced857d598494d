package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jose-valero/modtools-bot/internal/domain"
)

type ModerationService struct {
	records  RecordStore
	platform Platform
	log      logrus.FieldLogger
}

func NewModerationService(records RecordStore, platform Platform, log logrus.FieldLogger) *ModerationService {
	return &ModerationService{records: records, platform: platform, log: log}
}

// Report guarda el reporte, confirma al autor y lo deja en el changelog.
func (s *ModerationService) Report(ctx context.Context, inv Invocation, target domain.Member, reason string) error {
	if err := s.records.CreateReport(ctx, domain.Report{
		GuildID:  inv.GuildID,
		MemberID: target.ID,
		AuthorID: inv.Author.ID,
		Reason:   reason,
	}); err != nil {
		return err
	}
	s.entry(inv, target).Info("member reported")

	if err := inv.Reply.Reply(ctx, msgReported); err != nil {
		return err
	}
	return s.platform.SendChangelog(ctx, inv.GuildID, fmtLogReported(inv.Author.Mention(), target.Mention(), reason))
}

// Warn intenta avisar por DM primero; el registro se guarda igual aunque el DM falle.
func (s *ModerationService) Warn(ctx context.Context, inv Invocation, target domain.Member, reason string) error {
	d := s.platform.SendDirect(ctx, target.ID, fmtWarnedDM(inv.Author.Mention(), inv.GuildName, reason))
	if !d.Delivered {
		s.entry(inv, target).WithError(d.Err).Info("warn dm not delivered")
		if err := inv.Reply.Reply(ctx, msgNoDM); err != nil {
			s.entry(inv, target).WithError(err).Warn("no-dm notice failed")
		}
	}

	if err := s.records.CreateWarn(ctx, domain.Warn{
		GuildID:  inv.GuildID,
		MemberID: target.ID,
		AuthorID: inv.Author.ID,
		Reason:   reason,
	}); err != nil {
		return err
	}
	s.entry(inv, target).Info("member warned")

	if err := inv.Reply.Reply(ctx, msgWarned); err != nil {
		return err
	}
	return s.platform.SendChangelog(ctx, inv.GuildID, fmtLogWarned(inv.Author.Mention(), target.Mention(), reason))
}

func (s *ModerationService) entry(inv Invocation, target domain.Member) *logrus.Entry {
	return s.log.WithFields(logrus.Fields{
		"guild_id":  inv.GuildID,
		"user_id":   inv.Author.ID,
		"target_id": target.ID,
	})
}
