package service

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jose-valero/modtools-bot/internal/domain"
)

type RoleService struct {
	settings SettingsStore
	platform Platform
	log      logrus.FieldLogger
}

func NewRoleService(settings SettingsStore, platform Platform, log logrus.FieldLogger) *RoleService {
	return &RoleService{settings: settings, platform: platform, log: log}
}

// ConfigureRole: RoleQuery lee el rol guardado, SetRole lo pisa y avisa al changelog.
func (s *RoleService) ConfigureRole(ctx context.Context, inv Invocation, req domain.RoleRequest) error {
	if !req.RoleCategory().Valid() {
		return errors.Errorf("invalid role category %q", req.RoleCategory())
	}

	switch r := req.(type) {
	case domain.RoleQuery:
		return s.show(ctx, inv, r.Category)
	case domain.SetRole:
		return s.set(ctx, inv, r.Category, r.Role)
	default:
		return errors.Errorf("unsupported role request %T", req)
	}
}

func (s *RoleService) show(ctx context.Context, inv Invocation, cat domain.RoleCategory) error {
	id, ok, err := s.settings.GetInt(ctx, inv.GuildID, cat.SettingsKey())
	if err != nil {
		return err
	}
	if !ok {
		return inv.Reply.Reply(ctx, msgNoRoleSet)
	}

	roleID := strconv.FormatInt(id, 10)
	role, err := s.platform.ResolveRole(ctx, inv.GuildID, roleID)
	if err != nil {
		return errors.WithMessage(err, "resolve role")
	}
	if role == nil {
		return inv.Reply.Reply(ctx, fmtStaleRole(roleID))
	}
	return inv.Reply.Reply(ctx, fmtRole(*role))
}

func (s *RoleService) set(ctx context.Context, inv Invocation, cat domain.RoleCategory, role domain.Role) error {
	id, err := strconv.ParseInt(role.ID, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "bad role id %q", role.ID)
	}
	if err := s.settings.SetInt(ctx, inv.GuildID, cat.SettingsKey(), id); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"guild_id": inv.GuildID,
		"user_id":  inv.Author.ID,
		"category": string(cat),
		"role_id":  role.ID,
	}).Info("role configured")

	if err := inv.Reply.Reply(ctx, msgRoleSet); err != nil {
		return err
	}
	return s.platform.SendChangelog(ctx, inv.GuildID, changelogRoleSet[cat](role.Name, role.ID))
}
