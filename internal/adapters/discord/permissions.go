package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"

	"github.com/jose-valero/modtools-bot/internal/domain"
)

// roles configurados que dan nivel (team y mute no dan permisos)
var levelRoles = []struct {
	cat   domain.RoleCategory
	level domain.PermissionLevel
}{
	{domain.RoleAdmin, domain.LevelAdministrator},
	{domain.RoleModerator, domain.LevelModerator},
	{domain.RoleSupporter, domain.LevelSupporter},
}

func levelRoleKeys() []string {
	keys := make([]string, 0, len(levelRoles))
	for _, lr := range levelRoles {
		keys = append(keys, lr.cat.SettingsKey())
	}
	return keys
}

// memberLevel calcula el nivel de un miembro. configured viene de guild_settings (key -> role id).
func memberLevel(m *discordgo.Member, guildOwnerID string, botOwners []string, configured map[string]int64) domain.PermissionLevel {
	if m == nil || m.User == nil {
		return domain.LevelPublic
	}
	uid := m.User.ID
	if uid == guildOwnerID {
		return domain.LevelOwner
	}
	for _, o := range botOwners {
		if o != "" && o == uid {
			return domain.LevelOwner
		}
	}
	if m.Permissions&discordgo.PermissionAdministrator != 0 {
		return domain.LevelAdministrator
	}

	has := make(map[string]struct{}, len(m.Roles))
	for _, rid := range m.Roles {
		has[rid] = struct{}{}
	}
	for _, lr := range levelRoles {
		id, ok := configured[lr.cat.SettingsKey()]
		if !ok {
			continue
		}
		if _, ok := has[formatID(id)]; ok {
			return lr.level
		}
	}
	return domain.LevelPublic
}

// requireLevel dice si el miembro de la interacción alcanza min. Un error al
// leer los roles configurados no da acceso.
func (r *Router) requireLevel(ctx context.Context, ic *discordgo.InteractionCreate, ownerID string, min domain.PermissionLevel) (bool, error) {
	if min == domain.LevelPublic {
		return true, nil
	}
	configured, err := r.settings.GetInts(ctx, ic.GuildID, levelRoleKeys())
	if err != nil {
		return false, errors.Wrap(err, "permission lookup")
	}
	return memberLevel(ic.Member, ownerID, r.ownerIDs, configured).Allows(min), nil
}
