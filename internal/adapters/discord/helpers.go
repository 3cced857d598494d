package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"

	"github.com/jose-valero/modtools-bot/internal/domain"
)

func findOpt(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, o := range opts {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// optID: para opciones user/role/channel Discord manda el snowflake como string.
func optID(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) (string, bool) {
	o := findOpt(opts, name)
	if o == nil {
		return "", false
	}
	id, ok := o.Value.(string)
	return id, ok && id != ""
}

func optStr(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) (string, bool) {
	o := findOpt(opts, name)
	if o == nil {
		return "", false
	}
	s, ok := o.Value.(string)
	return s, ok
}

// rolesRequest: ok=false significa que no vino subcomando (mostrar ayuda).
func rolesRequest(data discordgo.ApplicationCommandInteractionData) (domain.RoleRequest, bool, error) {
	if len(data.Options) == 0 || data.Options[0].Type != discordgo.ApplicationCommandOptionSubCommand {
		return nil, false, nil
	}
	sub := data.Options[0]
	cat, err := domain.ParseRoleCategory(sub.Name)
	if err != nil {
		return nil, true, err
	}

	roleID, ok := optID(sub.Options, "role")
	if !ok {
		return domain.RoleQuery{Category: cat}, true, nil
	}
	role := domain.Role{ID: roleID}
	if data.Resolved != nil {
		if r, ok := data.Resolved.Roles[roleID]; ok && r != nil {
			role.Name = r.Name
		}
	}
	return domain.SetRole{Category: cat, Role: role}, true, nil
}

// memberAndReason lee las opciones de /report y /warn.
func memberAndReason(data discordgo.ApplicationCommandInteractionData) (domain.Member, string, error) {
	id, ok := optID(data.Options, "member")
	if !ok {
		return domain.Member{}, "", errors.New("missing member option")
	}
	reason, ok := optStr(data.Options, "reason")
	if !ok {
		return domain.Member{}, "", errors.New("missing reason option")
	}
	m := domain.Member{ID: id}
	if data.Resolved != nil {
		if u, ok := data.Resolved.Users[id]; ok && u != nil {
			m.Username = u.Username
		}
	}
	return m, reason, nil
}

func interactionUser(ic *discordgo.InteractionCreate) *discordgo.User {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User
	}
	return ic.User
}
