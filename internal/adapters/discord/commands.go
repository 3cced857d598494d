package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

var dmDisabled = false

// subcomandos de /roles: nombre largo + alias (los slash commands no tienen aliases)
var roleSubcommands = []struct {
	Name        string
	Alias       string
	Description string
}{
	{"administrator", "admin", "Ver o configurar el rol de administrador"},
	{"moderator", "mod", "Ver o configurar el rol de moderador"},
	{"supporter", "supp", "Ver o configurar el rol de supporter"},
	{"team", "", "Ver o configurar el rol de team"},
	{"mute", "", "Ver o configurar el rol de mute"},
}

func roleOption() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{{
		Type:        discordgo.ApplicationCommandOptionRole,
		Name:        "role",
		Description: "Rol a configurar (vacío = ver el actual)",
		Required:    false,
	}}
}

func rolesCommand() *discordgo.ApplicationCommand {
	var subs []*discordgo.ApplicationCommandOption
	for _, rs := range roleSubcommands {
		subs = append(subs, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        rs.Name,
			Description: rs.Description,
			Options:     roleOption(),
		})
		if rs.Alias != "" {
			subs = append(subs, &discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        rs.Alias,
				Description: "Alias de /roles " + rs.Name,
				Options:     roleOption(),
			})
		}
	}
	return &discordgo.ApplicationCommand{
		Name:         "roles",
		Description:  "Configura los roles del servidor (admins)",
		DMPermission: &dmDisabled,
		Options:      subs,
	}
}

func memberReasonOptions(memberDesc string) []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: memberDesc,
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Motivo",
			Required:    true,
		},
	}
}

func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		rolesCommand(),
		{
			Name:         "report",
			Description:  "Reporta a un miembro al equipo de moderación",
			DMPermission: &dmDisabled,
			Options:      memberReasonOptions("Miembro a reportar"),
		},
		{
			Name:         "warn",
			Description:  "Advierte a un miembro (supporters)",
			DMPermission: &dmDisabled,
			Options:      memberReasonOptions("Miembro a advertir"),
		},
		{
			Name:         "changelog",
			Description:  "Ver o configurar el canal de changelog (admins)",
			DMPermission: &dmDisabled,
			Options: []*discordgo.ApplicationCommandOption{{
				Type:         discordgo.ApplicationCommandOptionChannel,
				Name:         "channel",
				Description:  "Canal de texto (vacío = ver el actual)",
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
				Required:     false,
			}},
		},
	}
}

// rolesHelp es lo que se muestra con /roles sin subcomando.
func rolesHelp() string {
	var b strings.Builder
	b.WriteString("**/roles** — configura los roles del servidor\n")
	for _, rs := range roleSubcommands {
		name := rs.Name
		if rs.Alias != "" {
			name += " | " + rs.Alias
		}
		fmt.Fprintf(&b, "• `/roles %s [role]` — %s\n", name, rs.Description)
	}
	return b.String()
}
