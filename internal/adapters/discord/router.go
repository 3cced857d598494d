package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/jose-valero/modtools-bot/internal/app/service"
	"github.com/jose-valero/modtools-bot/internal/domain"
)

type Options struct {
	GuildID        string // vacío = comandos globales
	OwnerIDs       []string
	CommandTimeout time.Duration
	ReportCooldown time.Duration
}

type Router struct {
	s        *discordgo.Session
	guildID  string
	ownerIDs []string
	timeout  time.Duration
	log      logrus.FieldLogger

	platform  *Platform
	settings  settingsReader
	roles     *service.RoleService
	mod       *service.ModerationService
	changelog *service.ChangelogService

	commands map[string]Command
}

func NewRouter(
	s *discordgo.Session,
	opts Options,
	platform *Platform,
	settings settingsReader,
	roles *service.RoleService,
	mod *service.ModerationService,
	changelog *service.ChangelogService,
	log logrus.FieldLogger,
) *Router {
	if opts.CommandTimeout <= 0 {
		opts.CommandTimeout = 12 * time.Second
	}
	r := &Router{
		s:         s,
		guildID:   opts.GuildID,
		ownerIDs:  opts.OwnerIDs,
		timeout:   opts.CommandTimeout,
		log:       log,
		platform:  platform,
		settings:  settings,
		roles:     roles,
		mod:       mod,
		changelog: changelog,
	}
	r.commands = map[string]Command{
		"roles":     {Name: "roles", MinLevel: domain.LevelAdministrator, GuildOnly: true, Handler: r.handleRoles},
		"report":    {Name: "report", MinLevel: domain.LevelPublic, GuildOnly: true, Handler: r.handleReport, Limiter: newUserLimiter(opts.ReportCooldown)},
		"warn":      {Name: "warn", MinLevel: domain.LevelSupporter, GuildOnly: true, Handler: r.handleWarn},
		"changelog": {Name: "changelog", MinLevel: domain.LevelAdministrator, GuildOnly: true, Handler: r.handleChangelog},
	}
	return r
}

// Register pisa los comandos del bot (guild o global) con los actuales.
func (r *Router) Register() error {
	appID := r.s.State.User.ID
	_, err := r.s.ApplicationCommandBulkOverwrite(appID, r.guildID, Commands())
	return err
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		if ic.Type != discordgo.InteractionApplicationCommand {
			return
		}
		r.handleSlashCommand(s, ic)
	})
}
