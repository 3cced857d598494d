package service

import (
	"fmt"

	"github.com/jose-valero/modtools-bot/internal/domain"
)

const (
	msgNoRoleSet      = "ℹ️ No hay ningún rol configurado."
	msgRoleSet        = "✅ Rol actualizado."
	msgReported       = "✅ Miembro reportado. El equipo de moderación lo revisará."
	msgWarned         = "✅ Advertencia registrada."
	msgNoDM           = "⚠️ No pude enviarle un mensaje directo al miembro."
	msgNoChangelog    = "ℹ️ No hay canal de changelog configurado."
	msgChangelogSet   = "✅ Canal de changelog actualizado."
	logChangelogSetFm = "Canal de changelog establecido en <#%s>."
)

func fmtRole(r domain.Role) string { return fmt.Sprintf("`@%s` (%s)", r.Name, r.ID) }

func fmtStaleRole(id string) string {
	return fmt.Sprintf("⚠️ El rol configurado (%s) ya no existe en este servidor.", id)
}

var changelogRoleSet = map[domain.RoleCategory]func(name, id string) string{
	domain.RoleAdmin:     roleSetFormatter("administrador"),
	domain.RoleModerator: roleSetFormatter("moderador"),
	domain.RoleSupporter: roleSetFormatter("supporter"),
	domain.RoleTeam:      roleSetFormatter("team"),
	domain.RoleMute:      roleSetFormatter("mute"),
}

func roleSetFormatter(label string) func(name, id string) string {
	return func(name, id string) string {
		return fmt.Sprintf("Rol de %s establecido en `@%s` (%s).", label, name, id)
	}
}

func fmtWarnedDM(author, guild, reason string) string {
	return fmt.Sprintf("Recibiste una advertencia de %s en **%s**.\nMotivo: %s", author, guild, reason)
}

func fmtLogReported(author, member, reason string) string {
	return fmt.Sprintf("%s reportó a %s.\nMotivo: %s", author, member, reason)
}

func fmtLogWarned(author, member, reason string) string {
	return fmt.Sprintf("%s advirtió a %s.\nMotivo: %s", author, member, reason)
}
