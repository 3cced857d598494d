package domain

import (
	"fmt"
	"strings"
)

// RoleCategory es uno de los slots fijos de configuración de roles por guild.
type RoleCategory string

const (
	RoleAdmin     RoleCategory = "admin"
	RoleModerator RoleCategory = "mod"
	RoleSupporter RoleCategory = "supp"
	RoleTeam      RoleCategory = "team"
	RoleMute      RoleCategory = "mute"
)

// AllRoleCategories en el orden en que se muestran en /roles.
var AllRoleCategories = []RoleCategory{RoleAdmin, RoleModerator, RoleSupporter, RoleTeam, RoleMute}

// SettingsKey: clave en guild_settings (ej: "admin_role").
func (c RoleCategory) SettingsKey() string { return string(c) + "_role" }

func (c RoleCategory) Valid() bool {
	for _, k := range AllRoleCategories {
		if k == c {
			return true
		}
	}
	return false
}

// ParseRoleCategory acepta tanto el nombre largo del subcomando como el alias.
func ParseRoleCategory(s string) (RoleCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "administrator", "admin":
		return RoleAdmin, nil
	case "moderator", "mod":
		return RoleModerator, nil
	case "supporter", "supp":
		return RoleSupporter, nil
	case "team":
		return RoleTeam, nil
	case "mute":
		return RoleMute, nil
	}
	return "", fmt.Errorf("unknown role category %q", s)
}

type Role struct {
	ID   string
	Name string
}

// RoleRequest: o se consulta el rol configurado o se reemplaza.
type RoleRequest interface {
	RoleCategory() RoleCategory
	isRoleRequest()
}

type RoleQuery struct {
	Category RoleCategory
}

type SetRole struct {
	Category RoleCategory
	Role     Role
}

func (q RoleQuery) RoleCategory() RoleCategory { return q.Category }
func (s SetRole) RoleCategory() RoleCategory   { return s.Category }

func (RoleQuery) isRoleRequest() {}
func (SetRole) isRoleRequest()   {}

// ChangelogSettingsKey guarda el canal donde se publican los avisos de moderación.
const ChangelogSettingsKey = "logging_changelog"
