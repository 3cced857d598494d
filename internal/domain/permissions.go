package domain

// PermissionLevel es ordinal: un nivel incluye a todos los inferiores.
type PermissionLevel int

const (
	LevelPublic PermissionLevel = iota
	LevelSupporter
	LevelModerator
	LevelAdministrator
	LevelOwner
)

func (l PermissionLevel) String() string {
	switch l {
	case LevelPublic:
		return "public"
	case LevelSupporter:
		return "supporter"
	case LevelModerator:
		return "moderator"
	case LevelAdministrator:
		return "administrator"
	case LevelOwner:
		return "owner"
	}
	return "unknown"
}

// Allows: true si l alcanza el mínimo requerido.
func (l PermissionLevel) Allows(min PermissionLevel) bool { return l >= min }
