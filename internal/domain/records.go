package domain

import "time"

// Report y Warn tienen la misma forma; sólo cambia la tabla donde viven.
type Report struct {
	GuildID   string
	MemberID  string
	AuthorID  string
	Reason    string
	CreatedAt time.Time
}

type Warn struct {
	GuildID   string
	MemberID  string
	AuthorID  string
	Reason    string
	CreatedAt time.Time
}

type Member struct {
	ID       string
	Username string
}

func (m Member) Mention() string { return Mention(m.ID) }

func Mention(userID string) string { return "<@" + userID + ">" }

// Delivery es el resultado de un DM: nunca se devuelve como error.
type Delivery struct {
	Delivered bool
	Err       error
}

func Delivered() Delivery       { return Delivery{Delivered: true} }
func Failed(err error) Delivery { return Delivery{Err: err} }
