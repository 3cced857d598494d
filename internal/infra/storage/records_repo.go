package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/jose-valero/modtools-bot/internal/domain"
)

// RecordsRepo persiste reports y warns. Son inmutables: sólo insert (y el
// janitor de retención).
type RecordsRepo struct{ db *sql.DB }

func NewRecordsRepo(db *sql.DB) *RecordsRepo { return &RecordsRepo{db: db} }

func (r *RecordsRepo) CreateReport(ctx context.Context, rep domain.Report) error {
	return r.insert(ctx, "reports", rep.GuildID, rep.MemberID, rep.AuthorID, rep.Reason)
}

func (r *RecordsRepo) CreateWarn(ctx context.Context, w domain.Warn) error {
	return r.insert(ctx, "warns", w.GuildID, w.MemberID, w.AuthorID, w.Reason)
}

func (r *RecordsRepo) insert(ctx context.Context, table, guildID, memberID, authorID, reason string) error {
	member, err := strconv.ParseInt(memberID, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "%s: bad member id %q", table, memberID)
	}
	author, err := strconv.ParseInt(authorID, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "%s: bad author id %q", table, authorID)
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO `+table+` (guild_id, member_id, author_id, reason)
VALUES ($1,$2,$3,$4)
`, guildID, member, author, reason)
	return errors.Wrapf(err, "insert %s", table)
}

// PruneOlderThan borra reports/warns más viejos que age. age<=0 no hace nada.
func (r *RecordsRepo) PruneOlderThan(ctx context.Context, age time.Duration) (int64, int64, error) {
	if age <= 0 {
		return 0, 0, nil
	}
	var n [2]int64
	for i, table := range []string{"reports", "warns"} {
		res, err := r.db.ExecContext(ctx, `
DELETE FROM `+table+`
 WHERE created_at < now() - $1::interval
`, durToInterval(age))
		if err != nil {
			return n[0], n[1], errors.Wrapf(err, "prune %s", table)
		}
		n[i], _ = res.RowsAffected()
	}
	return n[0], n[1], nil
}

func durToInterval(d time.Duration) string {
	secs := int64(d.Seconds())
	if secs <= 0 {
		return "0 seconds"
	}
	return fmt.Sprintf("%d seconds", secs)
}
