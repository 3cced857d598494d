package storage

import (
	"context"
	"database/sql"
	"strconv"

	pq "github.com/lib/pq"
	"github.com/pkg/errors"
)

// SettingsRepo: key/value por guild. Los valores se guardan como texto y se
// tipan al leer.
type SettingsRepo struct{ db *sql.DB }

func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{db: db} }

// GetInt devuelve ok=false si la clave nunca se seteó.
func (r *SettingsRepo) GetInt(ctx context.Context, guildID, key string) (int64, bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `
SELECT value
  FROM guild_settings
 WHERE guild_id = $1 AND key = $2
`, guildID, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrapf(err, "settings get %s", key)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, errors.Wrapf(err, "settings %s is not an int", key)
	}
	return v, true, nil
}

// SetInt: upsert, pisa el valor anterior.
func (r *SettingsRepo) SetInt(ctx context.Context, guildID, key string, value int64) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO guild_settings (guild_id, key, value)
VALUES ($1,$2,$3)
ON CONFLICT (guild_id, key) DO UPDATE SET
  value      = EXCLUDED.value,
  updated_at = now()
`, guildID, key, strconv.FormatInt(value, 10))
	return errors.Wrapf(err, "settings set %s", key)
}

// GetInts: varias claves en una sola query. Las que no existen no aparecen en el mapa.
func (r *SettingsRepo) GetInts(ctx context.Context, guildID string, keys []string) (map[string]int64, error) {
	out := map[string]int64{}
	if len(keys) == 0 {
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT key, value
  FROM guild_settings
 WHERE guild_id = $1 AND key = ANY($2)
`, guildID, pq.Array(keys))
	if err != nil {
		return nil, errors.Wrap(err, "settings get many")
	}
	defer rows.Close()
	for rows.Next() {
		var k, raw string
		if err := rows.Scan(&k, &raw); err != nil {
			return nil, errors.Wrap(err, "settings scan")
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			// valor corrupto: lo ignoramos, no debería bloquear el chequeo de permisos
			continue
		}
		out[k] = v
	}
	return out, errors.Wrap(rows.Err(), "settings rows")
}
