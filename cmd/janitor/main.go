package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/jose-valero/modtools-bot/internal/infra/config"
	"github.com/jose-valero/modtools-bot/internal/infra/logging"
	"github.com/jose-valero/modtools-bot/internal/infra/storage"
)

// handler borra reports/warns más viejos que RECORD_RETENTION_DAYS. 0 = no toca nada.
func handler(ctx context.Context) (string, error) {
	cfg, err := config.LoadJanitor()
	if err != nil {
		return fmt.Sprintf("config: %v", err), nil
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	if cfg.DatabaseURL == "" {
		return "no DATABASE_URL", nil
	}
	if cfg.RetentionDays <= 0 {
		log.Info("retention disabled")
		return "retention disabled", nil
	}

	pcfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return fmt.Sprintf("parse: %v", err), nil
	}
	pcfg.MaxConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return fmt.Sprintf("pool: %v", err), nil
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	age := time.Duration(cfg.RetentionDays) * 24 * time.Hour
	reports, warns, err := storage.NewRecordsRepo(db).PruneOlderThan(cctx, age)
	if err != nil {
		log.WithError(err).Error("prune failed")
		return fmt.Sprintf("prune: %v", err), nil
	}
	log.WithField("reports", reports).WithField("warns", warns).Info("prune ok")
	return fmt.Sprintf("ok reports=%d warns=%d", reports, warns), nil
}

func main() {
	_ = godotenv.Load()
	lambda.Start(handler)
}
