package directory

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/ward-alert-service/internal/platform/config"
)

// Load builds the directory from the source named in cfg. For the postgres
// source the open pool is returned alongside so the caller can register a
// DBChecker and close it on shutdown; it is nil for the config source.
func Load(ctx context.Context, cfg config.DirectoryConfig, logger *slog.Logger) (*Static, *sql.DB, error) {
	switch cfg.Source {
	case config.DirectorySourcePostgres:
		if cfg.LoadTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.LoadTimeout)
			defer cancel()
		}

		db, err := OpenPostgres(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		dir, err := LoadPostgres(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		logger.InfoContext(ctx, "directory loaded",
			slog.String("source", cfg.Source),
			slog.Int("patients", len(dir.patients)),
			slog.Int("doctors", len(dir.doctors)),
		)
		return dir, db, nil

	case config.DirectorySourceConfig, "":
		dir, err := FromConfig(cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.InfoContext(ctx, "directory loaded",
			slog.String("source", config.DirectorySourceConfig),
			slog.Int("patients", len(dir.patients)),
			slog.Int("doctors", len(dir.doctors)),
		)
		return dir, nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown directory source %q", cfg.Source)
	}
}
