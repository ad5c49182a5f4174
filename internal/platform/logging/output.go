package logging

import (
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jsamuelsen11/ward-alert-service/internal/platform/config"
)

// Output returns the writer log records go to. With no file configured that
// is stderr; otherwise a size-rotated file managed by lumberjack, which the
// caller should Close on shutdown.
func Output(cfg config.LogConfig) io.WriteCloser {
	if cfg.File == "" {
		return nopCloser{os.Stderr}
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
}

// nopCloser keeps stderr open when the logger output is closed.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
