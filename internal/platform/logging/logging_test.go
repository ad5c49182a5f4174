package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsamuelsen11/ward-alert-service/internal/platform/config"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/logging"
)

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"level":"INFO"`},
		{format: "text", want: "level=INFO"},
		{format: "xml", want: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("broadcast dispatched")

			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
			if !strings.Contains(out, "broadcast dispatched") {
				t.Errorf("output = %q, want the message", out)
			}
		})
	}
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   string
		log     func(*slog.Logger)
		visible bool
	}{
		{"debug passes at debug", "debug", func(l *slog.Logger) { l.Debug("m") }, true},
		{"debug passes at upper DEBUG", "DEBUG", func(l *slog.Logger) { l.Debug("m") }, true},
		{"debug filtered at info", "info", func(l *slog.Logger) { l.Debug("m") }, false},
		{"warn filtered at error", "error", func(l *slog.Logger) { l.Warn("m") }, false},
		{"debug filtered at unknown level", "verbose", func(l *slog.Logger) { l.Debug("m") }, false},
		{"info passes at unknown level", "verbose", func(l *slog.Logger) { l.Info("m") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(logging.New(tt.level, "json", &buf))

			if got := buf.Len() > 0; got != tt.visible {
				t.Errorf("record visible = %v, want %v (output %q)", got, tt.visible, buf.String())
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Info("x")
	logging.New("info", "json", &infoBuf).Info("x")

	if !strings.Contains(debugBuf.String(), `"source"`) {
		t.Errorf("debug output = %q, want a source attribute", debugBuf.String())
	}
	if strings.Contains(infoBuf.String(), `"source"`) {
		t.Errorf("info output = %q, want no source attribute", infoBuf.String())
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard logger reports error level enabled, want nothing enabled")
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext on bare context did not return slog.Default()")
	}

	var buf bytes.Buffer
	first := logging.New("info", "json", &buf)
	second := logging.New("debug", "json", &buf)

	ctx := logging.WithLogger(context.Background(), first)
	if got := logging.FromContext(ctx); got != first {
		t.Error("FromContext did not return the stored logger")
	}

	ctx = logging.WithLogger(ctx, second)
	if got := logging.FromContext(ctx); got != second {
		t.Error("FromContext did not return the most recently stored logger")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"authorization field", slog.String("authorization", "Bearer supersecret-token"), "supersecret-token"},
		{"password field", slog.String("password", "hunter2"), "hunter2"},
		{"dsn field", slog.String("dsn", "host=db password=hunter2"), "hunter2"},
		{"raw bearer value", slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), "eyJhbGciOiJSUzI1NiJ9"},
		{"connection url", slog.String("target", "postgres://ward:hunter2@db:5432/ward"), "hunter2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, want %q redacted", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, want [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_KeepsDomainFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("broadcast",
		slog.String("patient_id", "0x0001"),
		slog.String("command", "python3 execute.py model 0 0x0000 0xfbf105 0x0001 0 00x0001S10"),
	)

	out := buf.String()
	for _, want := range []string{"0x0001", "00x0001S10"} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want it to contain %q", out, want)
		}
	}
}

func TestOutput_StderrWhenNoFile(t *testing.T) {
	t.Parallel()

	w := logging.Output(config.LogConfig{})
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil", err)
	}
	// stderr must stay usable after Close.
	if _, err := os.Stderr.Write(nil); err != nil {
		t.Errorf("stderr closed by Output().Close(): %v", err)
	}
}

func TestOutput_RotatedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "service.log")
	w := logging.Output(config.LogConfig{File: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})
	t.Cleanup(func() { _ = w.Close() })

	logging.New("info", "json", w).Info("written to file", slog.String("patient_id", "0x0002"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "0x0002") {
		t.Errorf("log file = %q, want the record", data)
	}
}
