package observability

import (
	"io"
	"log/slog"
	"os"

	"github.com/hireline/hireline/internal/config"
)

// SetupLogger builds the process-wide JSON logger on stdout.
func SetupLogger(cfg config.Config) *slog.Logger {
	return NewLogger(os.Stdout, cfg)
}

// NewLogger writes JSON records to w, tagged with the service name and
// deployment environment. Development runs log at debug with source
// locations; everything else stays at info.
func NewLogger(w io.Writer, cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDev() {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.IsDev(),
	})
	return slog.New(handler).With(
		slog.String("service", cfg.OTELServiceName),
		slog.String("env", cfg.AppEnv),
	)
}
