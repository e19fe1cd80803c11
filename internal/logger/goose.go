package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// GooseLogger routes migration output into slog.
type GooseLogger struct {
	log *slog.Logger
}

func NewGooseLogger(l *slog.Logger) *GooseLogger {
	return &GooseLogger{log: WithComponent(l, "migration.goose")}
}

func (g *GooseLogger) Printf(format string, v ...any) {
	g.log.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g *GooseLogger) Fatalf(format string, v ...any) {
	g.log.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
	os.Exit(1)
}
