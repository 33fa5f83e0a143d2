// Package logger configura el logging estructurado de ventas-pro sobre
// zerolog: consola legible mientras se desarrolla, JSON en producción.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config entorno y nivel mínimo a emitir.
type Config struct {
	Env   string // todo lo que no sea "production" escribe a consola
	Level string // debug, info, warn, error; desconocido cae a info
}

// Logger expone la API de zerolog por embedding; los casos de uso reciben
// *Logger y encadenan Info()/Warn()/Error() directamente.
type Logger struct {
	zerolog.Logger
}

// New construye el logger del proceso y lo fija también como logger global
// de zerolog para las librerías que escriben por esa vía.
func New(cfg Config) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	base := zerolog.New(os.Stdout)
	if cfg.Env != "production" {
		base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}

	zl := base.Level(minLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "ventas-pro").
		Logger()
	log.Logger = zl

	return &Logger{Logger: zl}
}

func minLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
