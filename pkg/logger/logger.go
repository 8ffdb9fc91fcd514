package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hweilin/memberhub/internal/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	*zerolog.Logger
}

func New(cfg *config.Config) *Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.IsDev && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = os.Stdout
	if cfg.IsDev {
		out = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	} else {
		// Outside dev, also write to a rotating file so logs survive restarts.
		out = zerolog.MultiLevelWriter(os.Stdout, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Log.Dir, "app.log"),
			MaxSize:    20, // megabytes
			MaxAge:     14, // days
			MaxBackups: 30,
			Compress:   true,
		})
	}

	z := zerolog.New(out).With().Timestamp().Logger()

	return &Logger{Logger: &z}
}
