// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"sushi-neko/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup настраивает глобальный логгер zerolog по настройкам.
// Без файла логи идут в stderr в консольном формате, с файлом в JSON.
// Возвращённый Closer закрывает файл лога.
func Setup(s config.Settings, console io.Writer) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	} else {
		if console == nil {
			console = os.Stderr
		}
		w = zerolog.ConsoleWriter{Out: console, TimeFormat: time.TimeOnly}
	}

	logger := zerolog.New(w).With().Timestamp().Logger()
	log.Logger = logger
	return logger, closer, nil
}
