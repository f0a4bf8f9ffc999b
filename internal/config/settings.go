// internal/config/settings.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings хранит параметры запуска, которые можно переопределить через окружение или .env.
type Settings struct {
	Seed        int64   // 0 означает сид от текущего времени
	LogLevel    string  // Уровень zerolog: debug, info, warn...
	LogFile     string  // Пусто: писать в stderr
	Audio       bool    // Включить звуковые эффекты
	Volume      float64 // Общая громкость [0, 1]
	SkipTitle   bool    // Начинать сразу с состояния ready
	PprofAddr   string  // Пусто: pprof не запускается
	WindowScale float64 // Масштаб окна ebiten
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:    "info",
		Audio:       true,
		Volume:      0.6,
		WindowScale: 1.0,
	}
}

// LoadSettings читает .env (если он есть) и переменные окружения SUSHI_*.
// Отсутствующий .env не является ошибкой.
func LoadSettings(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Settings{}, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}
	return settingsFromLookup(os.LookupEnv)
}

func settingsFromLookup(lookup func(string) (string, bool)) (Settings, error) {
	s := DefaultSettings()

	if v, ok := lookup("SUSHI_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid SUSHI_SEED %q: %w", v, err)
		}
		s.Seed = seed
	}
	if v, ok := lookup("SUSHI_LOG_LEVEL"); ok && v != "" {
		s.LogLevel = v
	}
	if v, ok := lookup("SUSHI_LOG_FILE"); ok {
		s.LogFile = v
	}
	if v, ok := lookup("SUSHI_AUDIO"); ok && v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid SUSHI_AUDIO %q: %w", v, err)
		}
		s.Audio = on
	}
	if v, ok := lookup("SUSHI_VOLUME"); ok && v != "" {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid SUSHI_VOLUME %q: %w", v, err)
		}
		if vol < 0 || vol > 1 {
			return Settings{}, fmt.Errorf("SUSHI_VOLUME out of range [0,1]: %v", vol)
		}
		s.Volume = vol
	}
	if v, ok := lookup("SUSHI_SKIP_TITLE"); ok && v != "" {
		skip, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid SUSHI_SKIP_TITLE %q: %w", v, err)
		}
		s.SkipTitle = skip
	}
	if v, ok := lookup("SUSHI_PPROF_ADDR"); ok {
		s.PprofAddr = v
	}
	if v, ok := lookup("SUSHI_WINDOW_SCALE"); ok && v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid SUSHI_WINDOW_SCALE %q: %w", v, err)
		}
		if scale <= 0 {
			return Settings{}, fmt.Errorf("SUSHI_WINDOW_SCALE must be positive: %v", scale)
		}
		s.WindowScale = scale
	}
	return s, nil
}
