package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

const (
	TranslatorNone           = "none"
	TranslatorLibreTranslate = "libretranslate"
)

type Config struct {
	LogLevel                string        `env:"LOG_LEVEL,default=INFO" validate:"required"`
	CharReplacement         string        `env:"CHARACTER_REPLACEMENT,default=*" validate:"required"`
	DefaultLocale           string        `env:"DEFAULT_LOCALE,default=en" validate:"required,bcp47_language_tag"`
	Preset                  string        `env:"PRESET,default=chat" validate:"required"`
	Translator              string        `env:"TRANSLATOR,default=none" validate:"oneof=none libretranslate"`
	LibreTranslateURL       string        `env:"LIBRETRANSLATE_URL" validate:"required_if=Translator libretranslate"`
	LibreTranslateAPIKey    string        `env:"LIBRETRANSLATE_API_KEY"`
	TranslatorRatePerSecond int           `env:"TRANSLATOR_RATE_PER_SEC,default=5" validate:"gte=0"`
	DetectionThreshold      float64       `env:"DETECTION_THRESHOLD,default=0.5" validate:"gte=0,lte=1"`
	TranslationCachePath    string        `env:"TRANSLATION_CACHE_PATH"`
	TranslationCacheTTL     time.Duration `env:"TRANSLATION_CACHE_TTL,default=24h" validate:"gte=0"`
	StageTimeout            time.Duration `env:"STAGE_TIMEOUT,default=2s" validate:"gte=0"`
	MaxConcurrentRecipients int           `env:"MAX_CONCURRENT_RECIPIENTS,default=64" validate:"gte=0"`
	RestartInterval         time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	SessionBufferSize       int           `env:"SESSION_BUFFER_SIZE,default=256" validate:"gt=0"`
	MetricInterval          time.Duration `env:"METRIC_INTERVAL,default=30s" validate:"gte=0"`
}

// Load reads an optional .env file then the environment, and validates the result.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Mirrors splits LIBRETRANSLATE_URL, a comma separated list of servers tried in order.
func (c Config) Mirrors() []string {
	return lo.Compact(lo.Map(strings.Split(c.LibreTranslateURL, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}

func (c Config) Locale() language.Tag {
	return language.Make(c.DefaultLocale)
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
