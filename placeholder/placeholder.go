// Package placeholder formats named presets for a recipient.
package placeholder

import (
	"chat-flex/domain"
	"chat-flex/errors"
	"context"
	"embed"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var presetFS embed.FS

// Presets renders go-i18n messages, one message id per preset,
// in the locale of the recipient with a fallback to the default locale.
type Presets struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	log             *slog.Logger
}

// NewPresets loads the embedded presets.
func NewPresets(defaultLanguage language.Tag, log *slog.Logger) (*Presets, error) {
	bundle := i18n.NewBundle(defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	p := &Presets{bundle: bundle, defaultLanguage: defaultLanguage, log: log}
	if err := p.LoadFS(presetFS, "active.en.toml", "active.fr.toml"); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadFS adds or overrides presets from message files named "<anything>.<lang>.toml".
func (p *Presets) LoadFS(fsys fs.FS, files ...string) error {
	for _, file := range files {
		if _, err := p.bundle.LoadMessageFileFS(fsys, file); err != nil {
			return fmt.Errorf("loading presets %s: %w", file, err)
		}
	}
	return nil
}

func (p *Presets) Format(_ context.Context, target domain.Audience, preset string, vars map[string]string) (string, error) {
	languages := make([]string, 0, 2)
	if locale, ok := domain.LocaleOf(target); ok {
		languages = append(languages, locale.String())
	}
	languages = append(languages, p.defaultLanguage.String())

	localizer := i18n.NewLocalizer(p.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    preset,
		TemplateData: vars,
	})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		// go-i18n reports a missing translation even when the default language answered
		if stderrors.As(err, &notFound) && msg != "" {
			return msg, nil
		}
		if stderrors.As(err, &notFound) {
			return "", fmt.Errorf("%w: %s", errors.ErrUnknownPreset, preset)
		}
		return "", err
	}
	return msg, nil
}

type identity struct{}

// Identity ignores the preset and returns the message variable untouched.
var Identity = identity{}

func (identity) Format(_ context.Context, _ domain.Audience, _ string, vars map[string]string) (string, error) {
	return vars[domain.MessageVar], nil
}
