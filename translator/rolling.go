package translator

import (
	"chat-flex/contract"
	"chat-flex/errors"
	"context"
	"log/slog"

	"github.com/samber/lo"
	"golang.org/x/text/language"
)

// Rolling tries its translators in order until one succeeds.
type Rolling struct {
	translators []contract.Translator
	log         *slog.Logger
}

func NewRolling(log *slog.Logger, translators ...contract.Translator) *Rolling {
	return &Rolling{translators: translators, log: log}
}

// Translate skips translators that do not support the target.
// When all of them fail the last error is returned.
func (r *Rolling) Translate(ctx context.Context, text string, source, target language.Tag) (string, error) {
	lastErr := errors.UnsupportedLanguage(target)
	for i, t := range r.translators {
		if !t.IsSupportedLanguage(target) {
			continue
		}
		translated, err := t.Translate(ctx, text, source, target)
		if err == nil {
			return translated, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		r.log.Debug("Translator failed, rolling to the next one", "index", i, "error", err)
		lastErr = err
	}
	return "", lastErr
}

func (r *Rolling) IsSupportedLanguage(locale language.Tag) bool {
	return lo.SomeBy(r.translators, func(t contract.Translator) bool {
		return t.IsSupportedLanguage(locale)
	})
}
