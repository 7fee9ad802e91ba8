package translator

import (
	"chat-flex/contract"
	"chat-flex/errors"
	"context"
	"log/slog"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// Detecting resolves AutoDetect locally before delegating to a translator
// that needs an explicit source language.
type Detecting struct {
	next      contract.Translator
	threshold float64
	log       *slog.Logger
}

// NewDetecting wraps next. Detections below threshold (0 to 1) are refused.
func NewDetecting(next contract.Translator, threshold float64, log *slog.Logger) *Detecting {
	return &Detecting{next: next, threshold: threshold, log: log}
}

func (d *Detecting) Translate(ctx context.Context, text string, source, target language.Tag) (string, error) {
	if source != AutoDetect {
		return d.next.Translate(ctx, text, source, target)
	}

	detected, ok := d.detect(text)
	if !ok {
		return "", errors.UnsupportedLanguage(AutoDetect)
	}
	if SameLanguage(detected, target) {
		return text, nil
	}
	return d.next.Translate(ctx, text, detected, target)
}

func (d *Detecting) IsSupportedLanguage(locale language.Tag) bool {
	return locale == AutoDetect || d.next.IsSupportedLanguage(locale)
}

func (d *Detecting) detect(text string) (language.Tag, bool) {
	info := whatlanggo.Detect(text)
	if info.Confidence < d.threshold {
		d.log.Debug("Language detection is not reliable",
			"lang", info.Lang.String(), "confidence", info.Confidence)
		return language.Und, false
	}

	code := info.Lang.Iso6391()
	if code == "" {
		code = info.Lang.Iso6393()
	}
	tag, err := language.Parse(code)
	if err != nil || code == "" {
		return language.Und, false
	}
	return tag, true
}
