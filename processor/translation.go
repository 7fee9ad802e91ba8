package processor

import (
	"chat-flex/contract"
	"chat-flex/domain"
	"chat-flex/errors"
	"chat-flex/render"
	"chat-flex/translator"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
)

const TranslatedPreset = "translated_message"

// Translation appends the translation of chat messages in the recipient's language.
type Translation struct {
	translator   contract.Translator
	placeholders contract.Placeholders
	log          *slog.Logger
}

func NewTranslation(tr contract.Translator, placeholders contract.Placeholders, log *slog.Logger) *Translation {
	return &Translation{translator: tr, placeholders: placeholders, log: log}
}

// Process leaves the message untouched unless the sender and the recipient
// both have a locale and speak different languages.
// An unsupported language is not a failure. Other errors are returned and
// the pipeline keeps the original text.
func (t *Translation) Process(ctx context.Context, mc domain.MessageContext) (string, error) {
	if mc.Kind != domain.KindChat {
		return mc.Message, nil
	}
	senderLocale, ok := domain.LocaleOf(mc.Sender)
	if !ok {
		return mc.Message, nil
	}
	targetLocale, ok := domain.LocaleOf(mc.Target)
	if !ok || translator.SameLanguage(senderLocale, targetLocale) {
		return mc.Message, nil
	}

	plain := render.StripMarkup(mc.Message)
	translated, err := t.translator.Translate(ctx, plain, translator.AutoDetect, targetLocale)
	if stderrors.Is(err, errors.ErrUnsupportedLanguage) {
		t.log.Debug("No translation available", "message_id", mc.ID, "locale", targetLocale.String())
		return mc.Message, nil
	}
	if err != nil {
		return mc.Message, fmt.Errorf("translating to %s: %w", targetLocale, err)
	}
	if translated == plain {
		return mc.Message, nil
	}

	formatted, err := t.placeholders.Format(ctx, mc.Target, TranslatedPreset, map[string]string{
		domain.MessageVar:    mc.Message,
		domain.TranslatedVar: translated,
	})
	if err != nil {
		return mc.Message, fmt.Errorf("formatting %s: %w", TranslatedPreset, err)
	}
	// A blank preset drops the translation, never the message.
	if strings.TrimSpace(formatted) == "" {
		return mc.Message, nil
	}
	return formatted, nil
}
