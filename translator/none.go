package translator

import (
	"chat-flex/contract"
	"chat-flex/errors"
	"context"

	"golang.org/x/text/language"
)

type none struct{}

// None translates nothing: every call fails with an unsupported target locale.
var None contract.Translator = none{}

func (none) Translate(_ context.Context, _ string, _, target language.Tag) (string, error) {
	return "", errors.UnsupportedLanguage(target)
}

func (none) IsSupportedLanguage(language.Tag) bool {
	return false
}
