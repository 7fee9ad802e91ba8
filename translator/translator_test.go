package translator

import (
	"chat-flex/errors"
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNone_AlwaysFails(t *testing.T) {
	req := require.New(t)

	// When translating to any locale
	_, err := None.Translate(context.Background(), "hello", language.English, language.French)

	// Then the target locale is reported as unsupported
	req.ErrorIs(err, errors.ErrUnsupportedLanguage)
	var unsupported *errors.UnsupportedLanguageError
	req.True(stderrors.As(err, &unsupported))
	req.Equal(language.French, unsupported.Locale)
	req.False(None.IsSupportedLanguage(language.English))
	req.False(None.IsSupportedLanguage(AutoDetect))
}

func TestSameLanguage(t *testing.T) {
	req := require.New(t)
	req.True(SameLanguage(language.AmericanEnglish, language.BritishEnglish))
	req.True(SameLanguage(language.French, language.MustParse("fr-CA")))
	req.False(SameLanguage(language.French, language.English))
}
