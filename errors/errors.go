package errors

import (
	"fmt"

	"golang.org/x/text/language"
)

var (
	ErrWorkerPanic         = fmt.Errorf("worker panic")
	ErrEmptyWords          = fmt.Errorf("no words have been found")
	ErrDuplicateProcessor  = fmt.Errorf("processor already registered")
	ErrInvalidProcessor    = fmt.Errorf("processor must have a name and an implementation")
	ErrProcessorPanic      = fmt.Errorf("processor panic")
	ErrStageTimeout        = fmt.Errorf("processor stage timed out")
	ErrDispatchPanic       = fmt.Errorf("dispatch branch panic")
	ErrUnsupportedLanguage = fmt.Errorf("unsupported language")
	ErrTranslationFailed   = fmt.Errorf("translation failed")
	ErrUnknownTranslator   = fmt.Errorf("unknown translator backend")
	ErrUnknownPreset       = fmt.Errorf("unknown placeholder preset")
)

// UnsupportedLanguageError carries the locale a translator refused.
// It matches ErrUnsupportedLanguage with errors.Is.
type UnsupportedLanguageError struct {
	Locale language.Tag
}

func UnsupportedLanguage(locale language.Tag) error {
	return &UnsupportedLanguageError{Locale: locale}
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedLanguage, e.Locale)
}

func (e *UnsupportedLanguageError) Unwrap() error {
	return ErrUnsupportedLanguage
}
