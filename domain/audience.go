//go:generate go run go.uber.org/mock/mockgen -source=audience.go -destination=../mocks/mock_audience.go -package=mocks
package domain

import (
	"context"

	"golang.org/x/text/language"
)

type Key string

const (
	KeyName      Key = "name"
	KeySessionID Key = "session_id"
	KeyLocale    Key = "locale"
)

const unknownName = "Unknown"

// Component is the transport representation of a rendered string.
type Component struct {
	Source string // text as produced by the pipeline
	Plain  string // text without markup
}

// Audience is one or more addressable recipients.
// A single recipient expands to itself.
type Audience interface {
	Audiences() []Audience
	Metadata(key Key) (string, bool)
	Send(ctx context.Context, formatted, raw Component, source Audience) error
}

// NameOf returns the display name of an audience, "Unknown" when absent.
func NameOf(a Audience) string {
	if a == nil {
		return unknownName
	}
	if name, ok := a.Metadata(KeyName); ok && name != "" {
		return name
	}
	return unknownName
}

// SessionOf returns the stable session id of an audience.
func SessionOf(a Audience) (string, bool) {
	if a == nil {
		return "", false
	}
	id, ok := a.Metadata(KeySessionID)
	return id, ok && id != ""
}

// LocaleOf parses the locale metadata of an audience.
func LocaleOf(a Audience) (language.Tag, bool) {
	if a == nil {
		return language.Und, false
	}
	raw, ok := a.Metadata(KeyLocale)
	if !ok || raw == "" {
		return language.Und, false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
