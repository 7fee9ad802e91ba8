package placeholder

import (
	"chat-flex/audience"
	"chat-flex/domain"
	"chat-flex/errors"
	"context"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestPresets_Format(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	presets, err := NewPresets(language.English, log)
	req.NoError(err)

	vars := map[string]string{domain.MessageVar: "hello", domain.SenderVar: "alice"}

	tests := []struct {
		name     string
		target   domain.Audience
		preset   string
		expected string
	}{
		{name: "Recipient locale", target: audience.NewPlayer("bob", "s-2", "fr-FR"), preset: "chat", expected: "[alice] : hello"},
		{name: "Default locale", target: audience.NewPlayer("bob", "s-2", "en"), preset: "chat", expected: "[alice]: hello"},
		{name: "No locale", target: audience.Empty(), preset: "chat", expected: "[alice]: hello"},
		{name: "Missing in recipient locale", target: audience.NewPlayer("bob", "s-2", "fr"), preset: "raw", expected: "hello"},
		{name: "Unknown recipient locale", target: audience.NewPlayer("bob", "s-2", "de"), preset: "chat", expected: "[alice]: hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			formatted, err := presets.Format(context.Background(), tt.target, tt.preset, vars)
			req.NoError(err)
			req.Equal(tt.expected, formatted)
		})
	}
}

func TestPresets_UnknownPreset(t *testing.T) {
	req := require.New(t)
	presets, err := NewPresets(language.English, logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)

	_, err = presets.Format(context.Background(), audience.Empty(), "nope", nil)
	req.ErrorIs(err, errors.ErrUnknownPreset)
}

func TestPresets_LoadFS(t *testing.T) {
	req := require.New(t)
	presets, err := NewPresets(language.English, logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)

	// Given a custom preset file overriding the chat preset
	fsys := fstest.MapFS{
		"custom.en.toml": {Data: []byte("[chat]\nother = \"<{{.sender}}> {{.message}}\"\n")},
	}
	req.NoError(presets.LoadFS(fsys, "custom.en.toml"))

	formatted, err := presets.Format(context.Background(), audience.Empty(), "chat",
		map[string]string{domain.MessageVar: "hi", domain.SenderVar: "alice"})
	req.NoError(err)
	req.Equal("<alice> hi", formatted)

	req.Error(presets.LoadFS(fsys, "missing.en.toml"))
}

func TestIdentity(t *testing.T) {
	req := require.New(t)
	formatted, err := Identity.Format(context.Background(), nil, "chat", map[string]string{domain.MessageVar: "hello"})
	req.NoError(err)
	req.Equal("hello", formatted)
}
