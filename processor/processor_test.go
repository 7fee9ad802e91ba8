package processor

import (
	"chat-flex/audience"
	"chat-flex/contract"
	"chat-flex/domain"
	"chat-flex/errors"
	"chat-flex/mocks"
	"chat-flex/moderation"
	"chat-flex/placeholder"
	"chat-flex/translator"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
)

type registrar struct {
	names []string
	err   error
}

func (r *registrar) Register(name string, _ contract.Processor) error {
	if r.err != nil {
		return r.err
	}
	r.names = append(r.names, name)
	return nil
}

func TestRegisterDefaults(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	mod, err := moderation.NewModerator(nil, nil, '*', log)
	req.NoError(err)

	r := &registrar{}
	err = RegisterDefaults(r, NewModerationFilter(mod, log), NewTranslation(translator.None, placeholder.Identity, log))
	req.NoError(err)
	req.Equal([]string{ModerationFilterName, TranslationName}, r.names)

	failing := &registrar{err: errors.ErrDuplicateProcessor}
	err = RegisterDefaults(failing, NewModerationFilter(mod, log), NewTranslation(translator.None, placeholder.Identity, log))
	req.ErrorIs(err, errors.ErrDuplicateProcessor)
}

func TestProcessorFunc(t *testing.T) {
	req := require.New(t)
	f := ProcessorFunc(func(_ context.Context, mc domain.MessageContext) (string, error) {
		return mc.Message + "!", nil
	})
	out, err := f.Process(context.Background(), domain.NewMessageContext(nil, nil, "hi", domain.KindChat))
	req.NoError(err)
	req.Equal("hi!", out)
}

func TestModerationFilter(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	mod, err := moderation.NewModerator([]string{"badger"}, []string{"spam"}, '*', log)
	req.NoError(err)
	filter := NewModerationFilter(mod, log)
	alice := audience.NewPlayer("alice", "s-1", "en")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Clean message", input: "hello", expected: "hello"},
		{name: "Censored word", input: "hello badger", expected: "hello ******"},
		{name: "Blocked word drops the message", input: "hello spam", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			out, err := filter.Process(context.Background(), domain.NewMessageContext(alice, alice, tt.input, domain.KindChat))
			req.NoError(err)
			req.Equal(tt.expected, out)
		})
	}
}

func TestTranslation_Translates(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	tr := mocks.NewMockTranslator(ctrl)
	presets, err := placeholder.NewPresets(language.English, log)
	req.NoError(err)

	alice := audience.NewPlayer("alice", "s-1", "en-US")
	bob := audience.NewPlayer("bob", "s-2", "fr-FR")

	// Given a colored message from an English sender to a French recipient
	tr.EXPECT().
		Translate(gomock.Any(), "hello", translator.AutoDetect, language.MustParse("fr-FR")).
		Return("bonjour", nil)

	out, err := NewTranslation(tr, presets, log).
		Process(context.Background(), domain.NewMessageContext(alice, bob, "[red]hello", domain.KindChat))

	// Then markup is stripped before translating and kept in the output
	req.NoError(err)
	req.Equal("[red]hello [[bonjour]", out)
}

func TestTranslation_Skips(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	// Then the translator is never called
	tr := mocks.NewMockTranslator(ctrl)
	processor := NewTranslation(tr, placeholder.Identity, log)

	english := audience.NewPlayer("alice", "s-1", "en-US")
	british := audience.NewPlayer("bob", "s-2", "en-GB")
	french := audience.NewPlayer("claude", "s-3", "fr")
	noLocale := audience.NewPlayer("dave", "s-4", "")

	tests := []struct {
		name   string
		sender domain.Audience
		target domain.Audience
		kind   domain.Kind
	}{
		{name: "Same base language", sender: english, target: british, kind: domain.KindChat},
		{name: "Sender without locale", sender: noLocale, target: french, kind: domain.KindChat},
		{name: "Recipient without locale", sender: english, target: noLocale, kind: domain.KindChat},
		{name: "Anonymous sender", sender: audience.Empty(), target: french, kind: domain.KindChat},
		{name: "Server message", sender: english, target: french, kind: domain.KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			out, err := processor.Process(context.Background(), domain.NewMessageContext(tt.sender, tt.target, "hello", tt.kind))
			req.NoError(err)
			req.Equal("hello", out)
		})
	}
}

func TestTranslation_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	alice := audience.NewPlayer("alice", "s-1", "en")
	bob := audience.NewPlayer("bob", "s-2", "fr")

	tests := []struct {
		name       string
		translated string
		err        error
		wantErr    bool
	}{
		{name: "Unsupported language keeps the message", err: errors.UnsupportedLanguage(language.French)},
		{name: "Backend failure keeps the message", err: fmt.Errorf("timeout"), wantErr: true},
		{name: "Translation equal to the text", translated: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			tr := mocks.NewMockTranslator(ctrl)
			tr.EXPECT().Translate(gomock.Any(), "hello", translator.AutoDetect, language.French).
				Return(tt.translated, tt.err)

			out, err := NewTranslation(tr, placeholder.Identity, log).
				Process(context.Background(), domain.NewMessageContext(alice, bob, "hello", domain.KindChat))

			req.Equal(tt.wantErr, err != nil)
			req.Equal("hello", out)
		})
	}
}

func TestTranslation_PresetFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	alice := audience.NewPlayer("alice", "s-1", "en")
	bob := audience.NewPlayer("bob", "s-2", "fr")

	tests := []struct {
		name      string
		formatted string
		err       error
		wantErr   bool
	}{
		{name: "Blank preset keeps the message", formatted: "  "},
		{name: "Empty preset keeps the message", formatted: ""},
		{name: "Failing preset keeps the message", err: fmt.Errorf("no template"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			tr := mocks.NewMockTranslator(ctrl)
			presets := mocks.NewMockPlaceholders(ctrl)

			// Given a translation the preset cannot render
			tr.EXPECT().Translate(gomock.Any(), "hello", translator.AutoDetect, language.French).
				Return("bonjour", nil)
			presets.EXPECT().Format(gomock.Any(), bob, TranslatedPreset, gomock.Any()).
				Return(tt.formatted, tt.err)

			// When the message is processed
			out, err := NewTranslation(tr, presets, log).
				Process(context.Background(), domain.NewMessageContext(alice, bob, "hello", domain.KindChat))

			// Then the original text survives
			req.Equal(tt.wantErr, err != nil)
			req.Equal("hello", out)
		})
	}
}

func TestTranslation_NoneTranslator(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	alice := audience.NewPlayer("alice", "s-1", "en")
	bob := audience.NewPlayer("bob", "s-2", "fr")

	out, err := NewTranslation(translator.None, placeholder.Identity, log).
		Process(context.Background(), domain.NewMessageContext(alice, bob, "hello", domain.KindChat))

	req.NoError(err)
	req.Equal("hello", out)
}
