package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type stubAudience map[Key]string

func (s stubAudience) Audiences() []Audience { return []Audience{s} }

func (s stubAudience) Metadata(key Key) (string, bool) {
	value, ok := s[key]
	return value, ok
}

func (s stubAudience) Send(context.Context, Component, Component, Audience) error { return nil }

func TestMessageContext_CopiesAreIndependent(t *testing.T) {
	req := require.New(t)
	sender := stubAudience{KeyName: "alice"}
	target := stubAudience{KeyName: "bob"}
	other := stubAudience{KeyName: "carol"}

	// Given a message context
	mc := NewMessageContext(sender, target, "hello", KindChat)

	// When deriving copies
	changed := mc.WithMessage("bye").WithTarget(other)

	// Then the original is untouched and the id is shared
	req.Equal("hello", mc.Message)
	req.Equal("bob", NameOf(mc.Target))
	req.Equal("bye", changed.Message)
	req.Equal("carol", NameOf(changed.Target))
	req.Equal(mc.ID, changed.ID)
	req.Equal(KindChat, changed.Kind)
}

func TestAudienceHelpers(t *testing.T) {
	req := require.New(t)

	full := stubAudience{KeyName: "alice", KeySessionID: "s-1", KeyLocale: "pt-BR"}
	req.Equal("alice", NameOf(full))
	id, ok := SessionOf(full)
	req.True(ok)
	req.Equal("s-1", id)
	locale, ok := LocaleOf(full)
	req.True(ok)
	req.Equal(language.BrazilianPortuguese, locale)

	anonymous := stubAudience{}
	req.Equal("Unknown", NameOf(anonymous))
	req.Equal("Unknown", NameOf(nil))
	_, ok = SessionOf(anonymous)
	req.False(ok)
	_, ok = LocaleOf(stubAudience{KeyLocale: "??"})
	req.False(ok)
}

func TestKind_String(t *testing.T) {
	req := require.New(t)
	req.Equal("chat", KindChat.String())
	req.Equal("server", KindServer.String())
	req.Equal("unknown", Kind(42).String())
}
