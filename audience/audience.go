// Package audience provides in-memory audiences: single players, groups and
// the anonymous empty audience.
package audience

import (
	"chat-flex/domain"
	"context"
	"sync"

	"github.com/samber/lo"
)

type empty struct{}

var anonymous domain.Audience = empty{}

// Empty is the anonymous audience: no members, no metadata, sending is a no-op.
func Empty() domain.Audience {
	return anonymous
}

func (empty) Audiences() []domain.Audience { return nil }

func (empty) Metadata(domain.Key) (string, bool) { return "", false }

func (empty) Send(context.Context, domain.Component, domain.Component, domain.Audience) error {
	return nil
}

// Delivery is one message received by a player.
type Delivery struct {
	Formatted domain.Component
	Raw       domain.Component
	Source    domain.Audience
}

// Player is a single recipient recording what it receives.
type Player struct {
	metadata map[domain.Key]string

	mu         sync.Mutex
	deliveries []Delivery
}

func NewPlayer(name, sessionID, locale string) *Player {
	metadata := map[domain.Key]string{
		domain.KeyName:      name,
		domain.KeySessionID: sessionID,
	}
	if locale != "" {
		metadata[domain.KeyLocale] = locale
	}
	return &Player{metadata: metadata}
}

func (p *Player) Audiences() []domain.Audience {
	return []domain.Audience{p}
}

func (p *Player) Metadata(key domain.Key) (string, bool) {
	value, ok := p.metadata[key]
	return value, ok
}

func (p *Player) Send(ctx context.Context, formatted, raw domain.Component, source domain.Audience) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deliveries = append(p.deliveries, Delivery{Formatted: formatted, Raw: raw, Source: source})
	return nil
}

// Deliveries returns a copy of everything received so far.
func (p *Player) Deliveries() []Delivery {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Delivery(nil), p.deliveries...)
}

// Group is a set of audiences expanded to their single recipients.
type Group struct {
	members []domain.Audience
}

func NewGroup(members ...domain.Audience) *Group {
	return &Group{members: members}
}

func (g *Group) Audiences() []domain.Audience {
	return lo.FlatMap(g.members, func(member domain.Audience, _ int) []domain.Audience {
		return member.Audiences()
	})
}

func (g *Group) Metadata(domain.Key) (string, bool) { return "", false }

// Send forwards to every member and returns the first error.
func (g *Group) Send(ctx context.Context, formatted, raw domain.Component, source domain.Audience) error {
	var first error
	for _, member := range g.Audiences() {
		if err := member.Send(ctx, formatted, raw, source); err != nil && first == nil {
			first = err
		}
	}
	return first
}
