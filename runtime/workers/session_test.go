package workers

import (
	"chat-flex/domain"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type exemptionSet struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func (e *exemptionSet) Add(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ids[id] = struct{}{}
}

func (e *exemptionSet) Remove(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.ids, id)
}

func (e *exemptionSet) has(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.ids[id]
	return ok
}

func TestSessionWorker(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	set := &exemptionSet{ids: make(map[string]struct{})}
	events := make(chan domain.SessionEvent, 10)

	// Given a session asking for anonymity, another sending an unrelated packet
	events <- domain.SessionEvent{Type: domain.SessionPacket, SessionID: "s-1", Packet: FooClientPacket, At: time.Now()}
	events <- domain.SessionEvent{Type: domain.SessionPacket, SessionID: "s-2", Packet: "other"}
	events <- domain.SessionEvent{Type: domain.SessionPacket, SessionID: "", Packet: FooClientPacket}
	close(events)

	// When the worker drains the channel
	err := NewSessionWorker(set, events, log).Run(context.Background())

	// Then only the first session is exempted
	req.NoError(err)
	req.True(set.has("s-1"))
	req.False(set.has("s-2"))
	req.Len(set.ids, 1)
}

func TestSessionWorker_LeaveRemovesExemption(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	set := &exemptionSet{ids: make(map[string]struct{})}
	events := make(chan domain.SessionEvent, 10)

	events <- domain.SessionEvent{Type: domain.SessionPacket, SessionID: "s-1", Packet: FooClientPacket}
	events <- domain.SessionEvent{Type: domain.SessionLeave, SessionID: "s-1"}
	close(events)

	req.NoError(NewSessionWorker(set, events, log).Run(context.Background()))
	req.False(set.has("s-1"))
}

func TestSessionWorker_StopsOnCancel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	set := &exemptionSet{ids: make(map[string]struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSessionWorker(set, make(chan domain.SessionEvent), log).Run(ctx)
	req.ErrorIs(err, context.Canceled)
}
