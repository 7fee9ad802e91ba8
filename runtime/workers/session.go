package workers

import (
	"chat-flex/domain"
	"context"
	"log/slog"
)

// FooClientPacket is sent by clients asking for their messages to be anonymous.
const FooClientPacket = "fooCheck"

// ExemptionStore is mutated by session signals.
type ExemptionStore interface {
	Add(sessionID string)
	Remove(sessionID string)
}

// SessionWorker keeps the exemptions in sync with session signals.
type SessionWorker struct {
	exemptions ExemptionStore
	events     <-chan domain.SessionEvent
	log        *slog.Logger
}

func NewSessionWorker(exemptions ExemptionStore, events <-chan domain.SessionEvent, log *slog.Logger) *SessionWorker {
	return &SessionWorker{exemptions: exemptions, events: events, log: log}
}

func (w *SessionWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.handle(evt)
		}
	}
}

func (w *SessionWorker) handle(evt domain.SessionEvent) {
	if evt.SessionID == "" {
		return
	}
	switch evt.Type {
	case domain.SessionPacket:
		if evt.Packet == FooClientPacket {
			w.exemptions.Add(evt.SessionID)
			w.log.Debug("Session exempted", "session_id", evt.SessionID)
		}
	case domain.SessionLeave:
		w.exemptions.Remove(evt.SessionID)
	}
}
