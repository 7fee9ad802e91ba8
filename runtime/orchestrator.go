// Package runtime wires the pipeline, the dispatcher and the supervised workers.
// It orchestrates the system without containing message rules.
package runtime

import (
	"chat-flex/contract"
	"chat-flex/domain"
	"chat-flex/errors"
	"chat-flex/moderation"
	"chat-flex/runtime/workers"
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const capacityWarnRatio = 0.8

type Orchestrator struct {
	mu            sync.Mutex
	log           *slog.Logger
	supervisor    contract.ISupervisor
	dispatcher    *Dispatcher
	exemptions    *Exemptions
	sessionEvents chan domain.SessionEvent
	preset        string
	started       bool

	metricInterval time.Duration
}

type OrchestratorOption func(*Orchestrator)

// WithCapacityReport samples the session channel every interval.
func WithCapacityReport(interval time.Duration) OrchestratorOption {
	return func(o *Orchestrator) { o.metricInterval = interval }
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, dispatcher *Dispatcher,
	exemptions *Exemptions, bufferSize int, preset string, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		log:           log,
		supervisor:    supervisor,
		dispatcher:    dispatcher,
		exemptions:    exemptions,
		sessionEvents: make(chan domain.SessionEvent, bufferSize),
		preset:        preset,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Start registers the session worker and runs the supervisor.
// It blocks until the context is cancelled or Stop is called.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	if o.started {
		o.mu.Unlock()
		return fmt.Errorf("orchestrator already started")
	}
	o.started = true
	o.supervisor.Add(workers.NewSessionWorker(o.exemptions, o.sessionEvents, o.log))
	if o.metricInterval > 0 {
		o.supervisor.Add(workers.NewChannelCapacityWorker(o.log, []workers.NamedChannel{
			{Name: "session_events", Channel: o.sessionEvents},
		}, o.metricInterval, capacityWarnRatio))
	}
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
	return nil
}

// Publish hands a session signal to the session worker without blocking.
// A leave is applied immediately and never dropped. Other signals are dropped
// when the buffer is full, in which case Publish returns false.
func (o *Orchestrator) Publish(evt domain.SessionEvent) bool {
	if evt.Type == domain.SessionLeave {
		o.exemptions.Remove(evt.SessionID)
		o.log.Debug("Session left", "session_id", evt.SessionID)
		return true
	}

	optIn := evt.Type == domain.SessionPacket && evt.Packet == workers.FooClientPacket && evt.SessionID != ""
	if optIn {
		o.exemptions.Announce(evt.SessionID)
	}
	select {
	case o.sessionEvents <- evt:
		return true
	default:
		if optIn {
			o.exemptions.Withdraw(evt.SessionID)
		}
		o.log.Warn("Session channel full, dropping event", "session_id", evt.SessionID)
		return false
	}
}

// Dispatch sends a chat message from sender to every recipient of target.
func (o *Orchestrator) Dispatch(ctx context.Context, sender, target domain.Audience, message string) Summary {
	mc := domain.NewMessageContext(sender, target, message, domain.KindChat)
	return o.dispatcher.Dispatch(ctx, mc, o.preset)
}

// Stop cancels the supervised workers.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}

// PrepareModeration loads the censored and blocked word lists and builds the moderator.
// The blocked list is optional, the censored one is not.
func PrepareModeration(loader *moderation.WordLoader, charReplacement rune, log *slog.Logger) (*moderation.Moderator, error) {
	censored, err := loader.LoadAll(moderation.CensoredDir)
	if err != nil {
		return nil, err
	}
	log.Info(fmt.Sprintf("%d censored files loaded [%s]",
		len(censored.Languages), strings.Join(censored.Languages, ",")))
	log.Info(fmt.Sprintf("%d unique censored words loaded", len(censored.Words)))

	var blockedWords []string
	blocked, err := loader.LoadAll(moderation.BlockedDir)
	switch {
	case err == nil:
		blockedWords = blocked.Words
		log.Info(fmt.Sprintf("%d unique blocked words loaded", len(blockedWords)))
	case stderrors.Is(err, errors.ErrEmptyWords), stderrors.Is(err, fs.ErrNotExist):
		log.Info("No blocked word loaded")
	default:
		return nil, err
	}

	return moderation.NewModerator(censored.Words, blockedWords, charReplacement, log)
}
