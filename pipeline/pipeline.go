// Package pipeline runs an ordered chain of named processors over a message.
//
// Each stage sees the result of the previous one. A failing stage (error,
// panic or timeout) is logged and skipped, the text it received goes on to
// the next stage. An empty result stops the chain: the message is dropped.
package pipeline

import (
	"chat-flex/contract"
	"chat-flex/domain"
	"chat-flex/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"
)

type stage struct {
	name      string
	processor contract.Processor
}

type Pipeline struct {
	name         string
	log          *slog.Logger
	stageTimeout time.Duration

	mu     sync.RWMutex
	stages []stage
}

type Option func(*Pipeline)

// WithStageTimeout bounds the time given to each processor. Zero disables it.
func WithStageTimeout(timeout time.Duration) Option {
	return func(p *Pipeline) { p.stageTimeout = timeout }
}

func New(name string, log *slog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{name: name, log: log}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Register appends a processor at the end of the chain.
// Names are unique: a second registration under the same name is rejected.
func (p *Pipeline) Register(name string, processor contract.Processor) error {
	if name == "" || processor == nil {
		return errors.ErrInvalidProcessor
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if lo.ContainsBy(p.stages, func(s stage) bool { return s.name == name }) {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateProcessor, name)
	}
	p.stages = append(p.stages, stage{name: name, processor: processor})
	p.log.Debug("Processor registered", "pipeline", p.name, "processor", name)
	return nil
}

// Names returns the registered processor names in call order.
func (p *Pipeline) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return lo.Map(p.stages, func(s stage, _ int) string { return s.name })
}

// Pump runs every processor in registration order and returns the final text.
func (p *Pipeline) Pump(ctx context.Context, mc domain.MessageContext) string {
	p.mu.RLock()
	stages := p.stages
	p.mu.RUnlock()

	result := mc.Message
	for _, s := range stages {
		if ctx.Err() != nil {
			p.log.Debug("Pump interrupted", "pipeline", p.name, "message_id", mc.ID, "error", ctx.Err())
			break
		}

		out, err := p.apply(ctx, s, mc.WithMessage(result))
		if err != nil {
			p.log.Warn("Processor failed, keeping previous message",
				"pipeline", p.name,
				"processor", s.name,
				"message_id", mc.ID,
				"sender", domain.NameOf(mc.Sender),
				"target", domain.NameOf(mc.Target),
				"error", err)
			continue
		}
		result = out
		if result == "" {
			p.log.Debug("Message dropped", "pipeline", p.name, "processor", s.name, "message_id", mc.ID)
			break
		}
	}
	return result
}

type outcome struct {
	message string
	err     error
}

// apply runs one processor in its own goroutine so a slow stage can be abandoned.
// The channel is buffered: a late processor never blocks on send.
func (p *Pipeline) apply(ctx context.Context, s stage, mc domain.MessageContext) (string, error) {
	stageCtx := ctx
	if p.stageTimeout > 0 {
		var cancel context.CancelFunc
		stageCtx, cancel = context.WithTimeout(ctx, p.stageTimeout)
		defer cancel()
	}

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("%w: %v", errors.ErrProcessorPanic, r)}
			}
		}()
		message, err := s.processor.Process(stageCtx, mc)
		done <- outcome{message: message, err: err}
	}()

	return await(ctx, stageCtx, done)
}

// await waits for the stage outcome or its deadline, whichever comes first.
func await(ctx, stageCtx context.Context, done <-chan outcome) (string, error) {
	select {
	case o := <-done:
		return o.message, o.err
	case <-stageCtx.Done():
		// A result that landed together with the deadline still counts.
		select {
		case o := <-done:
			return o.message, o.err
		default:
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", errors.ErrStageTimeout
	}
}
