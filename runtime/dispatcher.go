package runtime

import (
	"chat-flex/audience"
	"chat-flex/contract"
	"chat-flex/domain"
	"chat-flex/errors"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type outcome int

const (
	failed outcome = iota
	delivered
	suppressed
)

// Summary counts what happened to each recipient of one dispatch.
type Summary struct {
	Total      int
	Delivered  int
	Suppressed int
	Failed     int
}

// Dispatcher runs the pipeline once per recipient and delivers the results.
type Dispatcher struct {
	log            *slog.Logger
	pipeline       contract.MessagePipeline
	placeholders   contract.Placeholders
	decoder        contract.Decoder
	exemptions     contract.ExemptionChecker
	maxConcurrency int
}

type DispatcherOption func(*Dispatcher)

// WithMaxConcurrency bounds the number of recipients processed at the same time.
func WithMaxConcurrency(n int) DispatcherOption {
	return func(d *Dispatcher) { d.maxConcurrency = n }
}

func NewDispatcher(log *slog.Logger, pipeline contract.MessagePipeline, placeholders contract.Placeholders,
	decoder contract.Decoder, exemptions contract.ExemptionChecker, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		log:          log,
		pipeline:     pipeline,
		placeholders: placeholders,
		decoder:      decoder,
		exemptions:   exemptions,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch expands the target and handles every recipient concurrently.
// It returns once all of them are done. A failing recipient never affects the others.
func (d *Dispatcher) Dispatch(ctx context.Context, mc domain.MessageContext, preset string) Summary {
	var recipients []domain.Audience
	if mc.Target != nil {
		recipients = mc.Target.Audiences()
	}

	// Exemption is read once so every recipient sees the same source
	source := mc.Sender
	if id, ok := domain.SessionOf(mc.Sender); ok && d.exemptions.Contains(id) {
		source = audience.Empty()
	}

	outcomes := make([]outcome, len(recipients))
	var g errgroup.Group
	if d.maxConcurrency > 0 {
		g.SetLimit(d.maxConcurrency)
	}
	for i, recipient := range recipients {
		g.Go(func() error {
			outcomes[i] = d.deliver(ctx, mc, recipient, source, preset)
			return nil
		})
	}
	_ = g.Wait()

	count := func(o outcome) int {
		return lo.CountBy(outcomes, func(item outcome) bool { return item == o })
	}
	summary := Summary{
		Total:      len(recipients),
		Delivered:  count(delivered),
		Suppressed: count(suppressed),
		Failed:     count(failed),
	}
	d.log.Debug("Message dispatched",
		"message_id", mc.ID,
		"sender", domain.NameOf(mc.Sender),
		"total", summary.Total,
		"delivered", summary.Delivered,
		"suppressed", summary.Suppressed,
		"failed", summary.Failed)
	return summary
}

func (d *Dispatcher) deliver(ctx context.Context, mc domain.MessageContext, recipient, source domain.Audience, preset string) (result outcome) {
	rc := mc.WithTarget(recipient)
	rc.Kind = domain.KindChat

	defer func() {
		if r := recover(); r != nil {
			d.warn(rc, "Dispatch branch panicked", fmt.Errorf("%w: %v", errors.ErrDispatchPanic, r))
			result = failed
		}
	}()

	pumped := d.pipeline.Pump(ctx, rc)
	if isBlank(pumped) {
		return suppressed
	}

	formatted, err := d.placeholders.Format(ctx, recipient, preset, map[string]string{
		domain.MessageVar: pumped,
		domain.SenderVar:  domain.NameOf(mc.Sender),
	})
	if err != nil {
		d.warn(rc, "Unable to format message", err)
		return failed
	}
	if isBlank(formatted) {
		return suppressed
	}

	if err := recipient.Send(ctx, d.decoder.Decode(formatted), d.decoder.Decode(pumped), source); err != nil {
		d.warn(rc, "Unable to send message", err)
		return failed
	}
	return delivered
}

func (d *Dispatcher) warn(mc domain.MessageContext, msg string, err error) {
	d.log.Warn(msg,
		"message_id", mc.ID,
		"sender", domain.NameOf(mc.Sender),
		"target", domain.NameOf(mc.Target),
		"error", err)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
