// Package processor holds the message processors run by the pipeline.
package processor

import (
	"chat-flex/contract"
	"chat-flex/domain"
	"context"
)

const (
	ModerationFilterName = "moderation_filter"
	TranslationName      = "translation"
)

// ProcessorFunc adapts a function to contract.Processor.
type ProcessorFunc func(ctx context.Context, mc domain.MessageContext) (string, error)

func (f ProcessorFunc) Process(ctx context.Context, mc domain.MessageContext) (string, error) {
	return f(ctx, mc)
}

// Registrar accepts named processors.
type Registrar interface {
	Register(name string, processor contract.Processor) error
}

// RegisterDefaults installs the filter before the translation so filtered
// words are never sent to a translation backend.
func RegisterDefaults(r Registrar, filter *ModerationFilter, translation *Translation) error {
	if err := r.Register(ModerationFilterName, filter); err != nil {
		return err
	}
	return r.Register(TranslationName, translation)
}
