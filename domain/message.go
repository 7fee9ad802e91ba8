// Package domain contains core concepts of the chat pipeline.
// This file defines the message context flowing through processors.
// A MessageContext is immutable: every stage receives a copy.
package domain

import (
	"github.com/google/uuid"
)

type Kind int

const (
	KindChat Kind = iota
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindChat:
		return "chat"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Well-known placeholder variables filled by the dispatcher and the processors.
const (
	MessageVar    = "message"
	SenderVar     = "sender"
	TranslatedVar = "translated"
)

// MessageContext represents one outbound message on its way to a target.
type MessageContext struct {
	ID      uuid.UUID // correlates every log line of one dispatch
	Sender  Audience
	Target  Audience
	Message string
	Kind    Kind
}

func NewMessageContext(sender, target Audience, message string, kind Kind) MessageContext {
	return MessageContext{
		ID:      uuid.New(),
		Sender:  sender,
		Target:  target,
		Message: message,
		Kind:    kind,
	}
}

// WithMessage returns a copy carrying another message text.
func (m MessageContext) WithMessage(message string) MessageContext {
	m.Message = message
	return m
}

// WithTarget returns a copy addressed to another target.
func (m MessageContext) WithTarget(target Audience) MessageContext {
	m.Target = target
	return m
}
