package processor

import (
	"chat-flex/domain"
	"chat-flex/moderation"
	"context"
	"log/slog"
)

// ModerationFilter drops messages containing a blocked word and masks censored words.
type ModerationFilter struct {
	moderator *moderation.Moderator
	log       *slog.Logger
}

func NewModerationFilter(moderator *moderation.Moderator, log *slog.Logger) *ModerationFilter {
	return &ModerationFilter{moderator: moderator, log: log}
}

func (f *ModerationFilter) Process(_ context.Context, mc domain.MessageContext) (string, error) {
	if word, blocked := f.moderator.Blocked(mc.Message); blocked {
		f.log.Info("Message blocked",
			"message_id", mc.ID,
			"sender", domain.NameOf(mc.Sender),
			"word", word)
		return "", nil
	}
	censored, _ := f.moderator.Censor(mc.Message)
	return censored, nil
}
