//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-flex/domain"
	"context"
	"reflect"

	"golang.org/x/text/language"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging during supervision.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Processor transforms the message of a context.
// It never mutates the context and must be safe for concurrent use.
// An empty result means the message must not be delivered.
type Processor interface {
	Process(ctx context.Context, mc domain.MessageContext) (string, error)
}

// MessagePipeline applies every registered processor to a context.
type MessagePipeline interface {
	Pump(ctx context.Context, mc domain.MessageContext) string
}

// Translator translates text between two locales.
// A source equal to translator.AutoDetect asks the backend to detect it.
type Translator interface {
	Translate(ctx context.Context, text string, source, target language.Tag) (string, error)
	IsSupportedLanguage(locale language.Tag) bool
}

// Placeholders formats a named preset with a bag of variables for a target.
// A blank result suppresses delivery.
type Placeholders interface {
	Format(ctx context.Context, target domain.Audience, preset string, vars map[string]string) (string, error)
}

// Decoder turns a formatted string into what the transport needs.
type Decoder interface {
	Decode(text string) domain.Component
}

type ExemptionChecker interface {
	Contains(sessionID string) bool
}
