package storage

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// Open opens a badger database at path, or an in-memory one when path is empty.
// Badger's own logs are forwarded to log.
func Open(path string, log *slog.Logger) (*badger.DB, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts.WithLogger(badgerLogger{log: log.With("component", "badger")}))
	if err != nil {
		return nil, fmt.Errorf("opening badger at %q: %w", path, err)
	}
	return db, nil
}

// badgerLogger redirects badger's printf style logging to slog.
// Badger is chatty at info level, so info lines are demoted to debug.
type badgerLogger struct {
	log *slog.Logger
}

func (b badgerLogger) Errorf(format string, args ...interface{}) {
	b.log.Error(clean(format, args...))
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.log.Warn(clean(format, args...))
}

func (b badgerLogger) Infof(format string, args ...interface{}) {
	b.log.Debug(clean(format, args...))
}

func (b badgerLogger) Debugf(format string, args ...interface{}) {
	b.log.Debug(clean(format, args...))
}

func clean(format string, args ...interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
