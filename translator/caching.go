package translator

import (
	"chat-flex/contract"
	"context"
	"crypto/sha256"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/text/language"
)

// CachePrefix starts every translation key stored in badger.
const CachePrefix = "tr:"

// Caching keeps successful translations in badger.
// Failures are never cached so a recovering backend is retried.
type Caching struct {
	next contract.Translator
	db   *badger.DB
	ttl  time.Duration
	log  *slog.Logger
}

// NewCaching wraps next. A zero ttl keeps entries forever.
func NewCaching(next contract.Translator, db *badger.DB, ttl time.Duration, log *slog.Logger) *Caching {
	return &Caching{next: next, db: db, ttl: ttl, log: log}
}

func (c *Caching) Translate(ctx context.Context, text string, source, target language.Tag) (string, error) {
	key := cacheKey(text, source, target)

	if cached, ok := c.get(key); ok {
		return cached, nil
	}

	translated, err := c.next.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(key, []byte(translated))
		if c.ttl > 0 {
			entry = entry.WithTTL(c.ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		c.log.Warn("Unable to cache translation", "error", err)
	}
	return translated, nil
}

func (c *Caching) IsSupportedLanguage(locale language.Tag) bool {
	return c.next.IsSupportedLanguage(locale)
}

func (c *Caching) get(key []byte) (string, bool) {
	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !stderrors.Is(err, badger.ErrKeyNotFound) {
			c.log.Warn("Unable to read translation cache", "error", err)
		}
		return "", false
	}
	return string(value), true
}

// cacheKey is formatted as "tr:{source}:{target}:{sha256(text)}".
func cacheKey(text string, source, target language.Tag) []byte {
	return []byte(fmt.Sprintf("%s%s:%s:%x", CachePrefix, source, target, sha256.Sum256([]byte(text))))
}
