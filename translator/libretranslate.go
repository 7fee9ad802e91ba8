package translator

import (
	"bytes"
	"chat-flex/errors"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/time/rate"
)

const (
	autoCode       = "auto"
	defaultTimeout = 10 * time.Second
)

// LibreTranslate talks to a LibreTranslate compatible HTTP endpoint.
// The supported languages are unknown until Refresh succeeds.
type LibreTranslate struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	log     *slog.Logger

	mu        sync.RWMutex
	languages map[language.Base]string // base -> code expected by the server
}

type LibreTranslateOption func(*LibreTranslate)

func WithAPIKey(key string) LibreTranslateOption {
	return func(l *LibreTranslate) { l.apiKey = key }
}

func WithHTTPClient(client *http.Client) LibreTranslateOption {
	return func(l *LibreTranslate) { l.client = client }
}

// WithRate caps the number of requests per second sent to the server.
func WithRate(perSecond int) LibreTranslateOption {
	return func(l *LibreTranslate) {
		if perSecond > 0 {
			l.limiter = rate.NewLimiter(rate.Limit(perSecond), perSecond)
		}
	}
}

func NewLibreTranslate(baseURL string, log *slog.Logger, opts ...LibreTranslateOption) *LibreTranslate {
	l := &LibreTranslate{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: defaultTimeout},
		limiter:   rate.NewLimiter(rate.Inf, 1),
		log:       log,
		languages: make(map[language.Base]string),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

type languageResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Refresh loads the languages offered by the server.
func (l *LibreTranslate) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/languages", nil)
	if err != nil {
		return err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrTranslationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: languages returned status %d", errors.ErrTranslationFailed, resp.StatusCode)
	}

	var payload []languageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrTranslationFailed, err)
	}

	languages := make(map[language.Base]string, len(payload))
	for _, lang := range payload {
		tag, err := language.Parse(lang.Code)
		if err != nil {
			l.log.Debug("Skipping unknown language code", "code", lang.Code)
			continue
		}
		base, _ := tag.Base()
		if _, ok := languages[base]; !ok {
			languages[base] = lang.Code
		}
	}

	l.mu.Lock()
	l.languages = languages
	l.mu.Unlock()
	l.log.Info("Translation languages loaded", "count", len(languages))
	return nil
}

// IsSupportedLanguage is always true for AutoDetect, the server detects the source itself.
func (l *LibreTranslate) IsSupportedLanguage(locale language.Tag) bool {
	if locale == AutoDetect {
		return true
	}
	_, ok := l.code(locale)
	return ok
}

func (l *LibreTranslate) Translate(ctx context.Context, text string, source, target language.Tag) (string, error) {
	targetCode, ok := l.code(target)
	if !ok || target == AutoDetect {
		return "", errors.UnsupportedLanguage(target)
	}
	sourceCode := autoCode
	if source != AutoDetect {
		if sourceCode, ok = l.code(source); !ok {
			return "", errors.UnsupportedLanguage(source)
		}
	}

	if err := l.limiter.Wait(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(translateRequest{
		Q:      text,
		Source: sourceCode,
		Target: targetCode,
		Format: "text",
		APIKey: l.apiKey,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrTranslationFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrTranslationFailed, err)
	}
	var payload translateResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("%w: status %d", errors.ErrTranslationFailed, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", errors.ErrTranslationFailed, resp.StatusCode, payload.Error)
	}
	return payload.TranslatedText, nil
}

func (l *LibreTranslate) code(locale language.Tag) (string, bool) {
	base, _ := locale.Base()
	l.mu.RLock()
	defer l.mu.RUnlock()
	code, ok := l.languages[base]
	return code, ok
}
