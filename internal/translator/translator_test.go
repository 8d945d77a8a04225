package translator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fristyy/SrtFileTool/internal/logger"
)

func newTestTranslator(t *testing.T, generate func(ctx context.Context, prompt string) (string, error)) *implTranslator {
	t.Helper()
	tr := &implTranslator{
		cfg: Config{
			APIKeys:        []string{"key-a", "key-b"},
			Model:          "gemini-2.5-flash",
			TargetLanguage: "Simplified Chinese",
		},
		logger:      logger.New("error"),
		maxAttempts: 3,
		retryDelay:  time.Millisecond,
		generate:    generate,
	}
	return tr
}

func TestTranslateRetriesThenSucceeds(t *testing.T) {
	calls := 0
	tr := newTestTranslator(t, func(ctx context.Context, prompt string) (string, error) {
		calls++
		if calls < 3 {
			return "", fmt.Errorf("transient failure %d", calls)
		}
		return "你好\n", nil
	})

	got, err := tr.Translate(context.Background(), "Hello")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "你好" {
		t.Errorf("Translate() = %q, want %q", got, "你好")
	}
	if calls != 3 {
		t.Errorf("provider called %d times, want 3", calls)
	}
}

func TestTranslateExhaustsRetries(t *testing.T) {
	calls := 0
	tr := newTestTranslator(t, func(ctx context.Context, prompt string) (string, error) {
		calls++
		return "", errors.New("boom")
	})

	_, err := tr.Translate(context.Background(), "Hello")
	if err == nil {
		t.Fatal("Translate() should fail after exhausting retries")
	}

	var terr *TranslationError
	if !errors.As(err, &terr) {
		t.Errorf("error = %T, want *TranslationError", err)
	}
	if calls != 3 {
		t.Errorf("provider called %d times, want 3", calls)
	}
}

func TestTranslateRotatesKeysOnFailure(t *testing.T) {
	tr := newTestTranslator(t, func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("boom")
	})

	tr.Translate(context.Background(), "Hello")

	// Three failed attempts over two keys land back on the second key.
	if tr.currentKey != 1 {
		t.Errorf("currentKey = %d, want 1", tr.currentKey)
	}
}

func TestTranslateCancelledDuringRetryWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tr := newTestTranslator(t, func(ctx context.Context, prompt string) (string, error) {
		cancel()
		return "", errors.New("boom")
	})
	tr.retryDelay = time.Minute

	_, err := tr.Translate(ctx, "Hello")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound) // any response means reachable
	}))
	defer srv.Close()

	tr := newTestTranslator(t, nil)
	tr.cfg.ProbeURL = srv.URL
	tr.probeClient = srv.Client()

	if err := tr.Probe(context.Background()); err != nil {
		t.Errorf("Probe() error = %v", err)
	}
}

func TestProbeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	tr := newTestTranslator(t, nil)
	tr.cfg.ProbeURL = url
	tr.probeClient = &http.Client{Timeout: time.Second}

	err := tr.Probe(context.Background())
	if err == nil {
		t.Fatal("Probe() should fail against a closed server")
	}

	var perr *ProviderUnreachableError
	if !errors.As(err, &perr) {
		t.Errorf("error = %T, want *ProviderUnreachableError", err)
	}
}

func TestNewValidation(t *testing.T) {
	log := logger.New("error")

	if _, err := New(Config{}, log); err == nil {
		t.Error("New() should fail without API keys")
	}

	if _, err := New(Config{APIKeys: []string{"k"}, Proxy: "://bad"}, log); err == nil {
		t.Error("New() should fail with an invalid proxy url")
	}

	tr, err := New(Config{APIKeys: []string{"k"}, Proxy: "http://127.0.0.1:7890"}, log)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if tr == nil {
		t.Fatal("New() returned nil translator")
	}
}
