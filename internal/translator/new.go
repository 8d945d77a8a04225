package translator

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fristyy/SrtFileTool/internal/logger"
)

// Config carries everything the provider client needs. Proxy applies only
// to this client's transport; no process-wide proxy environment is touched.
type Config struct {
	APIKeys        []string
	Model          string
	TargetLanguage string
	Proxy          string
	ProbeURL       string
}

type implTranslator struct {
	cfg         Config
	logger      logger.Logger
	httpClient  *http.Client
	probeClient *http.Client
	currentKey  int

	maxAttempts int
	retryDelay  time.Duration
	generate    func(ctx context.Context, prompt string) (string, error)
}

// New creates a Gemini-backed Translator.
func New(cfg Config, log logger.Logger) (Translator, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("at least one API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.TargetLanguage == "" {
		cfg.TargetLanguage = "Simplified Chinese"
	}
	if cfg.ProbeURL == "" {
		cfg.ProbeURL = "https://generativelanguage.googleapis.com/"
	}

	transport := &http.Transport{}
	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("parse proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	t := &implTranslator{
		cfg:         cfg,
		logger:      log,
		httpClient:  &http.Client{Transport: transport, Timeout: 2 * time.Minute},
		probeClient: &http.Client{Transport: transport, Timeout: 5 * time.Second},
		maxAttempts: 3,
		retryDelay:  time.Second,
	}
	t.generate = t.callGemini
	return t, nil
}
