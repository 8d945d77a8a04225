package translator

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

const translatePrompt = `You are a professional subtitle translator. Translate the following subtitle line into %s.

Rules:
- Output ONLY the translated line, no quotes, no notes, no extra formatting
- Keep the tone natural and concise, suitable for on-screen subtitles
- Keep proper nouns and technical terms recognizable

Subtitle line:
%s`

// Probe checks that the provider endpoint answers through the configured
// transport. Any HTTP response counts as reachable; the probe exists to
// catch transport-level failures (no network, dead proxy) before a batch
// commits to per-line calls.
func (t *implTranslator) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.cfg.ProbeURL, nil)
	if err != nil {
		return &ProviderUnreachableError{Err: err}
	}

	resp, err := t.probeClient.Do(req)
	if err != nil {
		return &ProviderUnreachableError{Err: err}
	}
	resp.Body.Close()

	t.logger.Debug(ctx, "provider probe %s: %s", t.cfg.ProbeURL, resp.Status)
	return nil
}

// Translate sends one caption line to Gemini with bounded retries. A failed
// attempt rotates to the next API key and waits before retrying; exhausting
// all attempts yields a TranslationError wrapping the last cause.
func (t *implTranslator) Translate(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(translatePrompt, t.cfg.TargetLanguage, text)

	var lastErr error
	for attempt := 1; attempt <= t.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(t.retryDelay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		out, err := t.generate(ctx, prompt)
		if err == nil {
			return strings.TrimSpace(out), nil
		}

		lastErr = err
		t.logger.Warn(ctx, "translation attempt %d/%d failed: %v", attempt, t.maxAttempts, err)
		t.rotateKey()
	}

	return "", &TranslationError{Err: lastErr}
}

// callGemini performs one GenerateContent call with the current API key.
func (t *implTranslator) callGemini(ctx context.Context, prompt string) (string, error) {
	key := t.cfg.APIKeys[t.currentKey]

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     key,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: t.httpClient,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, t.cfg.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		if text != "" {
			return text, nil
		}
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func (t *implTranslator) rotateKey() {
	t.currentKey = (t.currentKey + 1) % len(t.cfg.APIKeys)
}
