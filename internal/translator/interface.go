package translator

import "context"

// Translator sends single caption lines to the translation provider.
type Translator interface {
	// Probe verifies the provider is reachable. Callers run it once
	// before a batch; no per-text call should be made if it fails.
	Probe(ctx context.Context) error
	// Translate returns the text rendered in the configured target
	// language. Blank input is the caller's job to short-circuit.
	Translate(ctx context.Context, text string) (string, error)
}
