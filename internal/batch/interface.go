package batch

import "context"

// Runner drives the translator over an ordered list of caption texts.
type Runner interface {
	// Run translates every text in order and returns the results aligned
	// by position. It is synchronous; callers that must stay responsive
	// run it in a goroutine and cancel through ctx.
	Run(ctx context.Context, texts []string) ([]string, error)
}

// Listener receives batch lifecycle events, the hook a progress display
// attaches to. A nil listener is valid and drops all events.
type Listener interface {
	// Started fires once the provider probe has passed, before item one.
	Started()
	// Progress fires after every item with a 0..100 percentage.
	Progress(percent int)
	// Finished fires with the full ordered result list, only after all
	// items processed. Never fires on error or cancellation.
	Finished(translations []string)
	// Failed fires with the error message when the batch aborts.
	Failed(msg string)
}
