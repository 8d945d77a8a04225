package batch

import (
	"context"
	"strings"
	"time"
)

// Run performs the batch sequentially: probe, then one provider call per
// non-blank text with a fixed delay after every item. Results are aligned
// by position with the input. Calls are intentionally never parallel, the
// delay is the provider rate limit.
func (r *implRunner) Run(ctx context.Context, texts []string) ([]string, error) {
	if err := r.translator.Probe(ctx); err != nil {
		r.logger.Error(ctx, "Provider probe failed: %v", err)
		r.fail(err)
		return nil, err
	}

	r.logger.Info(ctx, "Translating %d caption lines", len(texts))
	r.started()

	total := len(texts)
	results := make([]string, 0, total)
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			r.logger.Info(ctx, "Translation cancelled after %d/%d items", i, total)
			return nil, err
		}

		if strings.TrimSpace(text) == "" {
			// Blank captions never reach the provider.
			results = append(results, "")
		} else {
			out, err := r.translator.Translate(ctx, text)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					r.logger.Info(ctx, "Translation cancelled after %d/%d items", i, total)
					return nil, ctxErr
				}
				r.logger.Error(ctx, "Translation aborted at item %d/%d: %v", i+1, total, err)
				r.fail(err)
				return nil, err
			}
			results = append(results, out)
		}

		percent := int(float64(i+1)/float64(total)*100 + 0.5)
		r.progress(percent)
		r.logger.Debug(ctx, "[%d/%d] translated (%d%%)", i+1, total, percent)

		select {
		case <-time.After(r.itemDelay):
		case <-ctx.Done():
			r.logger.Info(ctx, "Translation cancelled after %d/%d items", i+1, total)
			return nil, ctx.Err()
		}
	}

	r.logger.Info(ctx, "Translation batch complete: %d items", total)
	r.finished(results)
	return results, nil
}

func (r *implRunner) started() {
	if r.listener != nil {
		r.listener.Started()
	}
}

func (r *implRunner) progress(percent int) {
	if r.listener != nil {
		r.listener.Progress(percent)
	}
}

func (r *implRunner) finished(results []string) {
	if r.listener != nil {
		r.listener.Finished(results)
	}
}

func (r *implRunner) fail(err error) {
	if r.listener != nil {
		r.listener.Failed(err.Error())
	}
}
