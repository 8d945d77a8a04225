package processor

import (
	"context"

	"github.com/fristyy/SrtFileTool/internal/logger"
)

// logListener renders batch events to the log.
type logListener struct {
	ctx    context.Context
	logger logger.Logger
}

func (l *logListener) Started() {
	l.logger.Info(l.ctx, "Translation started")
}

func (l *logListener) Progress(percent int) {
	l.logger.Info(l.ctx, "Translation progress: %d%%", percent)
}

func (l *logListener) Finished(translations []string) {
	l.logger.Info(l.ctx, "Translation finished: %d items", len(translations))
}

func (l *logListener) Failed(msg string) {
	l.logger.Error(l.ctx, "Translation failed: %s", msg)
}
