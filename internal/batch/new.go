package batch

import (
	"time"

	"github.com/fristyy/SrtFileTool/internal/logger"
	"github.com/fristyy/SrtFileTool/internal/translator"
)

const defaultItemDelay = 500 * time.Millisecond

type implRunner struct {
	translator translator.Translator
	listener   Listener
	logger     logger.Logger
	itemDelay  time.Duration
}

// New creates a Runner. itemDelay bounds the request rate regardless of
// per-call latency; zero or negative means the 500ms default.
func New(tr translator.Translator, l Listener, log logger.Logger, itemDelay time.Duration) Runner {
	if itemDelay <= 0 {
		itemDelay = defaultItemDelay
	}
	return &implRunner{
		translator: tr,
		listener:   l,
		logger:     log,
		itemDelay:  itemDelay,
	}
}
