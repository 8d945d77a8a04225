package processor

import (
	"github.com/fristyy/SrtFileTool/internal/config"
	"github.com/fristyy/SrtFileTool/internal/logger"
	"github.com/fristyy/SrtFileTool/internal/translator"
)

type implProcessor struct {
	cfg        *config.Config
	translator translator.Translator
	logger     logger.Logger
}

// New creates a Processor instance.
func New(cfg *config.Config, tr translator.Translator, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		translator: tr,
		logger:     log,
	}
}
