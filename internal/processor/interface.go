package processor

import "context"

// Processor runs the full translate pipeline for one SRT file.
type Processor interface {
	// Process translates srtPath and writes the bilingual and
	// translated-only outputs next to the source file.
	Process(ctx context.Context, srtPath string) error
	// ProcessAndArchive is Process for watch mode: outputs go to the
	// configured output directory and the source file is moved to the
	// archived directory after success so it is not picked up again.
	ProcessAndArchive(ctx context.Context, srtPath string) error
}
