package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fristyy/SrtFileTool/internal/batch"
	"github.com/fristyy/SrtFileTool/internal/subtitle"
)

// Process translates one SRT file, writing outputs next to the source.
func (p *implProcessor) Process(ctx context.Context, srtPath string) error {
	return p.run(ctx, srtPath, filepath.Dir(srtPath), false)
}

// ProcessAndArchive translates one SRT file into the output directory and
// moves the source into the archived directory afterwards.
func (p *implProcessor) ProcessAndArchive(ctx context.Context, srtPath string) error {
	if err := p.run(ctx, srtPath, p.cfg.Paths.Output, true); err != nil {
		return err
	}
	return p.archive(ctx, srtPath)
}

// run is the pipeline: read, parse, extract, translate batch, merge, write
// bilingual file, write translated-only file. Nothing is written to disk
// until the whole batch has succeeded, so a failed or cancelled run leaves
// no partial output behind.
func (p *implProcessor) run(ctx context.Context, srtPath, outDir string, mkOutDir bool) error {
	startTime := time.Now()

	p.logger.Info(ctx, "Processing subtitle file: %s", srtPath)

	data, err := os.ReadFile(srtPath)
	if err != nil {
		return fmt.Errorf("read subtitle: %w", err)
	}

	doc := subtitle.Parse(string(data))
	if len(doc.Blocks) == 0 {
		return fmt.Errorf("no caption blocks found in %s", srtPath)
	}
	p.logger.Info(ctx, "Parsed %d caption blocks", len(doc.Blocks))

	texts := doc.SourceTexts()
	delay := time.Duration(p.cfg.Translator.RequestDelayMS) * time.Millisecond
	runner := batch.New(p.translator, &logListener{ctx: ctx, logger: p.logger}, p.logger, delay)

	translations, err := runner.Run(ctx, texts)
	if err != nil {
		return fmt.Errorf("translate batch: %w", err)
	}

	if err := doc.Merge(translations); err != nil {
		return fmt.Errorf("merge translations: %w", err)
	}

	translatedOnly, err := doc.TranslatedOnly(translations)
	if err != nil {
		return fmt.Errorf("build translated-only document: %w", err)
	}

	if mkOutDir {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	bilingualPath := outputPath(srtPath, outDir, p.cfg.Output.BilingualSuffix)
	if err := os.WriteFile(bilingualPath, []byte(doc.Serialize()), 0644); err != nil {
		return fmt.Errorf("write bilingual subtitle: %w", err)
	}

	translatedPath := outputPath(srtPath, outDir, p.cfg.Output.TranslatedOnlySuffix)
	if err := os.WriteFile(translatedPath, []byte(translatedOnly.Serialize()), 0644); err != nil {
		return fmt.Errorf("write translated-only subtitle: %w", err)
	}

	p.logger.Info(ctx, "Bilingual subtitle: %s", bilingualPath)
	p.logger.Info(ctx, "Translated-only subtitle: %s", translatedPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))

	return nil
}

// archive moves a processed source file into the archived directory so the
// watcher will not pick it up again.
func (p *implProcessor) archive(ctx context.Context, srtPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(srtPath))
	if err := os.Rename(srtPath, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	p.logger.Debug(ctx, "Archived source: %s -> %s", srtPath, dest)
	return nil
}

// outputPath builds "<name><suffix>.srt" in dir from the source filename.
func outputPath(srtPath, dir, suffix string) string {
	base := filepath.Base(srtPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, name+suffix+".srt")
}
