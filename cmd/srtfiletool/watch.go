package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fristyy/SrtFileTool/internal/config"
	"github.com/fristyy/SrtFileTool/internal/logger"
	"github.com/fristyy/SrtFileTool/internal/processor"
	"github.com/fristyy/SrtFileTool/internal/translator"
	"github.com/fristyy/SrtFileTool/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the input directory and translate new SRT files",
	Long: `Watch the configured input directory and translate every new SRT
file dropped into it. Outputs go to the output directory and processed
sources move to the archived directory.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "SRT Translation Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Target language: %s", cfg.Translator.TargetLanguage)
	log.Info(ctx, "Model: %s", cfg.Translator.Model)
	log.Info(ctx, "Max concurrent files: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	tr, err := translator.New(translator.Config{
		APIKeys:        cfg.Translator.APIKeys,
		Model:          cfg.Translator.Model,
		TargetLanguage: cfg.Translator.TargetLanguage,
		Proxy:          cfg.Translator.Proxy,
		ProbeURL:       cfg.Translator.ProbeURL,
	}, log)
	if err != nil {
		return err
	}

	proc := processor.New(cfg, tr, log)

	w, err := watcher.New(cfg.Paths.Input, proc.ProcessAndArchive, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
	return nil
}

// ensureDirectories creates required directories if they don't exist.
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
