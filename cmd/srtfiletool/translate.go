package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fristyy/SrtFileTool/internal/config"
	"github.com/fristyy/SrtFileTool/internal/logger"
	"github.com/fristyy/SrtFileTool/internal/processor"
	"github.com/fristyy/SrtFileTool/internal/translator"
)

var translateCmd = &cobra.Command{
	Use:   "translate [subtitle.srt]",
	Short: "Translate one SRT file, writing outputs next to it",
	Long: `Translate one SRT file with the configured provider and write two
files next to it: a bilingual subtitle (original line followed by its
translation in each block) and a translated-only subtitle with renumbered
blocks. Original timing is preserved. Ctrl+C cancels cleanly between
caption lines; a cancelled run writes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level)

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return proc.Process(ctx, args[0])
}
