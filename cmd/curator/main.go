// Command curator maintains the Koine Greek learning corpus: it
// enriches the vocabulary store from the TBESG lexicon, assigns
// semantic categories, extracts verses from the OpenGNT dataset,
// reconciles them into the verse store and repairs awkward reference
// translations via bible-api.com. It is intended to be run offline as
// a batch job.
//
// Flags:
//
//	--phase    comma-separated list of phases to run (default: all)
//	--dry-run  parse datasets without writing any files
//	--config   path to YAML config file (overrides CONFIG_PATH)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/koinevocab/curator/internal/adapter/provider/bibleapi"
	"github.com/koinevocab/curator/internal/app"
	"github.com/koinevocab/curator/internal/app/curator"
	"github.com/koinevocab/curator/internal/config"
)

// Compile-time interface assertion.
var _ curator.TranslationFetcher = (*bibleapi.Provider)(nil)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse datasets without writing any files")
	configFlag := flag.String("config", "", "path to YAML config file (overrides CONFIG_PATH)")
	flag.Parse()

	if *configFlag != "" {
		os.Setenv("CONFIG_PATH", *configFlag)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("curator starting", slog.String("version", app.BuildVersion()))

	// CLI flags override config.
	if *dryRunFlag {
		cfg.Pipeline.DryRun = true
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	// 30-minute context timeout covers the worst-case throttled fetch run.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	fetcher := bibleapi.NewProviderWithOptions(cfg.Fetch.BaseURL, cfg.Fetch.Timeout, logger)

	pipeline := curator.NewPipeline(logger, fetcher, curator.Config{
		VocabPath:         cfg.Pipeline.VocabPath,
		LexiconPath:       cfg.Pipeline.LexiconPath,
		KeyedFeaturesPath: cfg.Pipeline.KeyedFeaturesPath,
		VersesPath:        cfg.Pipeline.VersesPath,
		NewVersesPath:     cfg.Pipeline.NewVersesPath,
		SelectionPath:     cfg.Pipeline.SelectionPath,
		FetchDelay:        cfg.Fetch.Delay,
		MaxUpdates:        cfg.Fetch.MaxUpdates,
		DryRun:            cfg.Pipeline.DryRun,
	})

	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
