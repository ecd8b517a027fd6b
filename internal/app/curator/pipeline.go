// Package curator orchestrates the corpus curation pipeline: lexicon
// enrichment of the vocabulary store, verse extraction from OpenGNT,
// reconciliation into the canonical verse store, translation repair
// via an external provider, and semantic categorization.
package curator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/koinevocab/curator/internal/category"
	"github.com/koinevocab/curator/internal/domain"
	"github.com/koinevocab/curator/internal/lexicon"
	"github.com/koinevocab/curator/internal/opengnt"
	"github.com/koinevocab/curator/internal/provider"
	"github.com/koinevocab/curator/internal/verses"
	"github.com/koinevocab/curator/internal/vocab"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"morphology", "verses", "merge", "translations", "categories"}

// TranslationFetcher fetches an English rendering for a verse reference.
// Returning nil, nil means the provider does not know the reference.
type TranslationFetcher interface {
	FetchVerse(ctx context.Context, bookName string, chapter, verse int) (*provider.TranslationResult, error)
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Updated  int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the 5-phase curation process.
type Pipeline struct {
	log     *slog.Logger
	fetcher TranslationFetcher
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline. fetcher may be nil when the
// translations phase is not going to run.
func NewPipeline(log *slog.Logger, fetcher TranslationFetcher, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		fetcher: fetcher,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed
// phases run, still in canonical order.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	runID := uuid.New().String()
	log := p.log.With(slog.String("run_id", runID))

	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		start := time.Now()
		log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "morphology":
			result = p.runMorphology(log)
		case "verses":
			result = p.runVerses(log)
		case "merge":
			result = p.runMerge(log)
		case "translations":
			result = p.runTranslations(ctx, log)
		case "categories":
			result = p.runCategories(log)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("updated", result.Updated),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// runMorphology resolves vocabulary words against the TBESG lexicon
// and copies Strong's numbers and decoded morphology onto them.
func (p *Pipeline) runMorphology(log *slog.Logger) PhaseResult {
	if p.cfg.LexiconPath == "" {
		return PhaseResult{Skipped: 1, Err: fmt.Errorf("lexicon path not configured")}
	}

	index, stats, err := lexicon.Parse(p.cfg.LexiconPath, lexicon.DefaultMorphTables())
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("parse lexicon: %w", err)}
	}
	log.Info("lexicon parsed",
		slog.Int("entries", stats.Entries),
		slog.Int("greek_keys", stats.GreekKeys),
		slog.Int("skipped_lines", stats.SkippedLines),
	)

	doc, err := vocab.Load(p.cfg.VocabPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("load vocabulary: %w", err)}
	}

	resolver := vocab.NewResolver(index, vocab.DefaultOverrides())
	report := resolver.ResolveAll(doc.Words)

	for strategy, hits := range report.Matched {
		log.Info("resolution strategy", slog.String("strategy", strategy), slog.Int("hits", hits))
	}
	for _, u := range report.Unmatched {
		log.Debug("unmatched word", slog.String("greek", u.Greek), slog.String("identifier", u.Identifier))
	}

	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(doc.Words)}
	}

	if err := vocab.Save(p.cfg.VocabPath, doc); err != nil {
		return PhaseResult{Err: fmt.Errorf("save vocabulary: %w", err)}
	}

	return PhaseResult{Updated: report.TotalMatched(), Skipped: len(report.Unmatched)}
}

// runCategories assigns a semantic category to every vocabulary word.
func (p *Pipeline) runCategories(log *slog.Logger) PhaseResult {
	doc, err := vocab.Load(p.cfg.VocabPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("load vocabulary: %w", err)}
	}

	counts := category.Default().CategorizeAll(doc.Words)
	for cat, n := range counts {
		log.Debug("category assigned", slog.String("category", cat), slog.Int("words", n))
	}

	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(doc.Words)}
	}

	if err := vocab.Save(p.cfg.VocabPath, doc); err != nil {
		return PhaseResult{Err: fmt.Errorf("save vocabulary: %w", err)}
	}

	return PhaseResult{Updated: len(doc.Words)}
}

// runVerses extracts the selected verses from the OpenGNT dataset and
// writes them to the intermediate file consumed by the merge phase.
func (p *Pipeline) runVerses(log *slog.Logger) PhaseResult {
	if p.cfg.KeyedFeaturesPath == "" {
		return PhaseResult{Skipped: 1, Err: fmt.Errorf("keyed features path not configured")}
	}

	features, stats, err := opengnt.Parse(p.cfg.KeyedFeaturesPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("parse keyed features: %w", err)}
	}
	log.Info("opengnt parsed",
		slog.Int("rows", stats.TotalRows),
		slog.Int("skipped_rows", stats.SkippedRows),
		slog.Int("verses", stats.Verses),
	)

	// An absent selection file means every parsed verse is exported.
	var selection []opengnt.RefKey
	if p.cfg.SelectionPath != "" {
		selection, err = opengnt.LoadSelection(p.cfg.SelectionPath)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("load selection: %w", err)}
		}
	}

	built := opengnt.BuildVerses(features, selection, opengnt.DefaultBookMap())
	if len(built) < len(selection) {
		log.Warn("selection not fully covered",
			slog.Int("selected", len(selection)),
			slog.Int("built", len(built)),
		)
	}

	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(built)}
	}

	if err := verses.SaveNew(p.cfg.NewVersesPath, built); err != nil {
		return PhaseResult{Err: fmt.Errorf("save new verses: %w", err)}
	}

	return PhaseResult{Inserted: len(built)}
}

// runMerge reconciles the intermediate verse file into the canonical
// verse store. Existing verses win over incoming duplicates.
func (p *Pipeline) runMerge(log *slog.Logger) PhaseResult {
	doc, err := verses.Load(p.cfg.VersesPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("load verse store: %w", err)}
	}

	incoming, err := verses.LoadNew(p.cfg.NewVersesPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("load new verses: %w", err)}
	}

	rec := verses.NewReconciler(verses.DefaultBookAliases())
	merged, stats := rec.Merge(doc.Verses, incoming, doc.Books)
	log.Info("verses merged",
		slog.Int("existing", stats.Existing),
		slog.Int("added", stats.Added),
		slog.Int("skipped", stats.Skipped),
	)

	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(incoming)}
	}

	doc.Verses = merged
	if err := verses.Save(p.cfg.VersesPath, doc); err != nil {
		return PhaseResult{Err: fmt.Errorf("save verse store: %w", err)}
	}

	return PhaseResult{Inserted: stats.Added, Skipped: stats.Skipped}
}

// runTranslations replaces awkward reference translations in the verse
// store with text fetched from the configured provider. Requests are
// throttled and capped; fetch failures keep the existing text.
func (p *Pipeline) runTranslations(ctx context.Context, log *slog.Logger) PhaseResult {
	doc, err := verses.Load(p.cfg.VersesPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("load verse store: %w", err)}
	}

	var awkward []int
	for i := range doc.Verses {
		if verses.IsAwkwardTranslation(doc.Verses[i].ReferenceTranslation) {
			awkward = append(awkward, i)
		}
	}
	log.Info("awkward translations found", slog.Int("count", len(awkward)))

	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(awkward)}
	}

	if p.fetcher == nil {
		return PhaseResult{Skipped: 1, Err: fmt.Errorf("translation fetcher not configured")}
	}

	names := bookNames(doc.Books)

	var result PhaseResult
	for _, i := range awkward {
		if p.cfg.MaxUpdates > 0 && result.Updated >= p.cfg.MaxUpdates {
			result.Skipped += len(awkward) - result.Updated - result.Skipped - result.Errors
			break
		}

		v := &doc.Verses[i]
		name, ok := names[v.Book]
		if !ok {
			log.Debug("no display name for book", slog.String("book", v.Book))
			result.Skipped++
			continue
		}

		res, err := p.fetcher.FetchVerse(ctx, name, v.Chapter, v.Verse)
		if err != nil {
			log.Warn("fetch failed",
				slog.String("verse", v.ID()),
				slog.String("error", err.Error()),
			)
			result.Errors++
		} else if res == nil {
			result.Skipped++
		} else {
			v.ReferenceTranslation = verses.CleanTranslation(res.Text)
			result.Updated++
		}

		if p.cfg.FetchDelay > 0 {
			select {
			case <-ctx.Done():
				result.Err = ctx.Err()
				return result
			case <-time.After(p.cfg.FetchDelay):
			}
		}
	}

	if err := verses.Save(p.cfg.VersesPath, doc); err != nil {
		result.Err = fmt.Errorf("save verse store: %w", err)
		return result
	}

	return result
}

// bookNames builds the id-to-display-name map used for provider
// references, seeded from the canonical OpenGNT books and overlaid
// with the store's own book list.
func bookNames(books []domain.BookDescriptor) map[string]string {
	names := make(map[string]string)
	for _, b := range opengnt.DefaultBookMap() {
		names[b.ID] = b.Name
	}
	for _, b := range books {
		names[b.ID] = b.Name
	}
	return names
}
