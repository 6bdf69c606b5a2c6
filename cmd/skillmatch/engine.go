package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/skillmatch/internal/config"
	"github.com/jonathan/skillmatch/internal/gap"
	"github.com/jonathan/skillmatch/internal/keyword"
	"github.com/jonathan/skillmatch/internal/logger"
	"github.com/jonathan/skillmatch/internal/semantic"
	"github.com/jonathan/skillmatch/internal/synonyms"
	"github.com/jonathan/skillmatch/internal/termweight"
	"github.com/jonathan/skillmatch/internal/unified"
)

// loadConfig resolves the engine configuration for a command invocation.
func loadConfig() (*config.Config, error) {
	if flagConfig == "" {
		return config.Default(), nil
	}
	return config.Load(flagConfig)
}

// newLogger builds the CLI logger honoring the --debug flag.
func newLogger() (*zap.Logger, error) {
	return logger.New(false, flagDebug)
}

// buildKeywordMatcher wires the synonym provider and keyword matcher from config.
func buildKeywordMatcher(cfg *config.Config, log *zap.Logger) *keyword.Matcher {
	var provider synonyms.Provider
	if cfg.SynonymTable != "" {
		provider = synonyms.NewFile(cfg.SynonymTable, synonyms.DefaultTable(), log)
	} else {
		provider = synonyms.NewDefault()
	}

	opts := []keyword.Option{keyword.WithFuzzyThreshold(cfg.FuzzyThreshold)}
	if cfg.DisableFuzzy {
		opts = append(opts, keyword.WithFuzzyDisabled())
	}
	return keyword.NewMatcher(provider, opts...)
}

// buildCombiner wires all three matchers into a combiner from config. The
// embedding capability is selected here, once, based on whether an API key
// is present in the environment.
func buildCombiner(cfg *config.Config, log *zap.Logger) (*unified.Combiner, error) {
	weights, err := unified.NewWeights(cfg.WeightKeyword, cfg.WeightTerm, cfg.WeightSemantic)
	if err != nil {
		return nil, err
	}

	kw := buildKeywordMatcher(cfg, log)
	tw := termweight.NewMatcher(
		termweight.WithWeightCutoff(cfg.TermWeightCutoff),
		termweight.WithScoreThreshold(cfg.TermThreshold),
		termweight.WithMissingTermLimit(cfg.MissingTermLimit),
	)

	apiKey := config.GeminiAPIKey()
	if apiKey == "" {
		log.Debug("no embedding API key configured, semantic layer disabled")
	}
	sm := semantic.NewMatcher(
		semantic.NewProvider(apiKey, cfg.EmbeddingModel),
		semantic.WithScoreThreshold(cfg.SemanticThreshold),
	)

	return unified.NewCombiner(kw, tw, sm,
		unified.WithWeights(weights),
		unified.WithOverallThreshold(cfg.OverallThreshold),
		unified.WithKeywordThreshold(cfg.KeywordThreshold),
	), nil
}

// buildAnalyzer wires the gap analyzer from config.
func buildAnalyzer(cfg *config.Config, log *zap.Logger) *gap.Analyzer {
	return gap.NewAnalyzer(buildKeywordMatcher(cfg, log), gap.Config{
		SeverityCritical:     cfg.SeverityCritical,
		SeverityModerate:     cfg.SeverityModerate,
		SeverityMinimal:      cfg.SeverityMinimal,
		HoursBeginner:        cfg.HoursBeginner,
		HoursIntermediate:    cfg.HoursIntermediate,
		HoursAdvanced:        cfg.HoursAdvanced,
		DifficultyMultiplier: cfg.DifficultyMultiplier,
	})
}

// readJSONFile unmarshals a JSON file into out.
func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// writeJSONFile marshals v with indentation and writes it to path, creating
// the parent directory when needed.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
