// Package config provides configuration loading and validation for the engine and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config represents the engine configuration that can be loaded from a JSON
// file. All fields are optional; missing values use engine defaults. The
// Gemini API key is never read from the file, only from the environment.
type Config struct {
	// Keyword matcher
	FuzzyThreshold   float64 `json:"fuzzy_threshold,omitempty" validate:"gte=0,lte=1"`     // Minimum fuzzy similarity ratio
	DisableFuzzy     bool    `json:"disable_fuzzy,omitempty"`                              // Turn the fuzzy stage off
	KeywordThreshold float64 `json:"keyword_threshold,omitempty" validate:"gte=0,lte=100"` // Keyword pass percentage
	SynonymTable     string  `json:"synonym_table,omitempty"`                              // Path to JSON synonym table layered over the built-in one

	// Term-weighted and semantic matchers
	TermWeightCutoff  float64 `json:"term_weight_cutoff,omitempty" validate:"gte=0,lte=1"` // Significance cutoff
	TermThreshold     float64 `json:"term_threshold,omitempty" validate:"gte=0,lte=1"`     // Coverage pass threshold
	MissingTermLimit  int     `json:"missing_term_limit,omitempty" validate:"gte=0"`       // Missing-term display cap
	SemanticThreshold float64 `json:"semantic_threshold,omitempty" validate:"gte=0,lte=1"` // Semantic pass threshold
	EmbeddingModel    string  `json:"embedding_model,omitempty"`                           // Gemini embedding model name

	// Fusion
	WeightKeyword    float64 `json:"weight_keyword,omitempty" validate:"gte=0"`          // Keyword fusion weight
	WeightTerm       float64 `json:"weight_term,omitempty" validate:"gte=0"`             // Term fusion weight
	WeightSemantic   float64 `json:"weight_semantic,omitempty" validate:"gte=0"`         // Semantic fusion weight
	OverallThreshold float64 `json:"overall_threshold,omitempty" validate:"gte=0,lte=1"` // Fused pass threshold

	// Gap analysis
	SeverityCritical     float64 `json:"severity_critical,omitempty" validate:"gte=0,lte=100"`
	SeverityModerate     float64 `json:"severity_moderate,omitempty" validate:"gte=0,lte=100"`
	SeverityMinimal      float64 `json:"severity_minimal,omitempty" validate:"gte=0,lte=100"`
	HoursBeginner        int     `json:"hours_beginner,omitempty" validate:"gte=0"`
	HoursIntermediate    int     `json:"hours_intermediate,omitempty" validate:"gte=0"`
	HoursAdvanced        int     `json:"hours_advanced,omitempty" validate:"gte=0"`
	DifficultyMultiplier float64 `json:"difficulty_multiplier,omitempty" validate:"gte=0"`
}

// Default returns the configuration with every engine default filled in.
func Default() *Config {
	return &Config{
		FuzzyThreshold:       0.7,
		KeywordThreshold:     30,
		TermWeightCutoff:     0.05,
		TermThreshold:        0.3,
		MissingTermLimit:     10,
		SemanticThreshold:    0.5,
		WeightKeyword:        0.4,
		WeightTerm:           0.3,
		WeightSemantic:       0.3,
		OverallThreshold:     0.5,
		SeverityCritical:     50,
		SeverityModerate:     30,
		SeverityMinimal:      10,
		HoursBeginner:        20,
		HoursIntermediate:    40,
		HoursAdvanced:        80,
		DifficultyMultiplier: 1.0,
	}
}

// Load loads configuration from a JSON file, layered over the defaults, and
// validates the result so invalid thresholds fail at startup.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field constraint plus the cross-field weight rule.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.WeightKeyword+c.WeightTerm+c.WeightSemantic <= 0 {
		return fmt.Errorf("invalid configuration: fusion weights must have a positive sum")
	}
	return nil
}

// GeminiAPIKey reads the embedding backend credential from the environment.
// An empty key selects the disabled semantic layer.
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}
