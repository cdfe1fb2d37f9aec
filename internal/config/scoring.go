package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TestRank-hq/testrank/internal/priority"
	"github.com/TestRank-hq/testrank/pkg/model"
)

// scoringFile is the YAML shape of a custom scoring configuration. Both
// sections are optional; an omitted section keeps the built-in defaults.
// This allows localized keyword sets or tuned profile tables to be swapped
// in without a rebuild.
type scoringFile struct {
	Lexicon  *priority.Lexicon                     `yaml:"lexicon"`
	Profiles map[priority.TestType]priority.Profile `yaml:"profiles"`
}

// LoadScoring builds the engine configuration, overlaying the YAML file at
// path (when non-empty) onto the defaults.
func LoadScoring(path string, workers int) (priority.Config, error) {
	cfg := priority.DefaultConfig()
	cfg.Workers = workers

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return priority.Config{}, fmt.Errorf("failed to read scoring config: %w", err)
	}

	var file scoringFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return priority.Config{}, fmt.Errorf("failed to parse scoring config: %w", err)
	}

	if file.Lexicon != nil {
		cfg.Lexicon = *file.Lexicon
	}
	if len(file.Profiles) > 0 {
		if err := validateProfiles(file.Profiles); err != nil {
			return priority.Config{}, err
		}
		cfg.Profiles = file.Profiles
	}

	return cfg, nil
}

func validateProfiles(profiles map[priority.TestType]priority.Profile) error {
	for typ, p := range profiles {
		if p.Multiplier <= 0 {
			return fmt.Errorf("profile %q: multiplier must be positive, got %v", typ, p.Multiplier)
		}
		switch p.BasePriority {
		case model.PriorityHigh, model.PriorityMedium, model.PriorityLow:
		default:
			return fmt.Errorf("profile %q: invalid base priority %q", typ, p.BasePriority)
		}
	}
	return nil
}
