package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/example/deskflow/internal/core/triage"
)

// policyFile mirrors triage.Policy with optional fields so a partial
// .deskflow/policy.yaml overrides only what it names.
type policyFile struct {
	ThesisOrangeDays         *int     `yaml:"thesis_orange_days"`
	ThesisRedDays            *int     `yaml:"thesis_red_days"`
	RatingFollowupWindowDays *int     `yaml:"rating_followup_window_days"`
	EVThreshold              *float64 `yaml:"ev_threshold"`
	StalledDaysThreshold     *int     `yaml:"stalled_days_threshold"`
}

// LoadPolicy returns the evaluation policy for the given directory. A
// missing .deskflow/policy.yaml is not an error; defaults apply. A present
// but unparseable file is an error, never a silent fallback.
func LoadPolicy(dir string) (triage.Policy, error) {
	policy := triage.DefaultPolicy()

	path := filepath.Join(dir, ".deskflow", "policy.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return policy, nil
	}
	if err != nil {
		return policy, fmt.Errorf("failed to read policy: %w", err)
	}

	var overrides policyFile
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return policy, fmt.Errorf("failed to parse policy: %w", err)
	}

	if overrides.ThesisOrangeDays != nil {
		policy.ThesisOrangeDays = *overrides.ThesisOrangeDays
	}
	if overrides.ThesisRedDays != nil {
		policy.ThesisRedDays = *overrides.ThesisRedDays
	}
	if overrides.RatingFollowupWindowDays != nil {
		policy.RatingFollowupWindowDays = *overrides.RatingFollowupWindowDays
	}
	if overrides.EVThreshold != nil {
		policy.EVThreshold = *overrides.EVThreshold
	}
	if overrides.StalledDaysThreshold != nil {
		policy.StalledDaysThreshold = *overrides.StalledDaysThreshold
	}

	if err := validatePolicy(policy); err != nil {
		return triage.DefaultPolicy(), err
	}
	return policy, nil
}

func validatePolicy(p triage.Policy) error {
	if p.ThesisOrangeDays <= 0 || p.ThesisRedDays <= 0 {
		return fmt.Errorf("thesis thresholds must be positive")
	}
	if p.ThesisRedDays < p.ThesisOrangeDays {
		return fmt.Errorf("thesis_red_days (%d) must not be below thesis_orange_days (%d)", p.ThesisRedDays, p.ThesisOrangeDays)
	}
	if p.RatingFollowupWindowDays <= 0 {
		return fmt.Errorf("rating_followup_window_days must be positive")
	}
	if p.EVThreshold < 0 {
		return fmt.Errorf("ev_threshold must not be negative")
	}
	if p.StalledDaysThreshold <= 0 {
		return fmt.Errorf("stalled_days_threshold must be positive")
	}
	return nil
}
