package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if strings.TrimSpace(c.Training.Path) == "" {
		return fmt.Errorf("training.path is required")
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if err := c.Practice.validate(); err != nil {
		return fmt.Errorf("practice: %w", err)
	}

	return nil
}

func (p *PracticeConfig) validate() error {
	for name, v := range map[string]int{
		"lemma_gap_cap":    p.LemmaGapCap,
		"combo_gap_cap":    p.ComboGapCap,
		"category_gap_cap": p.CategoryGapCap,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be >= 0 (got %d)", name, v)
		}
	}
	if p.MinReviewRun < 1 {
		return fmt.Errorf("min_review_run must be >= 1 (got %d)", p.MinReviewRun)
	}
	if p.MaxReviewRun < p.MinReviewRun {
		return fmt.Errorf("max_review_run (%d) must be >= min_review_run (%d)", p.MaxReviewRun, p.MinReviewRun)
	}
	if p.GoalMultiplier < 1 {
		return fmt.Errorf("goal_multiplier must be >= 1 (got %v)", p.GoalMultiplier)
	}
	if p.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be > 0 (got %s)", p.SessionTTL)
	}
	return nil
}
