package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sustainage/materiality-survey/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Survey.validate(); err != nil {
		return fmt.Errorf("survey: %w", err)
	}
	if c.SMTP.Enabled() {
		if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
			return fmt.Errorf("smtp: port out of range (got %d)", c.SMTP.Port)
		}
		if c.SMTP.MaxConcurrency < 1 {
			return fmt.Errorf("smtp: max_concurrency must be >= 1 (got %d)", c.SMTP.MaxConcurrency)
		}
	}
	if c.RateLimit.SubmissionsPerMinute <= 0 || c.RateLimit.FetchesPerMinute <= 0 {
		return errors.New("rate_limit: limits must be > 0")
	}
	if c.Audit.RetentionDays <= 0 {
		return fmt.Errorf("audit: retention_days must be > 0 (got %d)", c.Audit.RetentionDays)
	}
	return nil
}

func (a *AuthConfig) validate() error {
	switch {
	case a.APIKey == "" && a.APIKeyHash == "":
		return errors.New("one of api_key or api_key_hash is required")
	case a.APIKey != "" && a.APIKeyHash != "":
		return errors.New("api_key and api_key_hash are mutually exclusive")
	case a.APIKey != "" && len(a.APIKey) < 16:
		return fmt.Errorf("api_key must be at least 16 characters (got %d)", len(a.APIKey))
	case a.APIKeyHash != "" && !strings.HasPrefix(a.APIKeyHash, "$2"):
		return errors.New("api_key_hash must be a bcrypt hash")
	}
	if a.SessionsEnabled() {
		if len(a.SessionSecret) < 32 {
			return fmt.Errorf("session_secret must be at least 32 characters (got %d)", len(a.SessionSecret))
		}
		if a.SessionTTL <= 0 {
			return errors.New("session_ttl must be > 0")
		}
	}
	return nil
}

func (s *SurveyConfig) validate() error {
	u, err := url.Parse(s.PublicBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("public_base_url must be an absolute URL (got %q)", s.PublicBaseURL)
	}
	s.PublicBaseURL = strings.TrimRight(s.PublicBaseURL, "/")

	if s.DefaultDeadlineDays <= 0 {
		return fmt.Errorf("default_deadline_days must be > 0 (got %d)", s.DefaultDeadlineDays)
	}
	if !domain.TopicInsertMode(s.TopicInsertMode).IsValid() {
		return fmt.Errorf("topic_insert_mode %q is not one of atomic, best_effort", s.TopicInsertMode)
	}
	if !domain.ResubmissionPolicy(s.ResubmissionPolicy).IsValid() {
		return fmt.Errorf("resubmission_policy %q is not one of replace, reject, keep_latest", s.ResubmissionPolicy)
	}
	if s.MaxTopics <= 0 {
		return fmt.Errorf("max_topics must be > 0 (got %d)", s.MaxTopics)
	}
	if s.MaxCommentLength <= 0 {
		return fmt.Errorf("max_comment_length must be > 0 (got %d)", s.MaxCommentLength)
	}
	return nil
}
