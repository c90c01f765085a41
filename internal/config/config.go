// Package config loads and saves the ~/.ynabtoledger.yaml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvAccessToken overrides the configured YNAB API token when set.
const EnvAccessToken = "YNAB_ACCESS_TOKEN"

// DefaultFileName is the config file created in the user's home directory.
const DefaultFileName = ".ynabtoledger.yaml"

// Config is the top-level configuration consumed by the conversion pipeline.
type Config struct {
	YNAB YNABConfig `yaml:"ynab"`

	// AccountNameMap holds ordered search/replace rules applied to every
	// {group}:{account} name. Accepts either a list of {search, replace}
	// pairs or a mapping of search -> replace (document order preserved).
	AccountNameMap MapRules `yaml:"account_name_map,omitempty"`

	// AccountFilter keeps only entries with at least one split whose full
	// account name matches one of these regular expressions.
	AccountFilter []string `yaml:"account_filter,omitempty"`

	// StartDate drops entries recorded before this ISO date.
	StartDate string `yaml:"start_date,omitempty"`

	// Filters holds named boolean-expression trees; ActiveFilter selects
	// the one applied to every entry.
	Filters      map[string]map[string]any `yaml:"filters,omitempty"`
	ActiveFilter string                    `yaml:"active_filter,omitempty"`

	// BeancountTags enables the synthesized ^ynab_{id} tag on beancount
	// entries that carry an id-tracking metadata field.
	BeancountTags bool `yaml:"beancount_tags,omitempty"`

	// LogLevel controls diagnostic verbosity on stderr.
	LogLevel string `yaml:"log_level,omitempty"`
}

// YNABConfig identifies the budget to convert.
type YNABConfig struct {
	APIAccessToken  string `yaml:"api_access_token,omitempty"`
	PrimaryBudgetID string `yaml:"primary_budget_id"`
}

// MapRule is one account-name rewrite: the first rule whose Search regex
// matches wins.
type MapRule struct {
	Search  string `yaml:"search"`
	Replace string `yaml:"replace"`
}

// MapRules is an ordered list of MapRule that also unmarshals from the
// shorthand mapping form.
type MapRules []MapRule

// UnmarshalYAML accepts both the sequence-of-pairs form and the
// search: replace mapping form, preserving document order for the latter.
func (m *MapRules) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var rules []MapRule
		if err := value.Decode(&rules); err != nil {
			return err
		}
		*m = rules
		return nil
	case yaml.MappingNode:
		rules := make([]MapRule, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			rules = append(rules, MapRule{
				Search:  value.Content[i].Value,
				Replace: value.Content[i+1].Value,
			})
		}
		*m = rules
		return nil
	default:
		return fmt.Errorf("account_name_map: expected sequence or mapping, got %v", value.Kind)
	}
}

// Load reads a config file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config pointing at the given budget.
func Default(token, budgetID string) *Config {
	return &Config{
		YNAB: YNABConfig{
			APIAccessToken:  token,
			PrimaryBudgetID: budgetID,
		},
		LogLevel: "info",
	}
}

// DefaultPath returns the config path in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// AccessToken resolves the YNAB API token: the environment (including a local
// .env file, if present) wins over the config file.
func (c *Config) AccessToken() string {
	_ = godotenv.Load()
	if token := os.Getenv(EnvAccessToken); token != "" {
		return token
	}
	return c.YNAB.APIAccessToken
}
