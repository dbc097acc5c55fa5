// Package config defines the configuration types and defaults for importcurly.
package config

// Sort option values.
const (
	TypeLocationFirst  = "first"
	TypeLocationLast   = "last"
	TypeLocationIgnore = "ignore"

	OrderByAlphabetical = "alphabeticalOrder"
	OrderByLetterNumber = "letterNumber"

	SortByAsc  = "asc"
	SortByDesc = "desc"

	// sortByAscLegacy is the historical spelling of asc, still accepted.
	sortByAscLegacy = "aec"
)

// Config is the top-level configuration.
type Config struct {
	Rules RulesConfig `yaml:"rules"`
	Files FilesConfig `yaml:"files"`
	Fix   FixConfig   `yaml:"fix"`
}

// RulesConfig holds per-rule settings.
type RulesConfig struct {
	Newline    NewlineConfig    `yaml:"newline"`
	SortParams SortParamsConfig `yaml:"sort_params"`
}

// NewlineConfig configures the one-name-per-line rule.
type NewlineConfig struct {
	Enabled bool `yaml:"enabled"`
	// Count is the minimum number of names before layout is checked.
	// Zero or less disables the rule.
	Count int `yaml:"count"`
}

// SortParamsConfig configures the name ordering rule.
type SortParamsConfig struct {
	Enabled      bool   `yaml:"enabled"`
	TypeLocation string `yaml:"type_location"`
	OrderBy      string `yaml:"order_by"`
	SortBy       string `yaml:"sort_by"`
	IgnoreCase   bool   `yaml:"ignore_case"`
}

// FilesConfig controls which files a directory walk picks up.
type FilesConfig struct {
	Extensions []string `yaml:"extensions"`
	Exclude    []string `yaml:"exclude"`
}

// FixConfig controls fix application.
type FixConfig struct {
	// MaxPasses bounds the parse/check/apply loop per file.
	MaxPasses int `yaml:"max_passes"`
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			Newline: NewlineConfig{
				Enabled: true,
				Count:   3,
			},
			SortParams: SortParamsConfig{
				Enabled:      true,
				TypeLocation: TypeLocationIgnore,
				OrderBy:      OrderByAlphabetical,
				SortBy:       SortByAsc,
				IgnoreCase:   true,
			},
		},
		Files: FilesConfig{
			Extensions: []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".mts", ".cts"},
			Exclude:    []string{"node_modules/**", "**/*.min.js"},
		},
		Fix: FixConfig{
			MaxPasses: 10,
		},
	}
}
