// Package config provides configuration structures and loading for RepoLint.
package config

// Config represents the complete application configuration.
type Config struct {
	ADR      ADRConfig      `yaml:"adr" mapstructure:"adr"`
	Secrets  SecretsConfig  `yaml:"secrets" mapstructure:"secrets"`
	Tasks    TasksConfig    `yaml:"tasks" mapstructure:"tasks"`
	Fixtures FixturesConfig `yaml:"fixtures" mapstructure:"fixtures"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// ADRConfig controls the ADR compliance checker.
type ADRConfig struct {
	Dir   string    `yaml:"dir" mapstructure:"dir"`
	Rules []ADRRule `yaml:"rules" mapstructure:"rules"`
}

// ADRRule requires files whose names contain any of Match to cite ADRs.
// When Any is true a single citation from Require satisfies the rule;
// otherwise every listed identifier must be cited. Entries in Require are
// three-digit identifiers or inclusive ranges like "001-006".
type ADRRule struct {
	Name    string   `yaml:"name" mapstructure:"name"`
	Match   []string `yaml:"match" mapstructure:"match"`
	Require []string `yaml:"require" mapstructure:"require"`
	Any     bool     `yaml:"any" mapstructure:"any"`
}

// SecretsConfig controls the secret scanner.
type SecretsConfig struct {
	Root         string   `yaml:"root" mapstructure:"root"`
	Keywords     []string `yaml:"keywords" mapstructure:"keywords"`
	Constructors []string `yaml:"constructors" mapstructure:"constructors"`
	Placeholders []string `yaml:"placeholders" mapstructure:"placeholders"`
	MinLength    int      `yaml:"min_length" mapstructure:"min_length"`
	Exclude      []string `yaml:"exclude" mapstructure:"exclude"`
	Deep         bool     `yaml:"deep" mapstructure:"deep"`
}

// TasksConfig controls the task-file validator.
type TasksConfig struct {
	Dir      string        `yaml:"dir" mapstructure:"dir"`
	Prefix   string        `yaml:"prefix" mapstructure:"prefix"`
	Sections []SectionRule `yaml:"sections" mapstructure:"sections"`
}

// SectionRule is a required heading with accepted spellings.
// A task file satisfies the rule when any alternative appears as a heading.
type SectionRule struct {
	Name         string   `yaml:"name" mapstructure:"name"`
	Alternatives []string `yaml:"alternatives" mapstructure:"alternatives"`
}

// FixturesConfig controls the synthetic fixture generator.
type FixturesConfig struct {
	Seed     int64          `yaml:"seed" mapstructure:"seed"`
	Users    int            `yaml:"users" mapstructure:"users"`
	Products int            `yaml:"products" mapstructure:"products"`
	Orders   int            `yaml:"orders" mapstructure:"orders"`
	OutDir   string         `yaml:"out_dir" mapstructure:"out_dir"`
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
}

// DatabaseConfig represents a MySQL connection used by `fixtures load`.
type DatabaseConfig struct {
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Database           string `yaml:"database" mapstructure:"database"`
	TLS                string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
	BatchSize          int    `yaml:"batch_size" mapstructure:"batch_size"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
// All checkers run with defaults when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		ADR: ADRConfig{
			Dir: "docs/adr",
			Rules: []ADRRule{
				{
					Name:    "data-access",
					Match:   []string{"sql", "bigquery"},
					Require: []string{"002"},
				},
				{
					Name:    "llm-usage",
					Match:   []string{"llm", "gemini"},
					Require: []string{"003", "005"},
				},
				{
					Name:    "configuration",
					Match:   []string{"config"},
					Require: []string{"001-006"},
					Any:     true,
				},
			},
		},
		Secrets: SecretsConfig{
			Root: ".",
			Keywords: []string{
				"api_key", "password", "secret", "token", "credentials", "apikey",
			},
			Constructors: []string{
				"configure", "Client", "OpenAI", "from_api_key",
			},
			Placeholders: []string{
				"***MASKED***", "changeme", "your-api-key", "xxx", "<secret>", "REDACTED",
			},
			MinLength: 16,
			Exclude:   []string{".git", "vendor", "node_modules", "testdata"},
		},
		Tasks: TasksConfig{
			Dir:    "tasks",
			Prefix: "LGDA",
			Sections: []SectionRule{
				{Name: "Overview", Alternatives: []string{"Overview", "Özet"}},
				{Name: "Goal", Alternatives: []string{"Goal", "Amaç"}},
				{Name: "Acceptance Criteria", Alternatives: []string{"Acceptance Criteria", "Kabul Kriterleri"}},
				{Name: "References", Alternatives: []string{"References", "Referanslar"}},
			},
		},
		Fixtures: FixturesConfig{
			Seed:     42,
			Users:    100,
			Products: 50,
			Orders:   300,
			OutDir:   "fixtures",
			Database: DatabaseConfig{
				Port:               3306,
				TLS:                "preferred",
				MaxConnections:     10,
				MaxIdleConnections: 5,
				BatchSize:          500,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}
