// Package config loads the optional .envinspect.yaml configuration.
package config

// Profile names accepted under "required"
const (
	ProfileAll         = "all"
	ProfileDevelopment = "development"
	ProfileStaging     = "staging"
	ProfileProduction  = "production"
	ProfilePreview     = "preview"
)

// Config represents the complete inspector configuration
type Config struct {
	Version    int                 `yaml:"version"`
	MinVersion string              `yaml:"min_version,omitempty"` // Semver, e.g. v1.2.0
	Variables  VariableNames       `yaml:"variables,omitempty"`
	EnvFile    string              `yaml:"env_file,omitempty"`  // Default: .env
	TempFile   string              `yaml:"temp_file,omitempty"` // Default: .env.temp
	Required   map[string][]string `yaml:"required,omitempty"`  // Profile name to variable names
}

// VariableNames overrides the environment variables the inspector reads.
// Empty fields keep the inspector defaults.
type VariableNames struct {
	CI              string   `yaml:"ci,omitempty"`
	Platforms       []string `yaml:"platforms,omitempty"`
	EnvironmentType string   `yaml:"environment_type,omitempty"`
	Ref             string   `yaml:"ref,omitempty"`
}

// RequiredFor returns the variables required in the given environment: the
// "all" profile followed by the environment's own profile. Duplicates are kept.
func (c *Config) RequiredFor(environment string) []string {
	if c == nil {
		return []string{}
	}

	all := c.Required[ProfileAll]
	specific := c.Required[environment]
	if environment == ProfileAll {
		specific = nil
	}

	required := make([]string, 0, len(all)+len(specific))
	required = append(required, all...)
	required = append(required, specific...)
	return required
}
