package config

// Defaults applied when the configuration omits a value
const (
	CurrentVersion  = 1
	DefaultFile     = ".envinspect.yaml"
	DefaultEnvFile  = ".env"
	DefaultTempFile = ".env.temp"
)

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in unset values. If cfg is nil, the function returns
// immediately without panic.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}
	if cfg.EnvFile == "" {
		cfg.EnvFile = DefaultEnvFile
	}
	if cfg.TempFile == "" {
		cfg.TempFile = DefaultTempFile
	}
	if cfg.Required == nil {
		cfg.Required = map[string][]string{}
	}
}
