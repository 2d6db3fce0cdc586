package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/Masterminds/semver/v3"

	appErrors "github.com/mrz1836/go-envinspect/internal/errors"
	"github.com/mrz1836/go-envinspect/internal/validation"
)

var (
	// ErrUnsupportedVersion indicates the configuration version is not supported
	ErrUnsupportedVersion = errors.New("unsupported config version")
	// ErrUnknownProfile indicates a "required" key that is not an environment type
	ErrUnknownProfile = errors.New("unknown required profile")
	// ErrInvalidVariableName indicates a variable name that cannot appear in an env file
	ErrInvalidVariableName = validation.ErrInvalidVariableName
	// ErrInvalidMinVersion indicates min_version is not a semantic version
	ErrInvalidMinVersion = errors.New("invalid min_version")
	// ErrVersionTooOld indicates the running binary is older than min_version
	ErrVersionTooOld = errors.New("go-envinspect version is older than min_version")
)

// validProfiles lists the keys allowed under "required"
//
//nolint:gochecknoglobals // fixed lookup table
var validProfiles = map[string]bool{
	ProfileAll:         true,
	ProfileDevelopment: true,
	ProfileStaging:     true,
	ProfileProduction:  true,
	ProfilePreview:     true,
}

// Validate checks if the configuration is valid. Every problem is reported,
// not only the first.
func (c *Config) Validate() error {
	result := validation.NewValidationResult()

	if c.Version != CurrentVersion {
		result.AddError(fmt.Errorf("%w: %d", ErrUnsupportedVersion, c.Version))
	}

	if c.MinVersion != "" {
		if _, err := semver.NewVersion(c.MinVersion); err != nil {
			result.AddError(fmt.Errorf("%w %q: %w", ErrInvalidMinVersion, c.MinVersion, err))
		}
	}

	overrides := append([]string{c.Variables.CI, c.Variables.EnvironmentType, c.Variables.Ref}, c.Variables.Platforms...)
	for _, name := range overrides {
		if name != "" {
			result.AddError(validation.ValidateVariableName(name))
		}
	}

	for _, profile := range slices.Sorted(maps.Keys(c.Required)) {
		if !validProfiles[profile] {
			result.AddError(fmt.Errorf("%w %q", ErrUnknownProfile, profile))
			continue
		}
		for _, name := range c.Required[profile] {
			if err := validation.ValidateVariableName(name); err != nil {
				result.AddError(fmt.Errorf("required.%s: %w", profile, err))
			}
		}
	}

	result.AddError(validation.ValidateFileName("env_file", c.EnvFile))
	result.AddError(validation.ValidateFileName("temp_file", c.TempFile))

	if err := result.AllErrors(); err != nil {
		return fmt.Errorf("%w: %w", appErrors.ErrInvalidConfig, err)
	}
	return nil
}

// CheckMinVersion verifies that current satisfies min_version. Development
// builds whose version is not a semantic version are always accepted.
func (c *Config) CheckMinVersion(current string) error {
	if c == nil || c.MinVersion == "" {
		return nil
	}

	running, err := semver.NewVersion(current)
	if err != nil {
		return nil //nolint:nilerr // dev builds carry no comparable version
	}

	minimum, err := semver.NewVersion(c.MinVersion)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidMinVersion, c.MinVersion, err)
	}

	if running.LessThan(minimum) {
		return fmt.Errorf("%w: running %s, need %s", ErrVersionTooOld, running.Original(), minimum.Original())
	}
	return nil
}
