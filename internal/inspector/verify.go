package inspector

import (
	"errors"
	"os"
	"strings"

	"github.com/mrz1836/go-envinspect/internal/env"
	appErrors "github.com/mrz1836/go-envinspect/internal/errors"
	"github.com/mrz1836/go-envinspect/internal/logging"
)

// VerificationResult reports required variables missing from the process
// environment
type VerificationResult struct {
	Valid   bool     `json:"valid" yaml:"valid"`
	Missing []string `json:"missing" yaml:"missing"`
}

// EnvFileResult reports required variables missing from an env file
type EnvFileResult struct {
	Exists  bool     `json:"exists" yaml:"exists"`
	Valid   bool     `json:"valid" yaml:"valid"`
	Missing []string `json:"missing" yaml:"missing"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// CheckOptions selects the env file and the variables it must define
type CheckOptions struct {
	FileName     string // relative to the project root; default .env
	RequiredVars []string
}

// VerifyRequiredEnvVars checks that every name in required is set to a
// non-empty value. Missing names keep input order, duplicates included.
func (i *Inspector) VerifyRequiredEnvVars(required []string) VerificationResult {
	missing := make([]string, 0, len(required))
	for _, name := range required {
		if !env.IsSet(i.env, name) {
			missing = append(missing, name)
		}
	}

	i.log(logging.OperationTypes.VerifyVars).WithFields(map[string]interface{}{
		logging.StandardFields.VariableCount: len(required),
		logging.StandardFields.Missing:       missing,
	}).Debug("Verified environment variables")

	if len(missing) > 0 {
		i.out.Warnf("Missing required environment variables: %s", strings.Join(missing, ", "))
		return VerificationResult{Valid: false, Missing: missing}
	}

	return VerificationResult{Valid: true, Missing: missing}
}

// CheckEnvFile checks that an env file defines every required variable.
// Only the defined names are read; values are never inspected. A read
// failure reports every required variable as missing along with the error.
func (i *Inspector) CheckEnvFile(opts CheckOptions) EnvFileResult {
	fileName := opts.FileName
	if fileName == "" {
		fileName = DefaultEnvFile
	}
	path := i.ResolvePath(fileName)
	required := append(make([]string, 0, len(opts.RequiredVars)), opts.RequiredVars...)

	log := i.log(logging.OperationTypes.CheckEnvFile).WithField(logging.StandardFields.FilePath, path)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			i.out.Warnf("Environment file not found: %s", path)
			return EnvFileResult{Exists: false, Valid: false, Missing: required}
		}
		return i.readFailure(path, required, err)
	}

	if len(required) == 0 {
		log.Debug("No required variables, skipping scan")
		return EnvFileResult{Exists: true, Valid: true, Missing: required}
	}

	keys, err := env.ScanDefinedKeys(path)
	if err != nil {
		return i.readFailure(path, required, err)
	}

	missing := keys.Missing(required)
	log.WithFields(map[string]interface{}{
		logging.StandardFields.VariableCount: len(keys),
		logging.StandardFields.Missing:       missing,
	}).Debug("Scanned env file")

	if len(missing) > 0 {
		i.out.Warnf("Missing required variables in %s: %s", fileName, strings.Join(missing, ", "))
		return EnvFileResult{Exists: true, Valid: false, Missing: missing}
	}

	i.out.Successf("All required variables present in %s", fileName)
	return EnvFileResult{Exists: true, Valid: true, Missing: missing}
}

// readFailure logs err and converts it to a result
func (i *Inspector) readFailure(path string, required []string, err error) EnvFileResult {
	err = appErrors.FileReadError(path, err)
	i.out.Errorf("Error checking env file: %v", err)
	i.log(logging.OperationTypes.CheckEnvFile).WithError(err).Debug("Env file check failed")
	return EnvFileResult{Exists: true, Valid: false, Missing: required, Error: err.Error()}
}
