package inspector

import (
	"github.com/mrz1836/go-envinspect/internal/env"
	appErrors "github.com/mrz1836/go-envinspect/internal/errors"
	"github.com/mrz1836/go-envinspect/internal/logging"
)

// CreateTempEnvFile writes vars as KEY=VALUE lines, in order, to fileName
// under the project root, replacing any existing file. The default name is
// .env.temp. On failure the error is logged and "" is returned with it.
func (i *Inspector) CreateTempEnvFile(vars env.Variables, fileName string) (string, error) {
	if fileName == "" {
		fileName = DefaultTempFile
	}
	path := i.ResolvePath(fileName)

	log := i.log(logging.OperationTypes.WriteEnvFile).WithFields(map[string]interface{}{
		logging.StandardFields.FilePath:      path,
		logging.StandardFields.VariableCount: len(vars),
	})

	if err := env.WriteFile(path, vars); err != nil {
		i.out.Errorf("Failed to create temporary env file: %v", err)
		log.WithError(err).Debug("Write failed")
		return "", appErrors.WrapWithContext(err, "create temporary env file")
	}

	log.Debug("Wrote env file")
	i.out.Infof("Created temporary env file: %s", path)
	return path, nil
}
