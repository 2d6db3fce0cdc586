package logging

// StandardFields defines the standardized field names for structured logging
// across all components.
//
//nolint:gochecknoglobals // Intentional global constants for standardized field names
var StandardFields = struct {
	Timestamp     string
	Component     string
	Operation     string
	CorrelationID string

	BranchName      string
	EnvironmentType string
	ChannelName     string
	FilePath        string
	ProjectRoot     string

	Missing       string
	VariableCount string

	Error  string
	Status string
}{
	Timestamp:     "@timestamp",
	Component:     "component",
	Operation:     "operation",
	CorrelationID: "correlation_id",

	BranchName:      "branch_name",
	EnvironmentType: "environment_type",
	ChannelName:     "channel_name",
	FilePath:        "file_path",
	ProjectRoot:     "project_root",

	Missing:       "missing",
	VariableCount: "variable_count",

	Error:  "error",
	Status: "status",
}

// ComponentNames defines standardized component names for logging consistency
//
//nolint:gochecknoglobals // Intentional global constants for standardized component names
var ComponentNames = struct {
	Git       string
	Config    string
	Inspector string
	Workspace string
	CLI       string
}{
	Git:       "git",
	Config:    "config",
	Inspector: "inspector",
	Workspace: "workspace",
	CLI:       "cli",
}

// OperationTypes defines standardized operation type names
//
//nolint:gochecknoglobals // Intentional global constants for standardized operation types
var OperationTypes = struct {
	DetectCI        string
	ClassifyEnv     string
	ResolveBranch   string
	GenerateName    string
	VerifyVars      string
	CheckEnvFile    string
	WriteEnvFile    string
	ResolveRootPath string
}{
	DetectCI:        "detect_ci",
	ClassifyEnv:     "classify_environment",
	ResolveBranch:   "resolve_branch",
	GenerateName:    "generate_name",
	VerifyVars:      "verify_vars",
	CheckEnvFile:    "check_env_file",
	WriteEnvFile:    "write_env_file",
	ResolveRootPath: "resolve_project_root",
}
