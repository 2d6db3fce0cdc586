package inspector

import "context"

// Report is a snapshot of every environment getter
type Report struct {
	CI              bool            `json:"ci" yaml:"ci"`
	EnvironmentType EnvironmentType `json:"environment_type" yaml:"environment_type"`
	Branch          string          `json:"branch,omitempty" yaml:"branch,omitempty"`
	BranchResolved  bool            `json:"branch_resolved" yaml:"branch_resolved"`
	ChannelName     string          `json:"channel_name" yaml:"channel_name"`
	ProjectRoot     string          `json:"project_root" yaml:"project_root"`
}

// Report collects IsCI, EnvironmentType, BranchName and
// GenerateEnvironmentName into one value
func (i *Inspector) Report(ctx context.Context) Report {
	branch, ok := i.BranchName(ctx)
	return Report{
		CI:              i.IsCI(),
		EnvironmentType: i.EnvironmentType(ctx),
		Branch:          branch,
		BranchResolved:  ok,
		ChannelName:     i.GenerateEnvironmentName(ctx, branch),
		ProjectRoot:     i.root,
	}
}
