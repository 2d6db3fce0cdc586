package cli

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"sync"
	"time"

	"github.com/spf13/cobra"
)

const (
	devVersionString = "dev"
	unknownString    = "unknown"
	shortHashLength  = 7
)

// Build information set via ldflags
//
//nolint:gochecknoglobals // Build variables are set via ldflags during compilation
var (
	versionMu sync.RWMutex
	version   = devVersionString
	commit    = unknownString
	buildDate = unknownString
)

// VersionInfo contains version information
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	OS        string `json:"os" yaml:"os"`
	Arch      string `json:"arch" yaml:"arch"`
}

// createVersionCmd creates the version command. It skips the root setup so
// it works even with a broken configuration file.
func createVersionCmd(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build details.`,
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printVersion(cmd.OutOrStdout(), resultFormat(flags))
		},
	}
}

// printVersion prints version information in the given format
func printVersion(w io.Writer, format string) error {
	info := GetVersionInfo()
	return render(w, format, info, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "go-envinspect %s\nCommit:     %s\nBuild Date: %s\nGo Version: %s\nPlatform:   %s/%s\n",
			info.Version, info.Commit, info.BuildDate, info.GoVersion, info.OS, info.Arch)
		return err
	})
}

// SetVersionInfo allows setting version information programmatically.
// Empty values leave the current value unchanged.
func SetVersionInfo(v, c, d string) {
	versionMu.Lock()
	defer versionMu.Unlock()
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		buildDate = d
	}
}

// ResetVersionInfo resets the version info to defaults (thread-safe, for testing)
func ResetVersionInfo() {
	versionMu.Lock()
	defer versionMu.Unlock()
	version = devVersionString
	commit = unknownString
	buildDate = unknownString
}

// GetVersion returns the current version string with fallback to build info
func GetVersion() string {
	versionMu.RLock()
	v := version
	versionMu.RUnlock()
	if v != devVersionString && v != "" {
		return v
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		// go install @version carries the module version
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
		if rev := buildSetting(info, "vcs.revision"); rev != "" {
			return shortHash(rev)
		}
	}

	return devVersionString
}

// GetVersionInfo returns complete version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   GetVersion(),
		Commit:    getCommitWithFallback(),
		BuildDate: getBuildDateWithFallback(),
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// getCommitWithFallback returns the commit hash with fallback to build info
func getCommitWithFallback() string {
	versionMu.RLock()
	c := commit
	versionMu.RUnlock()
	if c != unknownString && c != "" {
		return c
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if rev := buildSetting(info, "vcs.revision"); rev != "" {
			return shortHash(rev)
		}
	}
	return unknownString
}

// getBuildDateWithFallback returns the build date with fallback to build info
func getBuildDateWithFallback() string {
	versionMu.RLock()
	bd := buildDate
	versionMu.RUnlock()
	if bd != unknownString && bd != "" {
		return bd
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if vcsTime := buildSetting(info, "vcs.time"); vcsTime != "" {
			if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
				return t.UTC().Format("2006-01-02_15:04:05_UTC")
			}
			return vcsTime
		}
	}
	return unknownString
}

// buildSetting returns the value of a build setting or ""
func buildSetting(info *debug.BuildInfo, key string) string {
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}
	return ""
}

// shortHash abbreviates a commit hash for display
func shortHash(rev string) string {
	if len(rev) > shortHashLength {
		return rev[:shortHashLength]
	}
	return rev
}
