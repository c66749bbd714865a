// Package misc keeps build time information about the program.
package misc

// Set with -ldflags "-X docfmt/misc.version=... -X docfmt/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
	appName = "docfmt"
)

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}

// GetAppName returns program name used for log, report and temporary file
// names.
func GetAppName() string {
	return appName
}
