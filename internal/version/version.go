package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/RYZHAIEV-SERHII/TidyFiles/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/RYZHAIEV-SERHII/TidyFiles/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/RYZHAIEV-SERHII/TidyFiles/internal/version.Date={{.Date}}
)
