package ports

import "context"

// GitInfo captures repository context at the moment a session completes.
type GitInfo struct {
	Branch string
	Commit string
}

// GitDetector reads git context from a working directory. This is a
// driven port (implemented by adapters).
type GitDetector interface {
	// Detect scans the working directory for git context.
	Detect(ctx context.Context, workingDir string) (*GitInfo, error)

	// IsAvailable reports whether a git repository is reachable from the
	// current directory.
	IsAvailable() bool
}
