package workspace

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fermikit/latprep/internal/ctxlog"
)

// MissingFilesError reports every required file a preflight check failed to
// find, not just the first.
type MissingFilesError struct {
	Paths []string
}

// Error implements the error interface for MissingFilesError.
func (e *MissingFilesError) Error() string {
	return fmt.Sprintf("required files missing: %s", strings.Join(e.Paths, ", "))
}

// CheckFiles verifies that every path exists and is a regular file. All
// paths are checked before returning so the error names the complete set
// of missing inputs.
func CheckFiles(ctx context.Context, paths ...string) error {
	logger := ctxlog.FromContext(ctx)

	var missing []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			logger.Warn("Required file not found.", "path", p)
			missing = append(missing, p)
			continue
		}
		logger.Debug("Required file present.", "path", p, "size", info.Size())
	}

	if len(missing) > 0 {
		return &MissingFilesError{Paths: missing}
	}
	return nil
}
