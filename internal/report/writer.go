package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/user/netsnap/internal/util"
)

// WriteOutput writes serialized report data to path. A path of "-"
// or "" writes to stdout. Parent directories are created as needed.
func WriteOutput(data []byte, path string) error {
	if path == "" || path == "-" {
		if _, err := os.Stdout.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write report to stdout: %w", err)
		}
		return nil
	}

	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
