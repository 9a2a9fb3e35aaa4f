package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = ".ij_logs"
)

// ResolveBasePath determines where ij stores day files. A blank override falls
// back to ~/.ij_logs; a leading "~" in the override is expanded.
func ResolveBasePath(override string) (string, error) {
	override = strings.TrimSpace(override)
	if override != "" {
		path, err := normalizePath(override)
		if err != nil {
			return "", err
		}
		return filepath.Abs(path)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

func normalizePath(input string) (string, error) {
	if input == "~" || strings.HasPrefix(input, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
