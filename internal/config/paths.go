package config

import (
	"os"
	"path/filepath"
)

const fileName = "netlocd.yaml"

// SearchPaths returns the ordered list of candidate config paths. The
// explicit path (from --config) comes first when non-empty, then the
// working directory, the user's home, and the system locations.
func SearchPaths(explicit string) []string {
	paths := make([]string, 0, 5)
	if explicit != "" {
		paths = append(paths, explicit)
	}
	paths = append(paths, fileName)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+fileName))
	}
	paths = append(paths,
		filepath.Join("/usr/local/etc", fileName),
		filepath.Join("/etc", fileName),
	)
	return paths
}

// UserPath is where a synthesized default config is written.
func UserPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return fileName
	}
	return filepath.Join(home, "."+fileName)
}
