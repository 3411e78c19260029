package helper

import (
	"os"
	"path/filepath"
)

// GetCfgPath resolves a configuration file name to a path.
//
// Absolute paths are returned as-is. Relative names are looked up in the
// working directory, then in ./configs. When neither exists the
// /etc/expense-server fallback is returned.
func GetCfgPath(filename string) string {
	if filename == "" {
		panic("filename cannot be empty")
	}
	if filepath.IsAbs(filename) {
		return filename
	}

	cwd, err := os.Getwd()
	if err == nil && cwd != "" {
		for _, candidate := range []string{
			filepath.Join(cwd, filename),
			filepath.Join(cwd, "configs", filename),
		} {
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			if abs, err := filepath.Abs(candidate); err == nil {
				return abs
			}
		}
	}

	return filepath.Join("/etc/expense-server", filename)
}
