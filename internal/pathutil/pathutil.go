package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ExpandUser expands a leading "~" to the user home directory. Paths
// of the form "~name" are returned unchanged; per-user lookup is not
// supported. If the home directory cannot be determined the input is
// returned unchanged.
func ExpandUser(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, `~\`) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, p[2:])
}

// Normalize expands the user home and resolves the path to a cleaned
// absolute form. It performs no existence check.
func Normalize(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", errors.New("empty path")
	}
	if strings.ContainsRune(p, '\x00') {
		return "", errors.New("path contains NUL byte")
	}

	expanded := filepath.Clean(filepath.FromSlash(ExpandUser(p)))
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}
	return abs, nil
}
