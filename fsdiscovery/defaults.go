package fsdiscovery

import (
	"os"
	"path/filepath"
	"strings"
)

// SkillsDirEnvVar optionally names one additional highest-priority
// skills directory.
const SkillsDirEnvVar = "AMPLIFIER_SKILLS_DIR"

const (
	workspaceSkillsDir = ".amplifier/skills"
	userSkillsDir      = "~/.amplifier/skills"
)

// DefaultSkillsDirs returns the ordered directory list searched when
// the caller configures none: the environment override (if set), the
// workspace-relative directory, then the user-home directory. It only
// computes candidate paths; home expansion and existence checks happen
// during discovery.
func DefaultSkillsDirs() []string {
	dirs := make([]string, 0, 3)
	if v := strings.TrimSpace(os.Getenv(SkillsDirEnvVar)); v != "" {
		dirs = append(dirs, v)
	}
	dirs = append(dirs,
		filepath.FromSlash(workspaceSkillsDir),
		filepath.FromSlash(userSkillsDir),
	)
	return dirs
}
