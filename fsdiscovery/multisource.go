package fsdiscovery

import (
	"os"

	"github.com/amplifier-go/skillstool/internal/pathutil"
	"github.com/amplifier-go/skillstool/spec"
)

// DiscoverMultiSource runs DiscoverSkills against each directory in
// priority order (highest first) and merges the results with
// first-match-wins semantics: a name claimed by an earlier directory is
// never replaced by a later one. Each input path is home-expanded and
// resolved to absolute form; non-existent directories are skipped.
//
// The merge depends only on the order of dirs, so the result is
// deterministic for fixed directories and contents.
func (s *Scanner) DiscoverMultiSource(dirs []string) (map[string]spec.SkillRecord, Report) {
	merged := map[string]spec.SkillRecord{}
	var rep Report

	for _, dir := range dirs {
		abs, err := pathutil.Normalize(dir)
		if err != nil {
			s.logger.Warn("skipping invalid skills directory", "dir", dir, "error", err)
			continue
		}
		if st, serr := os.Stat(abs); serr != nil || !st.IsDir() {
			s.logger.Debug("skipping missing skills directory", "dir", abs)
			continue
		}

		found, r := s.DiscoverSkills(abs)
		rep.merge(r)

		for name, rec := range found {
			if _, ok := merged[name]; !ok {
				merged[name] = rec
			}
		}
	}

	s.logger.Info("discovered skills", "count", len(merged), "sources", len(dirs))
	return merged, rep
}
