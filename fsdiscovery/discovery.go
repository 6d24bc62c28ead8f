package fsdiscovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/amplifier-go/skillstool/spec"
)

// SkipReason classifies why a candidate document produced no record.
type SkipReason string

const (
	// SkipUnreadable - the file could not be read.
	SkipUnreadable SkipReason = "unreadable"

	// SkipNoFrontmatter - missing, unterminated, or undecodable
	// frontmatter block.
	SkipNoFrontmatter SkipReason = "no_frontmatter"

	// SkipMissingFields - frontmatter decoded but name or description
	// is absent.
	SkipMissingFields SkipReason = "missing_fields"
)

// Skip is one skipped candidate document.
type Skip struct {
	Path   string
	Reason SkipReason
}

// Report collects scan diagnostics separately from the returned
// mapping, so callers can assert on skip counts without parsing logs.
type Report struct {
	// Scanned counts candidate documents considered.
	Scanned int

	// Skips lists candidates that produced no record.
	Skips []Skip
}

func (r Report) SkipCount() int { return len(r.Skips) }

func (r *Report) merge(other Report) {
	r.Scanned += other.Scanned
	r.Skips = append(r.Skips, other.Skips...)
}

// DiscoverSkills scans one directory for documents matching
// "*/SKILL.md" (immediate subdirectories only) and builds a record per
// well-formed document. Non-existent or non-directory inputs yield an
// empty mapping.
func (s *Scanner) DiscoverSkills(dir string) (map[string]spec.SkillRecord, Report) {
	skills := map[string]spec.SkillRecord{}
	var rep Report

	st, err := os.Stat(dir)
	if err != nil {
		s.logger.Debug("skills directory does not exist", "dir", dir)
		return skills, rep
	}
	if !st.IsDir() {
		s.logger.Warn("skills path is not a directory", "path", dir)
		return skills, rep
	}

	matches, err := doublestar.Glob(os.DirFS(dir), "*/"+SkillFileName)
	if err != nil {
		s.logger.Warn("skills directory scan failed", "dir", dir, "error", err)
		return skills, rep
	}
	sort.Strings(matches)

	for _, m := range matches {
		path := filepath.Join(dir, filepath.FromSlash(m))
		rep.Scanned++

		props, reason := s.parseFrontmatterFile(path)
		if reason != "" {
			rep.Skips = append(rep.Skips, Skip{Path: path, Reason: reason})
			continue
		}

		name := strings.TrimSpace(asString(props["name"]))
		description := strings.TrimSpace(asString(props["description"]))
		if name == "" || description == "" {
			s.logger.Warn("skipping skill: missing required fields (name, description)", "path", path)
			rep.Skips = append(rep.Skips, Skip{Path: path, Reason: SkipMissingFields})
			continue
		}

		rec := spec.SkillRecord{
			Name:        name,
			Description: description,
			Path:        path,
			Source:      dir,
			Version:     strings.TrimSpace(asString(props["version"])),
			License:     strings.TrimSpace(asString(props["license"])),
		}
		if meta, ok := props["metadata"].(map[string]any); ok && len(meta) > 0 {
			rec.Metadata = meta
		}

		// Same-name collisions inside one directory keep the later
		// match; a single directory is assumed curated.
		skills[name] = rec
		s.logger.Debug("discovered skill", "name", name, "path", path)
	}

	s.logger.Debug("scanned skills directory", "dir", dir, "count", len(skills), "skipped", rep.SkipCount())
	return skills, rep
}
