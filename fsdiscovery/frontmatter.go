// Package fsdiscovery discovers skill documents on the local
// filesystem. A skill is a directory containing a SKILL.md file whose
// optional YAML frontmatter carries at least a name and a description.
//
// Discovery is a bounded, single-pass scan: malformed or unreadable
// documents are skipped with a logged warning and recorded in a Report,
// never surfaced as errors.
package fsdiscovery

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// SkillFileName is the fixed document name inside a skill's own
	// subdirectory.
	SkillFileName = "SKILL.md"

	maxSkillMDBytes = 2 << 20 // 2 MiB
)

// Scanner performs frontmatter parsing and skill discovery.
type Scanner struct {
	logger *slog.Logger
}

type Option func(*Scanner) error

func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) error {
		s.logger = l
		return nil
	}
}

func NewScanner(opts ...Option) (*Scanner, error) {
	s := &Scanner{logger: slog.Default()}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(s); err != nil {
			return nil, err
		}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s, nil
}

// ParseFrontmatter reads the document at path and decodes its YAML
// frontmatter into a flat key-value mapping. It returns ok=false when
// the file is unreadable, the delimited block is absent or
// unterminated, or the block does not decode as a mapping. None of
// those conditions is an error for callers; they are logged here.
func (s *Scanner) ParseFrontmatter(path string) (map[string]any, bool) {
	props, reason := s.parseFrontmatterFile(path)
	return props, reason == ""
}

// ExtractBody returns the document text following the closing
// frontmatter delimiter, trimmed of surrounding whitespace. Documents
// without a complete frontmatter block yield the whole trimmed text.
// ok=false means the file could not be read.
func (s *Scanner) ExtractBody(path string) (string, bool) {
	b, err := readAllLimited(path)
	if err != nil {
		s.logger.Warn("failed to read skill file", "path", path, "error", err)
		return "", false
	}

	_, body, has, err := splitFrontmatter(string(b))
	if err != nil || !has {
		return strings.TrimSpace(string(b)), true
	}
	return strings.TrimSpace(body), true
}

func (s *Scanner) parseFrontmatterFile(path string) (map[string]any, SkipReason) {
	b, err := readAllLimited(path)
	if err != nil {
		s.logger.Warn("failed to read skill file", "path", path, "error", err)
		return nil, SkipUnreadable
	}

	fm, _, has, err := splitFrontmatter(string(b))
	if err != nil {
		s.logger.Debug("incomplete frontmatter", "path", path, "error", err)
		return nil, SkipNoFrontmatter
	}
	if !has {
		s.logger.Debug("no frontmatter", "path", path)
		return nil, SkipNoFrontmatter
	}

	props := map[string]any{}
	if err := yaml.Unmarshal([]byte(fm), &props); err != nil {
		s.logger.Warn("invalid frontmatter YAML", "path", path, "error", err)
		return nil, SkipNoFrontmatter
	}
	return props, ""
}

func readAllLimited(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(maxSkillMDBytes)+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) > maxSkillMDBytes {
		return nil, fmt.Errorf("%s too large (max %d bytes)", SkillFileName, maxSkillMDBytes)
	}
	return data, nil
}

// splitFrontmatter splits s into a frontmatter block and the body. The
// block opens with a "---" line at the very start of the text and is
// closed by a second "---" line.
func splitFrontmatter(s string) (frontmatter, body string, has bool, err error) {
	br := bufio.NewReader(strings.NewReader(s))

	first, ferr := br.ReadString('\n')
	if ferr != nil && !errors.Is(ferr, io.EOF) {
		return "", "", false, fmt.Errorf("read first line: %w", ferr)
	}
	if strings.TrimSpace(strings.TrimRight(first, "\r\n")) != "---" {
		return "", s, false, nil
	}

	var fmLines []string
	foundEnd := false
	for {
		line, lerr := br.ReadString('\n')
		if lerr != nil && !errors.Is(lerr, io.EOF) {
			return "", "", false, fmt.Errorf("read frontmatter line: %w", lerr)
		}
		lineTrim := strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(lineTrim) == "---" {
			foundEnd = true
			break
		}
		fmLines = append(fmLines, lineTrim)
		if errors.Is(lerr, io.EOF) {
			break
		}
	}

	if !foundEnd {
		return "", "", false, errors.New("unterminated frontmatter (missing closing ---)")
	}

	rest, err := io.ReadAll(br)
	if err != nil {
		return "", "", false, fmt.Errorf("read body: %w", err)
	}

	return strings.Join(fmLines, "\n"), string(rest), true, nil
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
