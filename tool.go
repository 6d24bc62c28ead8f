// Package skillstool implements the "load_skill" host tool: it
// discovers skill documents (SKILL.md files with YAML frontmatter)
// from configured directories and serves them to an agent framework
// through four request modes: list, search, info, and load.
//
// Discovery runs once at construction; every request afterwards is a
// pure in-memory lookup against the immutable mapping, so concurrent
// invocation by the host scheduler needs no coordination.
package skillstool

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"strings"

	"github.com/amplifier-go/skillstool/fsdiscovery"
	"github.com/amplifier-go/skillstool/internal/pathutil"
	"github.com/amplifier-go/skillstool/spec"
)

// ToolName and ToolDescription are re-exported from spec for
// convenience at the mount site.
const (
	ToolName        = spec.ToolName
	ToolDescription = spec.ToolDescription
)

// SkillsTool owns one discovery result for its lifetime and answers
// the four tool request modes.
type SkillsTool struct {
	logger  *slog.Logger
	coord   spec.Coordinator
	scanner *fsdiscovery.Scanner

	skills map[string]spec.SkillRecord
	dirs   []string
	report fsdiscovery.Report
}

var _ spec.Runtime = (*SkillsTool)(nil)

// New builds the tool and runs discovery once. Skill sources are
// selected by priority: a shared registry capability pair on the
// coordinator, then cfg.SkillsDirs, then cfg.SkillsDir, then the
// default directory list.
func New(cfg Config, opts ...Option) (*SkillsTool, error) {
	var o toolOptions
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	scanner, err := fsdiscovery.NewScanner(fsdiscovery.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}

	t := &SkillsTool{
		logger:  o.logger,
		coord:   o.coordinator,
		scanner: scanner,
	}

	switch {
	case t.adoptSharedRegistry():
		t.logger.Info("using skills from context capability",
			"skills", len(t.skills), "sources", len(t.dirs))
	case len(cfg.SkillsDirs) > 0:
		t.dirs = append([]string(nil), cfg.SkillsDirs...)
		t.skills, t.report = scanner.DiscoverMultiSource(t.dirs)
		t.logger.Info("discovered skills from module config", "skills", len(t.skills))
	case strings.TrimSpace(cfg.SkillsDir) != "":
		dir := cfg.SkillsDir
		if abs, nerr := pathutil.Normalize(dir); nerr == nil {
			dir = abs
		}
		t.dirs = []string{dir}
		t.skills, t.report = scanner.DiscoverSkills(dir)
		t.logger.Info("discovered skills from module config", "skills", len(t.skills))
	default:
		t.dirs = fsdiscovery.DefaultSkillsDirs()
		t.skills, t.report = scanner.DiscoverMultiSource(t.dirs)
		t.logger.Info("discovered skills from default directories", "skills", len(t.skills))
	}

	return t, nil
}

// adoptSharedRegistry reuses discovery from another module when the
// coordinator exposes both the registry and directories capabilities.
// The mapping is cloned so façade instances never share mutable state.
func (t *SkillsTool) adoptSharedRegistry() bool {
	if t.coord == nil {
		return false
	}
	regAny, ok := t.coord.GetCapability(spec.CapabilitySkillsRegistry)
	if !ok {
		return false
	}
	dirsAny, ok := t.coord.GetCapability(spec.CapabilitySkillsDirectories)
	if !ok {
		return false
	}
	reg, ok := regAny.(map[string]spec.SkillRecord)
	if !ok {
		return false
	}
	dirs, ok := dirsAny.([]string)
	if !ok {
		return false
	}

	t.skills = maps.Clone(reg)
	if t.skills == nil {
		t.skills = map[string]spec.SkillRecord{}
	}
	t.dirs = append([]string(nil), dirs...)
	return true
}

func (t *SkillsTool) Name() string        { return ToolName }
func (t *SkillsTool) Description() string { return ToolDescription }

// SkillNames returns all known skill names, sorted.
func (t *SkillsTool) SkillNames() []string {
	names := make([]string, 0, len(t.skills))
	for name := range t.skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *SkillsTool) SkillCount() int { return len(t.skills) }

// Sources returns the configured source directories in priority order.
func (t *SkillsTool) Sources() []string {
	return append([]string(nil), t.dirs...)
}

// Report returns the discovery diagnostics (scanned/skipped counts).
func (t *SkillsTool) Report() fsdiscovery.Report { return t.report }

// Execute answers one tool request. The four request keys are checked
// in priority order; a request carrying none of them is a bad request.
// Every failure path returns a structured failure value.
func (t *SkillsTool) Execute(ctx context.Context, req spec.ToolRequest) spec.ToolResult {
	if req.List {
		return t.listSkills()
	}
	if term := strings.TrimSpace(req.Search); term != "" {
		return t.searchSkills(term)
	}
	if name := strings.TrimSpace(req.Info); name != "" {
		return t.skillInfo(name)
	}
	if name := strings.TrimSpace(req.SkillName); name != "" {
		return t.loadSkill(ctx, name)
	}
	return spec.FailureResult("Must provide skill_name, list=true, search='term', or info='name'")
}

func (t *SkillsTool) listSkills() spec.ToolResult {
	if len(t.skills) == 0 {
		return spec.SuccessResult(map[string]any{
			"message": fmt.Sprintf("No skills found in %s", strings.Join(t.dirs, ", ")),
		})
	}

	items := t.listItems(func(spec.SkillRecord) bool { return true })
	lines := []string{"Available Skills:", ""}
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("**%s**: %s", it.Name, it.Description))
	}

	return spec.SuccessResult(map[string]any{
		"message": strings.Join(lines, "\n"),
		"skills":  items,
	})
}

func (t *SkillsTool) searchSkills(term string) spec.ToolResult {
	lower := strings.ToLower(term)
	items := t.listItems(func(rec spec.SkillRecord) bool {
		return strings.Contains(strings.ToLower(rec.Name), lower) ||
			strings.Contains(strings.ToLower(rec.Description), lower)
	})

	if len(items) == 0 {
		return spec.SuccessResult(map[string]any{
			"message": fmt.Sprintf("No skills matching '%s'", term),
		})
	}

	lines := []string{fmt.Sprintf("Skills matching '%s':", term), ""}
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("**%s**: %s", it.Name, it.Description))
	}

	return spec.SuccessResult(map[string]any{
		"message": strings.Join(lines, "\n"),
		"matches": items,
	})
}

// skillInfo returns full metadata for one skill without touching its
// document body.
func (t *SkillsTool) skillInfo(name string) spec.ToolResult {
	rec, ok := t.skills[name]
	if !ok {
		return t.notFound(name)
	}

	info := map[string]any{
		"name":        rec.Name,
		"description": rec.Description,
		"version":     rec.Version,
		"license":     rec.License,
		"path":        rec.Path,
	}
	if len(rec.Metadata) > 0 {
		info["metadata"] = rec.Metadata
	}
	return spec.SuccessResult(info)
}

func (t *SkillsTool) loadSkill(ctx context.Context, name string) spec.ToolResult {
	rec, ok := t.skills[name]
	if !ok {
		return t.notFound(name)
	}

	if sc := t.sessionContext(); sc != nil {
		if sc.IsSkillLoaded(name) {
			return spec.SuccessResult(map[string]any{
				"message":        fmt.Sprintf("Skill '%s' is already loaded in context", name),
				"skill_name":     name,
				"already_loaded": true,
			})
		}
		canLoad, warning := sc.CanLoadSkill()
		if !canLoad {
			if warning == "" {
				warning = "Cannot load more skills"
			}
			return spec.FailureResult(warning)
		}
		if warning != "" {
			t.logger.Warn(warning, "skill", name)
		}
	}

	body, readable := t.scanner.ExtractBody(rec.Path)
	if !readable || body == "" {
		return spec.FailureResult(fmt.Sprintf("Failed to load content from %s", rec.Path))
	}

	t.logger.Info("loaded skill", "skill", name)

	if sc := t.sessionContext(); sc != nil {
		sc.MarkSkillLoaded(name)
	}
	t.emit(ctx, spec.EventSkillLoaded, map[string]any{
		"skill_name":     name,
		"source":         rec.Source,
		"content_length": len(body),
		"version":        rec.Version,
	})

	return spec.SuccessResult(map[string]any{
		"content":     fmt.Sprintf("# %s\n\n%s", name, body),
		"skill_name":  name,
		"loaded_from": rec.Source,
	})
}

func (t *SkillsTool) listItems(match func(spec.SkillRecord) bool) []spec.SkillListItem {
	items := make([]spec.SkillListItem, 0, len(t.skills))
	for _, rec := range t.skills {
		if match(rec) {
			items = append(items, spec.SkillListItem{Name: rec.Name, Description: rec.Description})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

func (t *SkillsTool) notFound(name string) spec.ToolResult {
	return spec.FailureResult(fmt.Sprintf("Skill '%s' not found. Available: %s",
		name, strings.Join(t.SkillNames(), ", ")))
}

// sessionContext probes the coordinator for the optional per-session
// context collaborator.
func (t *SkillsTool) sessionContext() spec.SessionContext {
	if t.coord == nil {
		return nil
	}
	v, ok := t.coord.Get(spec.CollaboratorContext)
	if !ok {
		return nil
	}
	sc, _ := v.(spec.SessionContext)
	return sc
}

func (t *SkillsTool) emit(ctx context.Context, event string, payload map[string]any) {
	if t.coord == nil {
		return
	}
	hooks := t.coord.Hooks()
	if hooks == nil {
		return
	}
	if err := hooks.Emit(ctx, event, payload); err != nil {
		t.logger.Warn("hook emit failed", "event", event, "error", err)
	}
}
