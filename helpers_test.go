package skillstool

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/amplifier-go/skillstool/fsdiscovery"
	"github.com/amplifier-go/skillstool/spec"
)

type emittedEvent struct {
	name    string
	payload map[string]any
}

type fakeHooks struct {
	mu     sync.Mutex
	events []emittedEvent
	err    error
}

func (h *fakeHooks) Emit(_ context.Context, event string, payload map[string]any) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, emittedEvent{name: event, payload: payload})
	return h.err
}

func (h *fakeHooks) byName(name string) []emittedEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []emittedEvent
	for _, e := range h.events {
		if e.name == name {
			out = append(out, e)
		}
	}
	return out
}

type mountedComponent struct {
	kind      string
	name      string
	component any
}

type fakeCoordinator struct {
	capabilities  map[string]any
	collaborators map[string]any
	hooks         *fakeHooks
	mountErr      error

	mu      sync.Mutex
	mounted []mountedComponent
}

func (c *fakeCoordinator) Mount(_ context.Context, kind string, component any, name string) error {
	if c.mountErr != nil {
		return c.mountErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mounted = append(c.mounted, mountedComponent{kind: kind, name: name, component: component})
	return nil
}

func (c *fakeCoordinator) GetCapability(name string) (any, bool) {
	v, ok := c.capabilities[name]
	return v, ok
}

func (c *fakeCoordinator) Get(name string) (any, bool) {
	v, ok := c.collaborators[name]
	return v, ok
}

func (c *fakeCoordinator) Hooks() spec.HookEmitter {
	if c.hooks == nil {
		return nil
	}
	return c.hooks
}

// fakeContext is a scripted session context collaborator.
type fakeContext struct {
	mu      sync.Mutex
	loaded  map[string]bool
	canLoad bool
	warning string
	marked  []string
}

func newFakeContext() *fakeContext {
	return &fakeContext{loaded: map[string]bool{}, canLoad: true}
}

func (f *fakeContext) IsSkillLoaded(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loaded[name]
}

func (f *fakeContext) CanLoadSkill() (bool, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canLoad, f.warning
}

func (f *fakeContext) MarkSkillLoaded(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded[name] = true
	f.marked = append(f.marked, name)
}

func writeSkill(t *testing.T, dir, sub, content string) string {
	t.Helper()
	path := filepath.Join(dir, sub, fsdiscovery.SkillFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

// newFixtureDir writes two well-formed skills and returns the dir.
func newFixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeSkill(t, dir, "python-standards",
		"---\nname: python-standards\ndescription: Python coding standards and conventions\nversion: 1.0.0\nlicense: MIT\n---\n\nUse type hints everywhere.\n")
	writeSkill(t, dir, "design-patterns",
		"---\nname: design-patterns\ndescription: Architectural patterns catalog\nmetadata:\n  author: core-team\n---\n\nPrefer composition.\n")
	return dir
}

func newFixtureTool(t *testing.T, opts ...Option) *SkillsTool {
	t.Helper()
	tool, err := New(Config{SkillsDir: newFixtureDir(t)}, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tool
}

func requireFailure(t *testing.T, res spec.ToolResult) string {
	t.Helper()
	if res.Success {
		t.Fatalf("expected failure, got %+v", res)
	}
	if res.Error == nil || res.Error.Message == "" {
		t.Fatalf("failure without error message: %+v", res)
	}
	return res.Error.Message
}

func requireSuccess(t *testing.T, res spec.ToolResult) map[string]any {
	t.Helper()
	if !res.Success {
		t.Fatalf("expected success, got error=%+v", res.Error)
	}
	return res.Output
}
