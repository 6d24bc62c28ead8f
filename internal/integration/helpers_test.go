package integration

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/amplifier-go/skillstool/spec"
)

type emittedEvent struct {
	name    string
	payload map[string]any
}

type recordingHooks struct {
	mu     sync.Mutex
	events []emittedEvent
}

func (h *recordingHooks) Emit(_ context.Context, event string, payload map[string]any) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, emittedEvent{name: event, payload: payload})
	return nil
}

func (h *recordingHooks) byName(name string) []emittedEvent {
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

// coordinator is a minimal in-process host: a component registry with
// capabilities, named collaborators, and a hook bus.
type coordinator struct {
	mu            sync.Mutex
	capabilities  map[string]any
	collaborators map[string]any
	components    map[string]any
	hooks         *recordingHooks
}

func newCoordinator() *coordinator {
	return &coordinator{
		capabilities:  map[string]any{},
		collaborators: map[string]any{},
		components:    map[string]any{},
		hooks:         &recordingHooks{},
	}
}

func (c *coordinator) Mount(_ context.Context, kind string, component any, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.components[kind+"/"+name] = component
	return nil
}

func (c *coordinator) GetCapability(name string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.capabilities[name]
	return v, ok
}

func (c *coordinator) Get(name string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.collaborators[name]
	return v, ok
}

func (c *coordinator) Hooks() spec.HookEmitter { return c.hooks }

func (c *coordinator) setCollaborator(name string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.collaborators[name] = v
}

func (c *coordinator) component(kind, name string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.components[kind+"/"+name]
	return v, ok
}

func writeSkillFile(t *testing.T, dir, sub, content string) string {
	t.Helper()
	path := filepath.Join(dir, sub, "SKILL.md")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func mustSuccess(t *testing.T, res spec.ToolResult) map[string]any {
	t.Helper()
	if !res.Success {
		t.Fatalf("expected success, got error=%+v", res.Error)
	}
	return res.Output
}

func mustFailure(t *testing.T, res spec.ToolResult) string {
	t.Helper()
	if res.Success {
		t.Fatalf("expected failure, got %+v", res.Output)
	}
	if res.Error == nil {
		t.Fatalf("failure without error value")
	}
	return res.Error.Message
}
