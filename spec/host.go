package spec

import "context"

// Capability and collaborator names probed on the Coordinator.
const (
	// CapabilitySkillsRegistry is a shared map[string]SkillRecord built
	// by another module; when present together with
	// CapabilitySkillsDirectories it replaces local discovery.
	CapabilitySkillsRegistry = "skills.registry"

	// CapabilitySkillsDirectories is the []string of source directories
	// that produced CapabilitySkillsRegistry.
	CapabilitySkillsDirectories = "skills.directories"

	// CollaboratorContext names the optional per-session context that
	// tracks loaded skills and enforces the load quota.
	CollaboratorContext = "context"
)

// Lifecycle events emitted through the coordinator's hook bus.
const (
	// EventSkillsDiscovered fires once after mount with discovery counts.
	EventSkillsDiscovered = "skills:discovered"

	// EventSkillLoaded fires once per successful load with load metadata.
	EventSkillLoaded = "skill:loaded"
)

// Coordinator is the host-side module coordinator. It is an external
// collaborator: this module only consumes the surface below. Optional
// collaborators are capability-probed; the tool functions correctly
// with every one of them absent.
type Coordinator interface {
	// Mount registers a component under a kind (e.g. "tools").
	Mount(ctx context.Context, kind string, component any, name string) error

	// GetCapability looks up a shared capability by name.
	GetCapability(name string) (any, bool)

	// Get looks up a named collaborator (e.g. "context").
	Get(name string) (any, bool)

	// Hooks returns the host event bus. May return nil.
	Hooks() HookEmitter
}

// HookEmitter is the host event bus.
type HookEmitter interface {
	Emit(ctx context.Context, event string, payload map[string]any) error
}

// SessionContext tracks which skills are loaded in the current agent
// session and gates further loads. All methods must be safe for
// concurrent use.
type SessionContext interface {
	IsSkillLoaded(name string) bool

	// CanLoadSkill reports whether another skill may be loaded. A
	// non-empty warning with ok=true is advisory (logged, load
	// proceeds); with ok=false it is surfaced as the failure message.
	CanLoadSkill() (ok bool, warning string)

	MarkSkillLoaded(name string)
}
