package skillstool

import (
	"context"
	"fmt"

	"github.com/amplifier-go/skillstool/spec"
)

// MountKind is the coordinator component kind the tool registers under.
const MountKind = "tools"

// Mount builds the skills tool from the host module config, registers
// it with the coordinator, and emits the discovery event.
func Mount(
	ctx context.Context,
	coordinator spec.Coordinator,
	config map[string]any,
	opts ...Option,
) (*SkillsTool, error) {
	if coordinator == nil {
		return nil, fmt.Errorf("%w: nil coordinator", spec.ErrInvalidArgument)
	}

	cfg, err := ParseConfig(config)
	if err != nil {
		return nil, err
	}

	tool, err := New(cfg, append([]Option{WithCoordinator(coordinator)}, opts...)...)
	if err != nil {
		return nil, err
	}

	if err := coordinator.Mount(ctx, MountKind, tool, tool.Name()); err != nil {
		return nil, fmt.Errorf("mount skills tool: %w", err)
	}
	tool.logger.Info("mounted skills tool",
		"skills", tool.SkillCount(), "sources", len(tool.Sources()))

	tool.emit(ctx, spec.EventSkillsDiscovered, map[string]any{
		"skill_count": tool.SkillCount(),
		"skill_names": tool.SkillNames(),
		"sources":     tool.Sources(),
	})

	return tool, nil
}
