package spec

import "context"

// Runtime is the interface that tool wiring binds to.
// Implementations (like the package skillstool SkillsTool) own the
// discovered skill mapping.
type Runtime interface {
	Execute(ctx context.Context, req ToolRequest) ToolResult
}
