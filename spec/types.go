package spec

const (
	// ToolName is the name the skills tool is mounted under.
	ToolName = "load_skill"

	// ToolDescription is the model-facing description.
	ToolDescription = "Load domain knowledge from an available skill. Skills provide " +
		"specialized knowledge, workflows, best practices, and standards. " +
		"Use when you need domain expertise, coding guidelines, or " +
		"architectural patterns. Call with list=true to see all skills."
)

// SkillRecord is the registry record for one discovered skill document.
// Records are built once during discovery and never mutated afterwards;
// re-running discovery produces a fresh mapping.
type SkillRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Path is the absolute path to the SKILL.md file.
	Path string `json:"path"`

	// Source is the skills directory the record was discovered under.
	Source string `json:"source"`

	Version string `json:"version,omitempty"`
	License string `json:"license,omitempty"`

	// Metadata carries the frontmatter `metadata:` mapping, passed
	// through opaquely for fields not otherwise modeled.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ToolRequest is the input of the skills tool. Exactly one of the four
// keys is expected; they are checked in the order List, Search, Info,
// SkillName.
type ToolRequest struct {
	// List returns all available skills as {name, description} pairs.
	List bool `json:"list,omitempty"       mapstructure:"list"`

	// Search filters skills by a case-insensitive substring match
	// against name or description.
	Search string `json:"search,omitempty"     mapstructure:"search"`

	// Info returns full metadata for one skill without its body.
	Info string `json:"info,omitempty"       mapstructure:"info"`

	// SkillName loads the full body of one skill.
	SkillName string `json:"skill_name,omitempty" mapstructure:"skill_name"`
}

// ToolError is the error payload of a failed ToolResult.
type ToolError struct {
	Message string `json:"message"`
}

// ToolResult is the host tool envelope: a success flag plus either an
// output payload or an error payload. Request-level failures (unknown
// skill, quota denial, bad request) are ToolResult failures, not Go
// errors.
type ToolResult struct {
	Success bool           `json:"success"`
	Output  map[string]any `json:"output,omitempty"`
	Error   *ToolError     `json:"error,omitempty"`
}

// SkillListItem is one entry of the list/search outputs.
type SkillListItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func SuccessResult(output map[string]any) ToolResult {
	return ToolResult{Success: true, Output: output}
}

func FailureResult(message string) ToolResult {
	return ToolResult{Success: false, Error: &ToolError{Message: message}}
}
