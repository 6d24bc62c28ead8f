// Package skilltool exposes the skills tool through an llmtools-go
// Registry. Binding to a SkillsTool instance is done by closure at
// registration time.
package skilltool

import (
	"context"
	"errors"

	"github.com/flexigpt/llmtools-go"
	llmtoolsgoSpec "github.com/flexigpt/llmtools-go/spec"

	"github.com/amplifier-go/skillstool/spec"
)

const (
	FuncIDLoadSkill llmtoolsgoSpec.FuncID = "github.com/amplifier-go/skillstool/skilltool.Execute"
)

// Register registers the load_skill tool into an existing llmtools-go
// Registry, bound to rt.
func Register(r *llmtools.Registry, rt spec.Runtime) error {
	if r == nil {
		return errors.New("nil registry")
	}
	if rt == nil {
		return errors.New("nil runtime")
	}

	return llmtools.RegisterTypedAsTextTool[spec.ToolRequest, spec.ToolResult](
		r,
		LoadSkillTool(),
		func(ctx context.Context, req spec.ToolRequest) (spec.ToolResult, error) {
			return rt.Execute(ctx, req), nil
		},
	)
}

func Tools() []llmtoolsgoSpec.Tool {
	return []llmtoolsgoSpec.Tool{LoadSkillTool()}
}

func LoadSkillTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "019c1da4-8a52-7f01-9b3e-4d20c1a77e01",
		Slug:          "skills.load_skill",
		Version:       "v1.0.0",
		DisplayName:   "Load Skill",
		Description:   spec.ToolDescription,
		Tags:          []string{"skills"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "skill_name":{"type":"string","description":"Name of skill to load (e.g., 'design-patterns', 'python-standards')"},
		    "list":{"type":"boolean","description":"If true, return list of all available skills"},
		    "search":{"type":"string","description":"Search term to filter skills by name or description"},
		    "info":{"type":"string","description":"Get metadata for a specific skill without loading full content"}
		  },
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDLoadSkill},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}
