package skillstool

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config is the module configuration surface consumed from the host.
// When both fields are empty the tool falls back to the default skills
// directories.
type Config struct {
	// SkillsDirs selects multi-source discovery across the listed
	// directories, highest priority first.
	SkillsDirs []string `mapstructure:"skills_dirs"`

	// SkillsDir selects single-source discovery from one directory.
	// Ignored when SkillsDirs is set.
	SkillsDir string `mapstructure:"skills_dir"`
}

// ParseConfig decodes a host module config map. skills_dirs accepts
// either a list of paths or a single path string.
func ParseConfig(raw map[string]any) (Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid skills tool config: %w", err)
	}
	return cfg, nil
}
