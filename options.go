package skillstool

import (
	"log/slog"

	"github.com/amplifier-go/skillstool/spec"
)

type toolOptions struct {
	logger      *slog.Logger
	coordinator spec.Coordinator
}

type Option func(*toolOptions) error

func WithLogger(l *slog.Logger) Option {
	return func(o *toolOptions) error {
		o.logger = l
		return nil
	}
}

// WithCoordinator attaches the host coordinator used for capability
// probing, the session context collaborator, and event emission. The
// tool works without one.
func WithCoordinator(c spec.Coordinator) Option {
	return func(o *toolOptions) error {
		o.coordinator = c
		return nil
	}
}
