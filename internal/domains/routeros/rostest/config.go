package rostest

import (
	"github.com/rickicode/mikrotik-billing/internal/entities"
)

// Config is a config source that always returns the same settings.
type Config entities.RouterConfig

func (c Config) Load() (entities.RouterConfig, error) {
	return entities.RouterConfig(c), nil
}
