package configs

import (
	"fmt"
	"strings"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Storage selects where campaigns and ledgers live. The memory backend
// loses everything on restart and suits local runs and tests; postgres
// uses the Psql section.
type Storage struct {
	Backend string `env:"BACKEND" envDefault:"memory"`
}

// Validate normalises Backend and rejects unknown values.
func (c *Storage) Validate() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case BackendMemory, BackendPostgres:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q", c.Backend)
	}
}
