package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dusk-indust/sample/internal/user"
)

// ErrOperands is returned when the operands list does not hold exactly two
// values.
var ErrOperands = errors.New("operands must have exactly two values")

// UserEntry is one user as written in a run file.
type UserEntry struct {
	ID   int32  `yaml:"id"`
	Name string `yaml:"name"`
}

// RunConfig holds the overrides read from a YAML run file.
type RunConfig struct {
	Users    []UserEntry `yaml:"users,omitempty"`
	Operands []int32     `yaml:"operands,omitempty"`
}

// Load reads and decodes the run file at path.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a run file. An empty document gives a zero-value config.
func Parse(data []byte) (*RunConfig, error) {
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Operands != nil && len(cfg.Operands) != 2 {
		return nil, fmt.Errorf("decode config: %w (got %d)", ErrOperands, len(cfg.Operands))
	}
	return &cfg, nil
}

// Roster returns the configured users in file order, or the default roster
// when none are listed.
func (c *RunConfig) Roster() user.Roster {
	if c == nil || len(c.Users) == 0 {
		return user.DefaultRoster()
	}
	roster := make(user.Roster, 0, len(c.Users))
	for _, e := range c.Users {
		roster = append(roster, user.New(e.ID, e.Name))
	}
	return roster
}

// Addends returns the two configured operands, or 2 and 3.
func (c *RunConfig) Addends() (int32, int32) {
	if c == nil || len(c.Operands) != 2 {
		return 2, 3
	}
	return c.Operands[0], c.Operands[1]
}
