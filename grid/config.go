package grid

import "fmt"

// Config is the fixed-grid strategy's own configuration: the side length
// of a cell, in world units.
type Config struct {
	CellSize int
}

// DefaultCellSize matches locustron.DefaultCellSize; duplicated as an
// untyped constant here so this package has no compile-time dependency on
// the root package's constant (it still imports the root package for its
// types and, in register.go, for its strategy registry).
const DefaultCellSize = 32

// DefaultConfig returns the fixed-grid default: CellSize = 32.
func DefaultConfig() Config {
	return Config{CellSize: DefaultCellSize}
}

// resolveConfig accepts the shapes New's registered factory may receive
// from locustron.Config.StrategyConfig: nil (defaults), a bare positive
// int (the legacy cell_size form named in the design), or a Config value.
func resolveConfig(cfg any) (Config, error) {
	switch v := cfg.(type) {
	case nil:
		return DefaultConfig(), nil
	case int:
		if v <= 0 {
			return Config{}, fmt.Errorf("grid: cell size must be positive, got %d", v)
		}
		return Config{CellSize: v}, nil
	case Config:
		if v.CellSize <= 0 {
			return Config{}, fmt.Errorf("grid: cell size must be positive, got %d", v.CellSize)
		}
		return v, nil
	default:
		return Config{}, fmt.Errorf("grid: unsupported config type %T", cfg)
	}
}
