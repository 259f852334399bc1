package locustron

import "fmt"

// StrategyFactory builds a Strategy instance from a strategy-specific
// config value (nil selects that strategy's own defaults).
type StrategyFactory func(cfg any) (Strategy, error)

// strategyRegistry maps a strategy name to its factory. It is deliberately
// a registry rather than a fixed switch so a strategy package can add
// itself without this package importing it — grid.FixedGrid registers
// itself from an init() in package grid, the same self-registration shape
// d2plugin uses for its layout engines, applied here across a package
// boundary instead of within one package. This keeps the dependency
// direction strategy -> facade, never facade -> strategy, so a future
// out-of-tree strategy can be added without touching this module.
var strategyRegistry = make(map[string]StrategyFactory)

// RegisterStrategy makes a strategy available to New and NewWithCellSize
// under name. Strategy packages call this from an init() function; it is
// not expected to be called by façade consumers directly. Registering the
// same name twice overwrites the previous factory.
func RegisterStrategy(name string, factory StrategyFactory) {
	strategyRegistry[name] = factory
}

func buildStrategy(name string, cfg any) (Strategy, error) {
	if name == "" {
		name = DefaultStrategyName
	}
	factory, ok := strategyRegistry[name]
	if !ok {
		return nil, fmt.Errorf("locustron: strategy %q: %w", name, ErrUnknownStrategy)
	}
	return factory(cfg)
}
