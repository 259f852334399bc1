package grid

import "github.com/adamico/locustron-sub001"

func init() {
	locustron.RegisterStrategy(locustron.DefaultStrategyName, newStrategy)
}

// newStrategy is the locustron.StrategyFactory this package registers
// under "fixed_grid". It is not exported: callers reach it indirectly,
// through locustron.New/locustron.NewWithCellSize.
func newStrategy(cfg any) (locustron.Strategy, error) {
	resolved, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}
	return New(resolved), nil
}
