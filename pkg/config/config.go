package config

import (
	"fmt"
)

type EfficiencyMode int

const (
	// EfficiencyNone disables the efficiency column.
	EfficiencyNone EfficiencyMode = iota
	// EfficiencyCompute normalizes measured FLOP/s against the peak compute bandwidth.
	EfficiencyCompute
	// EfficiencyMemory normalizes measured B/s against the peak memory bandwidth.
	EfficiencyMemory
)

// RunConfig carries the run-topology and hardware-ceiling parameters of one
// analysis run. A zero peak bandwidth means the flag was not given.
type RunConfig struct {
	Nodes int
	Cores int

	// Threshold is accepted for compatibility with older tooling and is not
	// read by the pipeline.
	Threshold float64

	PeakFlops float64 // peak compute bandwidth per node in DP FLOP/s
	PeakBytes float64 // peak memory bandwidth per node in B/s

	SummaryPath string

	mode EfficiencyMode
}

// Validate checks the configuration and resolves the efficiency mode. It must
// be called before any input file is processed.
func (c *RunConfig) Validate() error {
	if c.Nodes < 1 {
		return fmt.Errorf("node count must be at least 1, got %d", c.Nodes)
	}
	if c.Cores < 1 {
		return fmt.Errorf("core count must be at least 1, got %d", c.Cores)
	}
	if c.PeakFlops != 0 && c.PeakBytes != 0 {
		return fmt.Errorf("at most one of peak compute and peak memory bandwidth may be given")
	}

	switch {
	case c.PeakFlops != 0:
		c.mode = EfficiencyCompute
	case c.PeakBytes != 0:
		c.mode = EfficiencyMemory
	default:
		c.mode = EfficiencyNone
	}

	return nil
}

// Mode returns the efficiency mode resolved by Validate.
func (c *RunConfig) Mode() EfficiencyMode {
	return c.mode
}
