package grid

import "fmt"

// Config configures grid construction. The zero value is
// invalid only in that Width and Height must be set; buffer sizes and
// rates fall back to their documented defaults, following the same
// "if zero, use default" pattern as microbatch.BatcherConfig.
type Config struct {
	// Width and Height are the grid dimensions, each in [1, 255].
	Width, Height int

	// LinkBufferSize is the capacity of each directed inter-tile link.
	// Defaults to 2, if 0.
	LinkBufferSize int

	// InnerBufferSize is the capacity of each intra-tile queue. Defaults
	// to 4, if 0.
	InnerBufferSize int

	// TxRate and RxRate optionally pace each node's egress/ingress task,
	// in hops/sec. 0 (the default) means unconstrained.
	TxRate, RxRate int
}

const (
	defaultLinkBufferSize  = 2
	defaultInnerBufferSize = 4
	maxDimension           = 255
)

// withDefaults returns a copy of cfg with zero-valued optional fields
// replaced by their documented defaults.
func (cfg Config) withDefaults() Config {
	if cfg.LinkBufferSize == 0 {
		cfg.LinkBufferSize = defaultLinkBufferSize
	}
	if cfg.InnerBufferSize == 0 {
		cfg.InnerBufferSize = defaultInnerBufferSize
	}
	return cfg
}

// validate checks the grid's dimension constraints. Unlike
// programmer-error conditions inside a running task, grid
// construction is a fallible, one-shot call from user code, so invalid
// configuration is surfaced as an error rather than a panic.
func (cfg Config) validate() error {
	if cfg.Width < 1 || cfg.Width > maxDimension {
		return fmt.Errorf("grid: width %d out of range [1, %d]", cfg.Width, maxDimension)
	}
	if cfg.Height < 1 || cfg.Height > maxDimension {
		return fmt.Errorf("grid: height %d out of range [1, %d]", cfg.Height, maxDimension)
	}
	if cfg.LinkBufferSize < 0 {
		return fmt.Errorf("grid: link buffer size %d must be >= 0", cfg.LinkBufferSize)
	}
	if cfg.InnerBufferSize < 0 {
		return fmt.Errorf("grid: inner buffer size %d must be >= 0", cfg.InnerBufferSize)
	}
	if cfg.TxRate < 0 || cfg.RxRate < 0 {
		return fmt.Errorf("grid: rates must be >= 0 (tx=%d, rx=%d)", cfg.TxRate, cfg.RxRate)
	}
	return nil
}
