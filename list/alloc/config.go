package alloc

import (
	"math"

	"github.com/go-kit/log"

	"github.com/NewbieGameCoder/BetterList/internal/bounds"
)

// Config defines the pool's growth policy and logging.
// Different configurations can be tested to find the right
// churn/footprint tradeoff for a workload.
type Config struct {
	// Name for this configuration (for benchmarking).
	Name string

	// MinCapacity is the smallest capacity a container requests when it
	// grows from empty (typically 32).
	MinCapacity int

	// Growth is the capacity multiplier applied when a container
	// outgrows its buffer (typically 2).
	Growth int

	// Logger receives debug records of acquire/release decisions when
	// allocation logging is enabled. Nil means no logging.
	Logger log.Logger
}

// Predefined configurations.
var (
	// ConfigDoubling: classic amortized doubling with a 32-element floor.
	ConfigDoubling = Config{
		Name:        "Doubling",
		MinCapacity: 32,
		Growth:      2,
	}

	// ConfigCompact: smaller floor and gentler growth, fewer wasted
	// slots at the cost of more frequent copies.
	ConfigCompact = Config{
		Name:        "Compact",
		MinCapacity: 8,
		Growth:      2,
	}

	// DefaultConfig is used when NewPool receives nil.
	DefaultConfig = ConfigDoubling
)

// GrowTarget returns the capacity a container should request when its
// buffer of capacity current must hold at least need elements: the
// larger of need and max(MinCapacity, current*Growth). The doubling
// term saturates instead of overflowing.
func (c Config) GrowTarget(current, need int) int {
	target, ok := bounds.MulOverflowSafe(current, c.Growth)
	if !ok {
		target = math.MaxInt
	}
	if target < c.MinCapacity {
		target = c.MinCapacity
	}
	if target < need {
		target = need
	}
	return target
}

// normalize fills zero fields from DefaultConfig so a partially
// specified Config behaves sensibly.
func (c Config) normalize() Config {
	if c.MinCapacity <= 0 {
		c.MinCapacity = DefaultConfig.MinCapacity
	}
	if c.Growth < 2 {
		c.Growth = DefaultConfig.Growth
	}
	return c
}
