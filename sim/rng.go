package sim

import (
	"hash/fnv"
	"math/rand"
)

// Seed identifies a reproducible scenario generation run.
// The same Seed and generator settings always yield the same scenario.
type Seed int64

// RNG subsystems used by scenario generation.
const (
	SubsystemArrivals = "arrivals"
	SubsystemBursts   = "bursts"
)

// PartitionedRNG hands out one deterministic *rand.Rand per named subsystem,
// so drawing more values from one stream never shifts another.
//
// Derived seed: seed XOR fnv1a64(subsystem).
//
// Not safe for concurrent use.
type PartitionedRNG struct {
	seed       Seed
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG rooted at seed.
func NewPartitionedRNG(seed Seed) *PartitionedRNG {
	return &PartitionedRNG{
		seed:       seed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the RNG for the named subsystem, creating it on first use.
// Repeated calls with the same name return the same instance.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(int64(p.seed) ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// Seed returns the root seed.
func (p *PartitionedRNG) Seed() Seed {
	return p.seed
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
