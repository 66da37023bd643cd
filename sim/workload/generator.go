package workload

import (
	"fmt"
	"sort"

	"github.com/schedsim/schedsim/sim"
)

// GeneratorConfig drives random scenario synthesis.
type GeneratorConfig struct {
	Seed       int64
	Count      int
	RunFor     int
	Use        string
	Quantum    int // only written for rr
	MaxArrival int // arrivals drawn uniformly from [0, MaxArrival]
	BurstMin   int
	BurstMax   int // bursts drawn uniformly from [BurstMin, BurstMax]
}

// Validate checks the generator settings.
func (c GeneratorConfig) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", c.Count)
	}
	if c.RunFor <= 0 {
		return fmt.Errorf("runfor must be positive, got %d", c.RunFor)
	}
	if !sim.IsValidAlgorithm(c.Use) {
		return fmt.Errorf("unknown algorithm %q; valid: fcfs, sjf, rr", c.Use)
	}
	if c.Use == sim.AlgorithmRR && c.Quantum <= 0 {
		return fmt.Errorf("quantum must be positive for rr, got %d", c.Quantum)
	}
	if c.MaxArrival < 0 {
		return fmt.Errorf("max arrival must be non-negative, got %d", c.MaxArrival)
	}
	if c.BurstMin <= 0 {
		return fmt.Errorf("minimum burst must be positive, got %d", c.BurstMin)
	}
	if c.BurstMax < c.BurstMin {
		return fmt.Errorf("maximum burst %d is below minimum burst %d", c.BurstMax, c.BurstMin)
	}
	return nil
}

// GenerateScenario synthesizes a valid scenario from cfg.
// Deterministic given the same config. Processes are sorted by arrival and
// named P1..Pn in that order.
func GenerateScenario(cfg GeneratorConfig) (*Scenario, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}

	rng := sim.NewPartitionedRNG(sim.Seed(cfg.Seed))
	arrivalRNG := rng.ForSubsystem(sim.SubsystemArrivals)
	burstRNG := rng.ForSubsystem(sim.SubsystemBursts)

	procs := make([]ProcessSpec, cfg.Count)
	for i := range procs {
		procs[i] = ProcessSpec{
			Arrival: arrivalRNG.Intn(cfg.MaxArrival + 1),
			Burst:   cfg.BurstMin + burstRNG.Intn(cfg.BurstMax-cfg.BurstMin+1),
		}
	}
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].Arrival < procs[j].Arrival
	})
	for i := range procs {
		procs[i].Name = fmt.Sprintf("P%d", i+1)
	}

	count, runFor := cfg.Count, cfg.RunFor
	sc := &Scenario{
		ProcessCount: &count,
		RunFor:       &runFor,
		Use:          cfg.Use,
		Processes:    procs,
	}
	if cfg.Use == sim.AlgorithmRR {
		q := cfg.Quantum
		sc.Quantum = &q
	}
	return sc, nil
}
