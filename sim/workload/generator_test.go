package workload

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:       42,
		Count:      8,
		RunFor:     60,
		Use:        "rr",
		Quantum:    3,
		MaxArrival: 20,
		BurstMin:   1,
		BurstMax:   10,
	}
}

func TestGenerateScenario_ProducesValidScenario(t *testing.T) {
	sc, err := GenerateScenario(defaultGeneratorConfig())
	require.NoError(t, err)
	require.NoError(t, sc.Validate())
	assert.Len(t, sc.Processes, 8)
	require.NotNil(t, sc.Quantum)
	assert.Equal(t, 3, *sc.Quantum)

	for i, p := range sc.Processes {
		assert.GreaterOrEqual(t, p.Arrival, 0)
		assert.LessOrEqual(t, p.Arrival, 20)
		assert.GreaterOrEqual(t, p.Burst, 1)
		assert.LessOrEqual(t, p.Burst, 10)
		if i > 0 {
			assert.LessOrEqual(t, sc.Processes[i-1].Arrival, p.Arrival, "not sorted by arrival at %d", i)
		}
	}
	assert.Equal(t, "P1", sc.Processes[0].Name)
	assert.Equal(t, "P8", sc.Processes[7].Name)
}

func TestGenerateScenario_Deterministic(t *testing.T) {
	a, err := GenerateScenario(defaultGeneratorConfig())
	require.NoError(t, err)
	b, err := GenerateScenario(defaultGeneratorConfig())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	cfg := defaultGeneratorConfig()
	cfg.Seed = 43
	c, err := GenerateScenario(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a.Processes, c.Processes)
}

func TestGenerateScenario_NonRROmitsQuantum(t *testing.T) {
	cfg := defaultGeneratorConfig()
	cfg.Use = "sjf"
	cfg.Quantum = 0
	sc, err := GenerateScenario(cfg)
	require.NoError(t, err)
	assert.Nil(t, sc.Quantum)

	var buf bytes.Buffer
	require.NoError(t, FormatDirectives(&buf, sc))
	assert.NotContains(t, buf.String(), "quantum")
}

func TestGenerateScenario_FixedBurst(t *testing.T) {
	cfg := defaultGeneratorConfig()
	cfg.BurstMin, cfg.BurstMax = 4, 4
	sc, err := GenerateScenario(cfg)
	require.NoError(t, err)
	for _, p := range sc.Processes {
		assert.Equal(t, 4, p.Burst)
	}
}

func TestGeneratorConfig_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *GeneratorConfig)
	}{
		{"negative count", func(c *GeneratorConfig) { c.Count = -1 }},
		{"zero runfor", func(c *GeneratorConfig) { c.RunFor = 0 }},
		{"unknown algorithm", func(c *GeneratorConfig) { c.Use = "mlfq" }},
		{"rr zero quantum", func(c *GeneratorConfig) { c.Quantum = 0 }},
		{"negative max arrival", func(c *GeneratorConfig) { c.MaxArrival = -1 }},
		{"zero burst min", func(c *GeneratorConfig) { c.BurstMin = 0 }},
		{"inverted burst range", func(c *GeneratorConfig) { c.BurstMin, c.BurstMax = 5, 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultGeneratorConfig()
			tt.mutate(&cfg)
			_, err := GenerateScenario(cfg)
			assert.Error(t, err)
		})
	}
}

func TestGenerateScenario_ZeroCount(t *testing.T) {
	cfg := defaultGeneratorConfig()
	cfg.Count = 0
	sc, err := GenerateScenario(cfg)
	require.NoError(t, err)
	assert.Empty(t, sc.Processes)
	assert.NoError(t, sc.Validate())
}
