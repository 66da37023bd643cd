package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim/report"
	"github.com/schedsim/schedsim/sim/workload"
)

const unfinishedScenario = `processcount 1
runfor 5
use fcfs
process name A arrival 0 burst 10
end
`

const unfinishedReport = `  1 processes
Using First-Come First-Served
Time   0 : A arrived
Time   0 : A selected (burst  10)
Finished at time   5

A did not finish
`

const sjfScenario = `processcount 2
runfor 10
use sjf
process name A arrival 0 burst 4
process name B arrival 1 burst 2
end
`

// resetFlags restores every flag in the command tree to its default so tests
// sharing the global command do not leak state into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_WritesReportNextToInput(t *testing.T) {
	// GIVEN a directive file
	input := writeInput(t, "long.in", unfinishedScenario)

	// WHEN the simulator runs on it
	_, err := executeCommand(t, input)

	// THEN the report is written to the same path with a .out extension
	require.NoError(t, err)
	data, err := os.ReadFile(strings.TrimSuffix(input, ".in") + ".out")
	require.NoError(t, err)
	assert.Equal(t, unfinishedReport, string(data))
}

func TestRun_OutputFlagOverridesPath(t *testing.T) {
	input := writeInput(t, "long.in", unfinishedScenario)
	out := filepath.Join(t.TempDir(), "custom.txt")

	_, err := executeCommand(t, input, "-o", out)

	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, unfinishedReport, string(data))
	_, err = os.Stat(strings.TrimSuffix(input, ".in") + ".out")
	assert.True(t, os.IsNotExist(err), "default output must not be written when -o is given")
}

func TestRun_RefusesToOverwriteInput(t *testing.T) {
	// GIVEN an input whose name already ends in .out
	input := writeInput(t, "scenario.out", unfinishedScenario)

	// WHEN run with the default output path
	_, err := executeCommand(t, input)

	// THEN it fails and the input is untouched
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overwrite the input")
	data, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, unfinishedScenario, string(data))
}

func TestRun_ErrorsWriteNoOutput(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "parse error",
			content: "processcount 1\nrunfor five\n",
			check: func(t *testing.T, err error) {
				var perr *workload.ParseError
				assert.True(t, errors.As(err, &perr), "want *ParseError, got %v", err)
			},
		},
		{
			name:    "processcount mismatch",
			content: "processcount 2\nrunfor 5\nuse fcfs\nprocess name A arrival 0 burst 1\nend\n",
			check: func(t *testing.T, err error) {
				var verr *workload.ValidationError
				assert.True(t, errors.As(err, &verr), "want *ValidationError, got %v", err)
			},
		},
		{
			name:    "rr without quantum",
			content: "processcount 0\nrunfor 5\nuse rr\nend\n",
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "missing quantum parameter")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := writeInput(t, "bad.in", tt.content)
			_, err := executeCommand(t, input)
			require.Error(t, err)
			tt.check(t, err)
			entries, rerr := os.ReadDir(filepath.Dir(input))
			require.NoError(t, rerr)
			assert.Len(t, entries, 1, "only the input file may exist")
		})
	}
}

func TestRun_MissingInputIsFileError(t *testing.T) {
	_, err := executeCommand(t, filepath.Join(t.TempDir(), "absent.in"))
	var ferr *workload.FileError
	require.True(t, errors.As(err, &ferr), "want *FileError, got %v", err)
	assert.Equal(t, "read", ferr.Op)
}

func TestRun_UnwritableOutputIsFileError(t *testing.T) {
	input := writeInput(t, "long.in", unfinishedScenario)
	out := filepath.Join(t.TempDir(), "missing-dir", "long.out")

	_, err := executeCommand(t, input, "--output", out)

	var ferr *workload.FileError
	require.True(t, errors.As(err, &ferr), "want *FileError, got %v", err)
	assert.Equal(t, "write", ferr.Op)
}

func TestRun_TableSummary(t *testing.T) {
	input := writeInput(t, "sjf.in", sjfScenario)

	stdout, err := executeCommand(t, input, "--summary", "table")

	require.NoError(t, err)
	assert.Contains(t, stdout, "preemptive Shortest Job First, 10 ticks")
	assert.Contains(t, strings.ToUpper(stdout), "TURNAROUND")
	assert.NotContains(t, stdout, "Dispatches", "trace section needs --trace decisions")
}

func TestRun_YAMLSummaryWithTrace(t *testing.T) {
	// GIVEN an SJF scenario with one preemption
	input := writeInput(t, "sjf.in", sjfScenario)

	// WHEN run with a YAML summary and decision tracing
	stdout, err := executeCommand(t, input, "--summary", "yaml", "--trace", "decisions")
	require.NoError(t, err)

	// THEN the summary decodes and carries the run id and trace counts
	var s report.Summary
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &s))
	assert.NotEmpty(t, s.RunID)
	assert.Equal(t, "sjf", s.Algorithm)
	assert.Len(t, s.Processes, 2)
	require.NotNil(t, s.Trace)
	assert.Equal(t, 1, s.Trace.Preemptions)
	assert.Equal(t, 3, s.Trace.Dispatches)
}

func TestRun_InvalidFlagValues(t *testing.T) {
	input := writeInput(t, "long.in", unfinishedScenario)

	_, err := executeCommand(t, input, "--summary", "json")
	assert.ErrorContains(t, err, "invalid summary format")

	_, err = executeCommand(t, input, "--trace", "everything")
	assert.ErrorContains(t, err, "invalid trace level")

	_, err = executeCommand(t, input, "--log", "loud")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestRun_RequiresExactlyOneArgument(t *testing.T) {
	_, err := executeCommand(t)
	assert.Error(t, err)
}

func TestRun_EnvironmentSetsFlags(t *testing.T) {
	// GIVEN the summary format and output path provided through the environment
	input := writeInput(t, "long.in", unfinishedScenario)
	out := filepath.Join(t.TempDir(), "env.out")
	t.Setenv("SCHEDSIM_SUMMARY", "yaml")
	t.Setenv("SCHEDSIM_OUTPUT", out)

	// WHEN run without those flags
	stdout, err := executeCommand(t, input)

	// THEN the environment values apply
	require.NoError(t, err)
	assert.Contains(t, stdout, "run_id:")
	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestRun_FlagBeatsEnvironment(t *testing.T) {
	input := writeInput(t, "long.in", unfinishedScenario)
	t.Setenv("SCHEDSIM_SUMMARY", "yaml")

	stdout, err := executeCommand(t, input, "--summary", "none")

	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"c10-fcfs.in", "c10-fcfs.out"},
		{"dir/scenario.yaml", "dir/scenario.out"},
		{"noext", "noext.out"},
		{"a.b.in", "a.b.out"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultOutputPath(tt.input))
		})
	}
}
