package scenario_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/bfs"
	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/scenario"
	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/world"
)

const sampleYAML = `
- name: Path with wall
  rows: [XWD, EEE, DWE]
  expect:
    moves: ddurru
- name: Unreachable dirt
  rows:
    - XWD
    - WWW
    - DEE
  expect:
    unsolvable: true
- name: Corridor
  rows: [XEEED]
  expect:
    length: 4
`

func TestLoad(t *testing.T) {
	got, err := scenario.Load(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Path with wall", got[0].Name)
	assert.Equal(t, []string{"XWD", "EEE", "DWE"}, got[0].Rows)
	require.NotNil(t, got[0].Expect.Moves)
	assert.Equal(t, "ddurru", *got[0].Expect.Moves)
	assert.True(t, got[1].Expect.Unsolvable)
	require.NotNil(t, got[2].Expect.Length)
	assert.Equal(t, 4, *got[2].Expect.Length)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty document", "", scenario.ErrNoScenarios},
		{"empty list", "[]", scenario.ErrNoScenarios},
		{"missing name", "- rows: [XD]", scenario.ErrScenarioInvalid},
		{"missing rows", "- name: a", scenario.ErrScenarioInvalid},
		{"duplicate", "- {name: a, rows: [XD]}\n- {name: a, rows: [XE]}", scenario.ErrDuplicateName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := scenario.Load(strings.NewReader("- {name: a, rows: [XD], colour: red}"))
	assert.ErrorContains(t, err, "colour", "unknown fields are rejected")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	got, err := scenario.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = scenario.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunner_Builtin(t *testing.T) {
	reports, err := scenario.NewRunner(scenario.WithParallelism(2)).Run(context.Background(), scenario.Builtin())
	require.NoError(t, err)
	require.Len(t, reports, len(scenario.Builtin()))

	for i, r := range reports {
		assert.Equal(t, scenario.Builtin()[i].Name, r.Name, "reports keep input order")
		assert.NoError(t, r.Check())
	}
}

func TestRunner_RecordsPerScenarioErrors(t *testing.T) {
	logger, hook := test.NewNullLogger()
	scenarios := []scenario.Scenario{
		{Name: "ragged", Rows: []string{"XE", "E"}},
		{Name: "big", Rows: []string{"XEEEEEED"}},
		{Name: "fine", Rows: []string{"XD"}},
	}

	reports, err := scenario.NewRunner(scenario.WithLogger(logger)).Run(context.Background(), scenarios)
	require.NoError(t, err)

	assert.ErrorIs(t, reports[0].Err, world.ErrNonRectangular)
	assert.ErrorIs(t, reports[1].Err, world.ErrTooLarge)
	assert.NoError(t, reports[2].Err)
	assert.Equal(t, "r", reports[2].Result.String())

	var warnings int
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	assert.Equal(t, 2, warnings)
}

func TestRunner_Options(t *testing.T) {
	scenarios := []scenario.Scenario{{Name: "big", Rows: []string{"XEEEEEED"}}}

	reports, err := scenario.NewRunner(
		scenario.WithGridOptions(world.WithMaxSide(8)),
		scenario.WithSolveOptions(bfs.WithMaxDepth(3)),
	).Run(context.Background(), scenarios)
	require.NoError(t, err)
	assert.ErrorIs(t, reports[0].Err, bfs.ErrDepthExceeded)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scenario.NewRunner().Run(ctx, scenario.Builtin())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_InvalidInput(t *testing.T) {
	_, err := scenario.NewRunner().Run(context.Background(), nil)
	assert.ErrorIs(t, err, scenario.ErrNoScenarios)
}

func TestReport_CheckMismatch(t *testing.T) {
	wrong := "rrr"
	scenarios := []scenario.Scenario{
		{Name: "moves", Rows: []string{"XED"}, Expect: &scenario.Expectation{Moves: &wrong}},
		{Name: "unsolvable", Rows: []string{"XED"}, Expect: &scenario.Expectation{Unsolvable: true}},
		{Name: "solvable", Rows: []string{"XWD"}, Expect: &scenario.Expectation{Moves: &wrong}},
	}

	reports, err := scenario.NewRunner().Run(context.Background(), scenarios)
	require.NoError(t, err)
	for _, r := range reports {
		assert.ErrorIs(t, r.Check(), scenario.ErrExpectationMismatch, r.Name)
	}
}

func TestRender(t *testing.T) {
	reports, err := scenario.NewRunner().Run(context.Background(), []scenario.Scenario{
		{Name: "Simple horizontal path", Rows: []string{"XED"}},
		{Name: "Unreachable dirt", Rows: []string{"XW", "WD"}},
		{Name: "Broken", Rows: []string{"EE"}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, scenario.RenderAll(&buf, reports))

	want := "\nTest Case: Simple horizontal path\n" +
		"World:\n" +
		"X E D \n" +
		"Optimal path: rr\n" +
		"Path length: 2\n" +
		"\nTest Case: Unreachable dirt\n" +
		"World:\n" +
		"X W \n" +
		"W D \n" +
		"No solution found\n" +
		"\nTest Case: Broken\n" +
		"World:\n" +
		"E E \n" +
		"Error: scenario \"Broken\": world: grid has no agent\n"
	assert.Equal(t, want, buf.String())
}
