package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blindsearch/internal/render"
	"github.com/katalvlaran/blindsearch/search"
)

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestSolve_BFSText(t *testing.T) {
	out, logs, err := execute(t, "", "solve", "--mode", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "Start\n[6, 9, 8]\n[7, 1, 3]\n[2, 5, 4]")
	assert.Contains(t, out, "Path length: 3 states (2 moves)")
	assert.Contains(t, logs, "search finished")
	assert.Contains(t, logs, "outcome=solved")
}

func TestSolve_DFSJSON(t *testing.T) {
	out, _, err := execute(t, "", "solve", "--mode", "profundidade", "--format", "json", "--log-level", "error")
	require.NoError(t, err)

	var rep render.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "dfs", rep.Mode)
	assert.Equal(t, "solved", rep.Outcome)
	assert.Equal(t, "698713254", rep.Start)
	assert.Equal(t, []string{"start", "Down", "Down"}, rep.Actions)
	assert.Equal(t, 3, rep.Stats.Expanded)
	assert.Equal(t, 7, rep.Stats.Generated)
	assert.NotEmpty(t, rep.RunID)
}

func TestSolve_ShowPrintsVisitOrder(t *testing.T) {
	out, _, err := execute(t, "", "solve", "--mode", "dfs", "--show", "--log-level", "error")
	require.NoError(t, err)
	head, _, found := strings.Cut(out, "Path from the start state to the goal:")
	require.True(t, found)
	assert.True(t, strings.HasPrefix(head, "Visit order:"))
	// dfs expands three boards before reaching the goal
	assert.Equal(t, 3, strings.Count(head, "[6, "))
}

func TestSolve_ShowWithJSONWarns(t *testing.T) {
	out, logs, err := execute(t, "", "solve", "--mode", "bfs", "--show", "--format", "json", "--log-level", "warn")
	require.NoError(t, err)
	assert.Contains(t, logs, "visit order is only printed in text format")
	assert.NotContains(t, out, "Visit order:")

	var rep render.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "solved", rep.Outcome)
}

func TestSolve_ModeRequiredWithoutTerminal(t *testing.T) {
	_, _, err := execute(t, "bfs\n", "solve")
	assert.ErrorIs(t, err, errModeRequired)
}

func TestSolve_InvalidInput(t *testing.T) {
	_, _, err := execute(t, "", "solve", "--mode", "astar")
	assert.ErrorIs(t, err, search.ErrUnknownMode)

	_, _, err = execute(t, "", "solve", "--mode", "bfs", "--board", "12345678")
	assert.Error(t, err)

	_, _, err = execute(t, "", "solve", "--mode", "bfs", "--format", "xml")
	assert.Error(t, err)
}

func TestSolve_ExpansionLimit(t *testing.T) {
	_, logs, err := execute(t, "", "solve", "--mode", "bfs", "--board", "123456789", "--max-expansions", "10")
	assert.ErrorIs(t, err, search.ErrExpansionLimit)
	assert.Contains(t, logs, "search failed")
}

func TestSolve_ConfigFile(t *testing.T) {
	content := `
mode: bfs
board:
  - [1, 9, 8]
  - [6, 5, 3]
  - [7, 2, 4]
format: json
log:
  level: warn
`
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, logs, err := execute(t, "", "solve", "--config", path)
	require.NoError(t, err)
	assert.Empty(t, logs)

	var rep render.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "198653724", rep.Start)
	assert.Equal(t, []string{"start", "Left", "Down", "Down", "Right"}, rep.Actions)

	// flags override the file
	out, _, err = execute(t, "", "solve", "--config", path, "--mode", "dfs")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "dfs", rep.Mode)
	assert.Equal(t, 26, rep.Steps)
}

func TestSolve_Metrics(t *testing.T) {
	_, errOut, err := execute(t, "", "solve", "--mode", "bfs", "--metrics", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, errOut, `blindsearch_runs_total{mode="bfs",outcome="solved"} 1`)
	assert.Contains(t, errOut, `blindsearch_nodes_generated_total{mode="bfs"} 9`)
}

func TestCompare_Text(t *testing.T) {
	out, _, err := execute(t, "", "compare", "--board", "1 9 8 / 6 5 3 / 7 2 4", "--log-level", "error")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Regexp(t, `^bfs\s+solved\s+4\s`, lines[1])
	assert.Regexp(t, `^dfs\s+solved\s+26\s`, lines[2])
}

func TestCompare_JSON(t *testing.T) {
	out, _, err := execute(t, "", "compare", "--format", "json", "--log-level", "error")
	require.NoError(t, err)
	var reps []render.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reps))
	require.Len(t, reps, 2)
	assert.Equal(t, reps[0].RunID, reps[1].RunID)
	assert.Equal(t, "bfs", reps[0].Mode)
	assert.Equal(t, "dfs", reps[1].Mode)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "blindsearch version "))
}

func TestPromptMode(t *testing.T) {
	var out bytes.Buffer
	mode, err := promptMode(strings.NewReader("astar\n\nlargura\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, search.BreadthFirst, mode)
	assert.Equal(t, 1, strings.Count(out.String(), "Invalid option."))
	assert.Equal(t, 3, strings.Count(out.String(), "Choose the search mode"))

	_, err = promptMode(strings.NewReader("nope\n"), &out)
	assert.ErrorIs(t, err, errModeRequired)
}
