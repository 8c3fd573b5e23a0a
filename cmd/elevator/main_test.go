package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/elevator/internal/domain"
)

const example = `The first floor contains a hydrogen-compatible microchip and a lithium-compatible microchip.
The second floor contains a hydrogen generator.
The third floor contains a lithium generator.
The fourth floor contains nothing relevant.`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	// flag variables outlive a single Execute
	solvePart, solveReplay, solveSave, solveFormat, solveTimeout = "both", false, false, "text", 0
	configFile, logLevel = "", ""
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSolveFromStdin(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, example, "solve", "--part", "1", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "part 1: 11\n", out)
}

func TestSolveFileAsJSON(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "day11.txt")
	require.NoError(t, os.WriteFile(path, []byte(example), 0o644))

	out, err := run(t, "", "solve", path, "--part", "1", "--format", "json", "--save", "--log-level", "error")
	require.NoError(t, err)

	var sols []domain.Solution
	require.NoError(t, json.Unmarshal([]byte(out), &sols))
	require.Len(t, sols, 1)
	assert.Equal(t, "day11", sols[0].Name)
	assert.Equal(t, 11, sols[0].Cost)
	assert.NotEmpty(t, sols[0].ID)
	assert.FileExists(t, filepath.Join(dir, "data", "solved", sols[0].ID+".json"))
}

func TestSolveReplay(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, example, "solve", "--part", "1", "--replay", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "-- scene #0 --")
	assert.Contains(t, out, "-- scene #11 [up 2->3")
	assert.Equal(t, 12, strings.Count(out, "-- scene #"))
}

func TestSolveUnknownPart(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := run(t, example, "solve", "--part", "3", "--log-level", "error")
	assert.ErrorContains(t, err, "unknown part")
}

func TestHintCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, example, "hint", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "up 0->1 [HM]\n", out)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestShowReplaysSavedSolution(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, example, "solve", "--part", "1", "--format", "json", "--save", "--log-level", "error")
	require.NoError(t, err)
	var sols []domain.Solution
	require.NoError(t, json.Unmarshal([]byte(out), &sols))
	require.Len(t, sols, 1)

	out, err = run(t, "", "show", sols[0].ID, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "part 1: 11")
	assert.Equal(t, 12, strings.Count(out, "-- scene #"))
	assert.False(t, solveReplay)

	out, err = run(t, "", "list", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, sols[0].ID)
}
