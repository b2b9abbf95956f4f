package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeTo(t, io.Discard, args...)
}

func executeTo(t *testing.T, stderr io.Writer, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func lines(output string) []string {
	return strings.Split(strings.TrimRight(output, "\n"), "\n")
}

func TestGridCommand_ReferenceWorld(t *testing.T) {
	output, err := execute(t, "grid")
	require.NoError(t, err)

	listing := lines(output)
	require.Len(t, listing, 17)
	assert.Equal(t, "4.00 9.00 g(15.00) f(15.00)", listing[0])
	assert.True(t, strings.HasPrefix(listing[15], "0.00 0.00 g(0.00)"))
	assert.Equal(t, "Shortest path found with 15 weight.", listing[16])
}

func TestGridCommand_StartOrderAndRender(t *testing.T) {
	output, err := execute(t, "grid", "--order", "start", "--render")
	require.NoError(t, err)

	listing := lines(output)
	require.Len(t, listing, 27)
	assert.True(t, strings.HasPrefix(listing[0], "0.00 0.00 g(0.00)"))
	assert.Equal(t, "4.00 9.00 g(15.00) f(15.00)", listing[15])
	assert.Equal(t, "o*#.#", listing[17])
	assert.True(t, strings.HasSuffix(listing[26], "x"))
}

func TestGridCommand_TraceAndDebugLog(t *testing.T) {
	var stderr bytes.Buffer
	_, err := executeTo(t, &stderr, "--trace", "--log-level", "debug", "grid")
	require.NoError(t, err)

	assert.Contains(t, stderr.String(), "search started")
	assert.Contains(t, stderr.String(), "search_id=")
	assert.Contains(t, stderr.String(), `"Name": "astar.Search"`)
}

func TestGridCommand_NoPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walled.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows:\n  - \"S#.\"\n  - \"##.\"\n  - \"..F\"\n"), 0o644))

	output, err := execute(t, "grid", "--config", path)
	require.NoError(t, err)

	assert.Equal(t, "No existing path.\n", output)
}

func TestGridCommand_Errors(t *testing.T) {
	_, err := execute(t, "grid", "--order", "sideways")
	assert.ErrorContains(t, err, "invalid --order")

	_, err = execute(t, "grid", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read world file")

	_, err = execute(t, "--log-level", "loud", "grid")
	assert.ErrorContains(t, err, "invalid --log-level")
}

func TestRoadmapCommand(t *testing.T) {
	zones := filepath.Join(t.TempDir(), "zones.geojson")
	require.NoError(t, os.WriteFile(zones, []byte(`{"type": "FeatureCollection", "features": [
  {"type": "Feature", "properties": {},
   "geometry": {"type": "Polygon", "coordinates": [[[0.4, 0.4], [0.6, 0.4], [0.6, 0.6], [0.4, 0.6], [0.4, 0.4]]]}}
]}`), 0o644))

	output, err := execute(t, "roadmap",
		"--samples", "300",
		"--radius", "0.2",
		"--seed", "3",
		"--zones", zones,
		"--from", "0.05,0.05",
		"--to", "0.95,0.95",
		"--lonlat",
	)
	require.NoError(t, err)

	listing := lines(output)
	require.GreaterOrEqual(t, len(listing), 4)
	assert.True(t, strings.HasPrefix(listing[len(listing)-2], "Shortest path found with "))
	assert.True(t, strings.HasPrefix(listing[len(listing)-1], "Length: "))
}

func TestRoadmapCommand_Errors(t *testing.T) {
	_, err := execute(t, "roadmap", "--from", "1,2,3")
	assert.ErrorContains(t, err, "--from needs 2 values")

	_, err = execute(t, "roadmap", "--bound", "0,0,1")
	assert.ErrorContains(t, err, "--bound needs 4 values")
}

func TestBatchCommand(t *testing.T) {
	output, err := execute(t, "batch",
		"--worlds", "3",
		"--width", "10",
		"--height", "6",
		"--clusters", "2",
		"--steps", "20",
		"--seed", "2",
		"--workers", "2",
	)
	require.NoError(t, err)

	listing := lines(output)
	require.Len(t, listing, 4)
	for i, line := range listing[:3] {
		assert.True(t, strings.HasPrefix(line, "world "+string(rune('0'+i))+": "), line)
	}
	assert.Contains(t, listing[3], "of 3 worlds solved")
}

func TestBatchCommand_RejectsDensity(t *testing.T) {
	_, err := execute(t, "batch", "--density", "1.5")
	assert.ErrorContains(t, err, "invalid batch flags")
	assert.ErrorContains(t, err, "Density")

	_, err = execute(t, "batch", "--workers", "0")
	assert.ErrorContains(t, err, "Workers")
}
