package runner_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/geogen/parse"
	"github.com/katalvlaran/geogen/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseInput builds a parsed input from inline source.
func parseInput(t *testing.T, id, src string) *parse.Input {
	t.Helper()
	in, err := parse.ParseInput(id, id+".txt", strings.NewReader(src))
	require.NoError(t, err)
	return in
}

// TestRun_TriangleMidpoint runs one full input: a bare triangle expanded by
// one midpoint iteration. The symmetric collapse leaves a single generated
// block whose defining facts are annotated as trivial.
func TestRun_TriangleMidpoint(t *testing.T) {
	dir := t.TempDir()
	in := parseInput(t, "tri", "Triangle A B C\nRules: Midpoint")

	err := runner.Run([]*parse.Input{in}, nil,
		runner.WithOutputDir(dir), runner.WithWorkers(1), runner.WithSeed(7),
		runner.WithNaming("res_", "txt"))
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "res_tri.txt"))
	require.NoError(t, err)
	report := string(raw)

	assert.Contains(t, report, "Input: tri")
	assert.Contains(t, report, "Triangle A B C")
	assert.Contains(t, report, "Iterations: 1")
	assert.Contains(t, report, "Constructions: Midpoint")
	assert.Contains(t, report, strings.Repeat("-", 48))
	assert.Contains(t, report, "1)\n", "exactly one block after the symmetric collapse")
	assert.NotContains(t, report, "2)\n")
	assert.Contains(t, report, "Midpoint({", "the generated construction is printed")
	assert.Contains(t, report, "trivial theorem")
}

// TestRun_Deterministic verifies byte-identical reports for a fixed seed
// and a single worker.
func TestRun_Deterministic(t *testing.T) {
	src := "Triangle A B C\nM = Midpoint({A, B})\nRules: Midpoint, PerpendicularBisector"
	var outputs [2][]byte
	for i := range outputs {
		dir := t.TempDir()
		in := parseInput(t, "tri", src)
		err := runner.Run([]*parse.Input{in}, nil,
			runner.WithOutputDir(dir), runner.WithWorkers(1), runner.WithSeed(99))
		require.NoError(t, err)
		raw, err := os.ReadFile(filepath.Join(dir, "tri.txt"))
		require.NoError(t, err)
		outputs[i] = raw
	}
	assert.Equal(t, outputs[0], outputs[1], "seeded single-worker runs replay byte-for-byte")
}

// TestRun_InitialRealizationFault rejects an input whose initial
// configuration cannot be realized: crossing a line with its own parallel.
func TestRun_InitialRealizationFault(t *testing.T) {
	src := "ExplicitLineAndPoint l P\nm = ParallelLine(l, P)\nX = IntersectionOfLines({l, m})\nRules: Midpoint"
	in := parseInput(t, "bad", src)

	err := runner.Run([]*parse.Input{in}, nil,
		runner.WithOutputDir(t.TempDir()), runner.WithWorkers(1))
	assert.ErrorIs(t, err, runner.ErrInitialRealization)
}

// TestRun_PerpendicularChain runs two iterations of perpendiculars and
// projections over a line and a point. Several candidates collapse onto
// existing objects (the foot of P on its own perpendicular is P again);
// those configurations are dropped without failing the run, and the report
// still carries the projection with its defining perpendicularity.
func TestRun_PerpendicularChain(t *testing.T) {
	dir := t.TempDir()
	in := parseInput(t, "lp", "ExplicitLineAndPoint l P\nRules: PerpendicularLine, PerpendicularProjection")

	err := runner.Run([]*parse.Input{in}, nil,
		runner.WithOutputDir(dir), runner.WithWorkers(1), runner.WithSeed(17),
		runner.WithIterations(2))
	require.NoError(t, err, "degenerate candidates are skipped, not fatal")

	raw, err := os.ReadFile(filepath.Join(dir, "lp.txt"))
	require.NoError(t, err)
	report := string(raw)
	assert.Contains(t, report, "Iterations: 2")
	assert.Contains(t, report, "PerpendicularProjection(P, l)")
	assert.Contains(t, report, "trivial theorem")
}

// TestRun_OptionViolations surfaces invalid options before any work.
func TestRun_OptionViolations(t *testing.T) {
	in := parseInput(t, "tri", "Triangle A B C\nRules: Midpoint")

	err := runner.Run([]*parse.Input{in}, nil, runner.WithWorkers(0))
	assert.ErrorIs(t, err, runner.ErrOptionViolation)

	err = runner.Run([]*parse.Input{in}, nil, runner.WithPictures(1))
	assert.ErrorIs(t, err, runner.ErrOptionViolation)
}

// TestRun_NoRules writes a report with only the initial block when the
// input allows no constructions.
func TestRun_NoRules(t *testing.T) {
	dir := t.TempDir()
	in := parseInput(t, "seg", "LineSegment A B\nM = Midpoint({A, B})")

	err := runner.Run([]*parse.Input{in}, nil,
		runner.WithOutputDir(dir), runner.WithWorkers(1))
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "seg.txt"))
	require.NoError(t, err)
	report := string(raw)
	assert.Contains(t, report, "Constructions: none")
	assert.NotContains(t, report, "1)\n")
	assert.Contains(t, report, "CollinearPoints(A, B, M)")
}
