package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// geopar runs the CLI with args and stdin, returning everything it printed.
func geopar(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	a := newApp()
	a.newLogger = func(bool) (*zap.Logger, error) { return zaptest.NewLogger(t), nil }

	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeFigure(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// wheelText renders k triangles [0, i, i+1] in the text format.
func wheelText(rows ...[3]string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d 1\n", len(rows))
	for i, r := range rows {
		fmt.Fprintf(&sb, "0, %d, %d; %s, %s, %s\n", i+1, (i+1)%len(rows)+1, r[0], r[1], r[2])
	}

	return sb.String()
}

func hexagonText(apex, base string) string {
	rows := make([][3]string, 6)
	for i := range rows {
		rows[i] = [3]string{apex, base, base}
	}

	return wheelText(rows...)
}

var squareText = wheelText(
	[3]string{"90", "x", "x"},
	[3]string{"90", "30", "60"},
	[3]string{"90", "60", "30"},
	[3]string{"90", "45", "45"},
)

func TestSolve_Unique(t *testing.T) {
	path := writeFigure(t, t.TempDir(), "hexagon.txt", hexagonText("x", "60"))

	out, err := geopar(t, "", "solve", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1B. UNIQUE ALL-ANGLE CONSEQUENCE OF THE PREMISES.")
	assert.Contains(t, out, "deduced 6 angles")
	assert.Contains(t, out, "Triangle: Vertices 0, 1, 2; Angles 60, 60, 60")
	assert.Contains(t, out, "✓ pairing rule")
	assert.NotContains(t, out, "(y/n)")
}

func TestSolve_Inconclusive(t *testing.T) {
	path := writeFigure(t, t.TempDir(), "hexagon.txt", hexagonText("x", "20"))

	out, err := geopar(t, "", "solve", path)
	require.NoError(t, err, "an inconclusive verdict is not a failure")
	assert.Contains(t, out, "INCONCLUSIVE (1): rules violated")
	assert.Contains(t, out, "✗ 360° rule")
}

func TestSolve_Pairing(t *testing.T) {
	cases := []struct {
		name   string
		stdin  string
		args   []string
		want   string
		prompt bool
	}{
		{"Always", "", []string{"--pairing", "always"}, "2. A CONSEQUENCE OF THE PREMISES.", false},
		{"Never", "", []string{"--pairing", "never"}, "1A. INCONCLUSIVE", false},
		{"AskYes", "y\n", nil, "2. A CONSEQUENCE OF THE PREMISES.", true},
		{"AskNo", "no\n", nil, "1A. INCONCLUSIVE", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFigure(t, t.TempDir(), "square.txt", squareText)

			args := append([]string{"solve"}, tc.args...)
			out, err := geopar(t, tc.stdin, append(args, path)...)
			require.NoError(t, err)
			assert.Contains(t, out, tc.want)
			if tc.prompt {
				assert.Contains(t, out, "2 angles unknown. Apply angle pairing? (y/n)")
			} else {
				assert.NotContains(t, out, "(y/n)")
			}
		})
	}
}

func TestSolve_PromptFollowsFigure(t *testing.T) {
	path := writeFigure(t, t.TempDir(), "square.txt", squareText)

	out, err := geopar(t, "y\n", "solve", path)
	require.NoError(t, err)

	before := strings.Index(out, "square.txt: before")
	stats := strings.Index(out, "deduced")
	prompt := strings.Index(out, "Apply angle pairing? (y/n)")
	require.GreaterOrEqual(t, before, 0)
	require.GreaterOrEqual(t, prompt, 0)
	assert.Less(t, before, prompt, "the figure is shown before the question about it")
	assert.Less(t, prompt, stats)
}

func TestSolve_BadAnswer(t *testing.T) {
	path := writeFigure(t, t.TempDir(), "square.txt", squareText)

	out, err := geopar(t, "maybe\n", "solve", path)
	require.Error(t, err)
	assert.Contains(t, out, "bad input")
	assert.Contains(t, err.Error(), "1 of 1 figures failed")
}

func TestSolve_Batch(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFigure(t, dir, "a.txt", hexagonText("x", "60")),
		writeFigure(t, dir, "b.txt", squareText),
		writeFigure(t, dir, "c.txt", hexagonText("x", "20")),
		filepath.Join(dir, "missing.txt"),
	}

	out, err := geopar(t, "", append([]string{"solve", "--jobs", "3", "--pairing", "never"}, paths...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 4 figures failed")

	// Reports come out in argument order whatever the scheduling.
	last := -1
	for _, want := range []string{"1B.", "1A.", "INCONCLUSIVE (1)", "missing.txt"} {
		i := strings.Index(out, want)
		require.GreaterOrEqual(t, i, 0, "missing %q", want)
		assert.Greater(t, i, last, "%q out of order", want)
		last = i
	}
}

func TestSolve_Emit(t *testing.T) {
	dir := t.TempDir()
	txt := writeFigure(t, dir, "hexagon.txt", hexagonText("x", "60"))
	yml := writeFigure(t, dir, "hexagon.yaml", `unknowns: 0
triangles:
  - {vertices: [1, 3, 2], angles: [30, 20, 130]}
  - {vertices: [2, 3, 4], angles: [25, 35, x]}
`)

	out, err := geopar(t, "", "solve", "--emit", txt, yml)
	require.NoError(t, err)
	assert.Contains(t, out, "6 1\n0, 1, 2; 60, 60, 60\n")
	assert.Contains(t, out, "unknowns: 0")
	assert.Contains(t, out, "120")
}

func TestSolve_Flags(t *testing.T) {
	path := writeFigure(t, t.TempDir(), "hexagon.txt", hexagonText("x", "60"))

	_, err := geopar(t, "", "solve", "--pairing", "sometimes", path)
	assert.ErrorContains(t, err, "unknown pairing policy")

	_, err = geopar(t, "", "solve", "--jobs", "0", path)
	assert.ErrorContains(t, err, "--jobs")

	_, err = geopar(t, "", "solve")
	assert.Error(t, err)
}

func TestRunID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	a := newApp()
	a.verbose = true
	a.newLogger = func(verbose bool) (*zap.Logger, error) {
		assert.True(t, verbose)
		return zap.New(core), nil
	}
	path := writeFigure(t, t.TempDir(), "hexagon.txt", hexagonText("x", "60"))

	root := newRootCmd(a)
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"solve", "-v", path})
	require.NoError(t, root.Execute())

	require.NotEmpty(t, a.runID)
	solved := logs.FilterMessage("figure solved").All()
	require.Len(t, solved, 1)
	assert.Equal(t, a.runID, solved[0].ContextMap()["run_id"])
	assert.Equal(t, "1B", solved[0].ContextMap()["label"])
	assert.Positive(t, logs.FilterMessage("angle deduced").Len(), "verbose runs log each deduction")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFigure(t, dir, "good.txt", hexagonText("60", "60"))
	bad := writeFigure(t, dir, "bad.txt", hexagonText("140", "20"))
	open := writeFigure(t, dir, "open.txt", hexagonText("x", "60"))

	out, err := geopar(t, "", "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ 180° rule\n✓ 360° rule\n✓ pairing rule")

	out, err = geopar(t, "", "check", good, bad, open)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 figures are not consistent")
	assert.Contains(t, out, "✗ 360° rule")
	assert.Contains(t, out, "has unknown angles; run solve first")
}
