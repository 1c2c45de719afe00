package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const example = `O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
`

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunExtrapolates(t *testing.T) {
	code, out, _ := runCLI(t, example)
	require.Equal(t, 0, code)
	require.Equal(t, "64\n", out)
}

func TestRunCycles(t *testing.T) {
	code, out, _ := runCLI(t, example, "-cycles", "1")
	require.Equal(t, 0, code)
	require.Equal(t, "87\n", out)
}

func TestRunPartOne(t *testing.T) {
	code, out, _ := runCLI(t, example, "-part", "1")
	require.Equal(t, 0, code)
	require.Equal(t, "136\n", out)
}

func TestRunInputFileAndLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte(example), 0o644))

	code, out, logs := runCLI(t, "", "-input", path, "-log-level", "debug")
	require.Equal(t, 0, code)
	require.Equal(t, "64\n", out)
	require.Contains(t, logs, "found cycle")
	require.Contains(t, logs, "simulation finished")
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	grid := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(grid, []byte(example), 0o644))
	conf := filepath.Join(dir, "rockwash.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("input: "+grid+"\ncycles: 1\n"), 0o644))

	code, out, _ := runCLI(t, "", "-config", conf)
	require.Equal(t, 0, code)
	require.Equal(t, "87\n", out)

	// Explicit flags win over the file.
	code, out, _ = runCLI(t, "", "-config", conf, "-cycles", "1000000000")
	require.Equal(t, 0, code)
	require.Equal(t, "64\n", out)
}

func TestRunMalformedInput(t *testing.T) {
	code, out, logs := runCLI(t, "O.\n.x\n")
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.Contains(t, logs, "malformed input")
	require.Contains(t, logs, "row 2, column 2")

	code, _, logs = runCLI(t, "O..\n.O\n")
	require.Equal(t, 1, code)
	require.Contains(t, logs, "row 2 has length 2")

	code, _, logs = runCLI(t, "\n")
	require.Equal(t, 1, code)
	require.Contains(t, logs, "at least one row")
}

func TestRunInvalidFlags(t *testing.T) {
	code, _, logs := runCLI(t, example, "-part", "3")
	require.Equal(t, 1, code)
	require.Contains(t, logs, "part 3")

	code, _, _ = runCLI(t, example, "-cycles", "-4")
	require.Equal(t, 1, code)

	code, _, _ = runCLI(t, example, "-no-such-flag")
	require.Equal(t, 2, code)

	code, _, logs = runCLI(t, example, "-max-cycles", "2")
	require.Equal(t, 1, code)
	require.Contains(t, logs, "no repeating state")
}
