package rocks

import (
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
#OO..#....`

func mustParse(t testing.TB, s string) *Grid {
	t.Helper()
	g, err := ParseString(s)
	require.NoError(t, err)
	return g
}

func TestParseRoundTrip(t *testing.T) {
	g := mustParse(t, example+"\n\n")
	require.Equal(t, 10, g.Width())
	require.Equal(t, 10, g.Height())
	require.Equal(t, example, g.String())
	require.Equal(t, RollingRock, g.At(0, 0))
	require.Equal(t, FixedRock, g.At(5, 0))
	require.Equal(t, Empty, g.At(1, 0))
}

func TestParseCRLF(t *testing.T) {
	g := mustParse(t, "O.#\r\n.O.\r\n")
	require.Equal(t, "O.#\n.O.", g.String())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
		msg   string
	}{
		{name: "empty", input: "", want: ErrEmptyGrid},
		{name: "blank lines only", input: "\n\n", want: ErrEmptyGrid},
		{name: "zero columns", input: "\nO.", want: ErrEmptyGrid},
		{name: "bad char", input: "O.\n.x", want: ErrMalformedInput, msg: `'x' at row 2, column 2`},
		{name: "non-ascii char", input: "O.\n.é", want: ErrMalformedInput, msg: `'é' at row 2, column 2`},
		{name: "non-ascii first row", input: "Oé.\n...", want: ErrMalformedInput, msg: `'é' at row 1, column 2`},
		{name: "ragged", input: "O..\n.O", want: ErrMalformedInput, msg: "row 2 has length 2, want 3"},
		{name: "blank middle row", input: "O.\n\n.O", want: ErrMalformedInput, msg: "row 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseString(tc.input)
			require.ErrorIs(t, err, tc.want)
			if tc.msg != "" {
				require.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	g, err := ReadFile("testdata/example.txt")
	require.NoError(t, err)
	require.Equal(t, example, g.String())

	_, err = ReadFile("testdata/missing.txt")
	require.Error(t, err)
}

func TestRandomDeterministic(t *testing.T) {
	a := Random(20, 15, 9, 0.3, 0.2)
	b := Random(20, 15, 9, 0.3, 0.2)
	require.Equal(t, a.String(), b.String())

	counts := a.Counts()
	require.Equal(t, 20*15, counts[Empty]+counts[RollingRock]+counts[FixedRock])
	require.NotZero(t, counts[RollingRock])
	require.NotZero(t, counts[FixedRock])

	c := Random(20, 15, 10, 0.3, 0.2)
	require.NotEqual(t, a.String(), c.String())
}

func TestTileEncoding(t *testing.T) {
	for _, c := range ".O#" {
		tile, err := ParseTile(c)
		require.NoError(t, err)
		require.Equal(t, byte(c), tile.Byte())
	}
	require.Equal(t, "rolling", RollingRock.String())
	require.Equal(t, "Tile(9)", Tile(9).String())
}
