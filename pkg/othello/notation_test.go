package othello

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareNotation(t *testing.T) {
	tests := []struct {
		in     string
		square int
	}{
		{"a1", 0},
		{"h1", 7},
		{"d3", 19},
		{"D3", 19},
		{"43", 19},
		{"11", 0},
		{"88", 63},
		{"h8", 63},
		{" e6 ", 44},
	}

	for _, tt := range tests {
		sq, err := ParseSquare(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, SquareMask(tt.square), sq, tt.in)
	}

	for _, bad := range []string{"", "a", "a9", "i1", "90", "a10", "x"} {
		_, err := ParseSquare(bad)
		assert.ErrorIs(t, err, ErrBadNotation, bad)
	}

	assert.Equal(t, "d3", FormatSquare(19))
	assert.Equal(t, "d3", SquareMask(19).String())
	assert.Equal(t, "{d3 c4 f5 e6}", squares(19, 26, 37, 44).String())
}

func TestBoardNotation(t *testing.T) {
	start := InitialBoard()
	notation := start.Notation()
	want := strings.Repeat(".", 27) + "OX" + strings.Repeat(".", 6) + "XO" + strings.Repeat(".", 27) + " X"
	require.Equal(t, want, notation)

	b, err := ParseBoard(notation)
	require.NoError(t, err)
	require.Equal(t, start, b)

	// white to move keeps the colours
	b.MakeMove(SquareMask(19))
	again, err := ParseBoard(b.Notation())
	require.NoError(t, err)
	require.Equal(t, b, again)
}

func TestParseBoardResolvesPass(t *testing.T) {
	// white to move but without moves, black plays instead
	pos := []byte(strings.Repeat(".", 64))
	pos[7], pos[15], pos[23] = 'X', 'X', 'X'
	pos[6] = 'O'

	b, err := ParseBoard(string(pos) + " O")
	require.NoError(t, err)
	require.Equal(t, Ongoing, b.Status())
	require.True(t, b.BlackToMove())
	require.Equal(t, squares(5), b.LegalMoves())

	// nobody can move
	pos[6] = '.'
	b, err = ParseBoard(string(pos) + " O")
	require.NoError(t, err)
	require.Equal(t, Won, b.Status())
	require.True(t, b.WinnerIsBlack())
}

func TestParseBoardErrors(t *testing.T) {
	for _, bad := range []string{
		"",
		strings.Repeat(".", 64),
		strings.Repeat(".", 63) + " X",
		strings.Repeat(".", 63) + "Z X",
		strings.Repeat(".", 64) + " Q",
	} {
		_, err := ParseBoard(bad)
		assert.ErrorIs(t, err, ErrBadNotation, bad)
	}
}

func TestBoardString(t *testing.T) {
	b := InitialBoard()
	s := b.String()
	assert.Contains(t, s, "4 . . . O X . . .")
	assert.Contains(t, s, "5 . . . X O . . .")
	assert.True(t, strings.HasSuffix(s, "black to move (X 2, O 2)"))
}
