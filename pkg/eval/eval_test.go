package eval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

func squares(sq ...int) othello.PieceSet {
	var p othello.PieceSet
	for _, s := range sq {
		p |= othello.SquareMask(s)
	}
	return p
}

func evaluate(s Strategy[Score], b othello.Board) Score {
	return s.Evaluate(&b, b.LegalMoves())
}

func TestCornerHeavyPosition(t *testing.T) {
	composite := NewComposite(DefaultWeights)

	withCorners := othello.NewBoard(squares(0, 7, 56, 63, 19), squares(27, 28, 35, 36, 44), true)
	withoutCorners := othello.NewBoard(squares(9, 14, 49, 54, 19), squares(27, 28, 35, 36, 44), true)

	require.Equal(t, Score(18000), evaluate(composite, withCorners))
	require.Equal(t, Score(2000), evaluate(composite, withoutCorners))
	require.Greater(t, evaluate(Corners{}, withCorners), evaluate(Corners{}, withoutCorners))
}

func TestStrategiesSign(t *testing.T) {
	b := othello.InitialBoard()
	b.MakeMove(othello.SquareMask(19))

	// white to move with 3 moves, 1 disc against 4, all discs on the frontier
	tests := []struct {
		name     string
		strategy Strategy[Score]
		want     Score
	}{
		{"mobility", Mobility{}, -3},
		{"material", Material{}, 3},
		{"corners", Corners{}, 0},
		{"frontier", Frontier{}, -3},
		{"composite", NewComposite(DefaultWeights), -2730},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluate(tt.strategy, b))
		})
	}

	assert.Equal(t, Score(4000), evaluate(NewComposite(DefaultWeights), othello.InitialBoard()))
}

func TestTerminalScores(t *testing.T) {
	strategies := []Strategy[Score]{Mobility{}, Material{}, Corners{}, Frontier{}, NewComposite(DefaultWeights)}

	blackWins := othello.NewBoard(squares(19), squares(12), true)
	blackWins.MakeMove(othello.SquareMask(5))

	whiteWins := othello.NewBoard(squares(57), squares(1, 35, 48, 58, 63), true)
	whiteWins.MakeMove(othello.SquareMask(59))

	draw := othello.NewBoard(squares(44), squares(0, 5, 14, 36), true)
	draw.MakeMove(othello.SquareMask(28))

	for _, s := range strategies {
		assert.Equal(t, MaxScore, evaluate(s, blackWins))
		assert.Equal(t, -MaxScore, evaluate(s, whiteWins))
		assert.Equal(t, DrawScore, evaluate(s, draw))

		lo, hi := s.Bounds()
		assert.Less(t, lo, -MaxScore)
		assert.Equal(t, MaxScore, hi)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names {
		s, err := ByName(name)
		require.NoError(t, err)
		require.NotNil(t, s)
	}

	s, err := ByName("Composite")
	require.NoError(t, err)
	require.Equal(t, NewComposite(DefaultWeights), s)

	_, err = ByName("random")
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestLoadWeights(t *testing.T) {
	w, err := LoadWeights(strings.NewReader("corner: 5000\nfrontier: -25\n"))
	require.NoError(t, err)
	require.Equal(t, Weights{Corner: 5000, Mobility: 1000, Material: 100, Frontier: -25}, w)

	w, err = LoadWeights(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, DefaultWeights, w)

	_, err = LoadWeights(strings.NewReader("corner: [1, 2]"))
	require.Error(t, err)

	again, err := LoadWeights(strings.NewReader(DefaultWeights.String()))
	require.NoError(t, err)
	require.Equal(t, DefaultWeights, again)
}

func TestWeightsOverflow(t *testing.T) {
	_, err := LoadWeights(strings.NewReader("corner: 600000000\n"))
	require.ErrorIs(t, err, ErrWeightsOverflow)

	_, err = LoadWeights(strings.NewReader("corner: 0\nmobility: 0\nmaterial: 0\nfrontier: -33554432\n"))
	require.ErrorIs(t, err, ErrWeightsOverflow)

	w, err := LoadWeights(strings.NewReader("corner: 33554431\nmobility: 0\nmaterial: 0\nfrontier: 0\n"))
	require.NoError(t, err)
	require.Equal(t, Score(33554431), w.Corner)
	require.NoError(t, DefaultWeights.Validate())

	// weights built in code skip the validation, the score is clamped instead
	huge := NewComposite(Weights{Corner: 600000000, Mobility: 1000})
	black := othello.NewBoard(squares(0, 7, 56, 63, 19), squares(27, 28, 35, 36, 44), true)
	white := othello.NewBoard(squares(0, 7, 56, 63, 19), squares(27, 28, 35, 36, 44), false)

	require.Equal(t, MaxScore-1, evaluate(huge, black))
	require.Equal(t, -(MaxScore - 1), evaluate(huge, white))
}
