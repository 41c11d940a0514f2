package eval

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// Strategy scores a position on an absolute scale, positive values favour black.
// Bounds returns the sentinels used to open the alpha-beta window, every score
// returned by Evaluate must lie within them.
type Strategy[S constraints.Ordered] interface {
	Evaluate(board *othello.Board, moves othello.PieceSet) S
	Bounds() (lo S, hi S)
}

type Score = int32

const (
	MinScore Score = math.MinInt32
	MaxScore Score = math.MaxInt32
	// Score of a drawn game, from the mover's point of view
	DrawScore Score = 4
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrWeightsOverflow = errors.New("weights overflow the score")
)

// Multiplier turning the mover's advantage into black's advantage
func sign(board *othello.Board) Score {
	if board.BlackToMove() {
		return 1
	}
	return -1
}

// Score of a finished game, ok is false if the game is still going on.
// Won always means the mover won, so the sign of the multiplier names the winner.
func terminal(board *othello.Board) (score Score, ok bool) {
	switch board.Status() {
	case othello.Won:
		return MaxScore * sign(board), true
	case othello.Drawn:
		return DrawScore * sign(board), true
	}
	return 0, false
}

// Base of the int32 strategies, provides the bounds
type bounded struct{}

func (bounded) Bounds() (Score, Score) {
	return MinScore, MaxScore
}

// Names accepted by ByName
var Names = []string{"mobility", "material", "corners", "frontier", "composite"}

// ByName returns a strategy by its name, the composite one uses DefaultWeights
func ByName(name string) (Strategy[Score], error) {
	switch strings.ToLower(name) {
	case "mobility":
		return Mobility{}, nil
	case "material":
		return Material{}, nil
	case "corners":
		return Corners{}, nil
	case "frontier":
		return Frontier{}, nil
	case "composite", "":
		return NewComposite(DefaultWeights), nil
	}
	return nil, fmt.Errorf("%w: %q, want one of %v", ErrUnknownStrategy, name, Names)
}
