package bench

import (
	"golang.org/x/exp/constraints"
	"lukechampine.com/frand"

	"github.com/IlikeChooros/go-othello/pkg/othello"
	"github.com/IlikeChooros/go-othello/pkg/search"
)

// Player chooses moves in arena games, Move is only called on ongoing positions.
// Players are shared by the arena workers, so Move must be safe for concurrent use.
type Player interface {
	Name() string
	Move(board othello.Board) othello.PieceSet
}

// Plays the searcher's best move
type SearchPlayer[S constraints.Ordered] struct {
	name     string
	searcher *search.Searcher[S]
}

func NewSearchPlayer[S constraints.Ordered](name string, searcher *search.Searcher[S]) *SearchPlayer[S] {
	return &SearchPlayer[S]{name: name, searcher: searcher}
}

func (p *SearchPlayer[S]) Name() string {
	return p.name
}

func (p *SearchPlayer[S]) Move(board othello.Board) othello.PieceSet {
	return p.searcher.Search(board).Move
}

// Plays a uniformly random legal move
type RandomPlayer struct{}

func (RandomPlayer) Name() string {
	return "random"
}

func (RandomPlayer) Move(board othello.Board) othello.PieceSet {
	squares := board.LegalMoves().Squares()
	return othello.SquareMask(squares[frand.Intn(len(squares))])
}
