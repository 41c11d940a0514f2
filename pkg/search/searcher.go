package search

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/go-othello/pkg/eval"
	"github.com/IlikeChooros/go-othello/pkg/othello"
)

type Result[S any] struct {
	Move   othello.PieceSet
	Score  S
	Depth  int
	Nodes  uint64
	TimeMs int64
	// Score of every root move searched so far, in ascending square order
	Lines []RootLine[S]
}

// Searcher runs a fixed depth minimax search at the root of a position.
// It keeps no state between searches, so it can be shared by goroutines
// as long as the listener can.
type Searcher[S constraints.Ordered] struct {
	strategy eval.Strategy[S]
	limits   *Limits
	listener StatsListener[S]
}

func NewSearcher[S constraints.Ordered](strategy eval.Strategy[S]) *Searcher[S] {
	return &Searcher[S]{
		strategy: strategy,
		limits:   DefaultLimits(),
		listener: NewStatsListener[S](),
	}
}

func (s *Searcher[S]) SetLimits(limits *Limits) *Searcher[S] {
	s.limits = limits
	return s
}

func (s *Searcher[S]) Limits() *Limits {
	return s.limits
}

func (s *Searcher[S]) SetListener(listener StatsListener[S]) *Searcher[S] {
	s.listener = listener
	return s
}

func (s *Searcher[S]) Strategy() eval.Strategy[S] {
	return s.strategy
}

// Search picks the move of the side to move. Black takes the highest scoring child
// and white the lowest, ties go to the lowest square. Panics if there are no legal moves.
func (s *Searcher[S]) Search(board othello.Board) Result[S] {
	moves := board.LegalMoves()
	if moves == 0 || board.Terminated() {
		panic(fmt.Sprintf("search: no legal moves in a %v position\n%v", board.Status(), board))
	}

	var nodes atomic.Uint64
	nodes.Add(1)
	start := time.Now()
	depth := s.limits.Depth
	lo, hi := s.strategy.Bounds()
	children := board.Children(moves)
	lines := make([]RootLine[S], len(children))

	// every root move gets its own window, so they can be searched in any order
	searchChild := func(i int) {
		child := &children[i]
		lines[i] = RootLine[S]{
			Move:  child.Move,
			Score: minimax(s.strategy, &child.Board, child.Moves, depth-1, lo, hi, &nodes),
		}
	}

	black := board.BlackToMove()
	snapshot := func(lines []RootLine[S]) Result[S] {
		best := bestLine(lines, black)
		return Result[S]{
			Move:   best.Move,
			Score:  best.Score,
			Depth:  depth,
			Nodes:  nodes.Load(),
			TimeMs: time.Since(start).Milliseconds(),
			Lines:  lines,
		}
	}

	if s.limits.NThreads > 1 && len(children) > 1 {
		g := errgroup.Group{}
		g.SetLimit(s.limits.NThreads)
		for i := range children {
			g.Go(func() error {
				searchChild(i)
				return nil
			})
		}
		_ = g.Wait()
		for i := range lines {
			s.listener.invokeRootMove(snapshot(lines[:i+1]))
		}
	} else {
		for i := range children {
			searchChild(i)
			s.listener.invokeRootMove(snapshot(lines[:i+1]))
		}
	}

	result := snapshot(lines)
	log.Debug().
		Str("move", result.Move.String()).
		Interface("score", result.Score).
		Int("depth", depth).
		Int("threads", s.limits.NThreads).
		Uint64("nodes", result.Nodes).
		Int64("ms", result.TimeMs).
		Msg("search-done")

	s.listener.invokeStop(result)
	return result
}

// First line with the highest score for black, the lowest for white
func bestLine[S constraints.Ordered](lines []RootLine[S], black bool) RootLine[S] {
	best := lines[0]
	for _, line := range lines[1:] {
		if (black && line.Score > best.Score) || (!black && line.Score < best.Score) {
			best = line
		}
	}
	return best
}
