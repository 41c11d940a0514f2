package search

import "github.com/IlikeChooros/go-othello/pkg/othello"

// Score of a single root move
type RootLine[S any] struct {
	Move  othello.PieceSet
	Score S
}

// Listener function callback, receives the search statistics gathered so far
type ListenerFunc[S any] func(Result[S])

type StatsListener[S any] struct {
	// called after each root move is searched, in ascending square order
	onRootMove ListenerFunc[S]

	// called once when the search is done, with the final result
	onStop ListenerFunc[S]
}

func NewStatsListener[S any]() StatsListener[S] {
	return StatsListener[S]{}
}

// Attach a callback invoked once per root move, by the goroutine that called Search
func (listener *StatsListener[S]) OnRootMove(onRootMove ListenerFunc[S]) *StatsListener[S] {
	listener.onRootMove = onRootMove
	return listener
}

// Attach 'on search end' callback
func (listener *StatsListener[S]) OnStop(onStop ListenerFunc[S]) *StatsListener[S] {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener[S]) invokeRootMove(result Result[S]) {
	if listener.onRootMove != nil {
		listener.onRootMove(result)
	}
}

func (listener *StatsListener[S]) invokeStop(result Result[S]) {
	if listener.onStop != nil {
		listener.onStop(result)
	}
}
