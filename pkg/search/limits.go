package search

import (
	"encoding/json"
	"strings"
)

type Limits struct {
	Depth    int
	NThreads int
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultDepthLimit int = 5
	// The board has 64 squares, a game can't be longer than that
	MaxDepthLimit int = 64
)

func DefaultLimits() *Limits {
	return &Limits{
		Depth:    DefaultDepthLimit,
		NThreads: 1,
	}
}

// Set the number of plies to search, clamped to [1, MaxDepthLimit]
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = min(max(depth, 1), MaxDepthLimit)
	return l
}

// Set the number of goroutines searching the root moves
func (l *Limits) SetThreads(threads int) *Limits {
	l.NThreads = max(threads, 1)
	return l
}
