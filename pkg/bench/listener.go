package bench

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
)

// ListenerLike receives arena progress. The arena serializes the calls,
// implementations don't need to synchronize.
type ListenerLike interface {
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
}

// Prints finished games and the summary on a terminal
type DefaultListener struct {
	w   io.Writer
	out *termenv.Output
}

func NewDefaultListener(w io.Writer, opts ...termenv.OutputOption) *DefaultListener {
	return &DefaultListener{w: w, out: termenv.NewOutput(w, opts...)}
}

func (d *DefaultListener) OnMoveMade(VersusWorkerInfo) {}

func (d *DefaultListener) OnFinishedGame(info VersusWorkerInfo) {
	fmt.Fprintf(d.w, "worker %d: game %d/%d in %d moves, %s %d - %d %s (draws %d)\n",
		info.WorkerID, info.FinishedGames, info.NGames, info.GameMoveNum,
		info.P1Name, info.P1Wins, info.P2Wins, info.P2Name, info.Draws)
}

func (d *DefaultListener) OnFinishedWork(info VersusWorkerInfo) {
	fmt.Fprintf(d.w, "worker %d: %s\n", info.WorkerID, d.out.String("done").Faint())
}

func (d *DefaultListener) Summary(s VersusSummaryInfo) {
	p1 := d.out.String(s.P1Name).Foreground(d.out.Color("2")).Bold()
	p2 := d.out.String(s.P2Name).Foreground(d.out.Color("1")).Bold()
	fmt.Fprintf(d.w, "\n%s vs %s: %d games on %d workers\n", p1, p2, s.TotalGames, s.Workers)
	fmt.Fprintf(d.w, "  %s wins: %d\n  %s wins: %d\n  draws: %d\n", p1, s.P1Wins, p2, s.P2Wins, s.Draws)
	fmt.Fprintf(d.w, "  black wins: %d, white wins: %d\n", s.BlackWins, s.WhiteWins)
	fmt.Fprintf(d.w, "  %s score: %.3f +/- %.3f\n", p1, s.P1Score, s.P1ScoreMargin)
}

// Writes arena events to the global zerolog logger
type LogListener struct{}

func (LogListener) OnMoveMade(info VersusWorkerInfo) {
	if len(info.Moves) == 0 {
		return
	}
	log.Trace().
		Int("worker", info.WorkerID).
		Int("ply", info.GameMoveNum).
		Str("move", info.Moves[len(info.Moves)-1].String()).
		Msg("move-made")
}

func (LogListener) OnFinishedGame(info VersusWorkerInfo) {
	log.Debug().
		Int("worker", info.WorkerID).
		Int("game", info.FinishedGames).
		Int("plies", info.GameMoveNum).
		Str("status", info.Board.Status().String()).
		Msg("game-finished")
}

func (LogListener) OnFinishedWork(info VersusWorkerInfo) {
	log.Debug().Int("worker", info.WorkerID).Int("games", info.NGames).Msg("worker-done")
}

func (LogListener) Summary(s VersusSummaryInfo) {
	log.Info().
		Str("p1", s.P1Name).
		Str("p2", s.P2Name).
		Int("games", s.TotalGames).
		Int("p1-wins", s.P1Wins).
		Int("p2-wins", s.P2Wins).
		Int("draws", s.Draws).
		Float64("p1-score", s.P1Score).
		Float64("margin", s.P1ScoreMargin).
		Msg("arena-summary")
}

// Forwards every event to all the listeners
type MultiListener []ListenerLike

func (m MultiListener) OnMoveMade(info VersusWorkerInfo) {
	for _, l := range m {
		l.OnMoveMade(info)
	}
}

func (m MultiListener) OnFinishedGame(info VersusWorkerInfo) {
	for _, l := range m {
		l.OnFinishedGame(info)
	}
}

func (m MultiListener) OnFinishedWork(info VersusWorkerInfo) {
	for _, l := range m {
		l.OnFinishedWork(info)
	}
}

func (m MultiListener) Summary(s VersusSummaryInfo) {
	for _, l := range m {
		l.Summary(s)
	}
}
