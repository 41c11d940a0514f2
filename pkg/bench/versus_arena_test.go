package bench

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-othello/pkg/eval"
	"github.com/IlikeChooros/go-othello/pkg/othello"
	"github.com/IlikeChooros/go-othello/pkg/search"
)

type countingListener struct {
	moves     int
	games     int
	workers   int
	summary   VersusSummaryInfo
	summaries int
}

func (c *countingListener) OnMoveMade(VersusWorkerInfo)     { c.moves++ }
func (c *countingListener) OnFinishedGame(VersusWorkerInfo) { c.games++ }
func (c *countingListener) OnFinishedWork(VersusWorkerInfo) { c.workers++ }
func (c *countingListener) Summary(s VersusSummaryInfo) {
	c.summaries++
	c.summary = s
}

func materialPlayer(depth int) Player {
	searcher := search.NewSearcher[eval.Score](eval.Material{}).SetLimits(search.DefaultLimits().SetDepth(depth))
	return NewSearchPlayer("material", searcher)
}

func TestVersusArena(t *testing.T) {
	is := is.New(t)

	arena := NewVersusArena(othello.InitialBoard(), materialPlayer(1), RandomPlayer{})
	arena.Setup(6, 3)
	listener := &countingListener{}
	summary := arena.Run(listener)

	is.Equal(summary.TotalGames, 6)
	is.Equal(summary.P1Wins+summary.P2Wins+summary.Draws, 6)
	is.Equal(summary.BlackWins+summary.WhiteWins+summary.Draws, 6)
	is.Equal(summary.Workers, 3)
	is.Equal(summary.P1Name, "material")
	is.Equal(summary.P2Name, "random")

	is.Equal(listener.games, 6)
	is.Equal(listener.workers, 3)
	is.Equal(listener.summaries, 1)
	is.Equal(listener.summary, summary)

	records := arena.Records()
	is.Equal(len(records), 6)

	plies := 0
	for i, record := range records {
		is.True(record.Finished)
		// colours alternate between the games
		if i%2 == 0 {
			is.Equal(record.Black, "material")
		} else {
			is.Equal(record.Black, "random")
		}

		// replaying the record gives the same outcome
		board := othello.InitialBoard()
		for _, move := range record.Moves {
			_, err := board.SafeMakeMove(move)
			is.NoErr(err)
		}
		is.True(board.Terminated())
		is.Equal(computeOutcome(board), record.Outcome)
		plies += len(record.Moves)
	}
	is.Equal(listener.moves, plies)
}

func TestVersusArenaCancelled(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	arena := NewVersusArena(othello.InitialBoard(), RandomPlayer{}, RandomPlayer{}).WithContext(ctx)
	arena.Setup(4, 2)
	summary := arena.Run(nil)

	is.Equal(summary.TotalGames, 0)
	is.Equal(len(arena.Records()), 0)
	is.Equal(summary.P1Score, 0.0)
}

func TestToAgentResult(t *testing.T) {
	is := is.New(t)

	is.Equal(toAgentResult(GameOutcome{IsDraw: true}, true), VersusDraw)
	is.Equal(toAgentResult(GameOutcome{BlackWon: true}, true), VersusPl1Win)
	is.Equal(toAgentResult(GameOutcome{BlackWon: true}, false), VersusPl2Win)
	is.Equal(toAgentResult(GameOutcome{BlackWon: false}, false), VersusPl1Win)
	is.Equal(toAgentResult(GameOutcome{BlackWon: false}, true), VersusPl2Win)
}

func TestScoreRate(t *testing.T) {
	is := is.New(t)

	is.True(math.Abs(zValue(95)-1.959964) < 1e-5)

	score, margin := scoreRate(4, 2, 10, 95)
	is.True(math.Abs(score-0.5) < 1e-9)
	is.True(math.Abs(margin-1.959964*math.Sqrt(0.025)) < 1e-5)

	score, margin = scoreRate(0, 0, 0, 95)
	is.Equal(score, 0.0)
	is.Equal(margin, 0.0)
}

func TestGameRecordNotation(t *testing.T) {
	is := is.New(t)

	record := GameRecord{Moves: []othello.PieceSet{othello.SquareMask(19), othello.SquareMask(18), othello.SquareMask(17)}}
	is.Equal(record.Notation(), "d3 c3 b3")
	is.Equal(GameRecord{}.Notation(), "")
}

func TestDefaultListener(t *testing.T) {
	is := is.New(t)

	buf := &bytes.Buffer{}
	listener := NewDefaultListener(buf, termenv.WithProfile(termenv.Ascii))
	listener.OnFinishedGame(VersusWorkerInfo{WorkerID: 1, FinishedGames: 2, NGames: 5, GameMoveNum: 60, P1Name: "a", P2Name: "b", P1Wins: 2})
	listener.Summary(VersusSummaryInfo{TotalGames: 5, P1Name: "a", P2Name: "b", P1Wins: 3, P2Wins: 2, P1Score: 0.6, P1ScoreMargin: 0.43})

	out := buf.String()
	is.True(strings.Contains(out, "worker 1: game 2/5 in 60 moves, a 2 - 0 b (draws 0)"))
	is.True(strings.Contains(out, "a vs b: 5 games"))
	is.True(strings.Contains(out, "a score: 0.600 +/- 0.430"))
}

func TestVersusArenaRunTwice(t *testing.T) {
	is := is.New(t)

	arena := NewVersusArena(othello.InitialBoard(), RandomPlayer{}, RandomPlayer{})
	arena.Setup(4, 2)
	first := arena.Run(nil)
	is.Equal(first.TotalGames, 4)

	arena.Setup(3, 1)
	second := arena.Run(nil)
	is.Equal(second.TotalGames, 3)
	is.Equal(second.P1Wins+second.P2Wins+second.Draws, 3)
	is.Equal(second.BlackWins+second.WhiteWins+second.Draws, 3)
	is.Equal(len(arena.Records()), 3)
}
