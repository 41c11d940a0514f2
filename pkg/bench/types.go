package bench

import (
	"strings"
	"sync/atomic"

	"github.com/samber/lo"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

func (r VersusMatchResult) String() string {
	switch r {
	case VersusPl1Win:
		return "player1"
	case VersusPl2Win:
		return "player2"
	}
	return "draw"
}

type VersusArenaStats struct {
	p1Wins    uint32
	p2Wins    uint32
	draws     uint32
	blackWins uint32
	whiteWins uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

func (vas *VersusArenaStats) BlackWins() int {
	return int(atomic.LoadUint32(&vas.blackWins))
}

func (vas *VersusArenaStats) WhiteWins() int {
	return int(atomic.LoadUint32(&vas.whiteWins))
}

func (vas *VersusArenaStats) add(result VersusMatchResult, outcome GameOutcome) {
	switch result {
	case VersusPl1Win:
		atomic.AddUint32(&vas.p1Wins, 1)
	case VersusPl2Win:
		atomic.AddUint32(&vas.p2Wins, 1)
	default:
		atomic.AddUint32(&vas.draws, 1)
	}

	if !outcome.IsDraw {
		if outcome.BlackWon {
			atomic.AddUint32(&vas.blackWins, 1)
		} else {
			atomic.AddUint32(&vas.whiteWins, 1)
		}
	}
}

type VersusWorkerInfo struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	GameMoveNum   int
	Moves         []othello.PieceSet
	Board         othello.Board
	P1Wins        int
	P2Wins        int
	Draws         int
	P1Name        string
	P2Name        string
}

type VersusSummaryInfo struct {
	TotalGames int    `json:"total_games"`
	P1Wins     int    `json:"player1_wins"`
	P2Wins     int    `json:"player2_wins"`
	BlackWins  int    `json:"black_wins"`
	WhiteWins  int    `json:"white_wins"`
	Draws      int    `json:"draws"`
	Workers    int    `json:"workers"`
	P1Name     string `json:"player1_name"`
	P2Name     string `json:"player2_name"`
	// Player 1 points per game, a draw is worth half a win
	P1Score float64 `json:"player1_score"`
	// Half width of the 95% confidence interval of P1Score
	P1ScoreMargin float64 `json:"player1_score_margin"`
}

// Result of a single game, from black's perspective
type GameOutcome struct {
	BlackWon   bool
	IsDraw     bool
	BlackDiscs int
	WhiteDiscs int
}

// maps a game outcome to which player won, given the colour player 1 had
func toAgentResult(outcome GameOutcome, p1IsBlack bool) VersusMatchResult {
	if outcome.IsDraw {
		return VersusDraw
	}

	if p1IsBlack == outcome.BlackWon {
		return VersusPl1Win
	}
	return VersusPl2Win
}

// determines the winner of a finished game
func computeOutcome(board othello.Board) GameOutcome {
	if !board.Terminated() {
		panic("computeOutcome: position not terminated")
	}

	return GameOutcome{
		BlackWon:   board.WinnerIsBlack(),
		IsDraw:     board.Status() == othello.Drawn,
		BlackDiscs: board.Black().Count(),
		WhiteDiscs: board.White().Count(),
	}
}

// A finished (or interrupted) arena game
type GameRecord struct {
	Black   string
	White   string
	Moves   []othello.PieceSet
	Outcome GameOutcome
	// false if the game was stopped before the end
	Finished bool
}

// Moves in algebraic notation separated by spaces, e.g. "d3 c5 f6"
func (g GameRecord) Notation() string {
	return strings.Join(lo.Map(g.Moves, func(m othello.PieceSet, _ int) string {
		return m.String()
	}), " ")
}
