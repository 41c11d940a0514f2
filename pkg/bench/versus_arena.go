package bench

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

/*
Arena benchmark subpackage, plays a series of games between two players,
alternating colours, and keeps the score.
*/

type VersusArena struct {
	VersusArenaStats
	Player1  Player
	Player2  Player
	NGames   uint
	NThreads uint
	// Starting position of every game
	Position othello.Board
	// Confidence of the summary's score margin, in percent
	Confidence float64

	wg         sync.WaitGroup
	listenerMu sync.Mutex
	recordsMu  sync.Mutex
	records    []GameRecord
	ctx        context.Context
}

func NewVersusArena(position othello.Board, p1, p2 Player) *VersusArena {
	return &VersusArena{
		Player1:    p1,
		Player2:    p2,
		NGames:     100,
		NThreads:   2,
		Position:   position,
		Confidence: 95,
		ctx:        context.Background(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) Setup(nGames uint, nThreads uint) {
	va.NGames = nGames
	va.NThreads = max(nThreads, 1)
}

// Start the games in the background, call Wait for the summary.
// Each start clears the previous run's stats and records. The listener may be nil.
func (va *VersusArena) Start(listener ListenerLike) {
	if listener == nil {
		listener = MultiListener{}
	}
	va.VersusArenaStats = VersusArenaStats{}
	va.records = make([]GameRecord, va.NGames)

	log.Debug().
		Str("p1", va.Player1.Name()).
		Str("p2", va.Player2.Name()).
		Uint("games", va.NGames).
		Uint("workers", va.NThreads).
		Msg("arena-start")

	// Worker i plays games i, i+NThreads, i+2*NThreads...
	for i := range va.NThreads {
		va.wg.Add(1)
		go va.worker(int(i), listener)
	}
}

// Wait for all the workers and report the summary to the listener
func (va *VersusArena) Wait(listener ListenerLike) VersusSummaryInfo {
	va.wg.Wait()

	summary := va.Summary()
	if listener != nil {
		listener.Summary(summary)
	}
	return summary
}

// Play all the games and return the summary
func (va *VersusArena) Run(listener ListenerLike) VersusSummaryInfo {
	va.Start(listener)
	return va.Wait(listener)
}

func (va *VersusArena) Summary() VersusSummaryInfo {
	score, margin := scoreRate(va.P1Wins(), va.Draws(), va.Total(), va.Confidence)
	return VersusSummaryInfo{
		TotalGames:    va.Total(),
		P1Wins:        va.P1Wins(),
		P2Wins:        va.P2Wins(),
		BlackWins:     va.BlackWins(),
		WhiteWins:     va.WhiteWins(),
		Draws:         va.Draws(),
		Workers:       int(va.NThreads),
		P1Name:        va.Player1.Name(),
		P2Name:        va.Player2.Name(),
		P1Score:       score,
		P1ScoreMargin: margin,
	}
}

// Records of the played games, in game order, valid after Wait.
// Games skipped because of a cancelled context are left out.
func (va *VersusArena) Records() []GameRecord {
	va.recordsMu.Lock()
	defer va.recordsMu.Unlock()

	records := make([]GameRecord, 0, len(va.records))
	for _, r := range va.records {
		if r.Moves != nil {
			records = append(records, r)
		}
	}
	return records
}

func (va *VersusArena) notify(f func()) {
	va.listenerMu.Lock()
	defer va.listenerMu.Unlock()
	f()
}

func (va *VersusArena) worker(id int, listener ListenerLike) {
	defer va.wg.Done()

	nGames := 0
	for game := id; game < int(va.NGames); game += int(va.NThreads) {
		nGames++
	}

	local := VersusArenaStats{}
	info := func(board othello.Board, moves []othello.PieceSet, finished int) VersusWorkerInfo {
		return VersusWorkerInfo{
			WorkerID:      id,
			NGames:        nGames,
			FinishedGames: finished,
			GameMoveNum:   len(moves),
			Moves:         moves,
			Board:         board,
			P1Wins:        local.P1Wins(),
			P2Wins:        local.P2Wins(),
			Draws:         local.Draws(),
			P1Name:        va.Player1.Name(),
			P2Name:        va.Player2.Name(),
		}
	}

	finished := 0
Loop:
	for game := id; game < int(va.NGames); game += int(va.NThreads) {
		select {
		case <-va.ctx.Done():
			break Loop
		default:
		}

		// Player 1 is black in even games
		p1IsBlack := game%2 == 0
		black, white := va.Player1, va.Player2
		if !p1IsBlack {
			black, white = white, black
		}

		record, board := va.playGame(black, white, func(board othello.Board, moves []othello.PieceSet) {
			va.notify(func() { listener.OnMoveMade(info(board, moves, finished)) })
		})

		va.recordsMu.Lock()
		va.records[game] = record
		va.recordsMu.Unlock()

		if !record.Finished {
			break
		}

		result := toAgentResult(record.Outcome, p1IsBlack)
		va.add(result, record.Outcome)
		local.add(result, record.Outcome)
		finished++

		log.Debug().
			Int("worker", id).
			Int("game", game).
			Str("black", black.Name()).
			Str("white", white.Name()).
			Int("black-discs", record.Outcome.BlackDiscs).
			Int("white-discs", record.Outcome.WhiteDiscs).
			Stringer("result", result).
			Msg("arena-game")

		va.notify(func() { listener.OnFinishedGame(info(board, record.Moves, finished)) })
	}

	va.notify(func() { listener.OnFinishedWork(info(va.Position, nil, finished)) })
}

// Play a single game from the arena's position, stops early when the context is done
func (va *VersusArena) playGame(
	black, white Player, onMove func(othello.Board, []othello.PieceSet),
) (GameRecord, othello.Board) {
	board := va.Position
	record := GameRecord{
		Black: black.Name(),
		White: white.Name(),
		Moves: make([]othello.PieceSet, 0, 60),
	}

	for !board.Terminated() {
		select {
		case <-va.ctx.Done():
			return record, board
		default:
		}

		player := white
		if board.BlackToMove() {
			player = black
		}

		move := player.Move(board)
		if _, err := board.SafeMakeMove(move); err != nil {
			// a player returning an illegal move is a bug in the player
			panic(err)
		}
		record.Moves = append(record.Moves, move)
		onMove(board, record.Moves)
	}

	record.Finished = true
	record.Outcome = computeOutcome(board)
	return record, board
}
