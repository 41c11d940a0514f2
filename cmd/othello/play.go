package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-othello/pkg/config"
	"github.com/IlikeChooros/go-othello/pkg/display"
	"github.com/IlikeChooros/go-othello/pkg/eval"
	"github.com/IlikeChooros/go-othello/pkg/othello"
	"github.com/IlikeChooros/go-othello/pkg/search"
)

// play a game between the human on 'in' and the engine
func play(cfg *config.Config, searcher *search.Searcher[eval.Score], in io.Reader, out io.Writer) error {
	printer := display.NewPrinter(out)
	scanner := bufio.NewScanner(in)
	board := othello.InitialBoard()
	humanIsBlack := cfg.HumanIsBlack()

	for !board.Terminated() {
		moves := board.LegalMoves()
		fmt.Fprint(out, printer.Board(board, moves))
		fmt.Fprintln(out, printer.Status(board))

		if board.BlackToMove() != humanIsBlack {
			result := searcher.Search(board)
			board.MakeMove(result.Move)
			fmt.Fprintf(out, "engine plays %v\n\n", result.Move)
			continue
		}

		fmt.Fprintf(out, "your move %v: ", moves)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return io.EOF
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "quit" || text == "q" {
			return nil
		}

		move, err := othello.ParseSquare(text)
		if err == nil {
			_, err = board.SafeMakeMove(move)
		}
		switch {
		case errors.Is(err, othello.ErrBadNotation):
			fmt.Fprintf(out, "can't read %q, type a square like d3 or 43\n\n", text)
		case errors.Is(err, othello.ErrIllegalMove):
			fmt.Fprintf(out, "%s is not a legal move\n\n", text)
		case err != nil:
			return err
		default:
			log.Debug().Str("move", move.String()).Msg("human-move")
			fmt.Fprintln(out)
		}
	}

	fmt.Fprint(out, printer.Board(board, 0))
	fmt.Fprintln(out, printer.Status(board))
	return nil
}
