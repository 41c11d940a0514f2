package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-othello/pkg/bench"
	"github.com/IlikeChooros/go-othello/pkg/config"
	"github.com/IlikeChooros/go-othello/pkg/display"
	"github.com/IlikeChooros/go-othello/pkg/eval"
	"github.com/IlikeChooros/go-othello/pkg/othello"
	"github.com/IlikeChooros/go-othello/pkg/search"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogger(cfg.Debug)

	if cfg.WeightsPath != "" {
		weights, err := eval.LoadWeightsFile(cfg.WeightsPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.WeightsPath).Msg("loading-weights")
		}
		eval.SetDefaultWeights(weights)
		log.Debug().Interface("weights", weights).Msg("weights-loaded")
	}

	searcher, err := newSearcher(cfg.Strategy, cfg.Depth, cfg.Threads)
	if err != nil {
		log.Fatal().Err(err).Msg("strategy")
	}

	switch cfg.Mode {
	case config.ModePlay:
		err = play(cfg, searcher, os.Stdin, os.Stdout)
	case config.ModeArena:
		err = arena(cfg, searcher)
	case config.ModeBest:
		err = best(cfg, searcher)
	}
	if err != nil {
		log.Fatal().Err(err).Str("mode", cfg.Mode).Msg("exiting")
	}
}

func setupLogger(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

func newSearcher(strategy string, depth, threads int) (*search.Searcher[eval.Score], error) {
	s, err := eval.ByName(strategy)
	if err != nil {
		return nil, err
	}
	limits := search.DefaultLimits().SetDepth(depth).SetThreads(threads)
	log.Debug().Str("strategy", strategy).Str("limits", strings.TrimSpace(limits.String())).Msg("searcher")
	return search.NewSearcher(s).SetLimits(limits), nil
}

func arena(cfg *config.Config, searcher *search.Searcher[eval.Score]) error {
	var opponent bench.Player = bench.RandomPlayer{}
	if cfg.Opponent != "random" {
		s, err := newSearcher(cfg.Opponent, cfg.OpponentDepth, 1)
		if err != nil {
			return err
		}
		opponent = bench.NewSearchPlayer(fmt.Sprintf("%s@%d", cfg.Opponent, cfg.OpponentDepth), s)
	}
	player := bench.NewSearchPlayer(fmt.Sprintf("%s@%d", cfg.Strategy, cfg.Depth), searcher)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	va := bench.NewVersusArena(othello.InitialBoard(), player, opponent).WithContext(ctx)
	va.Setup(uint(cfg.Games), uint(cfg.Workers))
	summary := va.Run(bench.MultiListener{bench.NewDefaultListener(os.Stdout), bench.LogListener{}})

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return ctx.Err()
}

func best(cfg *config.Config, searcher *search.Searcher[eval.Score]) error {
	board, err := othello.ParseBoard(cfg.Position)
	if err != nil {
		return err
	}

	printer := display.NewPrinter(os.Stdout)
	fmt.Print(printer.Board(board, board.LegalMoves()))
	fmt.Println(printer.Status(board))
	if board.Terminated() {
		return nil
	}

	result := searcher.Search(board)
	fmt.Printf("best move %v, score %d, %d nodes in %d ms\n", result.Move, result.Score, result.Nodes, result.TimeMs)
	return nil
}
