package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/namsral/flag"
)

const (
	ModePlay  = "play"
	ModeArena = "arena"
	ModeBest  = "best"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Mode          string
	Strategy      string
	Depth         int
	Threads       int
	WeightsPath   string
	Opponent      string
	OpponentDepth int
	Games         int
	Workers       int
	HumanColor    string
	Position      string
	Debug         bool
}

// Load reads the flags from args, unset flags fall back to OTHELLO_* environment variables
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("othello", "OTHELLO", flag.ContinueOnError)
	fs.StringVar(&c.Mode, "mode", ModePlay, "what to do: play (against the engine), arena (engine vs engine) or best (best move of -position)")
	fs.StringVar(&c.Strategy, "strategy", "composite", "evaluation strategy: mobility, material, corners, frontier or composite")
	fs.IntVar(&c.Depth, "depth", 5, "search depth in plies")
	fs.IntVar(&c.Threads, "threads", 1, "goroutines searching the root moves")
	fs.StringVar(&c.WeightsPath, "weights", "", "yaml file with the composite strategy weights")
	fs.StringVar(&c.Opponent, "opponent", "random", "arena opponent: random or a strategy name")
	fs.IntVar(&c.OpponentDepth, "opponent-depth", 3, "search depth of the arena opponent")
	fs.IntVar(&c.Games, "games", 20, "number of arena games")
	fs.IntVar(&c.Workers, "workers", 2, "number of arena workers")
	fs.StringVar(&c.HumanColor, "color", "black", "colour played by the human: black or white")
	fs.StringVar(&c.Position, "position", "", "position for -mode best, 64 squares (X, O, .) and the side to move")
	fs.BoolVar(&c.Debug, "debug", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	c.Mode = strings.ToLower(c.Mode)
	c.HumanColor = strings.ToLower(c.HumanColor)

	switch {
	case !slices.Contains([]string{ModePlay, ModeArena, ModeBest}, c.Mode):
		return fmt.Errorf("%w: mode %q", ErrInvalidConfig, c.Mode)
	case c.Depth < 1 || c.OpponentDepth < 1:
		return fmt.Errorf("%w: depth must be positive", ErrInvalidConfig)
	case c.Threads < 1 || c.Workers < 1:
		return fmt.Errorf("%w: threads and workers must be positive", ErrInvalidConfig)
	case c.Games < 0:
		return fmt.Errorf("%w: games %d", ErrInvalidConfig, c.Games)
	case c.HumanColor != "black" && c.HumanColor != "white":
		return fmt.Errorf("%w: color %q", ErrInvalidConfig, c.HumanColor)
	case c.Mode == ModeBest && c.Position == "":
		return fmt.Errorf("%w: -mode best needs a -position", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) HumanIsBlack() bool {
	return c.HumanColor == "black"
}
