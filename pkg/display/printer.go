package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// Printer draws boards and game results on a terminal, using colours when
// the terminal supports them
type Printer struct {
	out   *termenv.Output
	black termenv.Color
	white termenv.Color
	hint  termenv.Color
}

func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	out := termenv.NewOutput(w, opts...)
	return &Printer{
		out:   out,
		black: out.Color("#e0a030"),
		white: out.Color("#f0f0f0"),
		hint:  out.Color("#4080c0"),
	}
}

// Board renders the grid, marking 'hints' (usually the legal moves) with '*'
func (p *Printer) Board(b othello.Board, hints othello.PieceSet) string {
	builder := strings.Builder{}
	black, white := b.Black(), b.White()

	builder.WriteString("  a b c d e f g h\n")
	for row := 0; row < 8; row++ {
		builder.WriteByte(byte('1' + row))
		for col := 0; col < 8; col++ {
			sq := othello.SquareMask(row*8 + col)
			builder.WriteByte(' ')
			switch {
			case black&sq != 0:
				builder.WriteString(p.out.String("X").Foreground(p.black).Bold().String())
			case white&sq != 0:
				builder.WriteString(p.out.String("O").Foreground(p.white).Bold().String())
			case hints&sq != 0:
				builder.WriteString(p.out.String("*").Foreground(p.hint).String())
			default:
				builder.WriteString(p.out.String(".").Faint().String())
			}
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

// Status line: whose turn it is, or who won and by how much
func (p *Printer) Status(b othello.Board) string {
	blackCount, whiteCount := b.Black().Count(), b.White().Count()
	switch b.Status() {
	case othello.Won:
		winner, loser := "White", "Black"
		if b.WinnerIsBlack() {
			winner, loser = "Black", "White"
		}
		return fmt.Sprintf("%s wins! The winner had %d discs, %s had %d",
			p.out.String(winner).Bold(), b.Mover().Count(), loser, b.Waiting().Count())
	case othello.Drawn:
		return fmt.Sprintf("It's a draw! %d discs each", blackCount)
	}

	side := p.out.String("White").Foreground(p.white)
	if b.BlackToMove() {
		side = p.out.String("Black").Foreground(p.black)
	}
	return fmt.Sprintf("%s to move (X %d, O %d)", side, blackCount, whiteCount)
}
