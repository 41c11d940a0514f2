package othello

import (
	"fmt"
	"strings"
)

const (
	blackSymbol = 'X'
	whiteSymbol = 'O'
	emptySymbol = '.'
)

// Algebraic name of the square, column letter and row number, e.g. 19 -> "d3"
func FormatSquare(square int) string {
	if square < 0 || square > 63 {
		return "--"
	}
	return string([]byte{byte('a' + square%8), byte('1' + square/8)})
}

// ParseSquare reads a square either in algebraic form ("d3") or as two digits,
// column then row, both counted from 1 ("43")
func ParseSquare(s string) (PieceSet, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: square %q", ErrBadNotation, s)
	}

	var col int
	switch c := s[0]; {
	case c >= 'a' && c <= 'h':
		col = int(c - 'a')
	case c >= '1' && c <= '8':
		col = int(c - '1')
	default:
		return 0, fmt.Errorf("%w: column in %q", ErrBadNotation, s)
	}

	if s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("%w: row in %q", ErrBadNotation, s)
	}
	row := int(s[1] - '1')
	return SquareMask(row*8 + col), nil
}

// Notation writes the position as 64 square symbols, row by row,
// followed by the side to move: "...XO... X"
func (b Board) Notation() string {
	builder := strings.Builder{}
	builder.Grow(66)
	black, white := b.Black(), b.White()
	for sq := 0; sq < 64; sq++ {
		builder.WriteByte(symbolAt(black, white, sq))
	}
	builder.WriteByte(' ')
	if b.blackToMove {
		builder.WriteByte(blackSymbol)
	} else {
		builder.WriteByte(whiteSymbol)
	}
	return builder.String()
}

// ParseBoard reads a position written by Notation. Forced passes and
// finished games are resolved, so the result is ready to be searched.
func ParseBoard(notation string) (Board, error) {
	fields := strings.Fields(notation)
	if len(fields) != 2 || len(fields[0]) != 64 || len(fields[1]) != 1 {
		return Board{}, fmt.Errorf("%w: position %q", ErrBadNotation, notation)
	}

	var black, white PieceSet
	for i, c := range []byte(fields[0]) {
		switch c {
		case blackSymbol, 'x', 'B', 'b', '*':
			black |= SquareMask(i)
		case whiteSymbol, 'o', 'W', 'w':
			white |= SquareMask(i)
		case emptySymbol, '-', '_':
		default:
			return Board{}, fmt.Errorf("%w: symbol %q at %s", ErrBadNotation, c, FormatSquare(i))
		}
	}

	var b Board
	switch fields[1] {
	case "X", "x", "B", "b":
		b = NewBoard(black, white, true)
	case "O", "o", "W", "w":
		b = NewBoard(white, black, false)
	default:
		return Board{}, fmt.Errorf("%w: side to move %q", ErrBadNotation, fields[1])
	}
	b.settle()
	return b, nil
}

// String draws the board as a grid, black is X, white is O
func (b Board) String() string {
	builder := strings.Builder{}
	black, white := b.Black(), b.White()
	builder.WriteString("  a b c d e f g h\n")
	for row := 0; row < 8; row++ {
		builder.WriteByte(byte('1' + row))
		for col := 0; col < 8; col++ {
			builder.WriteByte(' ')
			builder.WriteByte(symbolAt(black, white, row*8+col))
		}
		builder.WriteByte('\n')
	}

	switch b.status {
	case Ongoing:
		if b.blackToMove {
			builder.WriteString("black to move")
		} else {
			builder.WriteString("white to move")
		}
	case Won:
		if b.blackToMove {
			builder.WriteString("black won")
		} else {
			builder.WriteString("white won")
		}
	case Drawn:
		builder.WriteString("draw")
	}
	fmt.Fprintf(&builder, " (X %d, O %d)", black.Count(), white.Count())
	return builder.String()
}

func symbolAt(black, white PieceSet, sq int) byte {
	mask := SquareMask(sq)
	switch {
	case black&mask != 0:
		return blackSymbol
	case white&mask != 0:
		return whiteSymbol
	}
	return emptySymbol
}
