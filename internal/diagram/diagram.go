// Package diagram draws board diagrams as SVG.
package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/oatchess/oat/pkg/common"
)

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
)

var glyphs = map[common.Piece]string{
	{Color: common.White, Role: common.King}:   "♔",
	{Color: common.White, Role: common.Queen}:  "♕",
	{Color: common.White, Role: common.Rook}:   "♖",
	{Color: common.White, Role: common.Bishop}: "♗",
	{Color: common.White, Role: common.Knight}: "♘",
	{Color: common.White, Role: common.Pawn}:   "♙",
	{Color: common.Black, Role: common.King}:   "♚",
	{Color: common.Black, Role: common.Queen}:  "♛",
	{Color: common.Black, Role: common.Rook}:   "♜",
	{Color: common.Black, Role: common.Bishop}: "♝",
	{Color: common.Black, Role: common.Knight}: "♞",
	{Color: common.Black, Role: common.Pawn}:   "♟",
}

type Options struct {
	// Size is the board edge in pixels.
	Size int
	// Flipped draws the board from black's side.
	Flipped bool
}

// Render writes an SVG diagram of the board of p to w.
func Render(w io.Writer, p *common.Position, options Options) error {
	var cell = options.Size / 8
	if cell <= 0 {
		return fmt.Errorf("%w: diagram size %v", common.ErrOutOfRange, options.Size)
	}
	var ew = &errWriter{w: w}
	var canvas = svg.New(ew)
	canvas.Start(8*cell, 8*cell)
	canvas.Title(p.String())
	for sq := common.SquareA1; sq <= common.SquareH8; sq++ {
		var x, y = squareOrigin(sq, cell, options.Flipped)
		var style = darkSquare
		if (int(sq.File())+int(sq.Rank()))%2 == 1 {
			style = lightSquare
		}
		canvas.Rect(x, y, cell, cell, style)
		if piece, ok := p.Board.PieceAt(sq); ok {
			canvas.Text(x+cell/2, y+cell*4/5, glyphs[piece],
				fmt.Sprintf("font-size:%dpx;text-anchor:middle", cell*4/5))
		}
	}
	canvas.End()
	return ew.err
}

func squareOrigin(sq common.Square, cell int, flipped bool) (x, y int) {
	var file, rank = int(sq.File()), int(sq.Rank())
	if flipped {
		return (7 - file) * cell, rank * cell
	}
	return file * cell, (7 - rank) * cell
}

// errWriter keeps the first write error, since the canvas does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	var n, err = ew.w.Write(p)
	ew.err = err
	return n, err
}
