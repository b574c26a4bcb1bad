package common

import (
	"fmt"
	"slices"
)

type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

const (
	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var castleMask [64]CastlingRights

func (cr CastlingRights) Has(rights CastlingRights) bool {
	return cr&rights == rights
}

func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var s string
	if cr.Has(WhiteKingSide) {
		s += "K"
	}
	if cr.Has(WhiteQueenSide) {
		s += "Q"
	}
	if cr.Has(BlackKingSide) {
		s += "k"
	}
	if cr.Has(BlackQueenSide) {
		s += "q"
	}
	return s
}

// Position is the full game state handed to search collaborators.
type Position struct {
	Board          Board
	SideToMove     Color
	CastlingRights CastlingRights
	EpSquare       Square
	HalfmoveClock  int
	FullmoveNumber int
}

// NewPosition returns an empty board with white to move.
func NewPosition() Position {
	return Position{
		SideToMove:     White,
		EpSquare:       SquareNone,
		FullmoveNumber: 1,
	}
}

func InitialPosition() Position {
	var p, err = ParseFEN(InitialPositionFen)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Position) EnPassant() (Square, bool) {
	return p.EpSquare, p.EpSquare != SquareNone
}

// ApplyMove plays m if it is a member of legal, the move set produced by a
// move generator for this position. On error p is left unchanged.
func (p *Position) ApplyMove(m Move, legal []Move) error {
	if !slices.Contains(legal, m) {
		return fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	return p.makeMove(m)
}

func (p *Position) makeMove(m Move) error {
	var from, to = m.From(), m.To()
	var next = *p

	var mover, ok = next.Board.Remove(from)
	if !ok || mover.Color != p.SideToMove {
		return fmt.Errorf("%w: %v has no %v piece on %v", ErrIllegalMove, m, p.SideToMove, from)
	}
	var captured, isCapture = next.Board.Remove(to)
	if isCapture && (captured.Color == mover.Color || captured.Role == King) {
		return fmt.Errorf("%w: %v captures %v", ErrIllegalMove, m, captured)
	}
	if mover.Role == Pawn && !isCapture && to == p.EpSquare && from.File() != to.File() {
		if _, ok := next.Board.Remove(MakeSquare(to.File(), from.Rank())); !ok {
			return fmt.Errorf("%w: %v no pawn to capture en passant", ErrIllegalMove, m)
		}
		isCapture = true
	}

	var placed = mover
	if promotion := m.Promotion(); promotion != NoRole {
		if mover.Role != Pawn {
			return fmt.Errorf("%w: %v promotes a %v", ErrIllegalMove, m, mover.Role)
		}
		placed.Role = promotion
	}
	if err := next.Board.Put(placed, to); err != nil {
		return err
	}

	if mover.Role == King && absDelta(from.File(), to.File()) == 2 {
		var rookFrom, rookTo = castlingRookSquares(from, to)
		var rook, ok = next.Board.Remove(rookFrom)
		if !ok || rook != (Piece{Color: mover.Color, Role: Rook}) {
			return fmt.Errorf("%w: %v castles without a rook on %v", ErrIllegalMove, m, rookFrom)
		}
		if err := next.Board.Put(rook, rookTo); err != nil {
			return fmt.Errorf("%w: %v", ErrIllegalMove, err)
		}
	}

	next.CastlingRights &= castleMask[from] & castleMask[to]

	next.EpSquare = SquareNone
	if mover.Role == Pawn && absDelta(from.Rank(), to.Rank()) == 2 {
		next.EpSquare = MakeSquare(from.File(), (from.Rank()+to.Rank())/2)
	}

	if mover.Role == Pawn || isCapture {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if p.SideToMove == Black {
		next.FullmoveNumber++
	}
	next.SideToMove = p.SideToMove.Opposite()

	*p = next
	return nil
}

func castlingRookSquares(kingFrom, kingTo Square) (from, to Square) {
	var rank = kingFrom.Rank()
	if kingTo.File() > kingFrom.File() {
		return MakeSquare(FileH, rank), MakeSquare(FileF, rank)
	}
	return MakeSquare(FileA, rank), MakeSquare(FileD, rank)
}

func init() {
	for i := range castleMask {
		castleMask[i] = AllCastling
	}
	castleMask[SquareA1] &^= WhiteQueenSide
	castleMask[SquareE1] &^= WhiteQueenSide | WhiteKingSide
	castleMask[SquareH1] &^= WhiteKingSide
	castleMask[SquareA8] &^= BlackQueenSide
	castleMask[SquareE8] &^= BlackQueenSide | BlackKingSide
	castleMask[SquareH8] &^= BlackKingSide
}
