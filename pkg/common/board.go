package common

import "fmt"

// Board is the piece placement of a position: one bitboard per color and one
// per role. Every occupied square has exactly one color bit and one role bit.
type Board struct {
	colors [ColorCount]Bitboard
	roles  [RoleCount]Bitboard
}

func NewBoard() Board {
	return Board{}
}

func (b *Board) ByColor(c Color) Bitboard {
	return b.colors[c.Index()]
}

func (b *Board) ByRole(r Role) Bitboard {
	return b.roles[r.Index()]
}

func (b *Board) ByPiece(c Color, r Role) Bitboard {
	return b.ByColor(c) & b.ByRole(r)
}

func (b *Board) White() Bitboard {
	return b.colors[White.Index()]
}

func (b *Board) Black() Bitboard {
	return b.colors[Black.Index()]
}

func (b *Board) Occupied() Bitboard {
	return b.White() | b.Black()
}

func (b *Board) PieceAt(sq Square) (Piece, bool) {
	var mask = SquareMask(sq)
	var color Color
	switch {
	case b.White()&mask != 0:
		color = White
	case b.Black()&mask != 0:
		color = Black
	default:
		return NoPiece, false
	}
	for i, bb := range b.roles {
		if bb&mask != 0 {
			return Piece{Color: color, Role: roleByIndex[i]}, true
		}
	}
	panic(fmt.Errorf("no role on occupied square %v", sq))
}

// Put places p on an empty square. It fails with ErrSquareOccupied, leaving
// the board unchanged, if the square already holds a piece.
func (b *Board) Put(p Piece, sq Square) error {
	if !p.valid() {
		return fmt.Errorf("%w: put %v on %v", ErrOutOfRange, p, sq)
	}
	if b.Occupied().Contains(sq) {
		return fmt.Errorf("%w: %v", ErrSquareOccupied, sq)
	}
	b.xorPiece(p, sq)
	return nil
}

// Remove clears sq and returns the piece that stood there.
func (b *Board) Remove(sq Square) (Piece, bool) {
	var p, ok = b.PieceAt(sq)
	if ok {
		b.xorPiece(p, sq)
	}
	return p, ok
}

// Replace puts p on sq, removing and returning any previous occupant.
func (b *Board) Replace(p Piece, sq Square) (Piece, bool) {
	if !p.valid() {
		panic(fmt.Errorf("replace with %v", p))
	}
	var prev, ok = b.Remove(sq)
	b.xorPiece(p, sq)
	return prev, ok
}

func (b *Board) xorPiece(p Piece, sq Square) {
	var mask = SquareMask(sq)
	b.colors[p.Color.Index()] ^= mask
	b.roles[p.Role.Index()] ^= mask
}

// Validate checks the disjointness and coverage invariants.
func (b *Board) Validate() error {
	if b.White()&b.Black() != 0 {
		return fmt.Errorf("colors overlap on %v", b.White()&b.Black())
	}
	var all Bitboard
	for i, bb := range b.roles {
		if all&bb != 0 {
			return fmt.Errorf("%v overlaps another role on %v", roleByIndex[i], all&bb)
		}
		all |= bb
	}
	if all != b.Occupied() {
		return fmt.Errorf("roles %v do not cover colors %v", all, b.Occupied())
	}
	return nil
}
