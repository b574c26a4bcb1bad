package common

import (
	"errors"
	"testing"
)

func TestBoardInvariants(t *testing.T) {
	var b = NewBoard()
	var placed = make(map[Square]Piece)
	for i := 0; i < PieceCount; i++ {
		var p, _ = PieceFromIndex(i)
		var sq = Square((i * 5) % 64)
		if err := b.Put(p, sq); err != nil {
			t.Fatalf("Put(%v, %v): %v", p, sq, err)
		}
		placed[sq] = p
	}

	if err := b.Validate(); err != nil {
		t.Fatal(err)
	}
	if b.Occupied() != b.ByColor(White).Union(b.ByColor(Black)) {
		t.Errorf("occupied %v != white|black", b.Occupied())
	}
	var roles Bitboard
	for i := 0; i < RoleCount; i++ {
		var r, _ = RoleFromIndex(i)
		roles = roles.Union(b.ByRole(r))
	}
	if roles != b.Occupied() {
		t.Errorf("roles %v != occupied %v", roles, b.Occupied())
	}

	for sq := range b.Occupied().Squares() {
		var owners = 0
		for i := 0; i < PieceCount; i++ {
			var p, _ = PieceFromIndex(i)
			if b.ByPiece(p.Color, p.Role).Contains(sq) {
				owners++
				if placed[sq] != p {
					t.Errorf("%v holds %v, want %v", sq, p, placed[sq])
				}
			}
		}
		if owners != 1 {
			t.Errorf("%v is in %d piece sets", sq, owners)
		}
		if p, ok := b.PieceAt(sq); !ok || p != placed[sq] {
			t.Errorf("PieceAt(%v) = %v, %v", sq, p, ok)
		}
	}
	if b.Occupied().Count() != len(placed) {
		t.Errorf("occupied count %d", b.Occupied().Count())
	}
}

func TestBoardPutOccupied(t *testing.T) {
	var b = NewBoard()
	var wk = Piece{White, King}
	var bq = Piece{Black, Queen}
	if err := b.Put(wk, SquareE1); err != nil {
		t.Fatal(err)
	}
	var before = b
	if err := b.Put(bq, SquareE1); !errors.Is(err, ErrSquareOccupied) {
		t.Errorf("Put on occupied square err = %v", err)
	}
	if b != before {
		t.Errorf("failed Put changed the board")
	}
	if err := b.Put(NoPiece, SquareE2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Put(NoPiece) err = %v", err)
	}

	var prev, ok = b.Replace(bq, SquareE1)
	if !ok || prev != wk {
		t.Errorf("Replace returned %v, %v", prev, ok)
	}
	if p, _ := b.PieceAt(SquareE1); p != bq {
		t.Errorf("e1 holds %v", p)
	}
	if err := b.Validate(); err != nil {
		t.Error(err)
	}

	if p, ok := b.Remove(SquareE1); !ok || p != bq {
		t.Errorf("Remove returned %v, %v", p, ok)
	}
	if !b.Occupied().IsEmpty() {
		t.Errorf("board not empty: %v", b.Occupied())
	}
	if _, ok := b.Remove(SquareE1); ok {
		t.Errorf("Remove on empty square")
	}
}
