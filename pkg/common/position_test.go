package common

import (
	"errors"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	var fens = []string{
		InitialPositionFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
	}
	for _, fen := range fens {
		var p, err = ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		if err := p.Board.Validate(); err != nil {
			t.Errorf("%v: %v", fen, err)
		}
		if p.String() != fen {
			t.Errorf("round trip %q -> %q", fen, p.String())
		}
	}
}

func TestInitialPosition(t *testing.T) {
	var p = InitialPosition()
	if p.SideToMove != White || p.CastlingRights != AllCastling ||
		p.HalfmoveClock != 0 || p.FullmoveNumber != 1 {
		t.Errorf("bad initial state %+v", p)
	}
	if _, ok := p.EnPassant(); ok {
		t.Errorf("initial position has en passant square")
	}
	if p.Board.Occupied().Count() != 32 || p.Board.ByPiece(White, Pawn).Count() != 8 {
		t.Errorf("bad initial board %v", p.Board.Occupied())
	}
	if !p.Board.ByPiece(Black, King).Contains(SquareE8) {
		t.Errorf("black king not on e8")
	}
}

func TestParseFENShort(t *testing.T) {
	var p, err = ParseFEN("8/8/8/8/8/8/8/K6k b - -")
	if err != nil {
		t.Fatal(err)
	}
	if p.HalfmoveClock != 0 || p.FullmoveNumber != 1 || p.SideToMove != Black {
		t.Errorf("bad defaults %+v", p)
	}
}

func TestParseFENInvalid(t *testing.T) {
	var fens = []string{
		"",
		"8/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 extra",
		"8/8/8/8/8/8/8/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/3KK3 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e3 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e6 0 2",
	}
	for _, fen := range fens {
		if _, err := ParseFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q) err = %v", fen, err)
		}
	}
}

func TestApplyMove(t *testing.T) {
	var tests = []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{
			name:  "double push sets en passant",
			fen:   InitialPositionFen,
			moves: []string{"e2e4"},
			want:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:  "black move increments fullmove",
			fen:   InitialPositionFen,
			moves: []string{"e2e4", "e7e5"},
			want:  "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		},
		{
			name:  "quiet move increments halfmove clock",
			fen:   InitialPositionFen,
			moves: []string{"e2e4", "e7e5", "g1f3"},
			want:  "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		},
		{
			name:  "king side castling",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"e1g1"},
			want:  "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name:  "queen side castling",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 3 9",
			moves: []string{"e8c8"},
			want:  "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 4 10",
		},
		{
			name:  "rook captured on home square",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 5 1",
			moves: []string{"a1a8"},
			want:  "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:  "rook leaves home square",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"h1h4"},
			want:  "r3k2r/8/8/8/7R/8/8/R3K3 b Qkq - 1 1",
		},
		{
			name:  "en passant capture",
			fen:   "rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
			moves: []string{"e5d6"},
			want:  "rnbqkbnr/1pp1pppp/p2P4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:  "promotion",
			fen:   "8/4P3/8/8/8/8/k7/4K3 w - - 7 40",
			moves: []string{"e7e8q"},
			want:  "4Q3/8/8/8/8/8/k7/4K3 b - - 0 40",
		},
		{
			name:  "capture promotion",
			fen:   "3r4/4P3/8/8/8/8/k7/4K3 w - - 0 1",
			moves: []string{"e7d8n"},
			want:  "3N4/8/8/8/8/8/k7/4K3 b - - 0 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p, err = ParseFEN(tt.fen)
			if err != nil {
				t.Fatal(err)
			}
			for _, s := range tt.moves {
				var m, err = ParseMove(s)
				if err != nil {
					t.Fatal(err)
				}
				if err := p.ApplyMove(m, []Move{m}); err != nil {
					t.Fatalf("ApplyMove(%v): %v", m, err)
				}
			}
			if err := p.Board.Validate(); err != nil {
				t.Error(err)
			}
			if p.String() != tt.want {
				t.Errorf("got  %v\nwant %v", p.String(), tt.want)
			}
		})
	}
}

func TestApplyMoveIllegal(t *testing.T) {
	var tests = []struct {
		name  string
		fen   string
		move  string
		legal bool
	}{
		{"not in legal set", InitialPositionFen, "e2e5", false},
		{"empty from square", InitialPositionFen, "e3e4", true},
		{"opponent piece", InitialPositionFen, "e7e5", true},
		{"own piece on target", InitialPositionFen, "d1d2", true},
		{"castling without rook", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "e1g1", true},
		{"knight promotes", "8/4N3/8/8/8/8/k7/4K3 w - - 0 1", "e7e8q", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p, err = ParseFEN(tt.fen)
			if err != nil {
				t.Fatal(err)
			}
			var before = p
			var m, _ = ParseMove(tt.move)
			var legal []Move
			if tt.legal {
				legal = []Move{m}
			}
			if err := p.ApplyMove(m, legal); !errors.Is(err, ErrIllegalMove) {
				t.Errorf("err = %v, want ErrIllegalMove", err)
			}
			if p != before {
				t.Errorf("failed move changed the position to %v", p.String())
			}
		})
	}
}
