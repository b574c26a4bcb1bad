package common

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFEN decodes a FEN record. The halfmove clock and fullmove number may
// be omitted, in which case they default to 0 and 1.
func ParseFEN(fen string) (Position, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) < 4 || len(tokens) > 6 {
		return Position{}, fmt.Errorf("%w: %q has %d fields", ErrInvalidFEN, fen, len(tokens))
	}

	var p = NewPosition()
	if err := parsePlacement(&p.Board, tokens[0]); err != nil {
		return Position{}, fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, err)
	}
	for _, c := range [...]Color{White, Black} {
		if n := p.Board.ByPiece(c, King).Count(); n != 1 {
			return Position{}, fmt.Errorf("%w: %q: %d %v kings", ErrInvalidFEN, fen, n, c)
		}
	}

	switch tokens[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return Position{}, fmt.Errorf("%w: %q: side to move %q", ErrInvalidFEN, fen, tokens[1])
	}

	if tokens[2] != "-" {
		for _, ch := range tokens[2] {
			var right CastlingRights
			switch ch {
			case 'K':
				right = WhiteKingSide
			case 'Q':
				right = WhiteQueenSide
			case 'k':
				right = BlackKingSide
			case 'q':
				right = BlackQueenSide
			default:
				return Position{}, fmt.Errorf("%w: %q: castling %q", ErrInvalidFEN, fen, tokens[2])
			}
			p.CastlingRights |= right
		}
	}

	if tokens[3] != "-" {
		var sq, err = ParseSquare(tokens[3])
		var epRank = Rank6
		if p.SideToMove == Black {
			epRank = Rank3
		}
		if err != nil || sq.Rank() != epRank {
			return Position{}, fmt.Errorf("%w: %q: en passant %q", ErrInvalidFEN, fen, tokens[3])
		}
		p.EpSquare = sq
	}

	if len(tokens) > 4 {
		var n, err = strconv.Atoi(tokens[4])
		if err != nil || n < 0 {
			return Position{}, fmt.Errorf("%w: %q: halfmove clock %q", ErrInvalidFEN, fen, tokens[4])
		}
		p.HalfmoveClock = n
	}
	if len(tokens) > 5 {
		var n, err = strconv.Atoi(tokens[5])
		if err != nil || n < 1 {
			return Position{}, fmt.Errorf("%w: %q: fullmove number %q", ErrInvalidFEN, fen, tokens[5])
		}
		p.FullmoveNumber = n
	}
	return p, nil
}

func parsePlacement(b *Board, placement string) error {
	var rows = strings.Split(placement, "/")
	if len(rows) != 8 {
		return fmt.Errorf("%d ranks", len(rows))
	}
	for i, row := range rows {
		var rank = Rank8 - Rank(i)
		var file = 0
		for j := 0; j < len(row); j++ {
			var ch = row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			var piece, ok = pieceFromChar(ch)
			if !ok {
				return fmt.Errorf("piece %q", ch)
			}
			if file > 7 {
				return fmt.Errorf("rank %v too long", rank)
			}
			if err := b.Put(piece, MakeSquare(File(file), rank)); err != nil {
				return err
			}
			file++
		}
		if file != 8 {
			return fmt.Errorf("rank %v has %d files", rank, file)
		}
	}
	return nil
}

// String encodes the position as FEN.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := Rank8; rank >= Rank1; rank-- {
		var emptyCount = 0
		for file := FileA; file <= FileH; file++ {
			var piece, ok = p.Board.PieceAt(MakeSquare(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Char())
		}
		if emptyCount != 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if rank != Rank1 {
			sb.WriteString("/")
		}
	}

	if p.SideToMove == Black {
		sb.WriteString(" b ")
	} else {
		sb.WriteString(" w ")
	}
	sb.WriteString(p.CastlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(p.EpSquare.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.HalfmoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.FullmoveNumber))
	return sb.String()
}
