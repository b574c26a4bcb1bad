package common

import "fmt"

// Move packs from (6 bits), to (6 bits) and an optional promotion role
// (3 bits, role index + 1) into one integer.
type Move uint16

const MoveEmpty Move = 0

func NewMove(from, to Square) Move {
	return Move(uint16(from) | uint16(to)<<6)
}

func NewPromotion(from, to Square, promotion Role) Move {
	return NewMove(from, to) | Move(promotion.Index()+1)<<12
}

func (m Move) From() Square {
	return Square(m & 63)
}

func (m Move) To() Square {
	return Square((m >> 6) & 63)
}

// Promotion returns NoRole for moves that do not promote.
func (m Move) Promotion() Role {
	var code = int(m>>12) & 7
	if code == 0 {
		return NoRole
	}
	return roleByIndex[code-1]
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var s = m.From().String() + m.To().String()
	if promotion := m.Promotion(); promotion != NoRole {
		s += string(promotion.Char())
	}
	return s
}

// ParseMove parses a move in UCI long algebraic notation: "e2e4", "e7e8q".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return MoveEmpty, fmt.Errorf("%w: malformed move %q", ErrIllegalMove, s)
	}
	var from, err = ParseSquare(s[0:2])
	if err != nil {
		return MoveEmpty, fmt.Errorf("parse move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return MoveEmpty, fmt.Errorf("parse move %q: %w", s, err)
	}
	if from == to {
		return MoveEmpty, fmt.Errorf("%w: null move %q", ErrIllegalMove, s)
	}
	if len(s) == 4 {
		return NewMove(from, to), nil
	}
	var ch = s[4]
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	var promotion, ok = roleFromChar(ch)
	if !ok || promotion == Pawn || promotion == King {
		return MoveEmpty, fmt.Errorf("%w: bad promotion in %q", ErrIllegalMove, s)
	}
	return NewPromotion(from, to, promotion), nil
}
