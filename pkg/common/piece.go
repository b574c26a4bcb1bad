package common

import "fmt"

type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

type Role uint8

const (
	NoRole Role = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const (
	ColorCount = 2
	RoleCount  = 6
	PieceCount = ColorCount * RoleCount
)

// Index tables. Array positions are assigned here and in the Index methods,
// never by the numeric value of the constants.
var (
	colorByIndex = [ColorCount]Color{White, Black}
	roleByIndex  = [RoleCount]Role{Pawn, Knight, Bishop, Rook, Queen, King}
)

const roleChars = "pnbrqk"

func ColorFromIndex(i int) (Color, error) {
	if err := checkRange("color", i, 0, ColorCount-1); err != nil {
		return NoColor, err
	}
	return colorByIndex[i], nil
}

func (c Color) Index() int {
	switch c {
	case White:
		return 0
	case Black:
		return 1
	}
	panic(fmt.Errorf("no index for color %d", c))
}

func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

func RoleFromIndex(i int) (Role, error) {
	if err := checkRange("role", i, 0, RoleCount-1); err != nil {
		return NoRole, err
	}
	return roleByIndex[i], nil
}

func (r Role) Index() int {
	switch r {
	case Pawn:
		return 0
	case Knight:
		return 1
	case Bishop:
		return 2
	case Rook:
		return 3
	case Queen:
		return 4
	case King:
		return 5
	}
	panic(fmt.Errorf("no index for role %d", r))
}

func (r Role) valid() bool {
	return r >= Pawn && r <= King
}

// Char returns the lower-case letter used for the role in FEN and UCI moves.
func (r Role) Char() byte {
	return roleChars[r.Index()]
}

func (r Role) String() string {
	switch r {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

func roleFromChar(ch byte) (Role, bool) {
	for i := 0; i < len(roleChars); i++ {
		if roleChars[i] == ch {
			return roleByIndex[i], true
		}
	}
	return NoRole, false
}

type Piece struct {
	Color Color
	Role  Role
}

var NoPiece = Piece{}

// PieceFromIndex maps i in [0, 12) to a piece: white pawn..king, then black pawn..king.
func PieceFromIndex(i int) (Piece, error) {
	if err := checkRange("piece", i, 0, PieceCount-1); err != nil {
		return NoPiece, err
	}
	return Piece{Color: colorByIndex[i/RoleCount], Role: roleByIndex[i%RoleCount]}, nil
}

func (p Piece) Index() int {
	return p.Color.Index()*RoleCount + p.Role.Index()
}

func (p Piece) valid() bool {
	return (p.Color == White || p.Color == Black) && p.Role.valid()
}

// Char returns the FEN letter: upper case for white, lower case for black.
func (p Piece) Char() byte {
	var ch = p.Role.Char()
	if p.Color == White {
		ch -= 'a' - 'A'
	}
	return ch
}

func (p Piece) String() string {
	if !p.valid() {
		return "none"
	}
	return p.Color.String() + " " + p.Role.String()
}

func pieceFromChar(ch byte) (Piece, bool) {
	var color = Black
	if ch >= 'A' && ch <= 'Z' {
		color = White
		ch += 'a' - 'A'
	}
	var role, ok = roleFromChar(ch)
	if !ok {
		return NoPiece, false
	}
	return Piece{Color: color, Role: role}, true
}
