package common

import "fmt"

type File int8

type Rank int8

// Square is a board square numbered file-major: square = file*8 + rank,
// so a1=0, a2=1, ..., a8=7, b1=8, ..., h8=63.
type Square int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const SquareNone Square = -1

const (
	SquareA1 Square = iota
	SquareA2
	SquareA3
	SquareA4
	SquareA5
	SquareA6
	SquareA7
	SquareA8
	SquareB1
	SquareB2
	SquareB3
	SquareB4
	SquareB5
	SquareB6
	SquareB7
	SquareB8
	SquareC1
	SquareC2
	SquareC3
	SquareC4
	SquareC5
	SquareC6
	SquareC7
	SquareC8
	SquareD1
	SquareD2
	SquareD3
	SquareD4
	SquareD5
	SquareD6
	SquareD7
	SquareD8
	SquareE1
	SquareE2
	SquareE3
	SquareE4
	SquareE5
	SquareE6
	SquareE7
	SquareE8
	SquareF1
	SquareF2
	SquareF3
	SquareF4
	SquareF5
	SquareF6
	SquareF7
	SquareF8
	SquareG1
	SquareG2
	SquareG3
	SquareG4
	SquareG5
	SquareG6
	SquareG7
	SquareG8
	SquareH1
	SquareH2
	SquareH3
	SquareH4
	SquareH5
	SquareH6
	SquareH7
	SquareH8
)

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func FileFromIndex(i int) (File, error) {
	if err := checkRange("file", i, 0, 7); err != nil {
		return 0, err
	}
	return File(i), nil
}

func RankFromIndex(i int) (Rank, error) {
	if err := checkRange("rank", i, 0, 7); err != nil {
		return 0, err
	}
	return Rank(i), nil
}

// SquareFromParts returns the square on the given file and rank, both in [0, 7].
func SquareFromParts(file, rank int) (Square, error) {
	var f, err = FileFromIndex(file)
	if err != nil {
		return SquareNone, err
	}
	r, err := RankFromIndex(rank)
	if err != nil {
		return SquareNone, err
	}
	return MakeSquare(f, r), nil
}

// SquareFromIndex returns the square with index i in [0, 63].
func SquareFromIndex(i int) (Square, error) {
	if err := checkRange("square", i, 0, 63); err != nil {
		return SquareNone, err
	}
	return Square(i), nil
}

func MakeSquare(f File, r Rank) Square {
	return Square(int(f)<<3 | int(r))
}

func (sq Square) File() File {
	return File(sq >> 3)
}

func (sq Square) Rank() Rank {
	return Rank(sq & 7)
}

func (sq Square) Index() int {
	return int(sq)
}

func (sq Square) String() string {
	if sq == SquareNone {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

func (f File) String() string {
	return fileNames[f : f+1]
}

func (r Rank) String() string {
	return rankNames[r : r+1]
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 ||
		s[0] < fileNames[0] || s[0] > fileNames[7] ||
		s[1] < rankNames[0] || s[1] > rankNames[7] {
		return SquareNone, fmt.Errorf("%w: square %q", ErrOutOfRange, s)
	}
	return MakeSquare(File(s[0]-fileNames[0]), Rank(s[1]-rankNames[0])), nil
}

func SquareDistance(sq1, sq2 Square) int {
	return max(
		int(absDelta(sq1.File(), sq2.File())),
		int(absDelta(sq1.Rank(), sq2.Rank())))
}
