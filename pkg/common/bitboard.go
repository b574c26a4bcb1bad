package common

import (
	"iter"
	"math/bits"
	"strings"
)

// Bitboard is a set of squares: bit i is set iff square i is a member.
type Bitboard uint64

const (
	EmptyBitboard Bitboard = 0
	FullBitboard  Bitboard = ^EmptyBitboard
)

// With the file-major layout a file is one byte and a rank is every eighth bit.
const (
	fileAMask Bitboard = 0xFF
	rank1Mask Bitboard = 0x0101010101010101
)

func SquareMask(sq Square) Bitboard {
	return 1 << uint(sq)
}

func FileMask(f File) Bitboard {
	return fileAMask << (8 * uint(f))
}

func RankMask(r Rank) Bitboard {
	return rank1Mask << uint(r)
}

func (b Bitboard) Union(other Bitboard) Bitboard {
	return b | other
}

func (b Bitboard) Intersect(other Bitboard) Bitboard {
	return b & other
}

func (b Bitboard) Difference(other Bitboard) Bitboard {
	return b &^ other
}

func (b Bitboard) Complement() Bitboard {
	return ^b
}

func (b Bitboard) Contains(sq Square) bool {
	return b&SquareMask(sq) != 0
}

func (b Bitboard) With(sq Square) Bitboard {
	return b | SquareMask(sq)
}

func (b Bitboard) Without(sq Square) Bitboard {
	return b &^ SquareMask(sq)
}

func (b Bitboard) IsEmpty() bool {
	return b == 0
}

func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// First returns the lowest member square.
func (b Bitboard) First() (Square, bool) {
	if b == 0 {
		return SquareNone, false
	}
	return Square(bits.TrailingZeros64(uint64(b))), true
}

// Squares yields the member squares in ascending index order. The sequence
// works on a copy of b, so ranging over it again restarts from the lowest square.
func (b Bitboard) Squares() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for x := b; x != 0; x &= x - 1 {
			if !yield(Square(bits.TrailingZeros64(uint64(x)))) {
				return
			}
		}
	}
}

func (b Bitboard) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for sq := range b.Squares() {
		if sb.Len() > 1 {
			sb.WriteString(",")
		}
		sb.WriteString(sq.String())
	}
	sb.WriteString(")")
	return sb.String()
}
