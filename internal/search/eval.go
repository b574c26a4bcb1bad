package search

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// Piece values indexed by dragontoothmg piece type.
var pieceValues = [7]int{
	dragontoothmg.Pawn:   100,
	dragontoothmg.Knight: 320,
	dragontoothmg.Bishop: 330,
	dragontoothmg.Rook:   500,
	dragontoothmg.Queen:  900,
	dragontoothmg.King:   0,
}

var centerBonus [64]int

func init() {
	for sq := range centerBonus {
		var file, rank = sq & 7, sq >> 3
		var df = max(3-file, file-4)
		var dr = max(3-rank, rank-4)
		centerBonus[sq] = 3 * (3 - max(df, dr))
	}
}

// evaluate scores the board from the side to move's point of view.
func evaluate(b *dragontoothmg.Board) int {
	var score = evaluateSide(&b.White, true) - evaluateSide(&b.Black, false)
	if !b.Wtomove {
		score = -score
	}
	return score
}

func evaluateSide(bb *dragontoothmg.Bitboards, white bool) int {
	var score = bits.OnesCount64(bb.Pawns)*pieceValues[dragontoothmg.Pawn] +
		bits.OnesCount64(bb.Knights)*pieceValues[dragontoothmg.Knight] +
		bits.OnesCount64(bb.Bishops)*pieceValues[dragontoothmg.Bishop] +
		bits.OnesCount64(bb.Rooks)*pieceValues[dragontoothmg.Rook] +
		bits.OnesCount64(bb.Queens)*pieceValues[dragontoothmg.Queen]
	if bits.OnesCount64(bb.Bishops) >= 2 {
		score += 30
	}
	for x := bb.Knights | bb.Bishops; x != 0; x &= x - 1 {
		score += 2 * centerBonus[bits.TrailingZeros64(x)]
	}
	for x := bb.Pawns; x != 0; x &= x - 1 {
		var sq = bits.TrailingZeros64(x)
		var rank = sq >> 3
		if !white {
			rank = 7 - rank
		}
		score += (rank - 1) * 4
		score += centerBonus[sq]
	}
	return score
}

// pieceOn returns the piece type on sq, or dragontoothmg.Nothing.
func pieceOn(bb *dragontoothmg.Bitboards, sq uint8) int {
	var mask = uint64(1) << sq
	switch {
	case bb.All&mask == 0:
		return int(dragontoothmg.Nothing)
	case bb.Pawns&mask != 0:
		return int(dragontoothmg.Pawn)
	case bb.Knights&mask != 0:
		return int(dragontoothmg.Knight)
	case bb.Bishops&mask != 0:
		return int(dragontoothmg.Bishop)
	case bb.Rooks&mask != 0:
		return int(dragontoothmg.Rook)
	case bb.Queens&mask != 0:
		return int(dragontoothmg.Queen)
	default:
		return int(dragontoothmg.King)
	}
}
