package search

import (
	"github.com/dylhunn/dragontoothmg"

	"github.com/oatchess/oat/pkg/common"
)

const (
	stackSize     = 128
	maxHeight     = stackSize - 1
	valueDraw     = 0
	valueMate     = 30000
	valueInfinity = valueMate + 1
	valueWin      = valueMate - 2*maxHeight
	valueLoss     = -valueWin
)

func winIn(height int) int {
	return valueMate - height
}

func lossIn(height int) int {
	return -valueMate + height
}

func newUciScore(v int) common.UciScore {
	if v >= valueWin {
		return common.UciScore{Mate: (valueMate - v + 1) / 2}
	} else if v <= valueLoss {
		return common.UciScore{Mate: (-valueMate - v) / 2}
	} else {
		return common.UciScore{Centipawns: v}
	}
}

func convertMove(m dragontoothmg.Move) common.Move {
	var move, err = common.ParseMove(m.String())
	if err != nil {
		panic(err)
	}
	return move
}

func convertMoves(ml []dragontoothmg.Move) []common.Move {
	var result = make([]common.Move, len(ml))
	for i := range ml {
		result[i] = convertMove(ml[i])
	}
	return result
}

func findMoveIndex(ml []dragontoothmg.Move, move dragontoothmg.Move) int {
	for i := range ml {
		if ml[i] == move {
			return i
		}
	}
	return -1
}

func moveToBegin(ml []dragontoothmg.Move, index int) {
	if index == 0 {
		return
	}
	var item = ml[index]
	for i := index; i > 0; i-- {
		ml[i] = ml[i-1]
	}
	ml[0] = item
}
