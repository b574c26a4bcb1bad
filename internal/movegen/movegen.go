// Package movegen supplies the legal move sets that Position.ApplyMove
// checks moves against.
package movegen

import (
	"fmt"

	"github.com/notnil/chess"

	"github.com/oatchess/oat/pkg/common"
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// LegalMoves returns the legal moves of p in UCI order of the rules library.
// An empty slice means checkmate or stalemate.
func (g *Generator) LegalMoves(p *common.Position) ([]common.Move, error) {
	var game, err = newGame(p)
	if err != nil {
		return nil, err
	}
	var validMoves = game.ValidMoves()
	var result = make([]common.Move, 0, len(validMoves))
	for _, vm := range validMoves {
		var move, err = common.ParseMove(vm.String())
		if err != nil {
			return nil, fmt.Errorf("movegen: %v: %w", vm, err)
		}
		result = append(result, move)
	}
	return result, nil
}

func newGame(p *common.Position) (*chess.Game, error) {
	var fen, err = chess.FEN(p.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidFEN, err)
	}
	return chess.NewGame(fen), nil
}

// Perft counts the leaf nodes of the legal move tree of the given depth.
func (g *Generator) Perft(p *common.Position, depth int) (int, error) {
	if depth == 0 {
		return 1, nil
	}
	var moves, err = g.LegalMoves(p)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return len(moves), nil
	}
	var result int
	for _, move := range moves {
		var child = *p
		if err := child.ApplyMove(move, moves); err != nil {
			return 0, err
		}
		n, err := g.Perft(&child, depth-1)
		if err != nil {
			return 0, err
		}
		result += n
	}
	return result, nil
}
