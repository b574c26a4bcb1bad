// Package search is the default search collaborator: iterative deepening
// alpha-beta with a capture quiescence search over dragontoothmg boards.
package search

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"github.com/oatchess/oat/pkg/common"
)

var errSearchTimeout = errors.New("search timeout")

// nodes between two checks of the time manager
const pollInterval = 1024

type Searcher struct {
	history     *[2][64][64]int32
	timeManager *timeManager
	progress    func(common.SearchInfo)
	mainLine    mainLine
	start       time.Time
	nodes       int64
	stack       [stackSize]struct {
		pv pv
	}
}

type mainLine struct {
	moves []common.Move
	score int
	depth int
}

type pv struct {
	items [stackSize]dragontoothmg.Move
	size  int
}

type orderedMove struct {
	move dragontoothmg.Move
	key  int
}

func New() *Searcher {
	return &Searcher{}
}

func (s *Searcher) Prepare() {
	if s.history == nil {
		s.history = &[2][64][64]int32{}
	}
}

func (s *Searcher) Clear() {
	if s.history != nil {
		*s.history = [2][64][64]int32{}
	}
}

func (s *Searcher) Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo {
	s.start = time.Now()
	s.Prepare()
	var p = &searchParams.Position
	s.timeManager = newTimeManager(ctx, s.start, searchParams.Limits, p.SideToMove,
		searchParams.MoveOverhead, searchParams.PonderHit)
	defer s.timeManager.Close()
	s.progress = searchParams.Progress
	s.nodes = 0
	s.mainLine = mainLine{}

	var b = dragontoothmg.ParseFen(p.String())
	var ml = genRootMoves(&b, searchParams.Limits.SearchMoves)
	if len(ml) != 0 {
		s.mainLine = mainLine{
			moves: []common.Move{convertMove(ml[0])},
		}
	}
	if len(ml) > 1 {
		s.iterativeDeepening(&b, ml, searchParams.Limits.Depth)
	}
	return s.currentSearchResult()
}

func genRootMoves(b *dragontoothmg.Board, searchMoves []common.Move) []dragontoothmg.Move {
	var ml = b.GenerateLegalMoves()
	if len(searchMoves) == 0 {
		return ml
	}
	return slices.DeleteFunc(ml, func(m dragontoothmg.Move) bool {
		return !slices.Contains(searchMoves, convertMove(m))
	})
}

func (s *Searcher) currentSearchResult() common.SearchInfo {
	return common.SearchInfo{
		Depth:    s.mainLine.depth,
		MainLine: s.mainLine.moves,
		Score:    newUciScore(s.mainLine.score),
		Nodes:    s.nodes,
		Time:     time.Since(s.start),
	}
}

func (s *Searcher) iterativeDeepening(b *dragontoothmg.Board, ml []dragontoothmg.Move, maxDepth int) {
	if maxDepth <= 0 || maxDepth > maxHeight {
		maxDepth = maxHeight
	}
	for depth := 1; depth <= maxDepth; depth++ {
		var score, ok = s.searchDepth(b, ml, depth)
		if !ok {
			return
		}
		const height = 0
		var line = s.stack[height].pv.items[:s.stack[height].pv.size]
		moveToBegin(ml, findMoveIndex(ml, line[0]))
		s.mainLine = mainLine{
			depth: depth,
			score: score,
			moves: convertMoves(line),
		}
		if s.progress != nil {
			s.progress(s.currentSearchResult())
		}
		s.timeManager.OnIterationComplete(s.mainLine)
		if s.timeManager.IsDone() {
			return
		}
	}
}

// searchDepth runs one iteration. It reports false if the time manager
// stopped the search before the iteration completed.
func (s *Searcher) searchDepth(b *dragontoothmg.Board, ml []dragontoothmg.Move, depth int) (score int, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if r == errSearchTimeout {
				ok = false
				return
			}
			panic(r)
		}
	}()
	return s.searchRoot(b, ml, depth), true
}

func (s *Searcher) searchRoot(b *dragontoothmg.Board, ml []dragontoothmg.Move, depth int) int {
	const height = 0
	s.clearPV(height)
	var alpha, beta = -valueInfinity, valueInfinity
	for _, move := range ml {
		s.incNodes()
		var unapply = b.Apply(move)
		var score = -s.alphaBeta(b, -beta, -alpha, depth-1, height+1)
		unapply()
		if score > alpha {
			alpha = score
			s.assignPV(height, move)
		}
	}
	return alpha
}

func (s *Searcher) alphaBeta(b *dragontoothmg.Board, alpha, beta, depth, height int) int {
	s.clearPV(height)
	if height >= maxHeight {
		return evaluate(b)
	}
	if b.Halfmoveclock >= 100 {
		return valueDraw
	}
	// mate distance pruning
	if winIn(height+1) <= alpha {
		return alpha
	}
	if lossIn(height) >= beta {
		return beta
	}

	var isCheck = b.OurKingInCheck()
	if isCheck {
		depth++
	}
	if depth <= 0 {
		return s.quiescence(b, alpha, beta, height)
	}

	var ml = s.orderMoves(b, b.GenerateLegalMoves(), false)
	if len(ml) == 0 {
		if isCheck {
			return lossIn(height)
		}
		return valueDraw
	}

	var best = -valueInfinity
	for i := range ml {
		var move = ml[i].move
		s.incNodes()
		var unapply = b.Apply(move)
		var score = -s.alphaBeta(b, -beta, -alpha, depth-1, height+1)
		unapply()
		best = max(best, score)
		if score > alpha {
			alpha = score
			s.assignPV(height, move)
			if alpha >= beta {
				if !isCaptureOrPromotion(b, move) {
					s.updateHistory(b.Wtomove, move, depth)
				}
				break
			}
		}
	}
	return best
}

func (s *Searcher) quiescence(b *dragontoothmg.Board, alpha, beta, height int) int {
	s.clearPV(height)
	if height >= maxHeight {
		return evaluate(b)
	}
	var best = evaluate(b)
	if best > alpha {
		alpha = best
		if alpha >= beta {
			return alpha
		}
	}
	var ml = s.orderMoves(b, b.GenerateLegalMoves(), true)
	for i := range ml {
		var move = ml[i].move
		s.incNodes()
		var unapply = b.Apply(move)
		var score = -s.quiescence(b, -beta, -alpha, height+1)
		unapply()
		best = max(best, score)
		if score > alpha {
			alpha = score
			s.assignPV(height, move)
			if alpha >= beta {
				break
			}
		}
	}
	return best
}

// orderMoves sorts captures by most valuable victim, least valuable
// attacker, then quiet moves by history. With capturesOnly set quiet moves
// are dropped.
func (s *Searcher) orderMoves(b *dragontoothmg.Board, moves []dragontoothmg.Move, capturesOnly bool) []orderedMove {
	var us, them = &b.White, &b.Black
	if !b.Wtomove {
		us, them = them, us
	}
	var side = sideIndex(b.Wtomove)
	var result = make([]orderedMove, 0, len(moves))
	for i := range moves {
		var move = moves[i]
		var key int
		var victim = pieceOn(them, move.To())
		var promotion = move.Promote()
		if victim != int(dragontoothmg.Nothing) || promotion != dragontoothmg.Nothing {
			key = 1<<20 + pieceValues[victim]*16 - pieceOn(us, move.From())
			if promotion != dragontoothmg.Nothing {
				key += pieceValues[promotion]
			}
		} else if capturesOnly {
			continue
		} else {
			key = int(s.history[side][move.From()][move.To()])
		}
		result = append(result, orderedMove{move: move, key: key})
	}
	slices.SortStableFunc(result, func(x, y orderedMove) int {
		return y.key - x.key
	})
	return result
}

func isCaptureOrPromotion(b *dragontoothmg.Board, move dragontoothmg.Move) bool {
	var them = &b.Black
	if !b.Wtomove {
		them = &b.White
	}
	return them.All&(uint64(1)<<move.To()) != 0 || move.Promote() != dragontoothmg.Nothing
}

func (s *Searcher) updateHistory(white bool, move dragontoothmg.Move, depth int) {
	var v = &s.history[sideIndex(white)][move.From()][move.To()]
	*v += int32(depth * depth)
	if *v > 1<<20 {
		for i := range s.history {
			for j := range s.history[i] {
				for k := range s.history[i][j] {
					s.history[i][j][k] /= 2
				}
			}
		}
	}
}

func sideIndex(white bool) int {
	if white {
		return 0
	}
	return 1
}

func (s *Searcher) incNodes() {
	s.nodes++
	if s.nodes%pollInterval == 0 {
		s.timeManager.OnNodesChanged(s.nodes)
		if s.timeManager.IsDone() {
			panic(errSearchTimeout)
		}
	}
}

func (s *Searcher) clearPV(height int) {
	s.stack[height].pv.size = 0
}

func (s *Searcher) assignPV(height int, m dragontoothmg.Move) {
	var pv = &s.stack[height].pv
	var child = &s.stack[height+1].pv
	pv.items[0] = m
	pv.size = 1
	if child.size > 0 {
		copy(pv.items[1:], child.items[:child.size])
		pv.size += child.size
	}
}
