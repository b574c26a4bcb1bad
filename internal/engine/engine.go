package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/oatchess/oat/pkg/common"
)

var ErrSearchInProgress = errors.New("search in progress")

// Rules supplies the legal moves of a position.
type Rules interface {
	LegalMoves(p *common.Position) ([]common.Move, error)
}

type Searcher interface {
	Prepare()
	Clear()
	Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo
}

type Options struct {
	// Ponder mirrors the UCI Ponder option. It is informational only:
	// go ponder is honoured whether or not the GUI enabled it.
	Ponder       bool
	MoveOverhead time.Duration
}

func NewOptions() Options {
	return Options{
		Ponder:       false,
		MoveOverhead: 50 * time.Millisecond,
	}
}

// Engine owns the current position and runs at most one search at a time.
// The position cannot change while a search runs.
type Engine struct {
	Options   Options
	rules     Rules
	searcher  Searcher
	mu        sync.Mutex
	position  common.Position
	searching bool
	group     *errgroup.Group
	cancel    context.CancelFunc
	ponderHit chan struct{}
	pondering bool
}

func NewEngine(rules Rules, searcher Searcher) *Engine {
	return &Engine{
		Options:  NewOptions(),
		rules:    rules,
		searcher: searcher,
		position: common.InitialPosition(),
	}
}

func (e *Engine) Prepare() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.searching {
		e.searcher.Prepare()
	}
}

// Reset starts a new game from the initial position.
func (e *Engine) Reset() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.searching {
		return ErrSearchInProgress
	}
	e.position = common.InitialPosition()
	e.searcher.Clear()
	return nil
}

// LoadPosition replaces the position with fen followed by moves. On error
// the previous position is kept.
func (e *Engine) LoadPosition(fen string, moves []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.searching {
		return ErrSearchInProgress
	}
	var p, err = common.ParseFEN(fen)
	if err != nil {
		return err
	}
	for _, smove := range moves {
		if err := e.applyMove(&p, smove); err != nil {
			return err
		}
	}
	e.position = p
	return nil
}

func (e *Engine) ApplyMove(smove string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.searching {
		return ErrSearchInProgress
	}
	return e.applyMove(&e.position, smove)
}

func (e *Engine) applyMove(p *common.Position, smove string) error {
	var move, err = common.ParseMove(smove)
	if err != nil {
		return err
	}
	legal, err := e.rules.LegalMoves(p)
	if err != nil {
		return err
	}
	if err := p.ApplyMove(move, legal); err != nil {
		return fmt.Errorf("%w in %v", err, p)
	}
	return nil
}

// Position returns a copy of the current position.
func (e *Engine) Position() common.Position {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.position
}

func (e *Engine) Searching() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.searching
}

// BeginSearch starts searching the current position on a worker goroutine.
// The returned channel carries progress reports, then the result, and is
// closed when the worker is done. Infinite and ponder searches keep their
// result until RequestStop, or until PonderHit for a ponder search.
func (e *Engine) BeginSearch(limits common.LimitsType) (<-chan common.SearchInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.searching {
		return nil, ErrSearchInProgress
	}

	if len(limits.SearchMoves) != 0 {
		var legal, err = e.rules.LegalMoves(&e.position)
		if err != nil {
			return nil, err
		}
		limits.SearchMoves = slices.DeleteFunc(slices.Clone(limits.SearchMoves), func(m common.Move) bool {
			return !slices.Contains(legal, m)
		})
	}

	var ctx, cancel = context.WithCancel(context.Background())
	var g, gctx = errgroup.WithContext(ctx)
	var output = make(chan common.SearchInfo, 3)
	var ponderHit = make(chan struct{})

	var searchParams = common.SearchParams{
		Position:     e.position,
		Limits:       limits,
		MoveOverhead: e.Options.MoveOverhead,
		PonderHit:    ponderHit,
		Progress: func(si common.SearchInfo) {
			select {
			case output <- si:
			default:
			}
		},
	}

	e.searching = true
	e.group = g
	e.cancel = cancel
	e.ponderHit = ponderHit
	e.pondering = limits.Ponder

	g.Go(func() (err error) {
		defer close(output)
		defer e.searchDone()
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("search panic: %v", r)
			}
		}()
		var searchResult = e.searcher.Search(gctx, searchParams)
		if limits.Infinite {
			<-gctx.Done()
		} else if limits.Ponder {
			select {
			case <-ponderHit:
			case <-gctx.Done():
			}
		}
		output <- searchResult
		return nil
	})
	return output, nil
}

func (e *Engine) searchDone() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.searching = false
	e.cancel()
}

// RequestStop asks the running search to finish and report its best move.
func (e *Engine) RequestStop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		e.cancel()
	}
}

// PonderHit turns a ponder search into a normal timed search.
func (e *Engine) PonderHit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.searching && e.pondering {
		e.pondering = false
		close(e.ponderHit)
	}
}

// Wait blocks until the worker of the last search has exited and returns
// its error.
func (e *Engine) Wait() error {
	e.mu.Lock()
	var g = e.group
	e.mu.Unlock()
	if g == nil {
		return nil
	}
	return g.Wait()
}
