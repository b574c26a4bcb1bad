package search

import (
	"context"
	"sync"
	"time"

	"github.com/oatchess/oat/pkg/common"
)

type timeManager struct {
	limits    common.LimitsType
	softLimit time.Duration
	hardLimit time.Duration
	ctx       context.Context
	cancel    context.CancelFunc

	mu        sync.Mutex
	start     time.Time
	pondering bool
	timer     *time.Timer
}

// newTimeManager derives the search context. A ponder search has no time
// limit until ponderHit is closed; its clock starts then.
func newTimeManager(ctx context.Context, start time.Time, limits common.LimitsType,
	side common.Color, moveOverhead time.Duration, ponderHit <-chan struct{}) *timeManager {

	var tm = &timeManager{
		start:  start,
		limits: limits,
	}

	if limits.MoveTime > 0 {
		tm.hardLimit = limits.MoveTime
	} else if limits.WhiteTime > 0 || limits.BlackTime > 0 {
		var main, inc time.Duration
		if side == common.White {
			main, inc = limits.WhiteTime, limits.WhiteIncrement
		} else {
			main, inc = limits.BlackTime, limits.BlackIncrement
		}
		tm.softLimit, tm.hardLimit = calcLimits(main, inc, limits.MovesToGo, moveOverhead)
	}

	if limits.Ponder {
		tm.ctx, tm.cancel = context.WithCancel(ctx)
		tm.pondering = true
		go tm.waitPonderHit(ponderHit)
	} else if tm.hardLimit != 0 {
		tm.ctx, tm.cancel = context.WithDeadline(ctx, start.Add(tm.hardLimit))
	} else {
		tm.ctx, tm.cancel = context.WithCancel(ctx)
	}
	return tm
}

func (tm *timeManager) waitPonderHit(ponderHit <-chan struct{}) {
	select {
	case <-ponderHit:
	case <-tm.ctx.Done():
		return
	}
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if tm.ctx.Err() != nil {
		return
	}
	tm.pondering = false
	tm.start = time.Now()
	if tm.hardLimit != 0 {
		tm.timer = time.AfterFunc(tm.hardLimit, tm.cancel)
	}
}

func (tm *timeManager) IsDone() bool {
	return tm.ctx.Err() != nil
}

func (tm *timeManager) OnNodesChanged(nodes int64) {
	if tm.limits.Nodes > 0 && nodes >= int64(tm.limits.Nodes) {
		tm.cancel()
	}
}

func (tm *timeManager) OnIterationComplete(line mainLine) {
	if tm.limits.Depth != 0 && line.depth >= tm.limits.Depth {
		tm.cancel()
		return
	}
	if tm.limits.Mate != 0 && line.score >= winIn(2*tm.limits.Mate) {
		tm.cancel()
		return
	}
	if tm.limits.Infinite {
		return
	}
	if line.score >= winIn(line.depth-5) ||
		line.score <= lossIn(line.depth-5) {
		tm.cancel()
		return
	}
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if !tm.pondering && tm.softLimit != 0 &&
		time.Since(tm.start) >= tm.softLimit {
		tm.cancel()
	}
}

func (tm *timeManager) Close() {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if tm.timer != nil {
		tm.timer.Stop()
	}
	tm.cancel()
}

func calcLimits(main, inc time.Duration, moves int, moveOverhead time.Duration) (soft, hard time.Duration) {
	const (
		DefaultMovesToGo = 40
		MinTimeLimit     = 1 * time.Millisecond
	)

	main -= moveOverhead
	if main < MinTimeLimit {
		main = MinTimeLimit
	}

	if moves == 0 {
		var ideal = main/35 + inc/2
		soft = ideal * 7 / 10
		hard = ideal * 21 / 10
	} else {
		moves = min(moves, DefaultMovesToGo)
		soft = (main/time.Duration(moves+1) + inc) * 7 / 10
		hard = (main/time.Duration(moves+1) + inc) * 21 / 10
	}

	hard = limitDuration(hard, MinTimeLimit, main)
	soft = limitDuration(soft, MinTimeLimit, main)

	return
}

func limitDuration(v, min, max time.Duration) time.Duration {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
