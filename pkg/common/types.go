package common

import "time"

// LimitsType carries the constraints of one search. Zero values mean "not set".
type LimitsType struct {
	Ponder         bool
	Infinite       bool
	WhiteTime      time.Duration
	BlackTime      time.Duration
	WhiteIncrement time.Duration
	BlackIncrement time.Duration
	MoveTime       time.Duration
	MovesToGo      int
	Depth          int
	Nodes          int
	Mate           int
	SearchMoves    []Move
}

type SearchParams struct {
	Position     Position
	Limits       LimitsType
	MoveOverhead time.Duration
	// PonderHit is closed when the opponent plays the expected move.
	PonderHit <-chan struct{}
	Progress  func(si SearchInfo)
}

type SearchInfo struct {
	Score    UciScore
	Depth    int
	Nodes    int64
	Time     time.Duration
	MainLine []Move
}

type UciScore struct {
	Centipawns int
	Mate       int
}
