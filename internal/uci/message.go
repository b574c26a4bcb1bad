package uci

import "time"

// Message is one parsed inbound command. The set of implementations is
// closed: Uci, Debug, IsReady, SetOption, UciNewGame, Position, Go, Stop,
// PonderHit, Quit and Unknown.
type Message interface {
	isMessage()
}

type Uci struct{}

type Debug struct {
	On bool
}

type IsReady struct{}

type SetOption struct {
	Name  string
	Value *string // nil when the command had no value clause
}

type UciNewGame struct{}

// Position replaces the game state: FEN is the base position (the standard
// start position for startpos) and Moves are applied to it in order.
type Position struct {
	FEN   string
	Moves []string
}

type Go struct {
	TimeControl TimeControl // nil when the command set no time control
	SearchMoves []string
	Mate        *int
	Depth       *int
	Nodes       *int
}

type Stop struct{}

type PonderHit struct{}

type Quit struct{}

// Unknown is any line whose first token names no command.
type Unknown struct {
	Line string
}

func (Uci) isMessage()        {}
func (Debug) isMessage()      {}
func (IsReady) isMessage()    {}
func (SetOption) isMessage()  {}
func (UciNewGame) isMessage() {}
func (Position) isMessage()   {}
func (Go) isMessage()         {}
func (Stop) isMessage()       {}
func (PonderHit) isMessage()  {}
func (Quit) isMessage()       {}
func (Unknown) isMessage()    {}

// TimeControl is how a search is limited in time. Implementations are
// Ponder, Explicit, MoveTime and Infinite.
type TimeControl interface {
	isTimeControl()
}

// Ponder searches on the opponent's time. Clock and MoveTime hold any limits
// sent alongside ponder; they take effect on ponderhit.
type Ponder struct {
	Clock    *Explicit
	MoveTime *time.Duration
}

// Explicit carries the clock state. Fields not sent are nil.
type Explicit struct {
	WhiteTime      *time.Duration
	BlackTime      *time.Duration
	WhiteIncrement *time.Duration
	BlackIncrement *time.Duration
	MovesToGo      *int
}

type MoveTime struct {
	Duration time.Duration
}

type Infinite struct{}

func (Ponder) isTimeControl()   {}
func (Explicit) isTimeControl() {}
func (MoveTime) isTimeControl() {}
func (Infinite) isTimeControl() {}
