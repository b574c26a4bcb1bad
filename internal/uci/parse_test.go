package uci

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/oatchess/oat/pkg/common"
)

func intPtr(n int) *int { return &n }

func msPtr(ms int) *time.Duration {
	var d = time.Duration(ms) * time.Millisecond
	return &d
}

func strPtr(s string) *string { return &s }

func TestParse(t *testing.T) {
	var tests = []struct {
		line string
		want Message
	}{
		{"uci", Uci{}},
		{"isready", IsReady{}},
		{"quit", Quit{}},
		{"stop", Stop{}},
		{"ponderhit", PonderHit{}},
		{"ucinewgame", UciNewGame{}},
		{"isready now please", IsReady{}},
		{"  uci\t", Uci{}},
		{"debug on", Debug{On: true}},
		{"debug off", Debug{On: false}},
		{"foo bar", Unknown{Line: "foo bar"}},
		{"", Unknown{Line: ""}},
		{"setoption name foo value bar", SetOption{Name: "foo", Value: strPtr("bar")}},
		{"setoption name foo", SetOption{Name: "foo"}},
		{"setoption name Move Overhead value 100", SetOption{Name: "Move Overhead", Value: strPtr("100")}},
		{"setoption name Book File value  my  book.bin ", SetOption{Name: "Book File", Value: strPtr("my book.bin")}},
		{"setoption name Clear Hash value", SetOption{Name: "Clear Hash", Value: strPtr("")}},
		{"position startpos", Position{FEN: common.InitialPositionFen}},
		{"position startpos moves e2e4 e7e5", Position{FEN: common.InitialPositionFen, Moves: []string{"e2e4", "e7e5"}}},
		{
			"position fen 8/8/8/8/8/8/8/K6k w - - 0 1 moves a1a2",
			Position{FEN: "8/8/8/8/8/8/8/K6k w - - 0 1", Moves: []string{"a1a2"}},
		},
		{"go", Go{}},
		{
			"go wtime 100 btime 200 winc 300 binc 400 movestogo 5 mate 6 depth 7 nodes 8 searchmoves e2e4 d2d4",
			Go{
				TimeControl: Explicit{
					WhiteTime:      msPtr(100),
					BlackTime:      msPtr(200),
					WhiteIncrement: msPtr(300),
					BlackIncrement: msPtr(400),
					MovesToGo:      intPtr(5),
				},
				SearchMoves: []string{"e2e4", "d2d4"},
				Mate:        intPtr(6),
				Depth:       intPtr(7),
				Nodes:       intPtr(8),
			},
		},
		{"go wtime 1000", Go{TimeControl: Explicit{WhiteTime: msPtr(1000)}}},
		{"go movetime 1500", Go{TimeControl: MoveTime{Duration: 1500 * time.Millisecond}}},
		{"go infinite", Go{TimeControl: Infinite{}}},
		{"go depth 4", Go{Depth: intPtr(4)}},
		{"go ponder", Go{TimeControl: Ponder{}}},
		{
			"go ponder wtime 10 btime 20",
			Go{TimeControl: Ponder{Clock: &Explicit{WhiteTime: msPtr(10), BlackTime: msPtr(20)}}},
		},
		{"go ponder movetime 100", Go{TimeControl: Ponder{MoveTime: msPtr(100)}}},
		{"go infinite movetime 50", Go{TimeControl: MoveTime{Duration: 50 * time.Millisecond}}},
		{"go wtime 10 infinite", Go{TimeControl: Infinite{}}},
		{"go depth 3 future 1", Go{Depth: intPtr(3)}},
	}
	for _, test := range tests {
		var got, err = Parse(test.line)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.line, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Parse(%q) = %#v, want %#v", test.line, got, test.want)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	var lines = []string{
		"debug",
		"debug maybe",
		"setoption",
		"setoption foo",
		"setoption name",
		"setoption name value 1",
		"position",
		"position somewhere",
		"position fen 8/8/8/8/8/8/8/K6k w - -",
		"position startpos e2e4",
		"go depth",
		"go depth x",
		"go wtime -5",
		"go nodes 1.5",
		"go movestogo 99999999999",
	}
	for _, line := range lines {
		var got, err = Parse(line)
		if !errors.Is(err, ErrMalformedCommand) {
			t.Errorf("Parse(%q) err = %v, want ErrMalformedCommand", line, err)
		}
		if got != (Unknown{Line: line}) {
			t.Errorf("Parse(%q) = %#v, want Unknown", line, got)
		}
	}
}
