package uci

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/oatchess/oat/pkg/common"
)

// Parse converts one input line into a Message. A line whose first token is
// not a command yields Unknown and no error. A recognized command with a bad
// payload yields Unknown and an error wrapping ErrMalformedCommand.
func Parse(line string) (Message, error) {
	var fields = strings.Fields(line)
	if len(fields) == 0 {
		return Unknown{Line: line}, nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	var h func(fields []string) (Message, error)

	switch commandName {
	case "uci":
		return Uci{}, nil
	case "isready":
		return IsReady{}, nil
	case "ucinewgame":
		return UciNewGame{}, nil
	case "stop":
		return Stop{}, nil
	case "ponderhit":
		return PonderHit{}, nil
	case "quit":
		return Quit{}, nil
	case "debug":
		h = parseDebug
	case "setoption":
		h = parseSetOption
	case "position":
		h = parsePosition
	case "go":
		h = parseGo
	default:
		return Unknown{Line: line}, nil
	}

	var msg, err = h(fields)
	if err != nil {
		return Unknown{Line: line}, fmt.Errorf("%w: %q: %v", ErrMalformedCommand, line, err)
	}
	return msg, nil
}

func parseDebug(fields []string) (Message, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("debug expects on or off")
	}
	switch fields[0] {
	case "on":
		return Debug{On: true}, nil
	case "off":
		return Debug{On: false}, nil
	}
	return nil, fmt.Errorf("debug expects on or off, got %q", fields[0])
}

func parseSetOption(fields []string) (Message, error) {
	if len(fields) == 0 || fields[0] != "name" {
		return nil, fmt.Errorf("setoption expects name")
	}
	fields = fields[1:]
	var valueIndex = slices.Index(fields, "value")
	var nameFields = fields
	if valueIndex >= 0 {
		nameFields = fields[:valueIndex]
	}
	if len(nameFields) == 0 {
		return nil, fmt.Errorf("empty option name")
	}
	var result = SetOption{Name: strings.Join(nameFields, " ")}
	if valueIndex >= 0 {
		var value = strings.Join(fields[valueIndex+1:], " ")
		result.Value = &value
	}
	return result, nil
}

func parsePosition(fields []string) (Message, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("position expects startpos or fen")
	}
	var result Position
	var rest []string
	switch fields[0] {
	case "startpos":
		result.FEN = common.InitialPositionFen
		rest = fields[1:]
	case "fen":
		const fenFields = 6
		if len(fields) < 1+fenFields {
			return nil, fmt.Errorf("fen needs %v fields", fenFields)
		}
		result.FEN = strings.Join(fields[1:1+fenFields], " ")
		rest = fields[1+fenFields:]
	default:
		return nil, fmt.Errorf("unknown position %q", fields[0])
	}
	if len(rest) != 0 {
		if rest[0] != "moves" {
			return nil, fmt.Errorf("unexpected %q", rest[0])
		}
		result.Moves = append([]string(nil), rest[1:]...)
	}
	return result, nil
}

func parseGo(fields []string) (Message, error) {
	var result Go
	var clock Explicit
	var hasClock, ponder, infinite bool
	var moveTime *time.Duration

	for i := 0; i < len(fields); i++ {
		var token = fields[i]
		switch token {
		case "ponder":
			ponder = true
			continue
		case "infinite":
			infinite = true
			continue
		case "searchmoves":
			result.SearchMoves = append([]string(nil), fields[i+1:]...)
			i = len(fields)
			continue
		case "wtime", "btime", "winc", "binc", "movestogo", "movetime", "mate", "depth", "nodes":
		default:
			// unknown tokens are skipped
			continue
		}

		if i+1 >= len(fields) {
			return nil, fmt.Errorf("%v expects a value", token)
		}
		i++
		var n, err = parseCount(fields[i])
		if err != nil {
			return nil, fmt.Errorf("%v: %w", token, err)
		}
		var d = time.Duration(n) * time.Millisecond

		switch token {
		case "wtime":
			clock.WhiteTime = &d
			hasClock = true
		case "btime":
			clock.BlackTime = &d
			hasClock = true
		case "winc":
			clock.WhiteIncrement = &d
			hasClock = true
		case "binc":
			clock.BlackIncrement = &d
			hasClock = true
		case "movestogo":
			clock.MovesToGo = &n
			hasClock = true
		case "movetime":
			moveTime = &d
		case "mate":
			result.Mate = &n
		case "depth":
			result.Depth = &n
		case "nodes":
			result.Nodes = &n
		}
	}

	switch {
	case ponder:
		var tc = Ponder{MoveTime: moveTime}
		if hasClock {
			tc.Clock = &clock
		}
		result.TimeControl = tc
	case moveTime != nil:
		result.TimeControl = MoveTime{Duration: *moveTime}
	case infinite:
		result.TimeControl = Infinite{}
	case hasClock:
		result.TimeControl = clock
	}
	return result, nil
}

func parseCount(s string) (int, error) {
	var n, err = strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a non-negative integer", s)
	}
	return int(n), nil
}
