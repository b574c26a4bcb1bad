package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/oatchess/oat/pkg/common"
)

// Engine is the game state and search worker the protocol drives.
type Engine interface {
	Reset() error
	LoadPosition(fen string, moves []string) error
	Prepare()
	// BeginSearch starts a search on its own worker. The channel delivers
	// progress reports, then the final result, then is closed.
	BeginSearch(limits common.LimitsType) (<-chan common.SearchInfo, error)
	RequestStop()
	PonderHit()
	// Wait blocks until the worker of the last search has exited.
	Wait() error
}

type Config struct {
	Name    string
	Author  string
	Version string
	Debug   bool
}

type Protocol struct {
	config       Config
	options      []Option
	engine       Engine
	logger       *log.Logger
	out          io.Writer
	writeErr     error
	debug        bool
	engineOutput <-chan common.SearchInfo
	searchResult common.SearchInfo
	pending      []Message
}

func New(config Config, engine Engine, options []Option, logger *log.Logger) *Protocol {
	return &Protocol{
		config:  config,
		engine:  engine,
		options: options,
		logger:  logger,
		debug:   config.Debug,
	}
}

// Run serves commands read from in until quit or end of input. Failures on
// in or out end the session with a *StreamError. Cancelling ctx ends it with
// ctx.Err().
func (uci *Protocol) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	uci.out = out
	uci.writeErr = nil

	var readCtx, cancel = context.WithCancel(ctx)
	defer cancel()

	var commands = make(chan string)
	var readErr = make(chan error, 1)
	go func() {
		defer close(commands)
		readErr <- readCommands(readCtx, in, commands)
	}()

	for uci.writeErr == nil {
		select {
		case <-ctx.Done():
			uci.shutdown()
			return ctx.Err()
		case si, ok := <-uci.engineOutput:
			if ok {
				uci.searchResult = si
				if len(si.MainLine) != 0 {
					uci.println(searchInfoToUci(si))
				}
			} else {
				uci.searchFinished()
			}
		case commandLine, ok := <-commands:
			if !ok {
				uci.shutdown()
				if err := <-readErr; err != nil {
					return &StreamError{Op: "read", Err: err}
				}
				return uci.streamError()
			}
			if uci.handle(commandLine) {
				uci.shutdown()
				return uci.streamError()
			}
		}
	}
	uci.shutdown()
	return uci.streamError()
}

func readCommands(ctx context.Context, in io.Reader, commands chan<- string) error {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case commands <- scanner.Text():
		case <-ctx.Done():
			return nil
		}
	}
	return scanner.Err()
}

// handle processes one input line and reports whether the session should end.
func (uci *Protocol) handle(commandLine string) bool {
	var msg, err = Parse(commandLine)
	if err != nil {
		uci.logger.Println(err)
		uci.infoString(err.Error())
		return false
	}
	return uci.dispatch(msg)
}

// dispatch runs msg now or, while a search runs or earlier commands wait,
// queues it. Stop and ponderhit reach the running search immediately.
func (uci *Protocol) dispatch(msg Message) bool {
	if _, ok := msg.(Quit); ok {
		return true
	}
	var searching = uci.engineOutput != nil
	if len(uci.pending) != 0 {
		uci.pending = append(uci.pending, msg)
		if searching {
			switch msg.(type) {
			case Stop:
				uci.engine.RequestStop()
			case PonderHit:
				uci.engine.PonderHit()
			}
		}
		return false
	}
	if searching {
		switch msg.(type) {
		case Position, UciNewGame, SetOption, Go:
			uci.pending = append(uci.pending, msg)
			uci.debugf("%T deferred until the search ends", msg)
			return false
		}
	}
	uci.execute(msg)
	return false
}

func (uci *Protocol) execute(msg Message) {
	var err error
	switch msg := msg.(type) {
	case Uci:
		uci.uciCommand()
	case Debug:
		uci.debug = msg.On
	case IsReady:
		uci.engine.Prepare()
		uci.println("readyok")
	case SetOption:
		err = uci.setOptionCommand(msg)
	case UciNewGame:
		err = uci.engine.Reset()
	case Position:
		err = uci.engine.LoadPosition(msg.FEN, msg.Moves)
	case Go:
		err = uci.goCommand(msg)
	case Stop:
		if uci.engineOutput != nil {
			uci.engine.RequestStop()
		}
	case PonderHit:
		if uci.engineOutput != nil {
			uci.engine.PonderHit()
		}
	case Unknown:
		if strings.TrimSpace(msg.Line) != "" {
			uci.logger.Printf("unknown command %q", msg.Line)
			uci.debugf("unknown command %q", msg.Line)
		}
	}
	if err != nil {
		uci.logger.Println(err)
		uci.infoString(err.Error())
	}
}

func (uci *Protocol) uciCommand() {
	uci.printf("id name %s %s\n", uci.config.Name, uci.config.Version)
	uci.printf("id author %s\n", uci.config.Author)
	for _, option := range uci.options {
		uci.println(option.UciString())
	}
	uci.println("uciok")
}

func (uci *Protocol) setOptionCommand(msg SetOption) error {
	var option, ok = findOption(uci.options, msg.Name)
	if !ok {
		return fmt.Errorf("unhandled option %q", msg.Name)
	}
	if msg.Value == nil {
		return fmt.Errorf("option %q needs a value", msg.Name)
	}
	return option.Set(*msg.Value)
}

func (uci *Protocol) goCommand(msg Go) error {
	var output, err = uci.engine.BeginSearch(limitsFromGo(msg))
	if err != nil {
		return err
	}
	uci.engineOutput = output
	uci.searchResult = common.SearchInfo{}
	return nil
}

func (uci *Protocol) searchFinished() {
	uci.engineOutput = nil
	if err := uci.engine.Wait(); err != nil {
		uci.logger.Println(err)
	}
	uci.println(bestMoveToUci(uci.searchResult))
	uci.searchResult = common.SearchInfo{}

	var pending = uci.pending
	uci.pending = nil
	for _, msg := range pending {
		uci.dispatch(msg)
	}
}

// shutdown stops a running search and waits for its worker.
func (uci *Protocol) shutdown() {
	if uci.engineOutput == nil {
		return
	}
	uci.engine.RequestStop()
	for range uci.engineOutput {
	}
	uci.engineOutput = nil
	uci.pending = nil
	if err := uci.engine.Wait(); err != nil {
		uci.logger.Println(err)
	}
}

func (uci *Protocol) infoString(s string) {
	uci.printf("info string %s\n", s)
}

func (uci *Protocol) debugf(format string, a ...any) {
	if uci.debug {
		uci.infoString(fmt.Sprintf(format, a...))
	}
}

func (uci *Protocol) println(s string) {
	uci.printf("%s\n", s)
}

func (uci *Protocol) printf(format string, a ...any) {
	if uci.writeErr != nil {
		return
	}
	if _, err := fmt.Fprintf(uci.out, format, a...); err != nil {
		uci.writeErr = err
	}
}

func (uci *Protocol) streamError() error {
	if uci.writeErr != nil {
		return &StreamError{Op: "write", Err: uci.writeErr}
	}
	return nil
}

func limitsFromGo(msg Go) common.LimitsType {
	var result common.LimitsType
	switch tc := msg.TimeControl.(type) {
	case Ponder:
		result.Ponder = true
		if tc.Clock != nil {
			setClock(&result, *tc.Clock)
		}
		if tc.MoveTime != nil {
			result.MoveTime = *tc.MoveTime
		}
	case Explicit:
		setClock(&result, tc)
	case MoveTime:
		result.MoveTime = tc.Duration
	case Infinite:
		result.Infinite = true
	}
	if msg.Depth != nil {
		result.Depth = *msg.Depth
	}
	if msg.Nodes != nil {
		result.Nodes = *msg.Nodes
	}
	if msg.Mate != nil {
		result.Mate = *msg.Mate
	}
	for _, s := range msg.SearchMoves {
		// unparsable entries are dropped like illegal ones
		if move, err := common.ParseMove(s); err == nil {
			result.SearchMoves = append(result.SearchMoves, move)
		}
	}
	return result
}

func setClock(limits *common.LimitsType, clock Explicit) {
	if clock.WhiteTime != nil {
		limits.WhiteTime = *clock.WhiteTime
	}
	if clock.BlackTime != nil {
		limits.BlackTime = *clock.BlackTime
	}
	if clock.WhiteIncrement != nil {
		limits.WhiteIncrement = *clock.WhiteIncrement
	}
	if clock.BlackIncrement != nil {
		limits.BlackIncrement = *clock.BlackIncrement
	}
	if clock.MovesToGo != nil {
		limits.MovesToGo = *clock.MovesToGo
	}
}

func searchInfoToUci(si common.SearchInfo) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "info depth %v", si.Depth)
	if si.Score.Mate != 0 {
		fmt.Fprintf(sb, " score mate %v", si.Score.Mate)
	} else {
		fmt.Fprintf(sb, " score cp %v", si.Score.Centipawns)
	}
	var timeMs = si.Time.Milliseconds()
	var nps = si.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, " nodes %v time %v nps %v", si.Nodes, timeMs, nps)
	if len(si.MainLine) != 0 {
		fmt.Fprintf(sb, " pv")
		for _, move := range si.MainLine {
			sb.WriteString(" ")
			sb.WriteString(move.String())
		}
	}
	return sb.String()
}

func bestMoveToUci(si common.SearchInfo) string {
	switch len(si.MainLine) {
	case 0:
		return "bestmove (none)"
	case 1:
		return fmt.Sprintf("bestmove %v", si.MainLine[0])
	default:
		return fmt.Sprintf("bestmove %v ponder %v", si.MainLine[0], si.MainLine[1])
	}
}
