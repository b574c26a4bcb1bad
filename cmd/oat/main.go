package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/oatchess/oat/internal/engine"
	"github.com/oatchess/oat/internal/movegen"
	"github.com/oatchess/oat/internal/search"
	"github.com/oatchess/oat/internal/uci"
)

const (
	name   = "Oat"
	author = "Oat authors"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
	flgDebug    bool
)

func main() {
	flag.BoolVar(&flgDebug, "debug", false, "start in UCI debug mode")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
		"NumCPU", runtime.NumCPU(),
	)

	var eng = engine.NewEngine(movegen.New(), search.New())

	var protocol = uci.New(
		uci.Config{
			Name:    name,
			Author:  author,
			Version: versionName,
			Debug:   flgDebug,
		},
		eng,
		[]uci.Option{
			&uci.BoolOption{Name: "Ponder", Value: &eng.Options.Ponder},
			&uci.DurationOption{Name: "Move Overhead", Min: 0, Max: 5 * time.Second, Value: &eng.Options.MoveOverhead},
		},
		logger,
	)

	var ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := protocol.Run(ctx, os.Stdin, os.Stdout); err != nil {
		logger.Println(err)
		stop()
		os.Exit(1)
	}
}
