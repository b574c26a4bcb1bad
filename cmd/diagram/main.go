package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/oatchess/oat/internal/diagram"
	"github.com/oatchess/oat/pkg/common"
)

func main() {
	var (
		flgFen     string
		flgSize    int
		flgFlipped bool
	)
	flag.StringVar(&flgFen, "fen", common.InitialPositionFen, "position to draw")
	flag.IntVar(&flgSize, "size", 400, "board size in pixels")
	flag.BoolVar(&flgFlipped, "flip", false, "draw the board from black's side")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	var p, err = common.ParseFEN(flgFen)
	if err != nil {
		logger.Fatal(err)
	}
	var w = bufio.NewWriter(os.Stdout)
	err = diagram.Render(w, &p, diagram.Options{Size: flgSize, Flipped: flgFlipped})
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		logger.Fatal(err)
	}
}
