package diagram

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/oatchess/oat/pkg/common"
)

func TestRender(t *testing.T) {
	var p = common.InitialPosition()
	var sb strings.Builder
	if err := Render(&sb, &p, Options{Size: 400}); err != nil {
		t.Fatal(err)
	}
	var s = sb.String()
	if !strings.Contains(s, "<svg") || !strings.Contains(s, "</svg>") {
		t.Fatalf("not an svg document: %q", s)
	}
	if n := strings.Count(s, "<rect"); n != 64 {
		t.Errorf("%v squares", n)
	}
	if n := strings.Count(s, "<text"); n != 32 {
		t.Errorf("%v pieces", n)
	}
	if n := strings.Count(s, "♙"); n != 8 {
		t.Errorf("%v white pawns", n)
	}
}

func TestSquareOrigin(t *testing.T) {
	var tests = []struct {
		sq      common.Square
		flipped bool
		x, y    int
	}{
		{common.SquareA1, false, 0, 350},
		{common.SquareH8, false, 350, 0},
		{common.SquareA1, true, 350, 0},
		{common.SquareE4, false, 200, 200},
	}
	for _, test := range tests {
		var x, y = squareOrigin(test.sq, 50, test.flipped)
		if x != test.x || y != test.y {
			t.Errorf("squareOrigin(%v, %v) = %v, %v, want %v, %v", test.sq, test.flipped, x, y, test.x, test.y)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	var p = common.InitialPosition()
	if err := Render(io.Discard, &p, Options{Size: 4}); !errors.Is(err, common.ErrOutOfRange) {
		t.Errorf("size 4: %v", err)
	}
	if err := Render(failingWriter{}, &p, Options{Size: 200}); !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("failing writer: %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, io.ErrShortWrite
}
