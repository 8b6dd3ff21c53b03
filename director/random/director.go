package random

import (
	"fmt"
	"github.com/they4kman/termsweep/game"
	"io"
	"math/rand"
)

// Director clicks a random hidden cell every move
type Director struct {
	rand *rand.Rand
	out  io.Writer
}

func New(rnd *rand.Rand, out io.Writer) *Director {
	return &Director{rand: rnd, out: out}
}

func (director *Director) NextMove(board *game.Board) (game.Pos, error) {
	hiddenCells := board.HiddenCells()
	if len(hiddenCells) == 0 {
		return game.Pos{}, io.EOF
	}

	pos := hiddenCells[director.rand.Intn(len(hiddenCells))]
	fmt.Fprintf(director.out, "%s%s\n", game.Prompt, pos)
	return pos, nil
}
