package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Director supplies the moves of a game
type Director interface {
	/**
	 * Pick the next cell to reveal. Return an error wrapping ErrBadLocation
	 * to have the game ask again, or io.EOF when there are no more moves.
	 */
	NextMove(board *Board) (Pos, error)
}

const Prompt = "Enter location (eg A1 or B9): "

// Longest line worth parsing; a location is a letter and a row number
const maxLineLength = 64

// LineDirector reads moves typed one per line. Lines of any length are
// consumed whole.
type LineDirector struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewLineDirector(in io.Reader, out io.Writer) *LineDirector {
	return &LineDirector{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (director *LineDirector) NextMove(board *Board) (Pos, error) {
	fmt.Fprint(director.out, Prompt)

	line, err := director.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return Pos{}, err
	}

	if len(line) > maxLineLength {
		return Pos{}, fmt.Errorf("%w: line of %d bytes is too long", ErrBadLocation, len(line))
	}
	return ParseLocation(line, board.Width(), board.Height())
}
