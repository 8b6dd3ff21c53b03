package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const indentWidth = 3

// Render draws the board as the player sees it:
//
//	    ABC
//	   +---+
//	  1|...|
//	   +---+
//	    ABC
func Render(w io.Writer, board *Board) error {
	out := bufio.NewWriter(w)
	indent := strings.Repeat(" ", indentWidth)

	var letters, border strings.Builder
	for x := uint(0); x < board.Width(); x++ {
		letters.WriteByte(byte('A' + x))
		border.WriteByte('-')
	}

	fmt.Fprintf(out, "%s %s\n", indent, letters.String())
	fmt.Fprintf(out, "%s+%s+\n", indent, border.String())

	for y := uint(1); y <= board.Height(); y++ {
		fmt.Fprintf(out, "%*d|", indentWidth, y)
		for x := uint(1); x <= board.Width(); x++ {
			out.WriteByte(byte(board.Get(x, y)))
		}
		out.WriteString("|\n")
	}

	fmt.Fprintf(out, "%s+%s+\n", indent, border.String())
	fmt.Fprintf(out, "%s %s \n", indent, letters.String())

	return out.Flush()
}
