package game

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseLocation turns a typed location such as "B9" into board
// coordinates. The column letter is case-insensitive.
func ParseLocation(line string, width, height uint) (Pos, error) {
	line = strings.TrimSpace(line)
	if len(line) < 2 {
		return Pos{}, fmt.Errorf("%w: %q is too short", ErrBadLocation, line)
	}

	column := unicode.ToUpper(rune(line[0]))
	if column < 'A' || column > 'Z' {
		return Pos{}, fmt.Errorf("%w: %q does not start with a column letter", ErrBadLocation, line)
	}
	x := uint(column-'A') + 1

	row, err := strconv.ParseUint(line[1:], 10, 32)
	if err != nil {
		return Pos{}, fmt.Errorf("%w: %q has no row number", ErrBadLocation, line)
	}
	y := uint(row)

	if x > width || y < 1 || y > height {
		return Pos{}, fmt.Errorf("%w: %s is off the %dx%d board", ErrBadLocation, strings.ToUpper(line), width, height)
	}
	return Pos{x, y}, nil
}
