package game

import "fmt"

// IsMine reports whether the state holds a mine, hidden or not
func IsMine(state CellState) bool {
	return state&ContentMask == Mine
}

func (state CellState) IsHidden() bool {
	return state&HiddenBit != 0
}

func (state CellState) Content() CellState {
	return state & ContentMask
}

// Glyph returns what the cell looks like to the player
func (state CellState) Glyph() CellState {
	if state.IsHidden() {
		return Unknown
	}
	return state.Content()
}

func (state CellState) IsDigit() bool {
	content := state.Content()
	return content >= '1' && content <= '8'
}

// Digit returns the revealed content for a cell with numMines neighbouring
// mines. Zero is shown as Clear.
func Digit(numMines int) CellState {
	if numMines <= 0 {
		return Clear
	}
	return CellState('0' + numMines)
}

func (state CellState) String() string {
	if state.IsHidden() {
		return fmt.Sprintf("hidden(%q)", rune(state.Content()))
	}
	return fmt.Sprintf("%q", rune(state))
}

// Pos is a 1-based board coordinate
type Pos struct {
	X, Y uint
}

// String renders the position the way the player types it, e.g. B9
func (pos Pos) String() string {
	if pos.X >= 1 && pos.X <= maxWidth {
		return fmt.Sprintf("%c%d", 'A'+rune(pos.X-1), pos.Y)
	}
	return fmt.Sprintf("(%d, %d)", pos.X, pos.Y)
}
