package game

// CellState packs a cell's visibility and content into one byte. The high
// bit marks a hidden cell; the remaining bits hold the glyph the cell shows
// once revealed.
type CellState uint8

const (
	HiddenBit   CellState = 0x80
	ContentMask CellState = 0x7F

	Clear     CellState = ' '
	Mine      CellState = 'X'
	Explosion CellState = '*'
	Unknown   CellState = '.'

	HiddenClear = Clear | HiddenBit
	HiddenMine  = Mine | HiddenBit
)

// Columns are addressed by a single letter
const maxWidth = 26

var neighborOffsets = [8][2]int{
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
}
