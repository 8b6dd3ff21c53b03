package game

import (
	"fmt"
	"github.com/they4kman/termsweep/util/collections"
	"math/rand"
	"strings"
)

// Board is the grid of cell states. Cells are addressed with 1-based
// coordinates; internally the grid carries a one-cell border of clear,
// never-revealed cells so neighbour lookups need no bounds checks.
type Board struct {
	width, height uint // in number of cells
	numMines      uint
	cells         []CellState

	rand *rand.Rand
}

// Largest padded grid a board may allocate
const maxCells = 1 << 24

// NewBoard allocates a width x height board and places numMines mines with
// rnd. rnd may only be nil for a board without mines.
func NewBoard(width, height, numMines uint, rnd *rand.Rand) (*Board, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	if width > maxCells || height > maxCells || width+2 > maxCells/(height+2) {
		return nil, fmt.Errorf("%w: %dx%d is more than %d cells", ErrInvalidSize, width, height, maxCells)
	}
	if rnd == nil && numMines > 0 {
		return nil, ErrNoRand
	}
	if numMines > width*height {
		return nil, fmt.Errorf("%w: %d mines on a %dx%d board", ErrTooManyMines, numMines, width, height)
	}

	board := &Board{
		width:    width,
		height:   height,
		numMines: numMines,
		cells:    make([]CellState, (width+2)*(height+2)),
		rand:     rnd,
	}
	for i := range board.cells {
		board.cells[i] = HiddenClear
	}

	board.distributeMines()
	return board, nil
}

func (board *Board) Width() uint {
	return board.width
}

func (board *Board) Height() uint {
	return board.height
}

func (board *Board) NumMines() uint {
	return board.numMines
}

func (board *Board) NumCells() uint {
	return board.width * board.height
}

func (board *Board) InBounds(x, y uint) bool {
	return x >= 1 && y >= 1 && x <= board.width && y <= board.height
}

func (board *Board) idx(x, y uint) uint {
	return y*(board.width+2) + x
}

func (board *Board) mustIdx(x, y uint) uint {
	if !board.InBounds(x, y) {
		panic(OutOfBoundsError{X: x, Y: y, Width: board.width, Height: board.height})
	}
	return board.idx(x, y)
}

// GetHidden returns the raw state of a cell, hidden bit included
func (board *Board) GetHidden(x, y uint) CellState {
	return board.cells[board.mustIdx(x, y)]
}

// Get returns the glyph the player sees for a cell
func (board *Board) Get(x, y uint) CellState {
	return board.GetHidden(x, y).Glyph()
}

// Set overwrites the raw state of a cell. Only used to stamp terminal
// states such as Explosion.
func (board *Board) Set(x, y uint, state CellState) {
	board.cells[board.mustIdx(x, y)] = state
}

// CountMines returns how many of the 8 neighbours of (x, y) hold a mine,
// whether revealed or not
func (board *Board) CountMines(x, y uint) int {
	i := int(board.mustIdx(x, y))
	stride := int(board.width + 2)

	count := 0
	for _, offset := range neighborOffsets {
		if IsMine(board.cells[i+offset[1]*stride+offset[0]]) {
			count++
		}
	}
	return count
}

// Neighbors lists the on-board cells around pos
func (board *Board) Neighbors(pos Pos) []Pos {
	neighbors := make([]Pos, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		x := int(pos.X) + offset[0]
		y := int(pos.Y) + offset[1]
		if x < 1 || y < 1 {
			continue
		}
		if board.InBounds(uint(x), uint(y)) {
			neighbors = append(neighbors, Pos{uint(x), uint(y)})
		}
	}
	return neighbors
}

// Reveal uncovers the cell at (x, y). A clear cell with no neighbouring
// mines cascades into its neighbours. Returns the cells whose visibility
// changed; nothing changes for an out-of-range or already revealed cell.
func (board *Board) Reveal(x, y uint) collections.Set[Pos] {
	revealed := make(collections.Set[Pos])
	if !board.InBounds(x, y) {
		return revealed
	}

	flood(Pos{x, y}, func(pos Pos) bool {
		i := board.idx(pos.X, pos.Y)
		if !board.cells[i].IsHidden() {
			return false
		}
		board.cells[i] &= ContentMask
		revealed.Add(pos)

		if board.cells[i] != Clear {
			return false
		}

		numMines := board.CountMines(pos.X, pos.Y)
		if numMines > 0 {
			board.cells[i] = Digit(numMines)
			return false
		}
		return true
	}, board.Neighbors)

	return revealed
}

// RevealAll clears the hidden bit of every cell, leaving content as is
func (board *Board) RevealAll() {
	for i := range board.cells {
		board.cells[i] &= ContentMask
	}
}

// HiddenCells lists the cells not yet revealed, in row order
func (board *Board) HiddenCells() []Pos {
	var hidden []Pos
	for y := uint(1); y <= board.height; y++ {
		for x := uint(1); x <= board.width; x++ {
			if board.cells[board.idx(x, y)].IsHidden() {
				hidden = append(hidden, Pos{x, y})
			}
		}
	}
	return hidden
}

// HiddenSafe counts the hidden cells that do not hold a mine
func (board *Board) HiddenSafe() int {
	count := 0
	for _, pos := range board.HiddenCells() {
		if !IsMine(board.cells[board.idx(pos.X, pos.Y)]) {
			count++
		}
	}
	return count
}

func (board *Board) String() string {
	var out strings.Builder
	for y := uint(1); y <= board.height; y++ {
		for x := uint(1); x <= board.width; x++ {
			out.WriteByte(byte(board.Get(x, y)))
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// distributeMines shuffles every cell index and mines the first numMines,
// so placement always terminates, even on a board packed full of mines
func (board *Board) distributeMines() {
	if board.numMines == 0 {
		return
	}

	cellIndexes := make([]uint, board.NumCells())
	for i := range cellIndexes {
		cellIndexes[i] = uint(i)
	}

	board.rand.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})
	for _, cellIdx := range cellIndexes[:board.numMines] {
		y, x := cellIdx/board.width+1, cellIdx%board.width+1
		board.Set(x, y, HiddenMine)
	}
}

// NewBoardFromLayout builds a board with mines exactly where the layout
// rows have an 'X'. Every other character is a mine-free cell. All cells
// start hidden.
func NewBoardFromLayout(rows ...string) (*Board, error) {
	height := uint(len(rows))
	if height == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidSize)
	}
	width := uint(len(rows[0]))

	board := &Board{
		width:  width,
		height: height,
		cells:  make([]CellState, (width+2)*(height+2)),
	}
	for i := range board.cells {
		board.cells[i] = HiddenClear
	}

	for y, row := range rows {
		if uint(len(row)) != width {
			return nil, fmt.Errorf("%w: row %d is %d wide, want %d", ErrInvalidSize, y+1, len(row), width)
		}
		for x, c := range []byte(row) {
			if CellState(c) == Mine {
				board.Set(uint(x)+1, uint(y)+1, HiddenMine)
				board.numMines++
			}
		}
	}
	return board, nil
}
