package constraint

import (
	"fmt"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/util/collections"
	"io"
	"math"
	"math/rand"
	"strings"
)

// Director plays by deduction from the revealed digits, and falls back to
// the least risky guess when nothing is certain. It only ever looks at what
// the player can see.
type Director struct {
	rand *rand.Rand
	out  io.Writer
}

// Observation says that numMines of cells hold a mine
type Observation struct {
	origin   *game.Pos
	numMines int
	cells    collections.Set[game.Pos]
}

func (observation Observation) String() string {
	cellNames := make([]string, 0, len(observation.cells))
	for cell := range observation.cells {
		cellNames = append(cellNames, cell.String())
	}

	originRepr := "?"
	if observation.origin != nil {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%4s, %d ε %s]", originRepr, observation.numMines, strings.Join(cellNames, ", "))
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func New(rnd *rand.Rand, out io.Writer) *Director {
	return &Director{rand: rnd, out: out}
}

func (director *Director) NextMove(board *game.Board) (game.Pos, error) {
	pos, err := director.pick(board)
	if err != nil {
		return game.Pos{}, err
	}
	fmt.Fprintf(director.out, "%s%s\n", game.Prompt, pos)
	return pos, nil
}

func (director *Director) pick(board *game.Board) (game.Pos, error) {
	safe, mines, observations := Deduce(board)

	var candidates []game.Pos
	for _, pos := range board.HiddenCells() {
		if safe.Contains(pos) {
			return pos, nil
		}
		if !mines.Contains(pos) {
			candidates = append(candidates, pos)
		}
	}

	// Only known mines left: nothing worth clicking
	if len(candidates) == 0 {
		return game.Pos{}, io.EOF
	}

	if pos, ok := director.lowestProbability(observations, mines); ok {
		return pos, nil
	}
	return candidates[director.rand.Intn(len(candidates))], nil
}

func (director *Director) lowestProbability(observations []*Observation, mines collections.Set[game.Pos]) (game.Pos, bool) {
	lowestProbability := math.Inf(1)
	var lowestProbabilityCells []game.Pos

	for _, observation := range observations {
		if len(observation.cells) == 0 {
			continue
		}
		probability := observation.MineProbability()
		if probability > lowestProbability {
			continue
		}
		if probability < lowestProbability {
			lowestProbability = probability
			lowestProbabilityCells = lowestProbabilityCells[:0]
		}
		for cell := range observation.cells {
			if !mines.Contains(cell) {
				lowestProbabilityCells = append(lowestProbabilityCells, cell)
			}
		}
	}

	if len(lowestProbabilityCells) == 0 {
		return game.Pos{}, false
	}
	return lowestProbabilityCells[director.rand.Intn(len(lowestProbabilityCells))], true
}

// Deduce works out which hidden cells are certainly safe and which are
// certainly mines, from the digits on the board. It repeats until no new
// mine is found.
func Deduce(board *game.Board) (safe, mines collections.Set[game.Pos], observations []*Observation) {
	safe = make(collections.Set[game.Pos])
	mines = make(collections.Set[game.Pos])

	for changed := true; changed; {
		changed = false
		observations = observe(board, mines)
		observations = append(observations, split(observations)...)

		for _, observation := range observations {
			switch {
			case len(observation.cells) == 0:
			case observation.numMines == 0:
				for cell := range observation.cells {
					safe.Add(cell)
				}
			case observation.numMines == len(observation.cells):
				for cell := range observation.cells {
					if !mines.Contains(cell) {
						mines.Add(cell)
						changed = true
					}
				}
			}
		}
	}
	return safe, mines, observations
}

// observe builds one observation per revealed digit, over its hidden
// neighbours not already known to be mines
func observe(board *game.Board, mines collections.Set[game.Pos]) []*Observation {
	var observations []*Observation

	for y := uint(1); y <= board.Height(); y++ {
		for x := uint(1); x <= board.Width(); x++ {
			glyph := board.Get(x, y)
			if !glyph.IsDigit() {
				continue
			}

			origin := game.Pos{X: x, Y: y}
			observation := Observation{
				origin:   &origin,
				numMines: int(glyph - '0'),
				cells:    make(collections.Set[game.Pos]),
			}
			for _, neighbor := range board.Neighbors(origin) {
				if board.Get(neighbor.X, neighbor.Y) != game.Unknown {
					continue
				}
				if mines.Contains(neighbor) {
					observation.numMines--
				} else {
					observation.cells.Add(neighbor)
				}
			}

			if len(observation.cells) > 0 {
				observations = append(observations, &observation)
			}
		}
	}
	return observations
}

// split derives new observations wherever one observation's cells are a
// strict subset of another's: the cells left over hold the difference
func split(observations []*Observation) []*Observation {
	var splits []*Observation

	for _, observation := range observations {
		for _, other := range observations {
			if observation == other || len(observation.cells) >= len(other.cells) {
				continue
			}
			shared := observation.cells.Intersection(other.cells)
			if len(shared) != len(observation.cells) {
				continue
			}

			splits = append(splits, &Observation{
				numMines: other.numMines - observation.numMines,
				cells:    other.cells.Difference(observation.cells),
			})
		}
	}
	return splits
}
