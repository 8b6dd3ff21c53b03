package game

import (
	"context"
	"errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"strings"
	"testing"
)

func newTestGame(t *testing.T, input string, rows ...string) (*Game, *strings.Builder, *test.Hook) {
	t.Helper()

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	out := &strings.Builder{}
	game := &Game{
		board:    mustLayout(t, rows...),
		director: NewLineDirector(strings.NewReader(input), out),
		out:      out,
		log:      log,
		running:  true,
	}
	return game, out, hook
}

func hasEntry(hook *test.Hook, message string) bool {
	for _, entry := range hook.AllEntries() {
		if entry.Message == message {
			return true
		}
	}
	return false
}

func TestTickEndOfInput(t *testing.T) {
	game, out, hook := newTestGame(t, "", "...", ".X.", "...")

	require.NoError(t, game.Tick())
	assert.False(t, game.IsRunning())
	assert.Len(t, game.Board().HiddenCells(), 9)
	assert.True(t, strings.HasSuffix(out.String(), Prompt))
	assert.True(t, hasEntry(hook, "end of input"))

	// A finished game ignores further ticks
	out.Reset()
	require.NoError(t, game.Tick())
	assert.Empty(t, out.String())
}

func TestTickRepromptsOnBadLocation(t *testing.T) {
	game, out, hook := newTestGame(t, "zz\nB9\nA1\n", "...", ".X.", "...")

	require.NoError(t, game.Tick())
	assert.True(t, game.IsRunning())
	assert.Equal(t, CellState('1'), game.Board().Get(1, 1))
	assert.Len(t, game.Board().HiddenCells(), 8)

	assert.Equal(t, 3, strings.Count(out.String(), Prompt))
	assert.Equal(t, 2, strings.Count(out.String(), ErrBadLocation.Error()))
	assert.True(t, hasEntry(hook, "bad location"))
	assert.True(t, hasEntry(hook, "reveal"))
}

func TestTickMineEndsGame(t *testing.T) {
	game, out, hook := newTestGame(t, "b2\n", "...", ".X.", "...")

	require.NoError(t, game.Tick())
	assert.False(t, game.IsRunning())

	board := game.Board()
	assert.Equal(t, Explosion, board.GetHidden(2, 2))
	assert.Empty(t, board.HiddenCells())
	assert.Contains(t, out.String(), "  2| * |\n")
	assert.Contains(t, out.String(), "Boom! B2 was a mine.\n")
	assert.True(t, hasEntry(hook, "mine hit"))
}

func TestRunUntilEndOfInput(t *testing.T) {
	game, out, _ := newTestGame(t, "A1\nC3\nA1\n", "...", ".X.", "...")

	require.NoError(t, game.Run(context.Background()))
	assert.False(t, game.IsRunning())
	assert.Equal(t, CellState('1'), game.Board().Get(1, 1))
	assert.Equal(t, CellState('1'), game.Board().Get(3, 3))
	assert.Equal(t, Unknown, game.Board().Get(2, 2))
	assert.Equal(t, 4, strings.Count(out.String(), Prompt))
}

func TestRunStopsOnCancel(t *testing.T) {
	game, _, _ := newTestGame(t, "A1\n", "...")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, game.Run(ctx), context.Canceled)
	assert.True(t, game.IsRunning())
}

type failingDirector struct{}

func (failingDirector) NextMove(*Board) (Pos, error) {
	return Pos{}, errors.New("input broke")
}

func TestTickStopsOnDirectorError(t *testing.T) {
	game, _, _ := newTestGame(t, "", "...")
	game.director = failingDirector{}

	assert.EqualError(t, game.Tick(), "input broke")
	assert.False(t, game.IsRunning())
}

func TestNewGame(t *testing.T) {
	log, hook := test.NewNullLogger()
	options := Options{Width: 1, Height: 1, NumMines: 0, Seed: 1, Director: HumanDirector}

	out := &strings.Builder{}
	game, err := NewGame(options, NewLineDirector(strings.NewReader("A1\n"), out), out, log)
	require.NoError(t, err)
	assert.True(t, game.IsRunning())
	assert.True(t, hasEntry(hook, "game started"))

	require.NoError(t, game.Tick())
	assert.True(t, game.IsRunning())
	assert.Equal(t, Clear, game.Board().Get(1, 1))

	require.NoError(t, game.Tick())
	assert.False(t, game.IsRunning())
}

func TestNewGameRejectsBadOptions(t *testing.T) {
	log, _ := test.NewNullLogger()
	options := Options{Width: 2, Height: 2, NumMines: 5, Director: HumanDirector}

	_, err := NewGame(options, NewLineDirector(strings.NewReader(""), io.Discard), io.Discard, log)
	assert.ErrorIs(t, err, ErrTooManyMines)
}

func TestTickRepromptsOnOverlongLine(t *testing.T) {
	game, out, _ := newTestGame(t, strings.Repeat("z", 70000)+"\nA1\n", "...", ".X.", "...")

	require.NoError(t, game.Tick())
	assert.True(t, game.IsRunning())
	assert.Equal(t, CellState('1'), game.Board().Get(1, 1))
	assert.Equal(t, 2, strings.Count(out.String(), Prompt))
	assert.Contains(t, out.String(), "line of 70001 bytes is too long")
	assert.NotContains(t, out.String(), strings.Repeat("z", 100))
}

func TestTickPlaysLastLineWithoutNewline(t *testing.T) {
	game, _, _ := newTestGame(t, "C1", "...", ".X.", "...")

	require.NoError(t, game.Tick())
	assert.True(t, game.IsRunning())
	assert.Equal(t, CellState('1'), game.Board().Get(3, 1))

	require.NoError(t, game.Tick())
	assert.False(t, game.IsRunning())
}

// scriptedDirector plays a fixed list of moves, then runs out
type scriptedDirector struct {
	moves []Pos
}

func (director *scriptedDirector) NextMove(*Board) (Pos, error) {
	if len(director.moves) == 0 {
		return Pos{}, io.EOF
	}
	pos := director.moves[0]
	director.moves = director.moves[1:]
	return pos, nil
}

func TestTickRepromptsOnOffBoardMove(t *testing.T) {
	game, out, hook := newTestGame(t, "", "...", ".X.", "...")
	game.director = &scriptedDirector{moves: []Pos{{0, 0}, {4, 1}, {3, 3}}}

	require.NotPanics(t, func() {
		require.NoError(t, game.Tick())
	})
	assert.True(t, game.IsRunning())
	assert.Equal(t, CellState('1'), game.Board().Get(3, 3))
	assert.Len(t, game.Board().HiddenCells(), 8)
	assert.Equal(t, 2, strings.Count(out.String(), "is off the 3x3 board"))
	assert.True(t, hasEntry(hook, "bad location"))
}
