package game

import (
	"context"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"io"
)

type Game struct {
	board    *Board
	director Director
	out      io.Writer
	log      logrus.FieldLogger

	running bool
}

func NewGame(options Options, director Director, out io.Writer, log logrus.FieldLogger) (*Game, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	options = options.WithSeed()
	board, err := NewBoard(options.Width, options.Height, options.NumMines, options.Rand())
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"width":    options.Width,
		"height":   options.Height,
		"mines":    options.NumMines,
		"seed":     options.Seed,
		"director": options.Director,
	}).Info("game started")

	return &Game{
		board:    board,
		director: director,
		out:      out,
		log:      log,
		running:  true,
	}, nil
}

func (game *Game) Board() *Board {
	return game.board
}

func (game *Game) IsRunning() bool {
	return game.running
}

// Tick draws the board, then reads and plays one move. Bad locations are
// reported and asked for again.
func (game *Game) Tick() error {
	if !game.running {
		return nil
	}

	if err := Render(game.out, game.board); err != nil {
		return err
	}

	for {
		pos, err := game.director.NextMove(game.board)
		switch {
		case err == nil:
			if game.board.InBounds(pos.X, pos.Y) {
				return game.play(pos)
			}
			err = fmt.Errorf("%w: %s is off the %dx%d board",
				ErrBadLocation, pos, game.board.Width(), game.board.Height())
			game.log.WithError(err).Debug("bad location")
			fmt.Fprintln(game.out, err)
		case errors.Is(err, io.EOF):
			game.log.Info("end of input")
			game.stop()
			return nil
		case errors.Is(err, ErrBadLocation):
			game.log.WithError(err).Debug("bad location")
			fmt.Fprintln(game.out, err)
		default:
			game.stop()
			return err
		}
	}
}

func (game *Game) play(pos Pos) error {
	revealed := game.board.Reveal(pos.X, pos.Y)
	game.log.WithFields(logrus.Fields{
		"x":        pos.X,
		"y":        pos.Y,
		"revealed": len(revealed),
	}).Debug("reveal")

	if !IsMine(game.board.GetHidden(pos.X, pos.Y)) {
		return nil
	}

	game.log.WithField("cell", pos.String()).Info("mine hit")
	game.board.Set(pos.X, pos.Y, Explosion)
	game.board.RevealAll()
	game.stop()

	if err := Render(game.out, game.board); err != nil {
		return err
	}
	_, err := fmt.Fprintf(game.out, "Boom! %s was a mine.\n", pos)
	return err
}

func (game *Game) stop() {
	game.running = false
}

// Run ticks until the game ends or ctx is cancelled
func (game *Game) Run(ctx context.Context) error {
	for game.IsRunning() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := game.Tick(); err != nil {
			return err
		}
	}
	return nil
}
