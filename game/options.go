package game

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	HumanDirector      = "human"
	RandomDirector     = "random"
	ConstraintDirector = "constraint"
)

type Options struct {
	Width    uint `yaml:"width" mapstructure:"width"`
	Height   uint `yaml:"height" mapstructure:"height"`
	NumMines uint `yaml:"mines" mapstructure:"mines"`

	// Seed for mine placement. Zero picks one from the clock.
	Seed int64 `yaml:"seed" mapstructure:"seed"`

	// Who picks the moves: "human" reads them from input, "random" plays
	// random hidden cells, "constraint" deduces safe cells from the digits
	Director string `yaml:"director" mapstructure:"director"`
}

func DefaultOptions() Options {
	return Options{
		Width:    9,
		Height:   9,
		NumMines: 10,
		Director: HumanDirector,
	}
}

func (options Options) Validate() error {
	if options.Width == 0 || options.Height == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, options.Width, options.Height)
	}
	if options.Width > maxWidth {
		return fmt.Errorf("%w: width %d", ErrTooWide, options.Width)
	}
	if options.NumMines > options.Width*options.Height {
		return fmt.Errorf("%w: %d mines on a %dx%d board",
			ErrTooManyMines, options.NumMines, options.Width, options.Height)
	}
	switch options.Director {
	case HumanDirector, RandomDirector, ConstraintDirector:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDirector, options.Director)
	}
	return nil
}

// WithSeed fills in a clock-based seed if none was given
func (options Options) WithSeed() Options {
	if options.Seed == 0 {
		options.Seed = time.Now().UnixNano()
	}
	return options
}

// Rand is the source for mine placement
func (options Options) Rand() *rand.Rand {
	return rand.New(rand.NewSource(options.Seed))
}

// DirectorRand is the source for automatic players, kept apart from the
// mine placement stream
func (options Options) DirectorRand() *rand.Rand {
	return rand.New(rand.NewSource(options.Seed + 1))
}
