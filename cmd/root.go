package cmd

import (
	"context"
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/they4kman/termsweep/director/constraint"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
	"io"
	"os"
	"os/signal"
	"strings"
)

const envPrefix = "TERMSWEEP"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	settings := viper.New()

	rootCmd := &cobra.Command{
		Use:   "termsweep",
		Short: "Play Minesweeper in the terminal",
		Long: `termsweep is a Minesweeper game played by typing locations
such as A1 or B9.

Run with no arguments to play a 9x9 board with 10 mines
	termsweep

Pick the board size and number of mines
	termsweep -w 16 -h 16 -m 40

Let the computer play for you
	termsweep -d constraint
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadSettings(cmd, settings)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := resolveOptions(settings)
			if err != nil {
				return err
			}

			log, closeLog, err := newLogger(settings)
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			return play(ctx, options, cmd.InOrStdin(), cmd.OutOrStdout(), log)
		},
	}

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.PersistentFlags().Bool("help", false, "Help for this command")

	defaults := game.DefaultOptions()
	flags := rootCmd.PersistentFlags()
	flags.UintP("width", "w", defaults.Width, "Width of game board, in cells (at most 26)")
	flags.UintP("height", "h", defaults.Height, "Height of game board, in cells")
	flags.UintP("mines", "m", defaults.NumMines, "Number of mines to place in the game board")
	flags.Int64P("seed", "s", 0, "Seed for mine placement (0 picks one from the clock)")
	flags.StringP("director", "d", defaults.Director, `Who plays the game.
human: moves are read from standard input
random: the computer clicks random hidden cells
constraint: the computer deduces safe cells from the revealed digits`)
	flags.String("config", "", "YAML file to read options from")
	flags.String("log-level", logrus.WarnLevel.String(), "Log level (trace, debug, info, warn, error)")
	flags.String("log-file", "", "Write logs to this file instead of standard error")

	rootCmd.AddCommand(newOptionsCmd(settings))

	return rootCmd
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadSettings layers flags over TERMSWEEP_* environment variables over
// the config file
func loadSettings(cmd *cobra.Command, settings *viper.Viper) error {
	if err := settings.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()

	if configFile := settings.GetString("config"); configFile != "" {
		settings.SetConfigFile(configFile)
		settings.SetConfigType("yaml")
		if err := settings.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", configFile, err)
		}
	}
	return nil
}

func resolveOptions(settings *viper.Viper) (game.Options, error) {
	options := game.DefaultOptions()
	if err := settings.Unmarshal(&options); err != nil {
		return options, fmt.Errorf("decoding options: %w", err)
	}
	if err := options.Validate(); err != nil {
		return options, err
	}
	return options, nil
}

func newLogger(settings *viper.Viper) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(settings.GetString("log-level"))
	if err != nil {
		return nil, nil, err
	}
	log.SetLevel(level)

	closeLog := func() {}
	if logFile := settings.GetString("log-file"); logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		log.SetOutput(file)
		closeLog = func() { file.Close() }
	} else {
		log.SetOutput(os.Stderr)
	}

	return log, closeLog, nil
}

func newDirector(options game.Options, in io.Reader, out io.Writer) game.Director {
	switch options.Director {
	case game.RandomDirector:
		return random.New(options.DirectorRand(), out)
	case game.ConstraintDirector:
		return constraint.New(options.DirectorRand(), out)
	default:
		return game.NewLineDirector(in, out)
	}
}

func play(ctx context.Context, options game.Options, in io.Reader, out io.Writer, log logrus.FieldLogger) error {
	options = options.WithSeed()

	g, err := game.NewGame(options, newDirector(options, in, out), out, log)
	if err != nil {
		return err
	}
	return g.Run(ctx)
}
