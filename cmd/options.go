package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

func newOptionsCmd(settings *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print the options a game would be played with, as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := resolveOptions(settings)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(options)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
