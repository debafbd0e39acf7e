package cmd

import (
	"github.com/ginjaninja78/po-generator/internal/generator"
	"github.com/spf13/cobra"
)

// settingsCmd groups the settings commands.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect purchase order settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := generator.New(appConfig, logger).LoadSettings()
		data, err := s.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
}
