package main

import (
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	var configPath string

	loadConfig := func() (*Config, error) {
		return LoadConfig(configPath)
	}

	rootCmd := &cobra.Command{
		Use:           "spreadsheetEvaluator",
		Short:         "Evaluates spreadsheet formulas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	rootCmd.AddCommand(
		newServeCommand(loadConfig),
		newRunCommand(loadConfig),
		newEvalCommand(),
	)

	return rootCmd
}

func newServeCommand(loadConfig func() (*Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}
			return RunApp(config)
		},
	}
}

func newRunCommand(loadConfig func() (*Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Fetch sheets from the hub, process them and submit the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}
			return RunOnce(cmd.Context(), config, cmd.OutOrStdout())
		},
	}
}

func newEvalCommand() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "eval <file.xlsx>",
		Short: "Evaluate the formulas of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return EvalWorkbook(args[0], outputPath, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&outputPath, "out", "", "write the results to this .xlsx file instead of stdout")

	return cmd
}
