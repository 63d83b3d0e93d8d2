package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration tetris would play with, after the search
order and flag overrides are applied. The output is valid YAML and can be
saved to ~/.tetris/config.yaml as a starting point.

Examples:
  tetris config > ~/.tetris/config.yaml
  tetris config --config ./my-tetris.yaml --fps 30`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	data, err := cfg.Marshal()
	if err != nil {
		logger.Fatal("could not print config", "error", err)
	}
	fmt.Print(string(data))
}
