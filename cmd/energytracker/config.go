package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jgoulah/energytracker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long:  `Reads and updates the settings stored in the config file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting and save the config file",
	Long: `Changes one setting and writes the config file. An empty value resets it to the default.

Available keys: ` + strings.Join(config.Keys(), ", "),
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	rate := "(not set)"
	if cfg.GetRate() > 0 {
		rate = strconv.FormatFloat(cfg.GetRate(), 'f', -1, 64)
	}
	level := cfg.LogLevel
	if level == "" {
		level = "(silent)"
	}

	fmt.Fprintf(out, "Config file: %s\n", getConfigPath())
	fmt.Fprintf(out, "  %-14s %s\n", config.KeyDataFile+":", cfg.GetDataFile())
	fmt.Fprintf(out, "  %-14s %s\n", config.KeyCurrency+":", cfg.GetCurrency())
	fmt.Fprintf(out, "  %-14s %s\n", config.KeyPricePerKWh+":", rate)
	fmt.Fprintf(out, "  %-14s %s\n", config.KeyLogLevel+":", level)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s saved to %s\n", key, getConfigPath())
	return nil
}
