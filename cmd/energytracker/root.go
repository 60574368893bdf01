package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgoulah/energytracker/internal/config"
	"github.com/jgoulah/energytracker/internal/logging"
	"github.com/jgoulah/energytracker/internal/session"
	"github.com/jgoulah/energytracker/internal/storage"
)

var (
	cfgFile  string
	dataFile string
	logLevel string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "energytracker",
	Short: "Track household appliances and their energy cost",
	Long: `EnergyTracker records household appliances with their power draw and daily usage,
and estimates their monthly energy use and cost. Running it without a subcommand
starts the interactive menu; the appliance list is saved to a CSV file on exit.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "appliance data file (default is ./appliances.csv)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default: silent)")
}

// setup loads the config and starts logging before any command runs
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	if err := logging.Initialize(level); err != nil {
		return err
	}
	return nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// getDataPath returns the appliance file path, flag first then config
func getDataPath() string {
	if dataFile != "" {
		return dataFile
	}
	return cfg.GetDataFile()
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

// saveConfig saves the configuration file
func saveConfig(cfg *config.Config) error {
	return config.Save(getConfigPath(), cfg)
}

// openStore returns the appliance store for this run
func openStore() *storage.File {
	return storage.NewFile(getDataPath())
}

func runInteractive(cmd *cobra.Command, args []string) error {
	return session.Run(openStore(), cmd.InOrStdin(), cmd.OutOrStdout(),
		session.WithCurrency(cfg.GetCurrency()),
	)
}
