package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgoulah/energytracker/internal/energy"
	"github.com/jgoulah/energytracker/internal/session"
)

var reportPrice float64

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print monthly usage and cost for all appliances",
	Long: `Prints the monthly kWh, hours and cost of every stored appliance followed by totals.
The price per kWh comes from --price, or price_per_kwh in the config file.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().Float64Var(&reportPrice, "price", 0, "price per kWh (default: price_per_kwh from config)")
	rootCmd.AddCommand(reportCmd)
}

// resolvePrice picks the --price flag over the configured rate
func resolvePrice(flag, configured float64) (float64, error) {
	if flag < 0 {
		return 0, fmt.Errorf("--price must be positive, got %v", flag)
	}
	if flag > 0 {
		return flag, nil
	}
	if configured > 0 {
		return configured, nil
	}
	return 0, fmt.Errorf("no price per kWh: use --price or set price_per_kwh in %s", getConfigPath())
}

func runReport(cmd *cobra.Command, args []string) error {
	price, err := resolvePrice(reportPrice, cfg.GetRate())
	if err != nil {
		return err
	}

	store := openStore()
	appliances, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading appliances: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(appliances) == 0 {
		fmt.Fprintf(out, "No appliances found in %s\n", store.Path())
		return nil
	}

	session.WriteReport(out, energy.BuildReport(appliances, price), cfg.GetCurrency())
	return nil
}
