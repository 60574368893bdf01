package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgoulah/energytracker/internal/energy"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored appliances",
	Long:  `Displays every appliance in the data file with its daily energy use.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
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

	fmt.Fprintf(out, "\nAppliances (%s):\n", store.Path())
	fmt.Fprintln(out, "--------------------------------------------------------")
	fmt.Fprintf(out, "%-3s  %-20s  %10s  %8s  %8s\n", "#", "Name", "Watts", "h/day", "kWh/day")
	fmt.Fprintln(out, "--------------------------------------------------------")

	var total float64
	for i, a := range appliances {
		daily := energy.DailyKWh(a.Watts, a.HoursPerDay)
		fmt.Fprintf(out, "%-3d  %-20s  %10.1f  %8.2f  %8.2f\n", i+1, a.Name, a.Watts, a.HoursPerDay, daily)
		total += daily
	}

	fmt.Fprintln(out, "--------------------------------------------------------")
	fmt.Fprintf(out, "Total: %.2f kWh/day (%d appliances)\n", total, len(appliances))

	return nil
}
