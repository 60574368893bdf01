package session

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jgoulah/energytracker/internal/energy"
	"github.com/jgoulah/energytracker/internal/ui"
	"github.com/jgoulah/energytracker/pkg/models"
)

func writeMenu(w io.Writer) {
	ui.Title(w, "===== ENERGY SPENT TRACKER =====")
	fmt.Fprintln(w, "1. Add an appliance")
	fmt.Fprintln(w, "2. Calculate usage and cost of a single appliance")
	fmt.Fprintln(w, "3. Calculate total usage and cost of all appliances")
	fmt.Fprintln(w, "4. Edit appliance list")
	fmt.Fprintln(w, "5. View all appliances")
	fmt.Fprintln(w, "0. Exit")
}

// WriteList prints one numbered line per appliance, starting at 1
func WriteList(w io.Writer, appliances []models.Appliance) {
	for i, a := range appliances {
		fmt.Fprintf(w, "%d. %s | %sW | %sh/day\n", i+1, a.Name, formatNumber(a.Watts), formatNumber(a.HoursPerDay))
	}
}

// WriteEstimate prints the usage and cost of a single appliance
func WriteEstimate(w io.Writer, e energy.Estimate, currency string) {
	ui.Title(w, e.Appliance.Name)
	fmt.Fprintf(w, "Daily usage: %s kWh\n", twoPlaces(e.DailyKWh))
	fmt.Fprintf(w, "Monthly usage: %s kWh\n", twoPlaces(e.MonthlyKWh))
	fmt.Fprintf(w, "Estimated cost: %s%s\n", currency, twoPlaces(e.MonthlyCost))
}

// WriteReport prints each appliance's monthly figures followed by the totals
func WriteReport(w io.Writer, r energy.Report, currency string) {
	ui.Title(w, "INDIVIDUAL APPLIANCE USAGE:")
	for _, e := range r.Items {
		fmt.Fprintf(w, "• %s\n", e.Appliance.Name)
		fmt.Fprintf(w, "   Monthly kWh: %s kWh\n", twoPlaces(e.MonthlyKWh))
		fmt.Fprintf(w, "   Monthly hours used: %s h\n", onePlace(e.MonthlyHours))
		fmt.Fprintf(w, "   Estimated monthly cost: %s%s\n", currency, twoPlaces(e.MonthlyCost))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, ui.TitleStyle.Render("TOTAL ENERGY USAGE & COST"))
	fmt.Fprintf(w, "   Total monthly usage: %s kWh\n", twoPlaces(r.TotalMonthlyKWh))
	fmt.Fprintf(w, "   Total estimated cost: %s%s\n", currency, twoPlaces(r.TotalCost))
}

// humanizeLimit is the largest magnitude humanize.FormatFloat can render;
// it truncates through int64 above that.
const humanizeLimit = 1 << 62

// formatNumber prints v with as many digits as it needs, never rounding a
// small positive value down to zero
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func twoPlaces(v float64) string {
	if math.Abs(v) >= humanizeLimit {
		return bigFixed(v, 2)
	}
	return humanize.FormatFloat("#,###.##", v)
}

func onePlace(v float64) string {
	if math.Abs(v) >= humanizeLimit {
		return bigFixed(v, 1)
	}
	return humanize.FormatFloat("#,###.#", v)
}

// bigFixed renders v with places decimals and a comma-grouped integer part
func bigFixed(v float64, places int) string {
	whole, frac, _ := strings.Cut(strconv.FormatFloat(v, 'f', places, 64), ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return strconv.FormatFloat(v, 'f', places, 64)
	}
	return humanize.BigComma(n) + "." + frac
}
