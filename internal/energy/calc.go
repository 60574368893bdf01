// Package energy converts appliance power draw and usage time into kWh and cost.
package energy

import "github.com/jgoulah/energytracker/pkg/models"

// DaysPerMonth is the fixed month length used for all monthly figures
const DaysPerMonth = 30

// DailyKWh returns the energy used per day in kWh
func DailyKWh(watts, hoursPerDay float64) float64 {
	return watts * hoursPerDay / 1000
}

// MonthlyKWh scales a daily kWh figure to a month
func MonthlyKWh(dailyKWh float64) float64 {
	return dailyKWh * DaysPerMonth
}

// MonthlyHours scales daily usage hours to a month
func MonthlyHours(hoursPerDay float64) float64 {
	return hoursPerDay * DaysPerMonth
}

// Cost returns the price of kwh at pricePerKWh
func Cost(kwh, pricePerKWh float64) float64 {
	return kwh * pricePerKWh
}

// Estimate holds the computed figures for one appliance at a given price
type Estimate struct {
	Appliance    models.Appliance
	DailyKWh     float64
	MonthlyKWh   float64
	MonthlyHours float64
	MonthlyCost  float64
}

// EstimateFor computes daily and monthly usage and the monthly cost of a
func EstimateFor(a models.Appliance, pricePerKWh float64) Estimate {
	daily := DailyKWh(a.Watts, a.HoursPerDay)
	monthly := MonthlyKWh(daily)
	return Estimate{
		Appliance:    a,
		DailyKWh:     daily,
		MonthlyKWh:   monthly,
		MonthlyHours: MonthlyHours(a.HoursPerDay),
		MonthlyCost:  Cost(monthly, pricePerKWh),
	}
}

// Report is the per-appliance breakdown plus totals for a whole list
type Report struct {
	PricePerKWh     float64
	Items           []Estimate
	TotalMonthlyKWh float64
	TotalCost       float64
}

// BuildReport estimates every appliance in list order and accumulates totals
func BuildReport(appliances []models.Appliance, pricePerKWh float64) Report {
	r := Report{
		PricePerKWh: pricePerKWh,
		Items:       make([]Estimate, 0, len(appliances)),
	}
	for _, a := range appliances {
		e := EstimateFor(a, pricePerKWh)
		r.Items = append(r.Items, e)
		r.TotalMonthlyKWh += e.MonthlyKWh
		r.TotalCost += e.MonthlyCost
	}
	return r
}
