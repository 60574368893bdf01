package session

import (
	"fmt"

	"github.com/jgoulah/energytracker/internal/energy"
	"github.com/jgoulah/energytracker/internal/ui"
)

// CalculateOne reports daily and monthly usage and cost for a chosen appliance
func (s *Session) CalculateOne() error {
	if len(s.appliances) == 0 {
		ui.Warning(s.out, "No appliances added yet.")
		return nil
	}

	for i, a := range s.appliances {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, a.Name)
	}

	choice, err := s.prompt.BoundedInt("Select appliance number: ", 1, len(s.appliances))
	if err != nil {
		return err
	}
	price, err := s.prompt.PositiveFloat("Enter price per kWh (e.g. 0.5): ")
	if err != nil {
		return err
	}

	WriteEstimate(s.out, energy.EstimateFor(s.appliances[choice-1], price), s.currency)
	return nil
}

// CalculateAll reports monthly usage and cost for every appliance plus totals
func (s *Session) CalculateAll() error {
	if len(s.appliances) == 0 {
		ui.Warning(s.out, "No appliances added yet.")
		return nil
	}

	price, err := s.prompt.PositiveFloat("Enter price per kWh (e.g. 0.5): ")
	if err != nil {
		return err
	}

	WriteReport(s.out, energy.BuildReport(s.appliances, price), s.currency)
	return nil
}
