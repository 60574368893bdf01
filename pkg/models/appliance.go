package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyName is returned when an appliance name is blank
	ErrEmptyName = errors.New("appliance name cannot be empty")
	// ErrNonPositive is returned when watts or hours are zero or negative
	ErrNonPositive = errors.New("value must be a positive number")
	// ErrNotNumber is returned when a watts or hours value is not a finite number
	ErrNotNumber = errors.New("not a number")
)

// Appliance represents a household device with its power draw and daily usage
type Appliance struct {
	Name        string  `json:"name" yaml:"name"`
	Watts       float64 `json:"watts" yaml:"watts"`
	HoursPerDay float64 `json:"hours_per_day" yaml:"hours_per_day"` // Not capped at 24
}

// NewAppliance builds an appliance, trimming the name and validating all fields
func NewAppliance(name string, watts, hoursPerDay float64) (Appliance, error) {
	a := Appliance{
		Name:        strings.TrimSpace(name),
		Watts:       watts,
		HoursPerDay: hoursPerDay,
	}
	if err := a.Validate(); err != nil {
		return Appliance{}, err
	}
	return a, nil
}

// Validate checks the name is non-empty and both numeric fields are positive
func (a Appliance) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if !(a.Watts > 0) {
		return fmt.Errorf("watts %v: %w", a.Watts, ErrNonPositive)
	}
	if !(a.HoursPerDay > 0) {
		return fmt.Errorf("hours per day %v: %w", a.HoursPerDay, ErrNonPositive)
	}
	return nil
}
