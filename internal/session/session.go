// Package session runs the interactive appliance menu.
//
// A Session owns the in-memory appliance list for one run of the program:
// it is loaded from a Store when the session opens, changed only through
// the menu actions, and written back to the Store on exit. Every mutation
// goes through models.Appliance validation, so the list never holds an
// appliance with an empty name or a non-positive watts or hours value.
package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/jgoulah/energytracker/internal/logging"
	"github.com/jgoulah/energytracker/internal/prompt"
	"github.com/jgoulah/energytracker/internal/ui"
	"github.com/jgoulah/energytracker/pkg/models"
)

// Store loads and saves the appliance list
type Store interface {
	Load() ([]models.Appliance, error)
	Save(appliances []models.Appliance) error
	Path() string
}

// State is a position in the menu state machine
type State int

const (
	StateMenu State = iota
	StateAdd
	StateCalcOne
	StateCalcAll
	StateEdit
	StateView
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateAdd:
		return "add"
	case StateCalcOne:
		return "calc_one"
	case StateCalcAll:
		return "calc_all"
	case StateEdit:
		return "edit"
	case StateView:
		return "view"
	case StateExit:
		return "exit"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// menuChoices maps a main menu reply to the state it selects
var menuChoices = map[string]State{
	"1": StateAdd,
	"2": StateCalcOne,
	"3": StateCalcAll,
	"4": StateEdit,
	"5": StateView,
	"0": StateExit,
}

// Session is one run of the appliance tracker
type Session struct {
	appliances []models.Appliance
	prompt     *prompt.Prompter
	out        io.Writer
	currency   string
}

// Option configures a Session
type Option func(*Session)

// WithCurrency sets the symbol printed before costs
func WithCurrency(symbol string) Option {
	return func(s *Session) {
		s.currency = symbol
	}
}

// New creates a session over an existing appliance list.
// The list is copied; the session owns its copy from here on.
func New(appliances []models.Appliance, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		appliances: append([]models.Appliance{}, appliances...),
		prompt:     prompt.New(in, out),
		out:        out,
		currency:   "$",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Appliances returns a copy of the current list
func (s *Session) Appliances() []models.Appliance {
	return append([]models.Appliance{}, s.appliances...)
}

// Run loads the list from store, serves the menu until the user exits or
// input runs out, then saves the list back to store.
func Run(store Store, in io.Reader, out io.Writer, opts ...Option) error {
	appliances, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading appliances: %w", err)
	}

	s := New(appliances, in, out, opts...)
	loopErr := s.Loop()

	if err := store.Save(s.appliances); err != nil {
		return errors.Join(loopErr, fmt.Errorf("saving appliances: %w", err))
	}
	fmt.Fprintf(out, "Data saved to %s.\n", store.Path())

	return loopErr
}

// Loop drives the state machine from StateMenu until StateExit.
// Running out of input counts as choosing Exit.
func (s *Session) Loop() error {
	state := StateMenu
	for state != StateExit {
		next, err := s.Step(state)
		if errors.Is(err, io.EOF) {
			logging.Debug("Input closed, exiting", zap.Stringer("state", state))
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}
		state = next
	}
	return nil
}

// Step performs the action for state and returns the state to move to
func (s *Session) Step(state State) (State, error) {
	switch state {
	case StateMenu:
		return s.Menu()
	case StateAdd:
		return StateMenu, s.Add()
	case StateCalcOne:
		return StateMenu, s.CalculateOne()
	case StateCalcAll:
		return StateMenu, s.CalculateAll()
	case StateEdit:
		return StateMenu, s.Edit()
	case StateView:
		return StateMenu, s.View()
	case StateExit:
		return StateExit, nil
	default:
		return StateMenu, fmt.Errorf("unknown state %v", state)
	}
}

// Menu shows the main menu and reads a selection
func (s *Session) Menu() (State, error) {
	writeMenu(s.out)
	reply, err := s.prompt.Line("Choose an option: ")
	if err != nil {
		return StateMenu, err
	}

	next, ok := menuChoices[reply]
	if !ok {
		ui.Error(s.out, "Invalid option. Try again.")
		return StateMenu, nil
	}
	if next == StateExit {
		fmt.Fprintln(s.out, "Exiting the program. Goodbye!")
	}
	return next, nil
}

// Add reads a new appliance and appends it to the list.
// An empty name aborts without prompting for the numbers.
func (s *Session) Add() error {
	name, err := s.prompt.Line("Enter appliance name: ")
	if err != nil {
		return err
	}
	if name == "" {
		ui.Error(s.out, "Appliance name cannot be empty.")
		return nil
	}

	watts, err := s.prompt.PositiveFloat("Enter power (in watts): ")
	if err != nil {
		return err
	}
	hours, err := s.prompt.PositiveFloat("Enter hours used per day: ")
	if err != nil {
		return err
	}

	a, err := models.NewAppliance(name, watts, hours)
	if err != nil {
		ui.Error(s.out, "%v", err)
		return nil
	}
	s.append(a)
	ui.Success(s.out, "%s added successfully!", a.Name)
	return nil
}

// View prints the appliance list
func (s *Session) View() error {
	if len(s.appliances) == 0 {
		ui.Warning(s.out, "No appliances added yet.")
		return nil
	}

	ui.Title(s.out, "Registered Appliances:")
	WriteList(s.out, s.appliances)
	return nil
}

// Edit serves the edit list until the user chooses 0
func (s *Session) Edit() error {
	if len(s.appliances) == 0 {
		ui.Warning(s.out, "No appliances to edit.")
		return nil
	}

	for {
		ui.Title(s.out, "Edit Appliances:")
		WriteList(s.out, s.appliances)

		choice, err := s.prompt.Int("Select the appliance number to edit, or 0 to go back to the main menu: ", prompt.Min(0))
		if err != nil {
			return err
		}
		if choice == 0 {
			fmt.Fprintln(s.out, "Returning to main menu.")
			return nil
		}
		if choice > len(s.appliances) {
			ui.Error(s.out, "Invalid selection.")
			continue
		}

		if err := s.editField(choice - 1); err != nil {
			return err
		}
	}
}

// editField shows the per-appliance sub-menu and applies one action
func (s *Session) editField(i int) error {
	a := s.appliances[i]

	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "Selected appliance: %s\n", a.Name)
	fmt.Fprintln(s.out, "1. Edit name")
	fmt.Fprintln(s.out, "2. Edit watts")
	fmt.Fprintln(s.out, "3. Edit hours per day")
	fmt.Fprintln(s.out, "4. Delete appliance")
	fmt.Fprintln(s.out, "0. Go back to appliance list")

	option, err := s.prompt.Line("Choose an option: ")
	if err != nil {
		return err
	}

	switch option {
	case "1":
		name, err := s.prompt.Line(fmt.Sprintf("Enter new name (current: %s): ", a.Name))
		if err != nil {
			return err
		}
		if err := s.Rename(i, name); err != nil {
			ui.Error(s.out, "Name cannot be empty.")
			return nil
		}
		ui.Success(s.out, "Name updated successfully!")

	case "2":
		watts, err := s.prompt.PositiveFloat(fmt.Sprintf("Enter new watts (current: %sW): ", formatNumber(a.Watts)))
		if err != nil {
			return err
		}
		if err := s.SetWatts(i, watts); err != nil {
			ui.Error(s.out, "%v", err)
			return nil
		}
		ui.Success(s.out, "Watts updated successfully!")

	case "3":
		hours, err := s.prompt.PositiveFloat(fmt.Sprintf("Enter new hours per day (current: %sh): ", formatNumber(a.HoursPerDay)))
		if err != nil {
			return err
		}
		if err := s.SetHours(i, hours); err != nil {
			ui.Error(s.out, "%v", err)
			return nil
		}
		ui.Success(s.out, "Hours updated successfully!")

	case "4":
		confirm, err := s.prompt.Line(fmt.Sprintf("Are you sure you want to delete '%s'? (y/n): ", a.Name))
		if err != nil {
			return err
		}
		if strings.ToLower(confirm) != "y" {
			ui.Warning(s.out, "Deletion canceled.")
			return nil
		}
		s.Remove(i)
		ui.Success(s.out, "Appliance deleted successfully!")

	case "0":
		fmt.Fprintln(s.out, "Returning to appliance list.")

	default:
		ui.Error(s.out, "Invalid option.")
	}
	return nil
}

func (s *Session) append(a models.Appliance) {
	s.appliances = append(s.appliances, a)
	logging.Info("Appliance added",
		zap.Int("index", len(s.appliances)-1),
		zap.String("name", a.Name),
		zap.Float64("watts", a.Watts),
		zap.Float64("hours_per_day", a.HoursPerDay),
	)
}

// Rename replaces the name of the appliance at index i.
// A blank name is rejected and the list is left unchanged.
func (s *Session) Rename(i int, name string) error {
	return s.update(i, func(a *models.Appliance) { a.Name = strings.TrimSpace(name) })
}

// SetWatts replaces the power draw of the appliance at index i
func (s *Session) SetWatts(i int, watts float64) error {
	return s.update(i, func(a *models.Appliance) { a.Watts = watts })
}

// SetHours replaces the daily usage of the appliance at index i
func (s *Session) SetHours(i int, hours float64) error {
	return s.update(i, func(a *models.Appliance) { a.HoursPerDay = hours })
}

// update applies change to a copy and stores it only if it still validates
func (s *Session) update(i int, change func(*models.Appliance)) error {
	if i < 0 || i >= len(s.appliances) {
		return fmt.Errorf("index %d: %w", i, prompt.ErrOutOfRange)
	}

	a := s.appliances[i]
	change(&a)
	if err := a.Validate(); err != nil {
		return err
	}

	s.appliances[i] = a
	logging.Info("Appliance updated",
		zap.Int("index", i),
		zap.String("name", a.Name),
		zap.Float64("watts", a.Watts),
		zap.Float64("hours_per_day", a.HoursPerDay),
	)
	return nil
}

// Remove deletes the appliance at index i, keeping the order of the rest
func (s *Session) Remove(i int) {
	if i < 0 || i >= len(s.appliances) {
		return
	}
	removed := s.appliances[i]
	s.appliances = append(s.appliances[:i], s.appliances[i+1:]...)
	logging.Info("Appliance deleted", zap.Int("index", i), zap.String("name", removed.Name))
}
