package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/energytracker/pkg/models"
)

func assertSameAppliances(t *testing.T, want, got []models.Appliance) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Name, got[i].Name, "row %d name", i)
		assert.InDelta(t, want[i].Watts, got[i].Watts, 1e-9, "row %d watts", i)
		assert.InDelta(t, want[i].HoursPerDay, got[i].HoursPerDay, 1e-9, "row %d hours", i)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		appliances []models.Appliance
	}{
		{"empty", []models.Appliance{}},
		{"two", []models.Appliance{
			{Name: "Lamp", Watts: 60, HoursPerDay: 5},
			{Name: "TV", Watts: 120, HoursPerDay: 4},
		}},
		{"awkward names and fractions", []models.Appliance{
			{Name: "Fridge, kitchen", Watts: 150.75, HoursPerDay: 24},
			{Name: `Heater "big"`, Watts: 2000, HoursPerDay: 0.333333333333},
			{Name: "Café", Watts: 0.5, HoursPerDay: 30},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "appliances.csv")

			require.NoError(t, Save(path, tt.appliances))
			loaded, err := Load(path)
			require.NoError(t, err)

			assertSameAppliances(t, tt.appliances, loaded)
		})
	}
}

func TestSave_WritesHeaderAndRowsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "appliances.csv")
	appliances := []models.Appliance{
		{Name: "Lamp", Watts: 60, HoursPerDay: 5},
		{Name: "Kettle", Watts: 1800, HoursPerDay: 0.25},
	}

	require.NoError(t, Save(path, appliances))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,watts,hours_per_day\nLamp,60,5\nKettle,1800,0.25\n", string(data))
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appliances.csv")

	require.NoError(t, Save(path, []models.Appliance{{Name: "A", Watts: 1, HoursPerDay: 1}, {Name: "B", Watts: 2, HoursPerDay: 2}}))
	require.NoError(t, Save(path, []models.Appliance{{Name: "C", Watts: 3, HoursPerDay: 3}}))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "C", loaded[0].Name)
}

func TestSave_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	err := Save(dir, nil) // a directory cannot be created as a file
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	loaded, err := Load(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	require.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestRead_EmptyInput(t *testing.T) {
	loaded, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRead_ColumnOrderAndExtras(t *testing.T) {
	input := "hours_per_day,notes,name,watts\n2,living room,TV,100\n"

	loaded, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assertSameAppliances(t, []models.Appliance{{Name: "TV", Watts: 100, HoursPerDay: 2}}, loaded)
}

func TestRead_PythonStyleFloats(t *testing.T) {
	input := "name,watts,hours_per_day\r\nLamp,60.0,5.0\r\n"

	loaded, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assertSameAppliances(t, []models.Appliance{{Name: "Lamp", Watts: 60, HoursPerDay: 5}}, loaded)
}

func TestLoad_MalformedRows(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantLine   int
		wantColumn string
		wantErr    error
	}{
		{
			name:       "non-numeric watts",
			content:    "name,watts,hours_per_day\nLamp,60,5\nTV,lots,4\n",
			wantLine:   3,
			wantColumn: ColumnWatts,
			wantErr:    models.ErrNotNumber,
		},
		{
			name:       "non-numeric hours",
			content:    "name,watts,hours_per_day\nLamp,60,\n",
			wantLine:   2,
			wantColumn: ColumnHoursPerDay,
			wantErr:    models.ErrNotNumber,
		},
		{
			name:       "NaN hours",
			content:    "name,watts,hours_per_day\nLamp,60,NaN\n",
			wantLine:   2,
			wantColumn: ColumnHoursPerDay,
			wantErr:    models.ErrNotNumber,
		},
		{
			name:       "infinite watts",
			content:    "name,watts,hours_per_day\nLamp,+Inf,5\n",
			wantLine:   2,
			wantColumn: ColumnWatts,
			wantErr:    models.ErrNotNumber,
		},
		{
			name:       "negative watts",
			content:    "name,watts,hours_per_day\nLamp,-60,5\n",
			wantLine:   2,
			wantColumn: ColumnWatts,
			wantErr:    models.ErrNonPositive,
		},
		{
			name:       "empty name",
			content:    "name,watts,hours_per_day\n ,60,5\n",
			wantLine:   2,
			wantColumn: ColumnName,
			wantErr:    models.ErrEmptyName,
		},
		{
			name:       "short row",
			content:    "name,watts,hours_per_day\nLamp,60\n",
			wantLine:   2,
			wantColumn: ColumnHoursPerDay,
			wantErr:    models.ErrNotNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "appliances.csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "expected *ParseError, got %T", err)
			assert.Equal(t, path, perr.Path)
			assert.Equal(t, tt.wantLine, perr.Line)
			assert.Equal(t, tt.wantColumn, perr.Column)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appliances.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,watts\nLamp,60\n"), 0644))

	_, err := Load(path)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Line)
	assert.Contains(t, err.Error(), "hours_per_day")
}

func TestWrite_EmptyListHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Equal(t, "name,watts,hours_per_day\n", buf.String())
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "home.csv")
	f := NewFile(path)
	assert.Equal(t, path, f.Path())

	loaded, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	want := []models.Appliance{{Name: "Fan", Watts: 45, HoursPerDay: 8}}
	require.NoError(t, f.Save(want))

	loaded, err = f.Load()
	require.NoError(t, err)
	assertSameAppliances(t, want, loaded)
}

func TestNewFile_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewFile("").Path())
}
