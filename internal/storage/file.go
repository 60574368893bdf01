package storage

import (
	"go.uber.org/zap"

	"github.com/jgoulah/energytracker/internal/logging"
	"github.com/jgoulah/energytracker/pkg/models"
)

// File is an appliance store backed by a CSV file
type File struct {
	path string
}

// NewFile returns a store for path, using DefaultPath when path is empty
func NewFile(path string) *File {
	if path == "" {
		path = DefaultPath
	}
	return &File{path: path}
}

// Path returns the file location
func (f *File) Path() string {
	return f.path
}

// Load reads the stored appliances; a missing file yields an empty list
func (f *File) Load() ([]models.Appliance, error) {
	appliances, err := Load(f.path)
	if err != nil {
		return nil, err
	}
	logging.Info("Loaded appliances", zap.String("path", f.path), zap.Int("count", len(appliances)))
	return appliances, nil
}

// Save overwrites the file with appliances
func (f *File) Save(appliances []models.Appliance) error {
	if err := Save(f.path, appliances); err != nil {
		return err
	}
	logging.Info("Saved appliances", zap.String("path", f.path), zap.Int("count", len(appliances)))
	return nil
}
