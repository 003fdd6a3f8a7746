package refcoords

import (
	"fmt"
	"os"
	"warehouse-route-prep/internal/domain"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type locationSeed struct {
	City string  `yaml:"city" validate:"required"`
	Lat  float64 `yaml:"lat" validate:"gte=-90,lte=90"`
	Lon  float64 `yaml:"lon" validate:"gte=-180,lte=180"`
}

type referenceFile struct {
	Locations []locationSeed `yaml:"locations" validate:"min=1,dive"`
}

// LoadReferenceLocations reads an ordered list of anchor cities from a YAML file.
func LoadReferenceLocations(path string) ([]domain.ReferenceLocation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load reference locations: read %q: %w: %w", path, domain.ErrIO, err)
	}

	var file referenceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("load reference locations: parse yaml: %w: %w", domain.ErrParse, err)
	}

	if err := validator.New().Struct(&file); err != nil {
		return nil, fmt.Errorf("load reference locations: validate %q: %w: %w", path, domain.ErrParse, err)
	}

	out := make([]domain.ReferenceLocation, 0, len(file.Locations))
	for _, l := range file.Locations {
		out = append(out, domain.ReferenceLocation{
			City:        l.City,
			Coordinates: domain.Coordinates{Lat: l.Lat, Lon: l.Lon},
		})
	}

	return out, nil
}
