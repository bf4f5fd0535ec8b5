package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/briksiq/core/internal/apperrors"
	"github.com/briksiq/core/internal/logger"
	"github.com/briksiq/core/internal/models"
)

// Catalog is the in-memory, ordered collection of properties available for
// browsing and search. Records are immutable after construction; every query
// returns copies and preserves seed order.
type Catalog struct {
	props []models.Property
	index map[string]int
	log   *logger.Logger
}

// New builds a catalog from the given seed, validating every record.
func New(seed []models.Property, log *logger.Logger) (*Catalog, error) {
	index := make(map[string]int, len(seed))
	for i, p := range seed {
		if err := validateProperty(p); err != nil {
			return nil, fmt.Errorf("invalid seed property at position %d: %w", i, err)
		}
		if _, exists := index[p.ID]; exists {
			return nil, fmt.Errorf("duplicate property id %q in seed", p.ID)
		}
		index[p.ID] = i
	}

	props := make([]models.Property, len(seed))
	copy(props, seed)

	log.Info("Catalog loaded", map[string]interface{}{
		"count": len(props),
	})

	return &Catalog{
		props: props,
		index: index,
		log:   log,
	}, nil
}

// Default builds a catalog from the built-in seed fixture.
func Default(log *logger.Logger) (*Catalog, error) {
	return New(defaultSeed(), log)
}

// LoadSeedFile builds a catalog from a YAML fixture file. The file holds a
// list of property records; invalid records fail construction.
func LoadSeedFile(path string, log *logger.Logger) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var seed []models.Property
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	return New(seed, log)
}

// All returns every property in seed order.
func (c *Catalog) All() []models.Property {
	out := make([]models.Property, len(c.props))
	copy(out, c.props)
	return out
}

// Featured returns the featured properties, preserving seed order.
func (c *Catalog) Featured() []models.Property {
	var out []models.Property
	for _, p := range c.props {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ByID looks up a single property. A miss returns apperrors.ErrNotFound so
// callers can render a not-found state rather than crash.
func (c *Catalog) ByID(id string) (models.Property, error) {
	i, ok := c.index[id]
	if !ok {
		c.log.Debug("Property not found", map[string]interface{}{
			"property_id": id,
		})
		return models.Property{}, fmt.Errorf("property %q: %w", id, apperrors.ErrNotFound)
	}
	return c.props[i], nil
}

// Query returns the properties matching every constraint in the filters,
// preserving seed order. Nil filter fields apply no constraint.
func (c *Catalog) Query(f models.SearchFilters) []models.Property {
	var out []models.Property
	for _, p := range c.props {
		if matchesFilters(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matchesFilters(p models.Property, f models.SearchFilters) bool {
	if f.Location != nil && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(*f.Location)) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Bedrooms != nil && p.Bedrooms != *f.Bedrooms {
		return false
	}
	if f.Bathrooms != nil && p.Bathrooms != *f.Bathrooms {
		return false
	}
	if f.MinArea != nil && p.Area < *f.MinArea {
		return false
	}
	if f.MaxArea != nil && p.Area > *f.MaxArea {
		return false
	}
	if f.PropertyType != nil && !strings.EqualFold(string(p.Type), *f.PropertyType) {
		return false
	}
	return true
}

// Contains reports whether a property with the given id exists.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Len returns the number of properties in the catalog.
func (c *Catalog) Len() int {
	return len(c.props)
}

func validateProperty(p models.Property) error {
	if p.ID == "" {
		return fmt.Errorf("property id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("property %q: title is required", p.ID)
	}
	if p.Price <= 0 {
		return fmt.Errorf("property %q: price must be positive, got %f", p.ID, p.Price)
	}
	if p.Location == "" {
		return fmt.Errorf("property %q: location is required", p.ID)
	}
	if p.Bedrooms < 0 {
		return fmt.Errorf("property %q: bedrooms must be non-negative, got %d", p.ID, p.Bedrooms)
	}
	if p.Bathrooms < 0 {
		return fmt.Errorf("property %q: bathrooms must be non-negative, got %d", p.ID, p.Bathrooms)
	}
	if p.Area <= 0 {
		return fmt.Errorf("property %q: area must be positive, got %f", p.ID, p.Area)
	}
	return nil
}
