package favorites

import (
	"fmt"

	"github.com/briksiq/core/internal/apperrors"
	"github.com/briksiq/core/internal/catalog"
	"github.com/briksiq/core/internal/logger"
	"github.com/briksiq/core/internal/models"
	"github.com/briksiq/core/internal/search"
)

// Tracker holds the session-scoped set of favorited property IDs. The set is
// always a subset of the catalog: toggling an unknown ID is rejected. State
// is not persisted and is lost on process restart.
type Tracker struct {
	catalog *catalog.Catalog
	log     *logger.Logger
	ids     map[string]struct{}
}

// NewTracker creates an empty tracker over the given catalog.
func NewTracker(cat *catalog.Catalog, log *logger.Logger) *Tracker {
	return &Tracker{
		catalog: cat,
		log:     log,
		ids:     make(map[string]struct{}),
	}
}

// Toggle adds the property if absent and removes it if present. It returns
// the new membership state. Unknown property IDs return
// apperrors.ErrNotFound and leave the set unchanged.
func (t *Tracker) Toggle(propertyID string) (bool, error) {
	if !t.catalog.Contains(propertyID) {
		return false, fmt.Errorf("property %q: %w", propertyID, apperrors.ErrNotFound)
	}

	if _, ok := t.ids[propertyID]; ok {
		delete(t.ids, propertyID)
		t.log.Debug("Favorite removed", map[string]interface{}{
			"property_id": propertyID,
			"count":       len(t.ids),
		})
		return false, nil
	}

	t.ids[propertyID] = struct{}{}
	t.log.Debug("Favorite added", map[string]interface{}{
		"property_id": propertyID,
		"count":       len(t.ids),
	})
	return true, nil
}

// Remove unconditionally removes the property from the set. Removing an ID
// that is not present is a no-op.
func (t *Tracker) Remove(propertyID string) {
	delete(t.ids, propertyID)
}

// Contains reports whether the property is currently favorited.
func (t *Tracker) Contains(propertyID string) bool {
	_, ok := t.ids[propertyID]
	return ok
}

// Count returns the number of favorited properties.
func (t *Tracker) Count() int {
	return len(t.ids)
}

// Properties returns the favorited properties in catalog order.
func (t *Tracker) Properties() []models.Property {
	var out []models.Property
	for _, p := range t.catalog.All() {
		if _, ok := t.ids[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Search filters the favorited properties by a free-text query over title and
// location, preserving catalog order. An empty query returns all favorites.
func (t *Tracker) Search(query string) []models.Property {
	return search.Filter(t.Properties(), query, search.TagAll)
}
