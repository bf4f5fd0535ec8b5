package search

import (
	"strings"

	"github.com/briksiq/core/internal/catalog"
	"github.com/briksiq/core/internal/logger"
	"github.com/briksiq/core/internal/models"
)

// Tag narrows search results by price bracket or bedroom count. The zero
// value TagAll applies no narrowing.
type Tag string

const (
	TagAll         Tag = ""
	TagUnder5Cr    Tag = "under-5cr"
	Tag5To10Cr     Tag = "5-10cr"
	TagOver10Cr    Tag = "over-10cr"
	TagTwoBed      Tag = "2-bhk"
	TagThreeBed    Tag = "3-bhk"
	TagFourPlusBed Tag = "4plus-bhk"
)

// Prices are in PKR; one crore is 10,000,000.
const (
	crore     = 10_000_000
	fiveCrore = 5 * crore
	tenCrore  = 10 * crore
)

// Option pairs a tag with its display label, in chip order.
type Option struct {
	Label string
	Tag   Tag
}

// Options returns the selectable filter chips in display order.
func Options() []Option {
	return []Option{
		{Label: "All", Tag: TagAll},
		{Label: "Under 5 Cr", Tag: TagUnder5Cr},
		{Label: "5-10 Cr", Tag: Tag5To10Cr},
		{Label: "10+ Cr", Tag: TagOver10Cr},
		{Label: "2 BHK", Tag: TagTwoBed},
		{Label: "3 BHK", Tag: TagThreeBed},
		{Label: "4+ BHK", Tag: TagFourPlusBed},
	}
}

// PopularLocations returns the suggested location shortcuts shown under the
// search bar. Tapping one replaces the free-text query.
func PopularLocations() []string {
	return []string{
		"DHA Phase 5, Lahore",
		"Gulberg III, Lahore",
		"Model Town, Lahore",
		"Emaar Canyon Views, Islamabad",
	}
}

// Known reports whether the tag is one of the selectable filters.
func (t Tag) Known() bool {
	switch t {
	case TagAll, TagUnder5Cr, Tag5To10Cr, TagOver10Cr, TagTwoBed, TagThreeBed, TagFourPlusBed:
		return true
	}
	return false
}

func (t Tag) matches(p models.Property) bool {
	switch t {
	case TagAll:
		return true
	case TagUnder5Cr:
		return p.Price < fiveCrore
	case Tag5To10Cr:
		return p.Price >= fiveCrore && p.Price <= tenCrore
	case TagOver10Cr:
		return p.Price > tenCrore
	case TagTwoBed:
		return p.Bedrooms == 2
	case TagThreeBed:
		return p.Bedrooms == 3
	case TagFourPlusBed:
		return p.Bedrooms >= 4
	}
	return false
}

// MatchesQuery reports whether the property's title or location contains the
// query as a case-insensitive substring. An empty query matches everything.
func MatchesQuery(p models.Property, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Location), q)
}

// Filter applies the free-text query and the filter tag to an ordered
// property sequence. The result is always a subset of the input preserving
// input order; an empty result is valid. The input is never mutated.
func Filter(props []models.Property, query string, tag Tag) []models.Property {
	out := make([]models.Property, 0, len(props))
	for _, p := range props {
		if MatchesQuery(p, query) && tag.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Controller holds the per-screen search state: the free-text query, the
// selected filter tag and whether the filter panel is expanded. State is
// transient and reset on navigation.
type Controller struct {
	catalog *catalog.Catalog
	log     *logger.Logger

	query         string
	selectedTag   Tag
	panelExpanded bool
}

// NewController creates a search controller over the given catalog.
func NewController(cat *catalog.Catalog, log *logger.Logger) *Controller {
	return &Controller{
		catalog: cat,
		log:     log,
	}
}

// SetQuery replaces the free-text query.
func (c *Controller) SetQuery(query string) {
	c.query = query
}

// Query returns the current free-text query.
func (c *Controller) Query() string {
	return c.query
}

// SelectTag sets the active filter tag. Unknown tags are ignored so a stale
// chip value can never corrupt the state.
func (c *Controller) SelectTag(tag Tag) {
	if !tag.Known() {
		c.log.Warn("Ignoring unknown filter tag", map[string]interface{}{
			"tag": string(tag),
		})
		return
	}
	c.selectedTag = tag
}

// SelectedTag returns the active filter tag.
func (c *Controller) SelectedTag() Tag {
	return c.selectedTag
}

// TogglePanel flips the filter panel expansion state and returns the new
// state.
func (c *Controller) TogglePanel() bool {
	c.panelExpanded = !c.panelExpanded
	return c.panelExpanded
}

// PanelExpanded reports whether the filter panel is expanded.
func (c *Controller) PanelExpanded() bool {
	return c.panelExpanded
}

// Reset clears the query, the selected tag and the panel state, as happens
// when the user navigates away from the search screen.
func (c *Controller) Reset() {
	c.query = ""
	c.selectedTag = TagAll
	c.panelExpanded = false
}

// Results recomputes the filtered view from the catalog using the current
// query and tag. The catalog itself is never mutated.
func (c *Controller) Results() []models.Property {
	results := Filter(c.catalog.All(), c.query, c.selectedTag)

	c.log.Debug("Search results computed", map[string]interface{}{
		"query": c.query,
		"tag":   string(c.selectedTag),
		"count": len(results),
	})

	return results
}
