package models

import (
	"time"
)

// Property represents a single listing in the catalog. Prices are in PKR and
// area is in square feet. Properties are immutable once loaded: the engine
// exposes no update or delete operation.
type Property struct {
	ID          string       `yaml:"id" json:"id"`
	Title       string       `yaml:"title" json:"title"`
	Price       float64      `yaml:"price" json:"price"`
	Location    string       `yaml:"location" json:"location"`
	Bedrooms    int          `yaml:"bedrooms" json:"bedrooms"`
	Bathrooms   int          `yaml:"bathrooms" json:"bathrooms"`
	Area        float64      `yaml:"area" json:"area"`
	Type        PropertyType `yaml:"type" json:"propertyType"`
	Images      []string     `yaml:"images" json:"images"`
	Description string       `yaml:"description" json:"description"`
	Amenities   []string     `yaml:"amenities" json:"amenities"`
	AgentID     string       `yaml:"agent_id" json:"agentId"`
	AgentName   string       `yaml:"agent_name" json:"agentName"`
	AgentPhone  string       `yaml:"agent_phone" json:"agentPhone"`
	Featured    bool         `yaml:"featured" json:"featured"`
	CreatedAt   time.Time    `yaml:"created_at" json:"createdAt"`
}

// SearchFilters describes a structured catalog query. All fields are optional;
// nil means "no constraint". Nullable fields use pointers to distinguish zero
// values from absent constraints.
type SearchFilters struct {
	Location     *string  `json:"location,omitempty"`
	MinPrice     *float64 `json:"minPrice,omitempty"`
	MaxPrice     *float64 `json:"maxPrice,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *int     `json:"bathrooms,omitempty"`
	MinArea      *float64 `json:"minArea,omitempty"`
	MaxArea      *float64 `json:"maxArea,omitempty"`
	PropertyType *string  `json:"propertyType,omitempty"`
}
