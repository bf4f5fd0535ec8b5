package models

import (
	"time"
)

// PropertyType is the closed set of listing categories offered on the
// submission form.
type PropertyType string

const (
	TypeHouse      PropertyType = "house"
	TypeApartment  PropertyType = "apartment"
	TypeVilla      PropertyType = "villa"
	TypeCommercial PropertyType = "commercial"
)

// PropertyTypes lists the selectable types in display order.
var PropertyTypes = []PropertyType{TypeHouse, TypeApartment, TypeVilla, TypeCommercial}

// Valid reports whether the type is one of the selectable categories.
func (t PropertyType) Valid() bool {
	switch t {
	case TypeHouse, TypeApartment, TypeVilla, TypeCommercial:
		return true
	}
	return false
}

// Submission is a parsed and validated listing draft, ready to hand to the
// external create-listing collaborator. Numeric fields have already been
// range-checked; the raw form text never leaves the listing package.
type Submission struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Price        float64      `json:"price"`
	Location     string       `json:"location"`
	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    int          `json:"bathrooms"`
	Area         float64      `json:"area"`
	Description  string       `json:"description"`
	PropertyType PropertyType `json:"propertyType"`
	Amenities    []string     `json:"amenities"`
	CreatedAt    time.Time    `json:"createdAt"`
}
