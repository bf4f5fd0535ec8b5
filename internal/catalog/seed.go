package catalog

import (
	"time"

	"github.com/briksiq/core/internal/models"
)

// defaultSeed returns the built-in property fixture used when no seed file is
// configured. Mirrors the listings shipped with the mobile app.
func defaultSeed() []models.Property {
	return []models.Property{
		{
			ID:       "1",
			Title:    "Modern Luxury Villa",
			Price:    45000000,
			Location: "DHA Phase 5, Lahore",
			Bedrooms: 4, Bathrooms: 4, Area: 4500,
			Type:     models.TypeVilla,
			Images: []string{
				"https://images.pexels.com/photos/1396122/pexels-photo-1396122.jpeg",
				"https://images.pexels.com/photos/1396132/pexels-photo-1396132.jpeg",
			},
			Description: "Stunning modern villa with contemporary design, spacious rooms and a landscaped garden in the heart of DHA Phase 5.",
			Amenities:   []string{"Swimming Pool", "Garden", "Garage", "Security"},
			AgentID:     "agent-1",
			AgentName:   "Ahmed Raza",
			AgentPhone:  "+92 300 1234567",
			Featured:    true,
			CreatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:       "2",
			Title:    "Gulberg Heights Apartment",
			Price:    28500000,
			Location: "Gulberg III, Lahore",
			Bedrooms: 2, Bathrooms: 2, Area: 1800,
			Type:     models.TypeApartment,
			Images: []string{
				"https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg",
			},
			Description: "Elegant two bedroom apartment on a high floor with city views, close to the main boulevard and commercial hub.",
			Amenities:   []string{"Elevator", "Gym", "Security", "Backup Generator"},
			AgentID:     "agent-2",
			AgentName:   "Sara Malik",
			AgentPhone:  "+92 321 9876543",
			Featured:    false,
			CreatedAt:   time.Date(2024, 2, 3, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:       "3",
			Title:    "Model Town Family House",
			Price:    65000000,
			Location: "Model Town, Lahore",
			Bedrooms: 5, Bathrooms: 4, Area: 5400,
			Type:     models.TypeHouse,
			Images: []string{
				"https://images.pexels.com/photos/106399/pexels-photo-106399.jpeg",
			},
			Description: "Classic family home on a wide tree-lined street with a large lawn, servant quarters and covered parking for three cars.",
			Amenities:   []string{"Garden", "Garage", "Security", "Playground"},
			AgentID:     "agent-1",
			AgentName:   "Ahmed Raza",
			AgentPhone:  "+92 300 1234567",
			Featured:    true,
			CreatedAt:   time.Date(2024, 2, 20, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:       "4",
			Title:    "Canyon Views Signature Villa",
			Price:    120000000,
			Location: "Emaar Canyon Views, Islamabad",
			Bedrooms: 5, Bathrooms: 6, Area: 7200,
			Type:     models.TypeVilla,
			Images: []string{
				"https://images.pexels.com/photos/323780/pexels-photo-323780.jpeg",
				"https://images.pexels.com/photos/1029599/pexels-photo-1029599.jpeg",
			},
			Description: "Signature villa overlooking the Margalla hills with an infinity pool, home theatre and a private elevator.",
			Amenities:   []string{"Swimming Pool", "Garden", "Garage", "Security", "Elevator", "Gym"},
			AgentID:     "agent-3",
			AgentName:   "Bilal Sheikh",
			AgentPhone:  "+92 333 5551234",
			Featured:    true,
			CreatedAt:   time.Date(2024, 3, 5, 11, 45, 0, 0, time.UTC),
		},
		{
			ID:       "5",
			Title:    "Bahria Town Garden Apartment",
			Price:    16500000,
			Location: "Bahria Town, Lahore",
			Bedrooms: 2, Bathrooms: 2, Area: 1250,
			Type:     models.TypeApartment,
			Images: []string{
				"https://images.pexels.com/photos/2121121/pexels-photo-2121121.jpeg",
			},
			Description: "Affordable ground floor apartment opening onto a community park, ideal for small families and first-time buyers.",
			Amenities:   []string{"Garden", "Security", "Playground", "Backup Generator"},
			AgentID:     "agent-2",
			AgentName:   "Sara Malik",
			AgentPhone:  "+92 321 9876543",
			Featured:    false,
			CreatedAt:   time.Date(2024, 3, 18, 16, 0, 0, 0, time.UTC),
		},
		{
			ID:       "6",
			Title:    "Johar Town Commercial Plaza",
			Price:    95000000,
			Location: "Johar Town, Lahore",
			Bedrooms: 0, Bathrooms: 4, Area: 6000,
			Type:     models.TypeCommercial,
			Images: []string{
				"https://images.pexels.com/photos/269077/pexels-photo-269077.jpeg",
			},
			Description: "Four storey rented commercial plaza on the main boulevard with strong rental yield and basement parking.",
			Amenities:   []string{"Elevator", "Security", "Backup Generator", "Garage"},
			AgentID:     "agent-3",
			AgentName:   "Bilal Sheikh",
			AgentPhone:  "+92 333 5551234",
			Featured:    false,
			CreatedAt:   time.Date(2024, 4, 2, 13, 20, 0, 0, time.UTC),
		},
	}
}
