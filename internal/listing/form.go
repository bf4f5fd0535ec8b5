package listing

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/briksiq/core/internal/apperrors"
	"github.com/briksiq/core/internal/logger"
	"github.com/briksiq/core/internal/models"
)

// Creator is the external create-listing collaborator. It is only invoked
// with a fully validated submission.
type Creator interface {
	CreateListing(ctx context.Context, sub models.Submission) error
}

// Field identifies a text field on the submission form.
type Field string

const (
	FieldTitle       Field = "title"
	FieldPrice       Field = "price"
	FieldLocation    Field = "location"
	FieldBedrooms    Field = "bedrooms"
	FieldBathrooms   Field = "bathrooms"
	FieldArea        Field = "area"
	FieldDescription Field = "description"
)

// Amenities is the fixed set of selectable amenities, in display order.
var Amenities = []string{
	"Swimming Pool", "Garden", "Garage", "Security",
	"Elevator", "Gym", "Playground", "Backup Generator",
}

// payload is the parsed draft handed to the struct validator. Numeric fields
// are parsed before validation so range tags apply to real numbers, not raw
// text.
type payload struct {
	Title        string  `json:"title" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Location     string  `json:"location" validate:"required"`
	Bedrooms     int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms    int     `json:"bathrooms" validate:"gte=0"`
	Area         float64 `json:"area" validate:"gte=0"`
	PropertyType string  `json:"propertyType" validate:"required,oneof=house apartment villa commercial"`
}

// Form holds the in-progress draft for a new property listing. All numeric
// fields are collected as free text and only parsed at validation time. The
// draft is discarded on successful submission; a failed submission keeps it.
type Form struct {
	creator  Creator
	log      *logger.Logger
	validate *validator.Validate

	fields       map[Field]string
	propertyType models.PropertyType
	amenities    []string
}

// NewForm creates an empty form that submits to the given creator.
func NewForm(creator Creator, log *logger.Logger) *Form {
	v := validator.New()

	// Report json tag names so validation errors use form field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Form{
		creator:      creator,
		log:          log,
		validate:     v,
		fields:       make(map[Field]string),
		propertyType: models.TypeHouse,
	}
}

// SetField updates a text field in the draft. Unknown fields are rejected.
func (f *Form) SetField(field Field, value string) error {
	switch field {
	case FieldTitle, FieldPrice, FieldLocation, FieldBedrooms, FieldBathrooms, FieldArea, FieldDescription:
		f.fields[field] = value
		return nil
	}
	return fmt.Errorf("unknown form field %q", field)
}

// FieldValue returns the current text value of a field.
func (f *Form) FieldValue(field Field) string {
	return f.fields[field]
}

// SetPropertyType selects the listing category. Unknown types are rejected.
func (f *Form) SetPropertyType(t models.PropertyType) error {
	if !t.Valid() {
		return fmt.Errorf("unknown property type %q", t)
	}
	f.propertyType = t
	return nil
}

// PropertyType returns the selected listing category.
func (f *Form) PropertyType() models.PropertyType {
	return f.propertyType
}

// ToggleAmenity adds the amenity if unselected and removes it if selected,
// returning the new selection state. Only amenities from the fixed set are
// accepted.
func (f *Form) ToggleAmenity(name string) (bool, error) {
	known := false
	for _, a := range Amenities {
		if a == name {
			known = true
			break
		}
	}
	if !known {
		return false, fmt.Errorf("unknown amenity %q", name)
	}

	for i, a := range f.amenities {
		if a == name {
			f.amenities = append(f.amenities[:i], f.amenities[i+1:]...)
			return false, nil
		}
	}
	f.amenities = append(f.amenities, name)
	return true, nil
}

// SelectedAmenities returns the selected amenities in selection order.
func (f *Form) SelectedAmenities() []string {
	out := make([]string, len(f.amenities))
	copy(out, f.amenities)
	return out
}

// Reset discards the draft, returning the form to its initial state.
func (f *Form) Reset() {
	f.fields = make(map[Field]string)
	f.propertyType = models.TypeHouse
	f.amenities = nil
}

// Validate checks the draft and, when valid, returns the parsed submission
// payload. Title, price and location are required; numeric fields must parse
// as non-negative numbers, with price strictly positive. All offending fields
// are reported together in a single ValidationError.
func (f *Form) Validate() (models.Submission, error) {
	fields := make(map[string]string)

	price := f.parseFloat(FieldPrice, fields)
	area := f.parseFloat(FieldArea, fields)
	bedrooms := f.parseInt(FieldBedrooms, fields)
	bathrooms := f.parseInt(FieldBathrooms, fields)

	if strings.TrimSpace(f.fields[FieldArea]) != "" && fields[string(FieldArea)] == "" && area <= 0 {
		fields[string(FieldArea)] = "Must be greater than 0"
	}

	p := payload{
		Title:        strings.TrimSpace(f.fields[FieldTitle]),
		Price:        price,
		Location:     strings.TrimSpace(f.fields[FieldLocation]),
		Bedrooms:     bedrooms,
		Bathrooms:    bathrooms,
		Area:         area,
		PropertyType: string(f.propertyType),
	}

	if err := f.validate.Struct(p); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for field, msg := range apperrors.FromValidatorErrors(verrs).Fields {
				// Parse errors are more specific; keep them.
				if _, exists := fields[field]; !exists {
					fields[field] = msg
				}
			}
		} else {
			return models.Submission{}, fmt.Errorf("draft validation failed: %w", err)
		}
	}

	if len(fields) > 0 {
		verr := apperrors.NewValidationError(fields)
		f.log.Warn("Draft validation failed", map[string]interface{}{
			"fields": verr.FieldNames(),
		})
		return models.Submission{}, verr
	}

	return models.Submission{
		ID:           uuid.New().String(),
		Title:        p.Title,
		Price:        p.Price,
		Location:     p.Location,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Area:         p.Area,
		Description:  strings.TrimSpace(f.fields[FieldDescription]),
		PropertyType: f.propertyType,
		Amenities:    f.SelectedAmenities(),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Submit validates the draft and hands the submission to the creator. The
// creator is never called with an invalid draft. On creator failure the draft
// is retained so the user can retry; on success the form resets.
func (f *Form) Submit(ctx context.Context) (models.Submission, error) {
	sub, err := f.Validate()
	if err != nil {
		return models.Submission{}, err
	}

	if err := f.creator.CreateListing(ctx, sub); err != nil {
		f.log.Error("Listing submission failed", err, map[string]interface{}{
			"submission_id": sub.ID,
			"title":         sub.Title,
		})
		return models.Submission{}, fmt.Errorf("failed to create listing: %w", err)
	}

	f.log.Info("Listing submitted", map[string]interface{}{
		"submission_id": sub.ID,
		"title":         sub.Title,
		"price":         sub.Price,
	})

	f.Reset()
	return sub, nil
}

// parseFloat parses an optional non-negative float field, recording a field
// error on failure. Empty text parses as zero.
func (f *Form) parseFloat(field Field, fields map[string]string) float64 {
	text := strings.TrimSpace(f.fields[field])
	if text == "" {
		return 0
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		fields[string(field)] = "Must be a number"
		return 0
	}
	if v < 0 {
		fields[string(field)] = "Must be greater than or equal to 0"
		return 0
	}
	return v
}

// parseInt parses an optional non-negative integer field, recording a field
// error on failure. Empty text parses as zero.
func (f *Form) parseInt(field Field, fields map[string]string) int {
	text := strings.TrimSpace(f.fields[field])
	if text == "" {
		return 0
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		fields[string(field)] = "Must be a whole number"
		return 0
	}
	if v < 0 {
		fields[string(field)] = "Must be greater than or equal to 0"
		return 0
	}
	return v
}
