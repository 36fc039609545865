// Package domain contains the core domain types and validation logic.
// This is part of the Functional Core - all functions are pure with no I/O.
package domain

import (
	"errors"
	"strings"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// Field validation errors
	ErrNameRequired  = errors.New("name is required")
	ErrImageRequired = errors.New("image is required")
	ErrPriceRequired = errors.New("price is required")
	ErrPriceNegative = errors.New("price cannot be negative")
)

// =============================================================================
// Plant
// =============================================================================

// Plant is a catalog entry. The ID is assigned by the store on creation and
// never changes afterwards.
type Plant struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	IsInStock bool    `json:"is_in_stock"`
}

// NewPlant creates a plant from creation input. The returned plant has no ID;
// the store assigns one when the plant is persisted.
func NewPlant(name, image string, price float64, isInStock bool) (*Plant, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ValidateImage(image); err != nil {
		return nil, err
	}
	if err := ValidatePrice(price); err != nil {
		return nil, err
	}

	return &Plant{
		Name:      strings.TrimSpace(name),
		Image:     strings.TrimSpace(image),
		Price:     price,
		IsInStock: isInStock,
	}, nil
}

// =============================================================================
// Update
// =============================================================================

// PlantUpdate describes a partial update. Nil fields are left untouched.
// The ID is deliberately absent: it is immutable.
type PlantUpdate struct {
	Name      *string
	Image     *string
	Price     *float64
	IsInStock *bool
}

// Apply overwrites the plant's mutable fields with the values present in the
// update. Validation runs before any field is written, so a rejected update
// leaves the plant unchanged.
func (p *Plant) Apply(u PlantUpdate) error {
	if u.Name != nil {
		if err := ValidateName(*u.Name); err != nil {
			return err
		}
	}
	if u.Image != nil {
		if err := ValidateImage(*u.Image); err != nil {
			return err
		}
	}
	if u.Price != nil {
		if err := ValidatePrice(*u.Price); err != nil {
			return err
		}
	}

	if u.Name != nil {
		p.Name = strings.TrimSpace(*u.Name)
	}
	if u.Image != nil {
		p.Image = strings.TrimSpace(*u.Image)
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.IsInStock != nil {
		p.IsInStock = *u.IsInStock
	}

	return nil
}

// =============================================================================
// Field Validation
// =============================================================================

// ValidateName checks plant name requirements.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	return nil
}

// ValidateImage checks plant image requirements. The value is treated as an
// opaque URI or path; it is never fetched.
func ValidateImage(image string) error {
	if strings.TrimSpace(image) == "" {
		return ErrImageRequired
	}
	return nil
}

// ValidatePrice checks plant price requirements.
func ValidatePrice(price float64) error {
	if price < 0 {
		return ErrPriceNegative
	}
	return nil
}

// IsValidationError reports whether err is one of the domain field validation
// errors, as opposed to a storage failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrImageRequired) ||
		errors.Is(err, ErrPriceRequired) ||
		errors.Is(err, ErrPriceNegative)
}
