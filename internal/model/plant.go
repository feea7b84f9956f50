package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlantStore defines persistence operations for plants.
type PlantStore interface {
	Create(ctx context.Context, plant Plant) (Plant, error)
	GetByID(ctx context.Context, id uuid.UUID) (Plant, error)
	List(ctx context.Context) ([]Plant, error)
	Update(ctx context.Context, id uuid.UUID, patch PlantPatch) (Plant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Plant represents a catalog entry.
type Plant struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	PlantName   string    `json:"plantName"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlantPatch lists the fields of a partial plant update. Nil fields keep their stored value.
type PlantPatch struct {
	PlantName   *string   `json:"plantName,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Image       *string   `json:"image,omitempty"`
}

// Validate checks the fields that are present in the patch.
func (p PlantPatch) Validate() error {
	if p.PlantName != nil && strings.TrimSpace(*p.PlantName) == "" {
		return NewValidationError("plantName", "plant name is required")
	}
	if p.Category != nil && !p.Category.IsValid() {
		return NewValidationError("category", "unknown category "+string(*p.Category))
	}
	return nil
}

// Validate checks a plant before it is created.
func (p Plant) Validate() error {
	if strings.TrimSpace(p.PlantName) == "" {
		return NewValidationError("plantName", "plant name is required")
	}
	if !p.Category.IsValid() {
		return NewValidationError("category", "unknown category "+string(p.Category))
	}
	return nil
}

// Category enumerates where a plant grows.
type Category string

const (
	// CategoryIndoor is a house plant.
	CategoryIndoor Category = "indoor"
	// CategoryOutdoor is a garden plant.
	CategoryOutdoor Category = "outdoor"
	// CategoryBoth grows indoors and outdoors.
	CategoryBoth Category = "both"
)

// Categories returns the stored category values in display order.
func Categories() []Category {
	return []Category{CategoryIndoor, CategoryOutdoor, CategoryBoth}
}

// IsValid reports whether c is one of the stored categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryIndoor, CategoryOutdoor, CategoryBoth:
		return true
	}
	return false
}

// ParseCategory normalises s and returns the matching category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", NewValidationError("category", "unknown category "+s)
	}
	return c, nil
}
