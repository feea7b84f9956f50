package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/greengarden/greengarden-server/internal/logger"
	"github.com/greengarden/greengarden-server/internal/model"
)

// Plant is the plant catalog data-access service.
type Plant struct {
	store  model.PlantStore
	logger *logger.Logger
}

func NewPlant(store model.PlantStore, logger *logger.Logger) *Plant {
	return &Plant{store: store, logger: logger}
}

// Create stores a new plant owned by ownerID and returns it with its assigned id.
func (s *Plant) Create(ctx context.Context, ownerID uuid.UUID, plant model.Plant) (model.Plant, error) {
	if err := plant.Validate(); err != nil {
		return model.Plant{}, err
	}

	plant.ID = uuid.New()
	plant.OwnerID = ownerID

	created, err := s.store.Create(ctx, plant)
	if err != nil {
		s.logger.Error("Plant service: failed to create plant",
			"owner_id", ownerID,
			"error", err.Error())
		return model.Plant{}, fmt.Errorf("failed to create plant: %w", err)
	}

	s.logger.Info("Plant service: plant created",
		"plant_id", created.ID,
		"owner_id", ownerID)

	return created, nil
}

// Get returns the plant with id. A missing plant is reported by found=false, not an error.
func (s *Plant) Get(ctx context.Context, id uuid.UUID) (plant model.Plant, found bool, err error) {
	plant, err = s.store.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Plant{}, false, nil
	}
	if err != nil {
		return model.Plant{}, false, fmt.Errorf("failed to get plant: %w", err)
	}
	return plant, true, nil
}

func (s *Plant) List(ctx context.Context) ([]model.Plant, error) {
	plants, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}
	return plants, nil
}

// Update merges patch into the stored plant. It fails with model.ErrNotFound when the plant is absent.
func (s *Plant) Update(ctx context.Context, id uuid.UUID, patch model.PlantPatch) (model.Plant, error) {
	if err := patch.Validate(); err != nil {
		return model.Plant{}, err
	}

	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			s.logger.Error("Plant service: failed to update plant",
				"plant_id", id,
				"error", err.Error())
		}
		return model.Plant{}, fmt.Errorf("failed to update plant: %w", err)
	}

	s.logger.Debug("Plant service: plant updated", "plant_id", id)
	return updated, nil
}

// Delete removes the plant. Deleting an absent plant succeeds.
func (s *Plant) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Error("Plant service: failed to delete plant",
			"plant_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete plant: %w", err)
	}

	s.logger.Info("Plant service: plant deleted", "plant_id", id)
	return nil
}
