package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/greengarden/greengarden-server/internal/model"
)

var _ model.PlantStore = (*PlantRepository)(nil)

const plantColumns = `id, owner_id, plant_name, description, category, image, created_at, updated_at`

type PlantRepository struct {
	db *Connection
}

func NewPlantRepository(db *Connection) *PlantRepository {
	return &PlantRepository{
		db: db,
	}
}

func (r *PlantRepository) Create(ctx context.Context, plant model.Plant) (model.Plant, error) {
	query := `INSERT INTO plants (id, owner_id, plant_name, description, category, image)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + plantColumns

	saved, err := scanPlant(r.db.QueryRow(ctx, query,
		plant.ID, plant.OwnerID, plant.PlantName, plant.Description, string(plant.Category), plant.Image,
	))
	if err != nil {
		return model.Plant{}, fmt.Errorf("failed to create plant: %w", err)
	}

	return saved, nil
}

func (r *PlantRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE id = $1`

	plant, err := scanPlant(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Plant{}, model.ErrNotFound
		}
		return model.Plant{}, fmt.Errorf("failed to get plant by id: %w", err)
	}

	return plant, nil
}

func (r *PlantRepository) List(ctx context.Context) ([]model.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}
	defer rows.Close()

	plants := []model.Plant{}
	for rows.Next() {
		plant, err := scanPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plant: %w", err)
		}
		plants = append(plants, plant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}

	return plants, nil
}

func (r *PlantRepository) Update(ctx context.Context, id uuid.UUID, patch model.PlantPatch) (model.Plant, error) {
	query := `UPDATE plants SET
				plant_name = COALESCE($2, plant_name),
				description = COALESCE($3, description),
				category = COALESCE($4, category),
				image = COALESCE($5, image),
				updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + plantColumns

	var category *string
	if patch.Category != nil {
		c := string(*patch.Category)
		category = &c
	}

	plant, err := scanPlant(r.db.QueryRow(ctx, query,
		id, patch.PlantName, patch.Description, category, patch.Image,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Plant{}, model.ErrNotFound
		}
		return model.Plant{}, fmt.Errorf("failed to update plant: %w", err)
	}

	return plant, nil
}

// Delete removes the plant. Removing an absent plant is not an error.
func (r *PlantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM plants WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete plant: %w", err)
	}
	return nil
}

func scanPlant(row pgx.Row) (model.Plant, error) {
	var plant model.Plant
	err := row.Scan(
		&plant.ID, &plant.OwnerID, &plant.PlantName, &plant.Description,
		&plant.Category, &plant.Image, &plant.CreatedAt, &plant.UpdatedAt,
	)
	return plant, err
}
