package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/greengarden/greengarden-server/internal/mocks"
	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestPlant_Create(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	tests := []struct {
		name    string
		in      model.Plant
		setup   func(store *servermocks.PlantStore)
		wantErr error
	}{
		{
			name: "assigns id and owner",
			in:   model.Plant{PlantName: "Monstera", Description: "big leaves", Category: model.CategoryIndoor},
			setup: func(store *servermocks.PlantStore) {
				store.On("Create", mock.Anything, mock.MatchedBy(func(p model.Plant) bool {
					return p.ID != uuid.Nil && p.OwnerID == owner && p.PlantName == "Monstera"
				})).Return(func(_ context.Context, p model.Plant) (model.Plant, error) {
					return p, nil
				})
			},
		},
		{
			name:    "blank name",
			in:      model.Plant{PlantName: "   ", Category: model.CategoryIndoor},
			wantErr: model.ErrValidation,
		},
		{
			name:    "unknown category",
			in:      model.Plant{PlantName: "Basil", Category: "herbal"},
			wantErr: model.ErrValidation,
		},
		{
			name: "store failure",
			in:   model.Plant{PlantName: "Basil", Category: model.CategoryBoth},
			setup: func(store *servermocks.PlantStore) {
				store.On("Create", mock.Anything, mock.Anything).Return(model.Plant{}, assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := servermocks.NewPlantStore(t)
			if tt.setup != nil {
				tt.setup(store)
			}

			svc := NewPlant(store, testutil.MakeNoopLogger())
			got, err := svc.Create(context.Background(), owner, tt.in)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, owner, got.OwnerID)
			assert.Equal(t, tt.in.PlantName, got.PlantName)
			assert.Equal(t, tt.in.Description, got.Description)
		})
	}
}

func TestPlant_Get(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	store := servermocks.NewPlantStore(t)
	store.On("GetByID", mock.Anything, id).Return(model.Plant{ID: id, PlantName: "Fern"}, nil).Once()
	store.On("GetByID", mock.Anything, id).Return(model.Plant{}, model.ErrNotFound).Once()
	store.On("GetByID", mock.Anything, id).Return(model.Plant{}, errors.New("db down")).Once()

	svc := NewPlant(store, testutil.MakeNoopLogger())

	got, found, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Fern", got.PlantName)

	_, found, err = svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = svc.Get(context.Background(), id)
	require.Error(t, err)
	assert.False(t, found)
}

func TestPlant_Update(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	empty := ""
	badCategory := model.Category("herbal")

	store := servermocks.NewPlantStore(t)
	patch := model.PlantPatch{Description: strPtr("water weekly")}
	store.On("Update", mock.Anything, id, patch).Return(model.Plant{ID: id, PlantName: "Fern", Description: "water weekly"}, nil).Once()
	store.On("Update", mock.Anything, id, patch).Return(model.Plant{}, model.ErrNotFound).Once()

	svc := NewPlant(store, testutil.MakeNoopLogger())

	got, err := svc.Update(context.Background(), id, patch)
	require.NoError(t, err)
	assert.Equal(t, "Fern", got.PlantName)

	_, err = svc.Update(context.Background(), id, patch)
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = svc.Update(context.Background(), id, model.PlantPatch{PlantName: &empty})
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = svc.Update(context.Background(), id, model.PlantPatch{Category: &badCategory})
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestPlant_ListAndDelete(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	store := servermocks.NewPlantStore(t)
	store.On("List", mock.Anything).Return([]model.Plant{{ID: id}}, nil).Once()
	store.On("Delete", mock.Anything, id).Return(nil).Twice()

	svc := NewPlant(store, testutil.MakeNoopLogger())

	plants, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, plants, 1)

	require.NoError(t, svc.Delete(context.Background(), id))
	require.NoError(t, svc.Delete(context.Background(), id))
}
