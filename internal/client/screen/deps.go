// Package screen holds the headless controllers behind the plant list, the
// plant form and the profile editor. Views render their state and forward
// user input; every backend call goes through the interfaces below.
package screen

import (
	"context"

	"github.com/google/uuid"

	"github.com/greengarden/greengarden-server/internal/client/state"
	"github.com/greengarden/greengarden-server/internal/logger"
	"github.com/greengarden/greengarden-server/internal/model"
)

// PlantsAPI is the plant part of the data-access layer.
type PlantsAPI interface {
	CreatePlant(ctx context.Context, plant model.Plant) (model.Plant, error)
	UpdatePlant(ctx context.Context, id uuid.UUID, patch model.PlantPatch) (model.Plant, error)
	DeletePlant(ctx context.Context, id uuid.UUID) error
	WatchPlants(ctx context.Context, onNext func([]model.Plant), onErr func(error)) (cancel func(), err error)
}

// ProfileAPI is the user part of the data-access layer.
type ProfileAPI interface {
	Me(ctx context.Context) (model.User, bool, error)
	UpdateUser(ctx context.Context, id uuid.UUID, patch model.UserPatch) (model.User, error)
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, password string) error
	UploadProfileImage(ctx context.Context, id uuid.UUID, data []byte) (string, error)
	DeleteProfileImage(ctx context.Context, id uuid.UUID) error
	Logout(ctx context.Context) error
}

// Notifier shows a short modal message to the user.
type Notifier interface {
	Notify(title, message string)
}

// Deps bundles what the controllers share.
type Deps struct {
	Plants   PlantsAPI
	Profile  ProfileAPI
	Loader   *state.Loader
	Session  *state.Session
	Notifier Notifier
	Prompt   ImagePrompt
	Picker   ImagePicker
	Reader   ImageReader
	Logger   *logger.Logger
}
