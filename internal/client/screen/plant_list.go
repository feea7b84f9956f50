package screen

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/greengarden/greengarden-server/internal/model"
)

// PlantList keeps the live plant collection and the filtered view of it.
type PlantList struct {
	deps Deps

	mu       sync.Mutex
	records  []model.Plant
	category string
	search   string
	cancel   func()
	err      error
	onChange func(visible []model.Plant)
}

func NewPlantList(deps Deps) *PlantList {
	return &PlantList{deps: deps, category: CategoryAll}
}

// OnChange registers the callback that receives the visible list after every change.
func (l *PlantList) OnChange(fn func(visible []model.Plant)) {
	l.mu.Lock()
	l.onChange = fn
	l.mu.Unlock()
}

// Open starts the live subscription. The loader stays busy until the first
// snapshot or error arrives.
func (l *PlantList) Open(ctx context.Context) error {
	l.mu.Lock()
	if l.cancel != nil {
		l.mu.Unlock()
		return errors.New("plant list already open")
	}
	l.mu.Unlock()

	token := l.deps.Loader.Acquire("load plants")

	cancel, err := l.deps.Plants.WatchPlants(ctx,
		func(plants []model.Plant) {
			l.replace(plants)
			token.Release()
		},
		func(err error) {
			l.fail(err)
			token.Release()
		},
	)
	if err != nil {
		token.Release()
		return fmt.Errorf("failed to watch plants: %w", err)
	}

	l.mu.Lock()
	l.cancel = func() {
		cancel()
		token.Release()
	}
	l.mu.Unlock()
	return nil
}

// Close ends the subscription. The last record set stays readable.
func (l *PlantList) Close() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (l *PlantList) replace(plants []model.Plant) {
	l.mu.Lock()
	l.records = plants
	l.err = nil
	l.mu.Unlock()
	l.changed()
}

func (l *PlantList) fail(err error) {
	l.deps.Logger.Error("Plant list: subscription failed", "error", err.Error())

	l.mu.Lock()
	l.err = err
	l.mu.Unlock()
}

// Err returns the error that ended the subscription, if any.
func (l *PlantList) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *PlantList) SetCategory(category string) {
	l.mu.Lock()
	l.category = category
	l.mu.Unlock()
	l.changed()
}

func (l *PlantList) SetSearch(search string) {
	l.mu.Lock()
	l.search = search
	l.mu.Unlock()
	l.changed()
}

func (l *PlantList) Category() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.category
}

func (l *PlantList) Search() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.search
}

// Records returns the last full snapshot.
func (l *PlantList) Records() []model.Plant {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]model.Plant(nil), l.records...)
}

// Visible returns the records that pass the category and search facets.
func (l *PlantList) Visible() []model.Plant {
	l.mu.Lock()
	defer l.mu.Unlock()
	return FilterPlants(l.records, l.category, l.search)
}

func (l *PlantList) changed() {
	l.mu.Lock()
	fn := l.onChange
	visible := FilterPlants(l.records, l.category, l.search)
	l.mu.Unlock()

	if fn != nil {
		fn(visible)
	}
}

// Delete removes a plant. The list updates when the feed delivers the next snapshot.
func (l *PlantList) Delete(ctx context.Context, id uuid.UUID) error {
	token := l.deps.Loader.Acquire("delete plant")
	defer token.Release()

	if err := l.deps.Plants.DeletePlant(ctx, id); err != nil {
		l.deps.Logger.Error("Plant list: delete failed",
			"plant_id", id,
			"error", err.Error())
		return err
	}
	return nil
}

// Add opens an empty form.
func (l *PlantList) Add(onClose func()) *PlantForm {
	return NewPlantForm(l.deps, nil, onClose)
}

// Edit opens a form pre-filled with plant.
func (l *PlantList) Edit(plant model.Plant, onClose func()) *PlantForm {
	return NewPlantForm(l.deps, &plant, onClose)
}
