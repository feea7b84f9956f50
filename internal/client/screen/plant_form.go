package screen

import (
	"context"
	"strings"
	"sync"

	"github.com/greengarden/greengarden-server/internal/model"
)

// DefaultCategory is preselected in a new plant form.
const DefaultCategory = model.CategoryIndoor

// PlantForm creates a plant or edits an existing one.
type PlantForm struct {
	deps    Deps
	editing *model.Plant
	onClose func()

	mu          sync.Mutex
	name        string
	description string
	category    model.Category
	image       string
}

// NewPlantForm prepares the form. A nil editing plant means a new plant.
func NewPlantForm(deps Deps, editing *model.Plant, onClose func()) *PlantForm {
	f := &PlantForm{deps: deps, onClose: onClose, category: DefaultCategory}
	if editing != nil {
		p := *editing
		f.editing = &p
		f.name = p.PlantName
		f.description = p.Description
		f.category = p.Category
		f.image = p.Image
	}
	return f
}

func (f *PlantForm) IsNew() bool {
	return f.editing == nil
}

func (f *PlantForm) SetName(name string) {
	f.mu.Lock()
	f.name = name
	f.mu.Unlock()
}

func (f *PlantForm) SetDescription(description string) {
	f.mu.Lock()
	f.description = description
	f.mu.Unlock()
}

func (f *PlantForm) SetCategory(category model.Category) {
	f.mu.Lock()
	f.category = category
	f.mu.Unlock()
}

// Values returns the current field values as a plant.
func (f *PlantForm) Values() model.Plant {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := model.Plant{}
	if f.editing != nil {
		p = *f.editing
	}
	p.PlantName = f.name
	p.Description = f.description
	p.Category = f.category
	p.Image = f.image
	return p
}

// ChooseImage replaces the image with a picked local URI, or clears it.
// Nothing is uploaded.
func (f *PlantForm) ChooseImage(ctx context.Context) error {
	f.mu.Lock()
	current := f.image
	f.mu.Unlock()

	image, changed, err := chooseImage(ctx, f.deps.Prompt, f.deps.Picker, current)
	if err != nil {
		return err
	}
	if changed {
		f.mu.Lock()
		f.image = image
		f.mu.Unlock()
	}
	return nil
}

// Submit validates the name and creates or updates the plant. The form closes on success.
func (f *PlantForm) Submit(ctx context.Context) error {
	values := f.Values()

	if strings.TrimSpace(values.PlantName) == "" {
		f.deps.Notifier.Notify("Validation", "Plant Name is required")
		return model.NewValidationError("plantName", "plant name is required")
	}

	token := f.deps.Loader.Acquire("save plant")
	defer token.Release()

	var err error
	if f.IsNew() {
		err = f.create(ctx, values)
	} else {
		err = f.update(ctx, values)
	}
	if err != nil {
		action := "update"
		if f.IsNew() {
			action = "create"
		}
		f.deps.Logger.Error("Plant form: save failed",
			"action", action,
			"error", err.Error())
		f.deps.Notifier.Notify("Error", "Failed to "+action+" plant")
		return err
	}

	if f.onClose != nil {
		f.onClose()
	}
	return nil
}

func (f *PlantForm) create(ctx context.Context, values model.Plant) error {
	plant := model.Plant{
		PlantName:   values.PlantName,
		Description: values.Description,
		Category:    values.Category,
		Image:       values.Image,
	}
	if f.deps.Session != nil {
		if user, ok := f.deps.Session.Current(); ok {
			plant.OwnerID = user.ID
		}
	}

	_, err := f.deps.Plants.CreatePlant(ctx, plant)
	return err
}

func (f *PlantForm) update(ctx context.Context, values model.Plant) error {
	_, err := f.deps.Plants.UpdatePlant(ctx, f.editing.ID, model.PlantPatch{
		PlantName:   &values.PlantName,
		Description: &values.Description,
		Category:    &values.Category,
		Image:       &values.Image,
	})
	return err
}
