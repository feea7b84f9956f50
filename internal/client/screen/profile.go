package screen

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/greengarden/greengarden-server/internal/model"
)

// ProfileForm holds the editable profile fields.
type ProfileForm struct {
	Username     string
	Email        string
	Password     string
	ProfileImage string
}

// ProfileEditor shows the signed-in user's profile and saves edits to it.
type ProfileEditor struct {
	deps Deps

	mu      sync.Mutex
	user    *model.User
	editing bool
	form    ProfileForm
}

func NewProfileEditor(deps Deps) *ProfileEditor {
	return &ProfileEditor{deps: deps}
}

// Load fetches the profile. found is false when the account has no profile document.
func (e *ProfileEditor) Load(ctx context.Context) (found bool, err error) {
	token := e.deps.Loader.Acquire("load profile")
	defer token.Release()

	user, found, err := e.deps.Profile.Me(ctx)
	if err != nil {
		e.deps.Logger.Error("Profile editor: failed to load profile", "error", err.Error())
		return false, err
	}
	if !found {
		return false, nil
	}

	e.mu.Lock()
	e.user = &user
	e.form = formFrom(user)
	e.mu.Unlock()

	if e.deps.Session != nil {
		e.deps.Session.Set(user)
	}
	return true, nil
}

func formFrom(user model.User) ProfileForm {
	return ProfileForm{
		Username:     user.Username,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
	}
}

// User returns the loaded profile.
func (e *ProfileEditor) User() (model.User, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.user == nil {
		return model.User{}, false
	}
	return *e.user, true
}

func (e *ProfileEditor) Editing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editing
}

func (e *ProfileEditor) Form() ProfileForm {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form
}

// Edit switches to edit mode with the form reset to the loaded profile.
func (e *ProfileEditor) Edit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.editing = true
	e.resetForm()
}

// Cancel drops unsaved edits and returns to view mode.
func (e *ProfileEditor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.editing = false
	e.resetForm()
}

func (e *ProfileEditor) resetForm() {
	if e.user != nil {
		e.form = formFrom(*e.user)
	} else {
		e.form = ProfileForm{}
	}
}

func (e *ProfileEditor) SetUsername(username string) {
	e.mu.Lock()
	e.form.Username = username
	e.mu.Unlock()
}

func (e *ProfileEditor) SetEmail(email string) {
	e.mu.Lock()
	e.form.Email = email
	e.mu.Unlock()
}

func (e *ProfileEditor) SetPassword(password string) {
	e.mu.Lock()
	e.form.Password = password
	e.mu.Unlock()
}

// ChooseImage replaces the form image with a picked local URI or clears it.
// The upload happens on Save.
func (e *ProfileEditor) ChooseImage(ctx context.Context) error {
	e.mu.Lock()
	current := e.form.ProfileImage
	e.mu.Unlock()

	image, changed, err := chooseImage(ctx, e.deps.Prompt, e.deps.Picker, current)
	if err != nil {
		return err
	}
	if changed {
		e.mu.Lock()
		e.form.ProfileImage = image
		e.mu.Unlock()
	}
	return nil
}

// Save writes the form. Steps run in order and the first failure stops the
// rest; steps already done are kept.
//
//  1. a new local image is uploaded, a cleared image is deleted
//  2. a changed email is sent to the identity provider
//  3. a non-empty password is sent to the identity provider
//  4. the profile document is written
func (e *ProfileEditor) Save(ctx context.Context) error {
	e.mu.Lock()
	form := e.form
	var user model.User
	loaded := e.user != nil
	if loaded {
		user = *e.user
	}
	e.mu.Unlock()

	if strings.TrimSpace(form.Username) == "" || strings.TrimSpace(form.Email) == "" {
		e.deps.Notifier.Notify("Error", "Username and email are required")
		return model.NewValidationError("profile", "username and email are required")
	}
	if !loaded {
		return model.ErrUnauthenticated
	}

	token := e.deps.Loader.Acquire("save profile")
	defer token.Release()

	saved, err := e.save(ctx, user, form)
	if err != nil {
		e.deps.Logger.Error("Profile editor: save failed",
			"user_id", user.ID,
			"error", err.Error())
		e.deps.Notifier.Notify("Error", "Failed to update profile")
		return err
	}

	e.mu.Lock()
	e.user = &saved
	e.editing = false
	e.form = formFrom(saved)
	e.mu.Unlock()

	if e.deps.Session != nil {
		e.deps.Session.Set(saved)
	}
	e.deps.Notifier.Notify("Success", "Profile updated successfully!")
	return nil
}

func (e *ProfileEditor) save(ctx context.Context, user model.User, form ProfileForm) (model.User, error) {
	image := user.ProfileImage

	switch {
	case form.ProfileImage != "" && form.ProfileImage != user.ProfileImage && model.IsLocalImage(form.ProfileImage):
		data, err := e.deps.Reader.ReadImage(ctx, form.ProfileImage)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to read image: %w", err)
		}
		url, err := e.deps.Profile.UploadProfileImage(ctx, user.ID, data)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to upload image: %w", err)
		}
		image = url
	case form.ProfileImage != "" && form.ProfileImage != user.ProfileImage:
		image = form.ProfileImage
	case form.ProfileImage == "" && user.ProfileImage != "":
		if err := e.deps.Profile.DeleteProfileImage(ctx, user.ID); err != nil {
			return model.User{}, fmt.Errorf("failed to delete image: %w", err)
		}
		image = ""
	}

	if form.Email != user.Email {
		if err := e.deps.Profile.UpdateEmail(ctx, user.ID, form.Email); err != nil {
			return model.User{}, fmt.Errorf("failed to update email: %w", err)
		}
	}

	if form.Password != "" {
		if err := e.deps.Profile.UpdatePassword(ctx, user.ID, form.Password); err != nil {
			return model.User{}, fmt.Errorf("failed to update password: %w", err)
		}
	}

	saved, err := e.deps.Profile.UpdateUser(ctx, user.ID, model.UserPatch{
		Username:     &form.Username,
		Email:        &form.Email,
		ProfileImage: &image,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return saved, nil
}

// Logout ends the session and clears the current user.
func (e *ProfileEditor) Logout(ctx context.Context) error {
	token := e.deps.Loader.Acquire("logout")
	defer token.Release()

	err := e.deps.Profile.Logout(ctx)

	e.mu.Lock()
	e.user = nil
	e.editing = false
	e.form = ProfileForm{}
	e.mu.Unlock()

	if e.deps.Session != nil {
		e.deps.Session.Clear()
	}
	if err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}
	return nil
}
