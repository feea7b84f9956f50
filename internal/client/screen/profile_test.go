package screen_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/greengarden/greengarden-server/internal/client/screen"
	"github.com/greengarden/greengarden-server/internal/model"
)

func loadedEditor(t *testing.T, f *fixture, user model.User) *screen.ProfileEditor {
	t.Helper()

	f.profile.On("Me", mock.Anything).Return(user, true, nil).Once()

	editor := screen.NewProfileEditor(f.deps)
	found, err := editor.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	return editor
}

func TestProfileEditor_Load(t *testing.T) {
	f := newFixture(t)
	user := model.User{ID: uuid.New(), Username: "ann", Email: "ann@example.com", ProfileImage: "https://img/ann.jpg"}

	editor := loadedEditor(t, f, user)

	assert.Equal(t, screen.ProfileForm{Username: "ann", Email: "ann@example.com", ProfileImage: "https://img/ann.jpg"}, editor.Form())
	current, ok := f.session.Current()
	require.True(t, ok)
	assert.Equal(t, user, current)
	assert.False(t, f.loader.Busy())
}

func TestProfileEditor_LoadMissingProfile(t *testing.T) {
	f := newFixture(t)
	f.profile.On("Me", mock.Anything).Return(model.User{}, false, nil).Once()

	editor := screen.NewProfileEditor(f.deps)
	found, err := editor.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	_, ok := editor.User()
	assert.False(t, ok)
}

func TestProfileEditor_EditAndCancel(t *testing.T) {
	f := newFixture(t)
	editor := loadedEditor(t, f, model.User{ID: uuid.New(), Username: "ann", Email: "ann@example.com"})

	editor.Edit()
	assert.True(t, editor.Editing())
	editor.SetUsername("anna")
	editor.SetPassword("secret1")

	editor.Cancel()
	assert.False(t, editor.Editing())
	assert.Equal(t, screen.ProfileForm{Username: "ann", Email: "ann@example.com"}, editor.Form())
}

func TestProfileEditor_SaveRequiresUsernameAndEmail(t *testing.T) {
	f := newFixture(t)
	editor := loadedEditor(t, f, model.User{ID: uuid.New(), Username: "ann", Email: "ann@example.com"})
	f.notifier.On("Notify", "Error", "Username and email are required").Twice()

	editor.Edit()
	editor.SetUsername(" ")
	require.ErrorIs(t, editor.Save(context.Background()), model.ErrValidation)

	editor.SetUsername("ann")
	editor.SetEmail("")
	require.ErrorIs(t, editor.Save(context.Background()), model.ErrValidation)

	assert.True(t, editor.Editing())
}

func TestProfileEditor_SaveOrder(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	editor := loadedEditor(t, f, model.User{ID: id, Username: "ann", Email: "ann@example.com"})

	const localURI = "file:///data/picked.jpg"
	const remoteURL = "https://garden.example.com/images/profileImages/x.jpg"

	f.prompt.On("ChooseImage", mock.Anything, mock.Anything).Return(screen.ImageGallery, nil).Once()
	f.picker.On("PickImage", mock.Anything, screen.ImageGallery).Return(localURI, true, nil).Once()

	var order []string
	record := func(step string) func(mock.Arguments) {
		return func(mock.Arguments) { order = append(order, step) }
	}

	f.reader.On("ReadImage", mock.Anything, localURI).Run(record("read")).Return([]byte("jpeg"), nil).Once()
	f.profile.On("UploadProfileImage", mock.Anything, id, []byte("jpeg")).Run(record("upload")).Return(remoteURL, nil).Once()
	f.profile.On("UpdateEmail", mock.Anything, id, "anna@example.com").Run(record("email")).Return(nil).Once()
	f.profile.On("UpdatePassword", mock.Anything, id, "new-secret").Run(record("password")).Return(nil).Once()
	f.profile.On("UpdateUser", mock.Anything, id, mock.MatchedBy(func(p model.UserPatch) bool {
		return *p.Username == "anna" && *p.Email == "anna@example.com" && *p.ProfileImage == remoteURL && p.Password == nil
	})).Run(record("document")).
		Return(model.User{ID: id, Username: "anna", Email: "anna@example.com", ProfileImage: remoteURL}, nil).Once()
	f.notifier.On("Notify", "Success", "Profile updated successfully!").Once()

	editor.Edit()
	editor.SetUsername("anna")
	editor.SetEmail("anna@example.com")
	editor.SetPassword("new-secret")
	require.NoError(t, editor.ChooseImage(context.Background()))

	require.NoError(t, editor.Save(context.Background()))

	assert.Equal(t, []string{"read", "upload", "email", "password", "document"}, order)
	assert.False(t, editor.Editing())
	assert.Empty(t, editor.Form().Password)
	user, _ := editor.User()
	assert.Equal(t, remoteURL, user.ProfileImage)
	current, _ := f.session.Current()
	assert.Equal(t, "anna", current.Username)
}

func TestProfileEditor_SaveRemovesImage(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	editor := loadedEditor(t, f, model.User{ID: id, Username: "ann", Email: "ann@example.com", ProfileImage: "https://img/ann.jpg"})

	f.prompt.On("ChooseImage", mock.Anything, []screen.ImageChoice{
		screen.ImageCamera, screen.ImageGallery, screen.ImageRemove, screen.ImageCancel,
	}).Return(screen.ImageRemove, nil).Once()
	f.profile.On("DeleteProfileImage", mock.Anything, id).Return(nil).Once()
	f.profile.On("UpdateUser", mock.Anything, id, mock.MatchedBy(func(p model.UserPatch) bool {
		return *p.ProfileImage == ""
	})).Return(model.User{ID: id, Username: "ann", Email: "ann@example.com"}, nil).Once()
	f.notifier.On("Notify", "Success", mock.Anything).Once()

	editor.Edit()
	require.NoError(t, editor.ChooseImage(context.Background()))
	require.NoError(t, editor.Save(context.Background()))

	f.profile.AssertNotCalled(t, "UpdateEmail", mock.Anything, mock.Anything, mock.Anything)
	f.profile.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileEditor_FailureStopsRemainingSteps(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	editor := loadedEditor(t, f, model.User{ID: id, Username: "ann", Email: "ann@example.com"})

	f.profile.On("UpdateEmail", mock.Anything, id, "taken@example.com").Return(model.ErrEmailTaken).Once()
	f.notifier.On("Notify", "Error", "Failed to update profile").Once()

	editor.Edit()
	editor.SetEmail("taken@example.com")
	editor.SetPassword("new-secret")

	require.ErrorIs(t, editor.Save(context.Background()), model.ErrEmailTaken)
	assert.True(t, editor.Editing())
	assert.Equal(t, "new-secret", editor.Form().Password)
	assert.False(t, f.loader.Busy())

	f.profile.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	f.profile.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileEditor_Logout(t *testing.T) {
	f := newFixture(t)
	editor := loadedEditor(t, f, model.User{ID: uuid.New(), Username: "ann", Email: "ann@example.com"})
	f.profile.On("Logout", mock.Anything).Return(nil).Once()

	require.NoError(t, editor.Logout(context.Background()))

	_, ok := editor.User()
	assert.False(t, ok)
	_, ok = f.session.Current()
	assert.False(t, ok)
}
