package screen_test

import (
	"testing"

	"github.com/greengarden/greengarden-server/internal/client/screen"
	"github.com/greengarden/greengarden-server/internal/client/state"
	"github.com/greengarden/greengarden-server/internal/mocks"
	"github.com/greengarden/greengarden-server/internal/testutil"
)

type fixture struct {
	plants   *mocks.PlantsAPI
	profile  *mocks.ProfileAPI
	notifier *mocks.Notifier
	prompt   *mocks.ImagePrompt
	picker   *mocks.ImagePicker
	reader   *mocks.ImageReader
	loader   *state.Loader
	session  *state.Session
	deps     screen.Deps
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		plants:   mocks.NewPlantsAPI(t),
		profile:  mocks.NewProfileAPI(t),
		notifier: mocks.NewNotifier(t),
		prompt:   mocks.NewImagePrompt(t),
		picker:   mocks.NewImagePicker(t),
		reader:   mocks.NewImageReader(t),
		loader:   state.NewLoader(),
		session:  state.NewSession(),
	}
	f.deps = screen.Deps{
		Plants:   f.plants,
		Profile:  f.profile,
		Loader:   f.loader,
		Session:  f.session,
		Notifier: f.notifier,
		Prompt:   f.prompt,
		Picker:   f.picker,
		Reader:   f.reader,
		Logger:   testutil.MakeNoopLogger(),
	}
	return f
}
