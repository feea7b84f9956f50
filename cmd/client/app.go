package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/greengarden/greengarden-server/internal/client/api"
	"github.com/greengarden/greengarden-server/internal/client/screen"
	"github.com/greengarden/greengarden-server/internal/model"
)

var errUsage = errors.New("unknown command, run without arguments for usage")

type app struct {
	client *api.Client
	deps   screen.Deps
	out    io.Writer
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "signup":
		return a.signUp(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.client.Logout(ctx)
	case "me":
		return a.me(ctx)
	case "plants":
		if len(args) == 0 {
			return errUsage
		}
		return a.plants(ctx, args[0], args[1:])
	case "profile":
		if len(args) == 0 {
			return errUsage
		}
		return a.profile(ctx, args[0], args[1:])
	default:
		return errUsage
	}
}

func (a *app) signUp(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	username := fs.String("username", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password, at least 6 characters")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := a.client.SignUp(ctx, *username, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Account created: %s\n", id)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	session, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s\n", session.UserID)
	return nil
}

func (a *app) me(ctx context.Context) error {
	editor := screen.NewProfileEditor(a.deps)
	found, err := editor.Load(ctx)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(a.out, "No profile found")
		return nil
	}
	user, _ := editor.User()
	printUser(a.out, user)
	return nil
}

func (a *app) plants(ctx context.Context, sub string, args []string) error {
	switch sub {
	case "list", "watch":
		return a.listPlants(ctx, sub == "watch", args)
	case "add":
		return a.addPlant(ctx, args)
	case "edit":
		return a.editPlant(ctx, args)
	case "delete":
		fs := flag.NewFlagSet("plants delete", flag.ContinueOnError)
		id := fs.String("id", "", "plant id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		plantID, err := uuid.Parse(*id)
		if err != nil {
			return fmt.Errorf("invalid plant id: %w", err)
		}
		return screen.NewPlantList(a.deps).Delete(ctx, plantID)
	default:
		return errUsage
	}
}

func (a *app) listPlants(ctx context.Context, watch bool, args []string) error {
	fs := flag.NewFlagSet("plants list", flag.ContinueOnError)
	category := fs.String("category", screen.CategoryAll, "one of "+strings.Join(screen.FilterCategories(), ", "))
	search := fs.String("search", "", "case-insensitive name filter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list := screen.NewPlantList(a.deps)
	list.SetCategory(*category)
	list.SetSearch(*search)

	updates := make(chan []model.Plant, 1)
	list.OnChange(func(visible []model.Plant) {
		select {
		case updates <- visible:
		default:
			// drop the stale pending value so the latest one wins
			select {
			case <-updates:
			default:
			}
			updates <- visible
		}
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	idle := make(chan struct{}, 1)
	unsubscribe := a.deps.Loader.OnChange(func(busy bool) {
		if !busy {
			select {
			case idle <- struct{}{}:
			default:
			}
		}
	})
	defer unsubscribe()

	if err := list.Open(ctx); err != nil {
		return err
	}
	defer list.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case visible := <-updates:
			printPlants(a.out, visible)
			if !watch {
				return nil
			}
		case <-idle:
			if err := list.Err(); err != nil {
				return err
			}
		}
	}
}

func (a *app) addPlant(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("plants add", flag.ContinueOnError)
	name := fs.String("name", "", "plant name")
	description := fs.String("description", "", "description")
	category := fs.String("category", string(screen.DefaultCategory), "indoor, outdoor or both")
	image := fs.String("image", "", "image URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, err := model.ParseCategory(*category)
	if err != nil {
		return err
	}

	if err := a.loadSession(ctx); err != nil {
		return err
	}

	deps := a.deps
	deps.Prompt, deps.Picker = imageFlags(*image, false)
	form := screen.NewPlantForm(deps, nil, a.saved)
	form.SetName(*name)
	form.SetDescription(*description)
	form.SetCategory(c)
	if err := form.ChooseImage(ctx); err != nil {
		return err
	}
	return form.Submit(ctx)
}

func (a *app) editPlant(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("plants edit", flag.ContinueOnError)
	id := fs.String("id", "", "plant id")
	name := fs.String("name", "", "plant name")
	description := fs.String("description", "", "description")
	category := fs.String("category", "", "indoor, outdoor or both")
	image := fs.String("image", "", "image URL")
	removeImage := fs.Bool("remove-image", false, "clear the image")
	if err := fs.Parse(args); err != nil {
		return err
	}

	plantID, err := uuid.Parse(*id)
	if err != nil {
		return fmt.Errorf("invalid plant id: %w", err)
	}

	plant, found, err := a.client.GetPlant(ctx, plantID)
	if err != nil {
		return err
	}
	if !found {
		return model.ErrNotFound
	}

	deps := a.deps
	deps.Prompt, deps.Picker = imageFlags(*image, *removeImage)
	form := screen.NewPlantForm(deps, &plant, a.saved)

	set := setFlags(fs)
	if set["name"] {
		form.SetName(*name)
	}
	if set["description"] {
		form.SetDescription(*description)
	}
	if set["category"] {
		c, err := model.ParseCategory(*category)
		if err != nil {
			return err
		}
		form.SetCategory(c)
	}
	if err := form.ChooseImage(ctx); err != nil {
		return err
	}
	return form.Submit(ctx)
}

func (a *app) profile(ctx context.Context, sub string, args []string) error {
	switch sub {
	case "edit":
		return a.editProfile(ctx, args)
	case "delete":
		user, found, err := a.client.Me(ctx)
		if err != nil {
			return err
		}
		if !found {
			return model.ErrNotFound
		}
		if err := a.client.DeleteAccount(ctx, user.ID); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Account deleted")
		return nil
	default:
		return errUsage
	}
}

func (a *app) editProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile edit", flag.ContinueOnError)
	username := fs.String("username", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "new password")
	image := fs.String("image", "", "local file path or URL")
	removeImage := fs.Bool("remove-image", false, "remove the profile image")
	if err := fs.Parse(args); err != nil {
		return err
	}

	deps := a.deps
	deps.Prompt, deps.Picker = imageFlags(*image, *removeImage)
	editor := screen.NewProfileEditor(deps)

	found, err := editor.Load(ctx)
	if err != nil {
		return err
	}
	if !found {
		return model.ErrNotFound
	}

	editor.Edit()
	set := setFlags(fs)
	if set["username"] {
		editor.SetUsername(*username)
	}
	if set["email"] {
		editor.SetEmail(*email)
	}
	if set["password"] {
		editor.SetPassword(*password)
	}
	if err := editor.ChooseImage(ctx); err != nil {
		return err
	}
	return editor.Save(ctx)
}

func (a *app) saved() {
	a.deps.Notifier.Notify("Success", "Plant saved")
}

// loadSession fills the shared session so new plants get an owner.
func (a *app) loadSession(ctx context.Context) error {
	user, found, err := a.client.Me(ctx)
	if err != nil {
		return err
	}
	if found {
		a.deps.Session.Set(user)
	}
	return nil
}

func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

func printPlants(w io.Writer, plants []model.Plant) {
	if len(plants) == 0 {
		fmt.Fprintln(w, "No plants found")
		return
	}
	for _, p := range plants {
		fmt.Fprintf(w, "%s\t%-8s\t%s", p.ID, p.Category, p.PlantName)
		if p.Description != "" {
			fmt.Fprintf(w, "\t%s", p.Description)
		}
		fmt.Fprintln(w)
	}
}

func printUser(w io.Writer, user model.User) {
	fmt.Fprintf(w, "ID:       %s\n", user.ID)
	fmt.Fprintf(w, "Username: %s\n", user.Username)
	fmt.Fprintf(w, "Email:    %s\n", user.Email)
	if user.ProfileImage != "" {
		fmt.Fprintf(w, "Image:    %s\n", user.ProfileImage)
	}
}
