package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/greengarden/greengarden-server/internal/client/screen"
)

type terminalNotifier struct {
	out io.Writer
}

func (n terminalNotifier) Notify(title, message string) {
	fmt.Fprintf(n.out, "%s: %s\n", title, message)
}

// flagImage answers the image prompt from command-line flags instead of
// asking interactively.
type flagImage struct {
	uri    string
	remove bool
}

func imageFlags(uri string, remove bool) (screen.ImagePrompt, screen.ImagePicker) {
	f := flagImage{uri: uri, remove: remove}
	return f, f
}

func (f flagImage) ChooseImage(_ context.Context, options []screen.ImageChoice) (screen.ImageChoice, error) {
	if f.uri != "" {
		return screen.ImageGallery, nil
	}
	if f.remove {
		for _, o := range options {
			if o == screen.ImageRemove {
				return screen.ImageRemove, nil
			}
		}
	}
	return screen.ImageCancel, nil
}

func (f flagImage) PickImage(_ context.Context, _ screen.ImageChoice) (string, bool, error) {
	return f.uri, f.uri != "", nil
}

type fileReader struct{}

func (fileReader) ReadImage(_ context.Context, uri string) ([]byte, error) {
	path, err := localPath(uri)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", uri, err)
	}
	return data, nil
}

// localPath turns a plain path or a file:// URI into a filesystem path.
func localPath(uri string) (string, error) {
	u, err := url.Parse(uri)
	// A one-letter scheme is a Windows drive.
	if err != nil || len(u.Scheme) <= 1 {
		return uri, nil
	}
	if !strings.EqualFold(u.Scheme, "file") {
		return "", fmt.Errorf("unsupported image location %s", uri)
	}
	if u.Path == "" {
		return "", fmt.Errorf("image location %s has no path", uri)
	}
	return u.Path, nil
}
