package screen

import (
	"context"
	"fmt"
)

// ImageChoice is one entry of the image source prompt.
type ImageChoice string

const (
	ImageCamera  ImageChoice = "camera"
	ImageGallery ImageChoice = "gallery"
	ImageRemove  ImageChoice = "remove"
	ImageCancel  ImageChoice = "cancel"
)

// ImagePrompt asks the user where a new image should come from.
type ImagePrompt interface {
	ChooseImage(ctx context.Context, options []ImageChoice) (ImageChoice, error)
}

// ImagePicker lets the user take or pick an image and returns its local URI.
// ok is false when the user backed out.
type ImagePicker interface {
	PickImage(ctx context.Context, source ImageChoice) (uri string, ok bool, err error)
}

// ImageReader loads the bytes behind a local image URI.
type ImageReader interface {
	ReadImage(ctx context.Context, uri string) ([]byte, error)
}

// imageOptions lists the prompt entries. Remove is only offered when there is something to remove.
func imageOptions(current string) []ImageChoice {
	options := []ImageChoice{ImageCamera, ImageGallery}
	if current != "" {
		options = append(options, ImageRemove)
	}
	return append(options, ImageCancel)
}

// chooseImage runs the prompt and picker and returns the new image value.
// changed is false when the user cancelled at any point.
func chooseImage(ctx context.Context, prompt ImagePrompt, picker ImagePicker, current string) (image string, changed bool, err error) {
	choice, err := prompt.ChooseImage(ctx, imageOptions(current))
	if err != nil {
		return current, false, fmt.Errorf("failed to choose image source: %w", err)
	}

	switch choice {
	case ImageCamera, ImageGallery:
		uri, ok, err := picker.PickImage(ctx, choice)
		if err != nil {
			return current, false, fmt.Errorf("failed to pick image: %w", err)
		}
		if !ok {
			return current, false, nil
		}
		return uri, true, nil
	case ImageRemove:
		if current == "" {
			return current, false, nil
		}
		return "", true, nil
	default:
		return current, false, nil
	}
}
