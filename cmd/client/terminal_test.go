package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengarden/greengarden-server/internal/client/screen"
)

func TestLocalPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		uri     string
		want    string
		wantErr bool
	}{
		{name: "plain path", uri: "/tmp/fern.jpg", want: "/tmp/fern.jpg"},
		{name: "relative path", uri: "photos/fern.jpg", want: "photos/fern.jpg"},
		{name: "file uri", uri: "file:///tmp/fern.jpg", want: "/tmp/fern.jpg"},
		{name: "file uri with localhost", uri: "file://localhost/tmp/fern.jpg", want: "/tmp/fern.jpg"},
		{name: "escaped file uri", uri: "file:///tmp/money%20plant.jpg", want: "/tmp/money plant.jpg"},
		{name: "remote url", uri: "https://garden.example.com/fern.jpg", wantErr: true},
		{name: "file uri without path", uri: "file://", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := localPath(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileReader_ReadImage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fern.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg"), 0o600))

	for _, uri := range []string{path, "file://" + filepath.ToSlash(path)} {
		data, err := fileReader{}.ReadImage(context.Background(), uri)
		require.NoError(t, err, uri)
		assert.Equal(t, []byte("jpeg"), data)
	}

	_, err := fileReader{}.ReadImage(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"))
	assert.Error(t, err)
}

func TestFlagImage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	options := []screen.ImageChoice{screen.ImageCamera, screen.ImageGallery, screen.ImageRemove, screen.ImageCancel}

	prompt, picker := imageFlags("/tmp/fern.jpg", false)
	choice, err := prompt.ChooseImage(ctx, options)
	require.NoError(t, err)
	assert.Equal(t, screen.ImageGallery, choice)
	uri, ok, err := picker.PickImage(ctx, choice)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/tmp/fern.jpg", uri)

	prompt, _ = imageFlags("", true)
	choice, err = prompt.ChooseImage(ctx, options)
	require.NoError(t, err)
	assert.Equal(t, screen.ImageRemove, choice)

	choice, err = prompt.ChooseImage(ctx, options[:2])
	require.NoError(t, err)
	assert.Equal(t, screen.ImageCancel, choice, "remove is only picked when offered")
}

func TestTerminalNotifier(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	terminalNotifier{out: &out}.Notify("Success", "Plant saved")
	assert.Equal(t, "Success: Plant saved\n", out.String())
}
