package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserPatch_WithoutPassword(t *testing.T) {
	name := "ann"
	password := "secret1"
	patch := UserPatch{Username: &name, Password: &password}

	stripped := patch.WithoutPassword()
	assert.Nil(t, stripped.Password)
	assert.Equal(t, &name, stripped.Username)
	assert.NotNil(t, patch.Password, "original patch is untouched")
}

func TestProfileImageKey(t *testing.T) {
	id := uuid.MustParse("0b6f1b1e-6c5f-4f6e-9a8e-1f2d3c4b5a69")
	assert.Equal(t, "profileImages/0b6f1b1e-6c5f-4f6e-9a8e-1f2d3c4b5a69.jpg", ProfileImageKey(id))
}

func TestIsLocalImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		uri  string
		want bool
	}{
		{uri: "", want: false},
		{uri: "https://garden.example.com/images/a.jpg", want: false},
		{uri: "HTTP://garden.example.com/a.jpg", want: false},
		{uri: "file:///data/user/0/cache/a.jpg", want: true},
		{uri: "content://media/external/images/1", want: true},
		{uri: "ph://ABC-123", want: true},
		{uri: "/tmp/a.jpg", want: true},
		{uri: "relative/a.jpg", want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.uri, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsLocalImage(tt.uri))
		})
	}
}
