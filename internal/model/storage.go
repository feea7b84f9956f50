package model

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Storage is a path-addressed blob store. Upload overwrites, Delete of a missing key succeeds.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ProfileImageKey returns the fixed blob key of a user's profile image.
func ProfileImageKey(userID uuid.UUID) string {
	return "profileImages/" + userID.String() + ".jpg"
}

// IsLocalImage reports whether uri points at a file on the device rather than at a
// durable download URL. Image fields carry either form without a tag.
func IsLocalImage(uri string) bool {
	if uri == "" {
		return false
	}
	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" {
		return true
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return false
	}
	return true
}
