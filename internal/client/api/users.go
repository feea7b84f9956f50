package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/greengarden/greengarden-server/internal/api/grpc/convert"
	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/proto"
)

// Me returns the signed-in user's profile.
func (c *Client) Me(ctx context.Context) (model.User, bool, error) {
	if _, ok := c.Session(); !ok {
		return model.User{}, false, model.ErrUnauthenticated
	}
	return c.GetUser(ctx, uuid.Nil)
}

// GetUser reads a profile. A missing profile is reported by found=false.
func (c *Client) GetUser(ctx context.Context, id uuid.UUID) (model.User, bool, error) {
	var resp *proto.GetUserResponse
	err := c.authorized(ctx, func(ctx context.Context) (err error) {
		resp, err = c.users.GetUser(ctx, &proto.GetUserRequest{UserId: convert.IDString(id)})
		return err
	})
	if err != nil {
		return model.User{}, false, err
	}
	if !resp.GetFound() {
		return model.User{}, false, nil
	}
	user, err := convert.UserFromProto(resp.GetUser())
	if err != nil {
		return model.User{}, false, fmt.Errorf("failed to decode user: %w", err)
	}
	return user, true, nil
}

func (c *Client) UpdateUser(ctx context.Context, id uuid.UUID, patch model.UserPatch) (model.User, error) {
	var resp *proto.UserResponse
	err := c.authorized(ctx, func(ctx context.Context) (err error) {
		resp, err = c.users.UpdateUser(ctx, &proto.UpdateUserRequest{UserId: convert.IDString(id), Patch: convert.UserPatchToProto(patch)})
		return err
	})
	if err != nil {
		return model.User{}, err
	}
	user, err := convert.UserFromProto(resp.GetUser())
	if err != nil {
		return model.User{}, fmt.Errorf("failed to decode user: %w", err)
	}
	return user, nil
}

func (c *Client) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	return c.authorized(ctx, func(ctx context.Context) error {
		_, err := c.users.UpdateEmail(ctx, &proto.UpdateEmailRequest{UserId: convert.IDString(id), Email: email})
		return err
	})
}

func (c *Client) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	return c.authorized(ctx, func(ctx context.Context) error {
		_, err := c.users.UpdatePassword(ctx, &proto.UpdatePasswordRequest{UserId: convert.IDString(id), Password: password})
		return err
	})
}

// DeleteAccount removes the account. Deleting the signed-in account also ends the local session.
func (c *Client) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	err := c.authorized(ctx, func(ctx context.Context) error {
		_, err := c.users.DeleteAccount(ctx, &proto.DeleteAccountRequest{UserId: convert.IDString(id)})
		return err
	})
	if err != nil {
		return err
	}

	if session, ok := c.Session(); ok && (id == uuid.Nil || id == session.UserID) {
		if err := c.clearSession(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
	}
	return nil
}

// UploadProfileImage replaces the profile image with data and returns its download URL.
func (c *Client) UploadProfileImage(ctx context.Context, id uuid.UUID, data []byte) (string, error) {
	var resp *proto.UploadProfileImageResponse
	err := c.authorized(ctx, func(ctx context.Context) (err error) {
		resp, err = c.users.UploadProfileImage(ctx, &proto.UploadProfileImageRequest{UserId: convert.IDString(id), Data: data})
		return err
	})
	if err != nil {
		return "", err
	}
	return resp.GetUrl(), nil
}

func (c *Client) DeleteProfileImage(ctx context.Context, id uuid.UUID) error {
	return c.authorized(ctx, func(ctx context.Context) error {
		_, err := c.users.DeleteProfileImage(ctx, &proto.DeleteProfileImageRequest{UserId: convert.IDString(id)})
		return err
	})
}
