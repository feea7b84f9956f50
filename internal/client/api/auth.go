package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/greengarden/greengarden-server/internal/api/grpc/convert"
	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/proto"
)

// SignUp creates an account and its profile. It does not sign in.
func (c *Client) SignUp(ctx context.Context, username, email, password string) (uuid.UUID, error) {
	resp, err := c.auth.SignUp(ctx, &proto.SignUpRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return uuid.Nil, mapError(err)
	}
	userID, err := uuid.Parse(resp.GetUserId())
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to decode user id: %w", err)
	}
	return userID, nil
}

// Login signs in and stores the session.
func (c *Client) Login(ctx context.Context, email, password string) (model.Session, error) {
	resp, err := c.auth.Login(ctx, &proto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return model.Session{}, mapError(err)
	}

	session, err := sessionFrom(resp)
	if err != nil {
		return model.Session{}, err
	}
	c.setSession(session)
	if err := c.sessions.Save(session); err != nil {
		return session, fmt.Errorf("failed to save session: %w", err)
	}

	c.logger.Debug("API client: signed in", "user_id", session.UserID)
	return session, nil
}

// Logout revokes the session on the server and forgets it locally.
// The local session is dropped even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	session, ok := c.Session()
	if !ok {
		return nil
	}

	_, rpcErr := c.auth.Logout(ctx, &proto.LogoutRequest{RefreshToken: session.RefreshToken})
	clearErr := c.clearSession()

	return errors.Join(mapError(rpcErr), clearErr)
}

func sessionFrom(resp *proto.SessionResponse) (model.Session, error) {
	userID, err := convert.ParseID(resp.GetUserId())
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return model.Session{
		UserID:       userID,
		AccessToken:  resp.GetAccessToken(),
		RefreshToken: resp.GetRefreshToken(),
	}, nil
}
