package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/greengarden/greengarden-server/internal/model"
)

func handleError(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return status.Error(codes.InvalidArgument, validationErr.Error())
	case errors.Is(err, model.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, model.ErrEmailTaken):
		return status.Error(codes.AlreadyExists, model.ErrEmailTaken.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, model.ErrInvalidCredentials.Error())
	case errors.Is(err, model.ErrUnauthenticated),
		errors.Is(err, model.ErrTokenRevoked),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrTokenMismatch):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, model.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, model.ErrPermissionDenied.Error())
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
