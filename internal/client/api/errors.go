package api

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/greengarden/greengarden-server/internal/model"
)

// mapError turns a gRPC status back into the model error the server started from.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	msg := st.Message()
	switch st.Code() {
	case codes.InvalidArgument:
		if field, message, found := strings.Cut(msg, ": "); found {
			return model.NewValidationError(field, message)
		}
		return model.NewValidationError("request", msg)
	case codes.NotFound:
		return model.ErrNotFound
	case codes.AlreadyExists:
		return model.ErrEmailTaken
	case codes.Unauthenticated:
		if msg == model.ErrInvalidCredentials.Error() {
			return model.ErrInvalidCredentials
		}
		return fmt.Errorf("%w: %s", model.ErrUnauthenticated, msg)
	case codes.PermissionDenied:
		return model.ErrPermissionDenied
	default:
		return err
	}
}
