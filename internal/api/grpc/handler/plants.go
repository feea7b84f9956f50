package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/greengarden/greengarden-server/internal/api/grpc/convert"
	"github.com/greengarden/greengarden-server/internal/logger"
	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/proto"
)

// PlantService defines plant catalog operations.
type PlantService interface {
	Create(ctx context.Context, ownerID uuid.UUID, plant model.Plant) (model.Plant, error)
	Get(ctx context.Context, id uuid.UUID) (model.Plant, bool, error)
	List(ctx context.Context) ([]model.Plant, error)
	Update(ctx context.Context, id uuid.UUID, patch model.PlantPatch) (model.Plant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PlantFeed opens live subscriptions to the plant collection.
type PlantFeed interface {
	Subscribe(ctx context.Context) (model.PlantSubscription, error)
}

// Plants handles plant catalog endpoints.
type Plants struct {
	proto.UnimplementedPlantsServer
	plantService   PlantService
	feed           PlantFeed
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewPlants(plantService PlantService, feed PlantFeed, contextManager model.ContextManager, logger *logger.Logger) *Plants {
	return &Plants{
		plantService:   plantService,
		feed:           feed,
		contextManager: contextManager,
		logger:         logger,
	}
}

// CreatePlant stores a plant owned by the caller.
func (h *Plants) CreatePlant(ctx context.Context, req *proto.CreatePlantRequest) (*proto.PlantResponse, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user ID not found in context")
	}

	draft, err := convert.PlantFromProto(req.Plant)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid plant")
	}

	plant, err := h.plantService.Create(ctx, userID, draft)
	if err != nil {
		h.logger.Info("Plants handler: create failed",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.PlantResponse{Plant: convert.PlantToProto(plant)}, nil
}

func (h *Plants) GetPlant(ctx context.Context, req *proto.GetPlantRequest) (*proto.GetPlantResponse, error) {
	plantID, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid plant ID")
	}

	plant, found, err := h.plantService.Get(ctx, plantID)
	if err != nil {
		return nil, handleError(err)
	}
	resp := &proto.GetPlantResponse{Found: found}
	if found {
		resp.Plant = convert.PlantToProto(plant)
	}
	return resp, nil
}

func (h *Plants) ListPlants(ctx context.Context, _ *proto.ListPlantsRequest) (*proto.ListPlantsResponse, error) {
	plants, err := h.plantService.List(ctx)
	if err != nil {
		h.logger.Error("Plants handler: list failed", "error", err.Error())
		return nil, handleError(err)
	}
	return &proto.ListPlantsResponse{Plants: convert.PlantsToProto(plants)}, nil
}

func (h *Plants) UpdatePlant(ctx context.Context, req *proto.UpdatePlantRequest) (*proto.PlantResponse, error) {
	plantID, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid plant ID")
	}

	plant, err := h.plantService.Update(ctx, plantID, convert.PlantPatchFromProto(req.Patch))
	if err != nil {
		return nil, handleError(err)
	}
	return &proto.PlantResponse{Plant: convert.PlantToProto(plant)}, nil
}

func (h *Plants) DeletePlant(ctx context.Context, req *proto.DeletePlantRequest) (*emptypb.Empty, error) {
	plantID, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid plant ID")
	}

	if err := h.plantService.Delete(ctx, plantID); err != nil {
		return nil, handleError(err)
	}
	return &emptypb.Empty{}, nil
}

// WatchPlants streams the full collection, first as it is now and then after every change.
func (h *Plants) WatchPlants(_ *proto.WatchPlantsRequest, stream grpc.ServerStreamingServer[proto.PlantsSnapshot]) error {
	ctx := stream.Context()

	sub, err := h.feed.Subscribe(ctx)
	if err != nil {
		h.logger.Error("Plants handler: subscribe failed", "error", err.Error())
		return handleError(err)
	}
	defer sub.Close()

	userID, _ := h.contextManager.GetUserIDFromContext(ctx)
	h.logger.Debug("Plants handler: watch started", "user_id", userID)

	for {
		select {
		case <-ctx.Done():
			return nil
		case plants, ok := <-sub.Snapshots():
			if !ok {
				if err := sub.Err(); err != nil {
					h.logger.Error("Plants handler: watch ended", "error", err.Error())
					return status.Error(codes.Unavailable, "plant feed interrupted")
				}
				return nil
			}
			if err := stream.Send(&proto.PlantsSnapshot{Plants: convert.PlantsToProto(plants)}); err != nil {
				return err
			}
		}
	}
}
