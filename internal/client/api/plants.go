package api

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/greengarden/greengarden-server/internal/api/grpc/convert"
	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/proto"
)

// CreatePlant stores plant as owned by the signed-in user.
func (c *Client) CreatePlant(ctx context.Context, plant model.Plant) (model.Plant, error) {
	var resp *proto.PlantResponse
	err := c.authorized(ctx, func(ctx context.Context) (err error) {
		resp, err = c.plants.CreatePlant(ctx, &proto.CreatePlantRequest{Plant: convert.PlantToProto(plant)})
		return err
	})
	if err != nil {
		return model.Plant{}, err
	}
	return decodePlant(resp.GetPlant())
}

// GetPlant reads one plant. A missing plant is reported by found=false.
func (c *Client) GetPlant(ctx context.Context, id uuid.UUID) (model.Plant, bool, error) {
	var resp *proto.GetPlantResponse
	err := c.authorized(ctx, func(ctx context.Context) (err error) {
		resp, err = c.plants.GetPlant(ctx, &proto.GetPlantRequest{Id: id.String()})
		return err
	})
	if err != nil {
		return model.Plant{}, false, err
	}
	if !resp.GetFound() {
		return model.Plant{}, false, nil
	}
	plant, err := decodePlant(resp.GetPlant())
	if err != nil {
		return model.Plant{}, false, err
	}
	return plant, true, nil
}

func (c *Client) ListPlants(ctx context.Context) ([]model.Plant, error) {
	var resp *proto.ListPlantsResponse
	err := c.authorized(ctx, func(ctx context.Context) (err error) {
		resp, err = c.plants.ListPlants(ctx, &proto.ListPlantsRequest{})
		return err
	})
	if err != nil {
		return nil, err
	}
	plants, err := convert.PlantsFromProto(resp.GetPlants())
	if err != nil {
		return nil, fmt.Errorf("failed to decode plants: %w", err)
	}
	return plants, nil
}

func (c *Client) UpdatePlant(ctx context.Context, id uuid.UUID, patch model.PlantPatch) (model.Plant, error) {
	var resp *proto.PlantResponse
	err := c.authorized(ctx, func(ctx context.Context) (err error) {
		resp, err = c.plants.UpdatePlant(ctx, &proto.UpdatePlantRequest{Id: id.String(), Patch: convert.PlantPatchToProto(patch)})
		return err
	})
	if err != nil {
		return model.Plant{}, err
	}
	return decodePlant(resp.GetPlant())
}

// DeletePlant removes a plant. Deleting an absent plant succeeds.
func (c *Client) DeletePlant(ctx context.Context, id uuid.UUID) error {
	return c.authorized(ctx, func(ctx context.Context) error {
		_, err := c.plants.DeletePlant(ctx, &proto.DeletePlantRequest{Id: id.String()})
		return err
	})
}

// WatchPlants opens a standing subscription to the plant collection. onNext
// receives every full snapshot in order; onErr is called at most once when the
// subscription fails. Neither is called after cancel returns; cancel must not
// be called from inside the callbacks.
func (c *Client) WatchPlants(ctx context.Context, onNext func([]model.Plant), onErr func(error)) (cancel func(), err error) {
	ctx, stop := context.WithCancel(ctx)

	stream, err := c.plants.WatchPlants(c.withToken(ctx), &proto.WatchPlantsRequest{})
	if err != nil {
		stop()
		return nil, mapError(err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			snapshot, err := stream.Recv()
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, io.EOF) {
					return
				}
				c.logger.Debug("API client: plant subscription ended", "error", err.Error())
				if onErr != nil {
					onErr(mapError(err))
				}
				return
			}
			if ctx.Err() != nil {
				return
			}
			plants, err := convert.PlantsFromProto(snapshot.GetPlants())
			if err != nil {
				c.logger.Warn("API client: malformed plant snapshot", "error", err.Error())
				if onErr != nil {
					onErr(fmt.Errorf("failed to decode plants: %w", err))
				}
				return
			}
			onNext(plants)
		}
	}()

	return func() {
		stop()
		<-done
	}, nil
}

func decodePlant(p *proto.Plant) (model.Plant, error) {
	plant, err := convert.PlantFromProto(p)
	if err != nil {
		return model.Plant{}, fmt.Errorf("failed to decode plant: %w", err)
	}
	return plant, nil
}
