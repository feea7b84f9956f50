// Package convert maps domain models to their gRPC messages and back.
package convert

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/proto"
)

// ParseID parses an optional identifier. The empty string yields uuid.Nil.
func ParseID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse id %q: %w", s, err)
	}
	return id, nil
}

// IDString formats id, leaving uuid.Nil empty.
func IDString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func PlantToProto(p model.Plant) *proto.Plant {
	return &proto.Plant{
		Id:          IDString(p.ID),
		OwnerId:     IDString(p.OwnerID),
		PlantName:   p.PlantName,
		Description: p.Description,
		Category:    string(p.Category),
		Image:       p.Image,
		CreatedAt:   toTimestamp(p.CreatedAt),
		UpdatedAt:   toTimestamp(p.UpdatedAt),
	}
}

func PlantFromProto(p *proto.Plant) (model.Plant, error) {
	id, err := ParseID(p.GetId())
	if err != nil {
		return model.Plant{}, err
	}
	ownerID, err := ParseID(p.GetOwnerId())
	if err != nil {
		return model.Plant{}, err
	}
	return model.Plant{
		ID:          id,
		OwnerID:     ownerID,
		PlantName:   p.GetPlantName(),
		Description: p.GetDescription(),
		Category:    model.Category(p.GetCategory()),
		Image:       p.GetImage(),
		CreatedAt:   fromTimestamp(p.GetCreatedAt()),
		UpdatedAt:   fromTimestamp(p.GetUpdatedAt()),
	}, nil
}

func PlantsToProto(plants []model.Plant) []*proto.Plant {
	out := make([]*proto.Plant, 0, len(plants))
	for _, p := range plants {
		out = append(out, PlantToProto(p))
	}
	return out
}

// PlantsFromProto never returns a nil slice for a successful conversion.
func PlantsFromProto(plants []*proto.Plant) ([]model.Plant, error) {
	out := make([]model.Plant, 0, len(plants))
	for _, p := range plants {
		plant, err := PlantFromProto(p)
		if err != nil {
			return nil, err
		}
		out = append(out, plant)
	}
	return out, nil
}

func PlantPatchToProto(p model.PlantPatch) *proto.PlantPatch {
	out := &proto.PlantPatch{
		PlantName:   p.PlantName,
		Description: p.Description,
		Image:       p.Image,
	}
	if p.Category != nil {
		c := string(*p.Category)
		out.Category = &c
	}
	return out
}

func PlantPatchFromProto(p *proto.PlantPatch) model.PlantPatch {
	if p == nil {
		return model.PlantPatch{}
	}
	out := model.PlantPatch{
		PlantName:   p.PlantName,
		Description: p.Description,
		Image:       p.Image,
	}
	if p.Category != nil {
		c := model.Category(*p.Category)
		out.Category = &c
	}
	return out
}

func UserToProto(u model.User) *proto.User {
	return &proto.User{
		Id:           IDString(u.ID),
		Username:     u.Username,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
		CreatedAt:    toTimestamp(u.CreatedAt),
		UpdatedAt:    toTimestamp(u.UpdatedAt),
	}
}

func UserFromProto(u *proto.User) (model.User, error) {
	id, err := ParseID(u.GetId())
	if err != nil {
		return model.User{}, err
	}
	return model.User{
		ID:           id,
		Username:     u.GetUsername(),
		Email:        u.GetEmail(),
		ProfileImage: u.GetProfileImage(),
		CreatedAt:    fromTimestamp(u.GetCreatedAt()),
		UpdatedAt:    fromTimestamp(u.GetUpdatedAt()),
	}, nil
}

func UserPatchToProto(p model.UserPatch) *proto.UserPatch {
	return &proto.UserPatch{
		Username:     p.Username,
		Email:        p.Email,
		Password:     p.Password,
		ProfileImage: p.ProfileImage,
	}
}

func UserPatchFromProto(p *proto.UserPatch) model.UserPatch {
	if p == nil {
		return model.UserPatch{}
	}
	return model.UserPatch{
		Username:     p.Username,
		Email:        p.Email,
		Password:     p.Password,
		ProfileImage: p.ProfileImage,
	}
}
