package services

import (
	"context"

	"github.com/google/uuid"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, user *db_models.User) *response_models.UserResponse
	UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.UserResponse, error)
}

type ProfileService struct {
	userRepo repositories.UserRepository
}

func NewProfileService(userRepo repositories.UserRepository) ProfileServiceInterface {
	return &ProfileService{userRepo: userRepo}
}

func (s *ProfileService) GetProfile(ctx context.Context, user *db_models.User) *response_models.UserResponse {
	return response_models.BuildUserResponse(user)
}

// UpdateProfile copies only the supplied fields. A supplied password is
// hashed and written as password_hash; the plaintext never reaches storage.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.UserResponse, error) {
	fields := map[string]interface{}{}
	if request.Name != nil {
		fields["name"] = *request.Name
	}
	if request.AvatarURL != nil {
		fields["avatar_url"] = *request.AvatarURL
	}
	if request.Location != nil {
		fields["location"] = *request.Location
	}
	if request.Bio != nil {
		fields["bio"] = *request.Bio
	}
	if request.Password != nil && *request.Password != "" {
		hashed, err := utils.HashPassword(*request.Password)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = hashed
	}

	if err := s.userRepo.UpdateFields(ctx, userID, fields); err != nil {
		return nil, utils.ErrDatabaseError
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return response_models.BuildUserResponse(user), nil
}
