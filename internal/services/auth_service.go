package services

import (
	"context"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.UserResponse, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*db_models.User, error)
}

type AuthService struct {
	userRepo   repositories.UserRepository
	tokenMaker *utils.TokenMaker
}

func NewAuthService(userRepo repositories.UserRepository, tokenMaker *utils.TokenMaker) AuthServiceInterface {
	return &AuthService{
		userRepo:   userRepo,
		tokenMaker: tokenMaker,
	}
}

func (a *AuthService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.UserResponse, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	user := &db_models.User{
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Name:         request.Name,
		AvatarURL:    request.AvatarURL,
		Location:     request.Location,
		Bio:          request.Bio,
	}

	if err := a.userRepo.Insert(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildUserResponse(user), nil
}

func (a *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := a.tokenMaker.CreateToken(user.Email)
	if err != nil {
		return "", err
	}

	return token, nil
}

func (a *AuthService) GetUserByEmail(ctx context.Context, email string) (*db_models.User, error) {
	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}
