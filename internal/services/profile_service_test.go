package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

func TestProfileService_Update_OnlySuppliedFieldsWritten(t *testing.T) {
	userID := uuid.New()
	user := &db_models.User{Email: "alice@example.com", Name: "Alice"}
	user.ID = userID

	var written map[string]interface{}
	repo := &mockUserRepo{
		updateFields: func(_ context.Context, _ uuid.UUID, fields map[string]interface{}) error {
			written = fields
			return nil
		},
		findByID: func(_ context.Context, _ uuid.UUID) (*db_models.User, error) { return user, nil },
	}
	svc := services.NewProfileService(repo)

	_, err := svc.UpdateProfile(context.Background(), userID, request_models.UpdateProfileRequest{
		Bio: strPtr("on the road again"),
	})

	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, "on the road again", written["bio"])
}

func TestProfileService_Update_PasswordIsHashed(t *testing.T) {
	userID := uuid.New()
	user := &db_models.User{Email: "alice@example.com"}
	user.ID = userID

	var written map[string]interface{}
	repo := &mockUserRepo{
		updateFields: func(_ context.Context, _ uuid.UUID, fields map[string]interface{}) error {
			written = fields
			return nil
		},
		findByID: func(_ context.Context, _ uuid.UUID) (*db_models.User, error) { return user, nil },
	}
	svc := services.NewProfileService(repo)

	_, err := svc.UpdateProfile(context.Background(), userID, request_models.UpdateProfileRequest{
		Password: strPtr("newsecret"),
	})

	require.NoError(t, err)
	hashed, ok := written["password_hash"].(string)
	require.True(t, ok)
	assert.NotEqual(t, "newsecret", hashed)
	assert.NoError(t, utils.ComparePasswords(hashed, "newsecret"))
	// The plaintext column must never appear.
	_, hasPlain := written["password"]
	assert.False(t, hasPlain)
}
