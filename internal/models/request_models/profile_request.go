package request_models

// UpdateProfileRequest: nil fields are not touched; a supplied password is
// hashed before storage, never copied verbatim.
type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
	Location  *string `json:"location"`
	Bio       *string `json:"bio"`
	Password  *string `json:"password" binding:"omitempty,min=6"`
}
