package dto

// RegisterRequest creates an account. The role is never supplied by the
// client; it is derived from the NIM prefix.
type RegisterRequest struct {
	NIM        string `json:"nim" binding:"required,numeric"`
	Name       string `json:"name" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
	BirthPlace string `json:"birth_place"`
	BirthDate  string `json:"birth_date"`
}

type LoginRequest struct {
	NIM      string `json:"nim" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	NIM   string `json:"nim"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type ProfileResponse struct {
	NIM        string `json:"nim"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	BirthPlace string `json:"birth_place,omitempty"`
	BirthDate  string `json:"birth_date,omitempty"`
	PhotoURL   string `json:"photo_url,omitempty"`
}

type ProfileUpdateRequest struct {
	Name       string `json:"name" binding:"required"`
	BirthPlace string `json:"birth_place"`
	BirthDate  string `json:"birth_date"`
	PhotoURL   string `json:"photo_url"`
}
