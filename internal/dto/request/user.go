package request

// EditProfileRequest is a partial update; nil fields are left unchanged.
type EditProfileRequest struct {
	Name     *string         `json:"name,omitempty"`
	Phone    *string         `json:"phone,omitempty"`
	Email    *string         `json:"email,omitempty" validate:"omitempty,email"`
	Password *string         `json:"password,omitempty"`
	Address  *AddressRequest `json:"address,omitempty"`
}

type AddressRequest struct {
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type UpdateLocationRequest struct {
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
}

type ResetPasswordRequest struct {
	Phone       string `json:"phone" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}
