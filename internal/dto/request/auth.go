package request

// SignupRequest is shared by public signup and admin user provisioning;
// both accept an optional role that defaults to USER.
type SignupRequest struct {
	Name     string  `json:"name" validate:"required,min=20,max=60"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,userpassword"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=400"`
	Role     string  `json:"role,omitempty" validate:"omitempty,oneof=ADMIN OWNER USER"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,userpassword"`
}
