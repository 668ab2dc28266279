package domain

import "errors"

var (
	MessageSuccessRegisterStaff = "staff registered successfully"
	MessageSuccessLoginStaff    = "login successful"

	MessageFailedRegisterStaff = "failed to register staff"
	MessageFailedLoginStaff    = "failed to login"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrStaffNotAllowed        = errors.New("staff not allowed")
)

type (
	RegisterStaffRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Role     string `json:"role" validate:"required,oneof=admin kitchen"`
	}

	LoginStaffRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginStaffResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
)
