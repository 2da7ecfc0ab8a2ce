package domain

import "errors"

var (
	MessageSuccessRegister   = "user registered successfully"
	MessageSuccessLogin      = "login success"
	MessageSuccessGetMe      = "success get user profile"
	MessageSuccessUpdateUser = "user updated successfully"

	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedGetMe      = "failed to get user profile"
	MessageFailedUpdateUser = "failed to update user"

	ErrEmailRequired      = errors.New("email is required")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("unable to authenticate with given credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=5"`
		Name     string `json:"name" validate:"omitempty"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	MeResponse struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	UpdateUserRequest struct {
		Name     *string `json:"name" validate:"omitempty"`
		Password *string `json:"password" validate:"omitempty,min=5"`
	}
)
