package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSendPasscode   = "passcode sent successfully"
	MessageSuccessVerifyPasscode = "login successful"
	MessageSuccessGetCustomer    = "customer retrieved successfully"
	MessageSuccessLogout         = "logged out successfully"

	MessageFailedSendPasscode   = "failed to send passcode"
	MessageFailedVerifyPasscode = "failed to verify passcode"
	MessageFailedGetCustomer    = "failed to retrieve customer"

	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidPasscode  = errors.New("invalid passcode")
	ErrPasscodeDispatch = errors.New("failed to dispatch passcode email")
)

type (
	RequestPasscodeRequest struct {
		Name        string `json:"name" validate:"required"`
		Phone       string `json:"phone" validate:"required"`
		Email       string `json:"email" validate:"required,email"`
		TableNumber int    `json:"table_number" validate:"required,min=1"`
	}

	VerifyPasscodeRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Passcode string `json:"passcode" validate:"required,len=6,numeric"`
	}

	VerifyPasscodeResponse struct {
		Token       string `json:"-"`
		TableNumber int    `json:"table_number"`
	}

	CustomerResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Phone       string    `json:"phone"`
		Email       string    `json:"email"`
		TableNumber int       `json:"table_number"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
