package services

import "errors"

var (
	ErrNameRequired        = errors.New("name is required")
	ErrEmailRequired       = errors.New("email is required")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidScore        = errors.New("score must be a non-negative number")
	ErrParticipantNotFound = errors.New("participant not found")
)
