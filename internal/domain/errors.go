package domain

import "errors"

var (
	ErrNotFound              = errors.New("resource not found")
	ErrCreditorNotFound      = errors.New("creditor not found")
	ErrCreditorAlreadyExists = errors.New("creditor already exists")
	ErrAnalysisNotFound      = errors.New("analysis not found")
	ErrNilProfile            = errors.New("credit profile must not be nil")
	ErrEmptyCreditor         = errors.New("creditor name must not be empty")
)
