package service

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCoupleNotFound     = errors.New("couple not found")

	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTemplateNotFound    = errors.New("template not found")
	ErrEntryNotFound       = errors.New("schedule entry not found")

	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)
