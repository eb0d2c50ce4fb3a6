package application

import "errors"

var (
	ErrUserExists      = errors.New("User already exists")
	ErrInvalidLogin    = errors.New("Username or password is wrong")
	ErrContactNotFound = errors.New("Contact not found")
	ErrAddressNotFound = errors.New("Address not found")
)
