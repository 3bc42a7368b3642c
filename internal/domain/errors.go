package domain

import "errors"

// Storage-level outcomes shared by repositories and the services that call them.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNegativeBalance = errors.New("balance would become negative")
)
