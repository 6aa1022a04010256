package repositories

import "errors"

// Sentinel errors for rows that do not exist. Callers match with errors.Is.
var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
)
