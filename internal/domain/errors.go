package domain

import "errors"

var (
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrInvalidID        = errors.New("invalid purchase id")
)
