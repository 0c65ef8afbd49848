package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrPopulationNotFound = errors.New("population not found")
)
