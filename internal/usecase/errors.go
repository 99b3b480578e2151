package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrDataUnavailable    = errors.New("data unavailable")
	ErrAggregationFailure = errors.New("aggregation failure")
)
