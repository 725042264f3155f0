package types

import "errors"

var (
	ErrInvalidTripCount = errors.New("trip count must be positive")
	ErrStoreUnavailable = errors.New("trip store unavailable")
)
