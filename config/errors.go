package config

import "errors"

var (
	// ErrInvalidK is returned when k is negative.
	ErrInvalidK = errors.New("k must be >= 0")

	// ErrInvalidHorizontalSpacing is returned when horizontal_spacing
	// is not strictly positive.
	ErrInvalidHorizontalSpacing = errors.New("horizontal_spacing must be > 0")

	// ErrInvalidVerticalSpacing is returned when vertical_spacing is
	// not strictly positive.
	ErrInvalidVerticalSpacing = errors.New("vertical_spacing must be > 0")

	// ErrInvalidEpsilon is returned when epsilon is not strictly
	// between 0 and horizontal_spacing.
	ErrInvalidEpsilon = errors.New("epsilon must satisfy 0 < epsilon < horizontal_spacing")
)
