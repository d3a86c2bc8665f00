package annotation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned for empty, inverted, or out-of-bounds ranges.
	ErrInvalidRange = errors.New("annotation: invalid range")
	// ErrOverlap is returned when an insert overlaps a range of the same kind.
	ErrOverlap = errors.New("annotation: overlaps range of same kind")
)

// RangeError describes a range that violates 0 <= Start < End <= TextLen.
type RangeError struct {
	Range   Range
	TextLen int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %v (text length %d)", ErrInvalidRange, e.Range, e.TextLen)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// OverlapError is returned by Insert when Range collides with Existing.
type OverlapError struct {
	Range    Range
	Existing Range
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%v: %v conflicts with %v", ErrOverlap, e.Range, e.Existing)
}

func (e *OverlapError) Unwrap() error { return ErrOverlap }
