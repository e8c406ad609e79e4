package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateProjectName validates a user-supplied project name.
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 128 characters
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "project name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "project name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "project name contains invalid control characters")
		}
	}

	return nil
}

// ValidateRoomType validates a room type label supplied by a palette drop.
// Room types are free-form lowercase words ("kids bedroom", "garage").
func ValidateRoomType(kind string) error {
	if kind == "" {
		return New(ErrCodeInvalidInput, "room type cannot be empty")
	}
	if len(kind) > 64 {
		return New(ErrCodeInvalidInput, "room type too long (max 64 characters)")
	}
	for _, r := range kind {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' && r != '-' && r != '_' {
			return New(ErrCodeInvalidInput, "room type contains invalid character %q", r)
		}
	}
	return nil
}

// ValidateDimension checks that a size in feet is finite and positive.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidSize, "%s must be a finite number", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidSize, "%s must be positive, got %g", name, v)
	}
	return nil
}
