package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Sentinel errors let the HTTP layer map service failures to status codes
// (ErrNotFound -> 404, ErrValidation/ErrInvalidStatus -> 400).
var (
	ErrNotFound      = errors.New("record not found")
	ErrValidation    = errors.New("validation failed")
	ErrInvalidStatus = errors.New("invalid shipment status")
	ErrDuplicateBox  = errors.New("box code already exists for this shipment")
)

// NotFoundOr converts gorm.ErrRecordNotFound into ErrNotFound and returns
// any other error unchanged.
func NotFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// IsUniqueViolation reports whether err came from a unique constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "Duplicate entry")
}
