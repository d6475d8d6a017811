package domain

import (
	"errors"
	"fmt"
)

// Category identifies one of the three record kinds, each with its own schema
// and its own stored collection.
type Category string

const (
	CategoryForest   Category = "forest"
	CategoryIndustry Category = "industry"
	CategoryCommerce Category = "commerce"
)

// Categories lists all record categories in their canonical order.
var Categories = []Category{CategoryForest, CategoryIndustry, CategoryCommerce}

// ParseCategory converts a route or query value into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryForest, CategoryIndustry, CategoryCommerce:
		return Category(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// IDPrefix returns the prefix used when assigning record ids for the category,
// e.g. "F-" for forest. Full ids have the form "<prefix><unix-millis>".
func (c Category) IDPrefix() string {
	switch c {
	case CategoryForest:
		return "F-"
	case CategoryIndustry:
		return "I-"
	case CategoryCommerce:
		return "C-"
	}
	return ""
}

// ReviewStatus is the three-valued review outcome of a record.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "Pending"
	StatusApproved ReviewStatus = "Approved"
	StatusRejected ReviewStatus = "Rejected"
)

// validTransitions defines the allowed review state machine. Approved and
// Rejected are terminal; there is no reopen path.
var validTransitions = map[ReviewStatus][]ReviewStatus{
	StatusPending: {StatusApproved, StatusRejected},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s ReviewStatus) CanTransitionTo(next ReviewStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the three known statuses.
func (s ReviewStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("access forbidden")
	ErrUnknownCategory   = errors.New("unknown record category")
	ErrUserNotFound      = errors.New("user not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrStorageCorrupt    = errors.New("stored collection is corrupt")
	ErrValidation        = errors.New("validation failed")
)
