package services

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds the controllers branch on. Services wrap underlying causes
// with %w so the kind stays matchable through errors.Is.
var (
	// ErrInvalidInput means the caller must correct missing or malformed
	// required fields.
	ErrInvalidInput = errors.New("invalid_input")
	// ErrInvalidDateRange covers non-positive nights and past check-in dates.
	ErrInvalidDateRange = errors.New("invalid_date_range")
	// ErrNotFound means a referenced room type, room, reservation or invoice
	// does not exist.
	ErrNotFound = errors.New("not_found")
	// ErrRoomUnavailable means the room type exists but has no free room for
	// the requested window at write time.
	ErrRoomUnavailable = errors.New("room_unavailable")
	// ErrStorageUnavailable means the persistence backend failed; safe for
	// the caller to retry with backoff.
	ErrStorageUnavailable = errors.New("storage_unavailable")
)

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
}

// isConflictViolation recognizes the Postgres exclusion constraint (and any
// unique violation on the same insert path) so a storage-level conflict maps
// to ErrRoomUnavailable instead of a retryable storage error.
func isConflictViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "reservations_no_overlap") ||
		strings.Contains(msg, "exclusion constraint") ||
		strings.Contains(msg, "23p01")
}
