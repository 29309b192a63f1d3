package rentsession

import (
	"context"

	rentsessionRepo "medonrent/database/repository/rentsession"
	"medonrent/services/apperrors"
)

// Overlaps reports whether the closed interval [newFrom, newTo] overlaps
// [existFrom, existTo]. Boundaries are inclusive: a window starting exactly
// when another ends counts as a conflict. Dates are fixed-format
// "YYYY-MM-DD" strings, so plain string comparison orders them correctly.
func Overlaps(newFrom, newTo, existFrom, existTo string) bool {
	// Existing window contains the new start.
	if existFrom <= newFrom && newFrom <= existTo {
		return true
	}
	// Existing window contains the new end.
	if existFrom <= newTo && newTo <= existTo {
		return true
	}
	// New window encompasses the existing one.
	return newFrom <= existFrom && existTo <= newTo
}

// HasConflict reports whether the proposed window collides with an existing
// non-deleted session on the same (patient, device) key. excludeID, when
// non-empty, skips the session being updated in place.
//
// This is a read-side check; the repository re-runs the same query inside
// the write transaction, so two concurrent bookings cannot both pass.
func (s *DefaultRentSessionService) HasConflict(ctx context.Context, deviceRef, patientRef, dateFrom, dateTo, excludeID string) (bool, error) {
	existing, err := s.Repo.FindOverlapping(ctx, rentsessionRepo.ConflictKey{
		Patient:   patientRef,
		Device:    deviceRef,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		ExcludeID: excludeID,
	})
	if err != nil {
		return false, apperrors.NewStorage("conflict check failed", err)
	}
	return existing != nil, nil
}
