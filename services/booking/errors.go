package booking

import "errors"

var (
	// ErrScheduleConflict is returned when the candidate overlaps an existing
	// appointment for the same staff member. It is a normal rejection outcome.
	ErrScheduleConflict = errors.New("appointment overlaps an existing appointment")

	// ErrAvailabilityCheck is returned when existing appointments could not be
	// fetched for the conflict check. Creation never proceeds on this error.
	ErrAvailabilityCheck = errors.New("could not verify schedule availability")

	// ErrStaffNotFound is returned when the candidate references an unknown staff member.
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrInvalidCandidate is returned for malformed creation input.
	ErrInvalidCandidate = errors.New("invalid appointment request")
)
