package attendance

import "errors"

const WarnInvertedRange = "From date cannot be after To date"

var (
	ErrInvalidClockType  = errors.New("clock_type must be 'in' or 'out'")
	ErrInvalidMarkStatus = errors.New("status must be 'absent' or 'leave'")
	ErrActionInProgress  = errors.New("an attendance action for this staff is already in progress")
	ErrSnapshotChanged   = errors.New("attendance changed while loading, please retry")
)
