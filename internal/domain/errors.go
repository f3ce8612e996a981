package domain

import "errors"

// ErrInvariantViolation signals a data-integrity fault that must be surfaced to operators,
// e.g. two active bookings on one slot or a conditional update that missed an existing row
var ErrInvariantViolation = errors.New("domain: invariant violation")
