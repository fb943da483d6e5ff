package booking

import "strings"

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Accepted reports whether a booking in this status still holds the item.
func (s Status) Accepted() bool {
	return s == StatusWaiting || s == StatusApproved
}

func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Decide returns the status an owner's decision leads to.
//
// Repeating the decision already in effect fails with ErrAlreadyDecided.
// Reversing one is allowed: an approval can be revoked by rejecting and a
// rejection lifted by approving.
func (s Status) Decide(approve bool) (Status, error) {
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}

	switch {
	case approve && s == StatusApproved, !approve && s == StatusRejected:
		return s, ErrAlreadyDecided
	case approve:
		return StatusApproved, nil
	default:
		return StatusRejected, nil
	}
}
