package booking

import (
	"strings"
	"time"

	"gin-shareit/internal/pkg/errs"
)

// State is the category a listing is filtered by.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

func (s State) String() string {
	return string(s)
}

// ParseState is case-insensitive; an empty value means ALL.
func ParseState(s string) (State, error) {
	if strings.TrimSpace(s) == "" {
		return StateAll, nil
	}
	state := State(strings.ToUpper(strings.TrimSpace(s)))
	switch state {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return state, nil
	default:
		return "", errs.Mark(errs.Newf("Unknown state: %s", s), errs.ErrValidation)
	}
}

// Predicate is the filter for the state at now. now must be captured once
// per query so that every row is judged against the same instant.
func (s State) Predicate(now time.Time) Spec {
	switch s {
	case StateCurrent:
		return Where(StartAtOrBefore{T: now}, EndAfter{T: now})
	case StatePast:
		return Where(EndBefore{T: now})
	case StateFuture:
		return Where(StartAfter{T: now})
	case StateWaiting:
		return WithStatus(StatusWaiting)
	case StateRejected:
		return WithStatus(StatusRejected)
	default:
		return Spec{}
	}
}

// Classify places b in CURRENT, PAST or FUTURE relative to now. A booking
// ending exactly at now belongs to none of them and ok is false.
func Classify(b *Booking, now time.Time) (state State, ok bool) {
	c := Candidate{Booking: b}
	for _, s := range []State{StateCurrent, StatePast, StateFuture} {
		if s.Predicate(now).Matches(c) {
			return s, true
		}
	}
	return "", false
}
