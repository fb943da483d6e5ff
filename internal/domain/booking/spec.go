package booking

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Candidate is what a Spec is evaluated against: a booking plus the owner of
// its item, which the booking itself does not carry.
type Candidate struct {
	Booking *Booking
	OwnerID uuid.UUID
}

// Term is a single condition of a Spec. The set of terms is closed so that
// storage adapters can translate every one of them.
type Term interface {
	Matches(c Candidate) bool
	isTerm()
}

type (
	BookerIs struct{ ID uuid.UUID }
	OwnerIs  struct{ ID uuid.UUID }
	ItemIs   struct{ ID uuid.UUID }
	StatusIn struct{ Statuses []Status }

	StartBefore     struct{ T time.Time } // start < T
	StartAtOrBefore struct{ T time.Time } // start <= T
	StartAfter      struct{ T time.Time } // start > T
	EndBefore       struct{ T time.Time } // end < T
	EndAfter        struct{ T time.Time } // end > T
)

func (t BookerIs) Matches(c Candidate) bool { return c.Booking.bookerID == t.ID }
func (t OwnerIs) Matches(c Candidate) bool  { return c.OwnerID == t.ID }
func (t ItemIs) Matches(c Candidate) bool   { return c.Booking.itemID == t.ID }
func (t StatusIn) Matches(c Candidate) bool { return slices.Contains(t.Statuses, c.Booking.status) }

func (t StartBefore) Matches(c Candidate) bool     { return c.Booking.Start().Before(t.T) }
func (t StartAtOrBefore) Matches(c Candidate) bool { return !c.Booking.Start().After(t.T) }
func (t StartAfter) Matches(c Candidate) bool      { return c.Booking.Start().After(t.T) }
func (t EndBefore) Matches(c Candidate) bool       { return c.Booking.End().Before(t.T) }
func (t EndAfter) Matches(c Candidate) bool        { return c.Booking.End().After(t.T) }

func (BookerIs) isTerm()        {}
func (OwnerIs) isTerm()         {}
func (ItemIs) isTerm()          {}
func (StatusIn) isTerm()        {}
func (StartBefore) isTerm()     {}
func (StartAtOrBefore) isTerm() {}
func (StartAfter) isTerm()      {}
func (EndBefore) isTerm()       {}
func (EndAfter) isTerm()        {}

// Spec is a conjunction of terms. The zero value matches every booking.
type Spec struct {
	terms []Term
}

func Where(terms ...Term) Spec {
	return Spec{}.And(terms...)
}

// And returns a new Spec; the receiver is left untouched.
func (s Spec) And(terms ...Term) Spec {
	merged := make([]Term, 0, len(s.terms)+len(terms))
	merged = append(merged, s.terms...)
	merged = append(merged, terms...)
	return Spec{terms: merged}
}

func (s Spec) AndSpec(other Spec) Spec {
	return s.And(other.terms...)
}

func (s Spec) Terms() []Term {
	return slices.Clone(s.terms)
}

func (s Spec) Matches(c Candidate) bool {
	for _, t := range s.terms {
		if !t.Matches(c) {
			return false
		}
	}
	return true
}

func ByBooker(id uuid.UUID) Spec { return Where(BookerIs{ID: id}) }
func ByOwner(id uuid.UUID) Spec  { return Where(OwnerIs{ID: id}) }
func ByItem(id uuid.UUID) Spec   { return Where(ItemIs{ID: id}) }

func WithStatus(statuses ...Status) Spec {
	return Where(StatusIn{Statuses: statuses})
}

// EndedBefore matches bookings of itemID by userID that still hold the item
// and finished before now: the bookings that allow commenting.
func EndedBefore(itemID, userID uuid.UUID, now time.Time) Spec {
	return Where(
		ItemIs{ID: itemID},
		BookerIs{ID: userID},
		EndBefore{T: now},
		StatusIn{Statuses: []Status{StatusApproved, StatusWaiting}},
	)
}
