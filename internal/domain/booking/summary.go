package booking

import (
	"time"

	"github.com/google/uuid"
)

// Ref exposes only what an item owner needs to know about a booking.
type Ref struct {
	ID       uuid.UUID
	BookerID uuid.UUID
}

type Summary struct {
	Last *Ref
	Next *Ref
}

// Summarize finds, in one pass, the accepted booking that started most
// recently before now and the one starting soonest after now. Rejected
// bookings are ignored. With equal starts the later one in the input wins.
func Summarize(bookings []*Booking, now time.Time) Summary {
	var last, next *Booking
	for _, b := range bookings {
		if !b.status.Accepted() {
			continue
		}
		start := b.Start()
		switch {
		case start.Before(now):
			if last == nil || !start.Before(last.Start()) {
				last = b
			}
		case start.After(now):
			if next == nil || !start.After(next.Start()) {
				next = b
			}
		}
	}
	return Summary{Last: refOf(last), Next: refOf(next)}
}

// SummarizeByItem groups bookings by item and summarizes each group.
func SummarizeByItem(bookings []*Booking, now time.Time) map[uuid.UUID]Summary {
	grouped := make(map[uuid.UUID][]*Booking)
	for _, b := range bookings {
		grouped[b.itemID] = append(grouped[b.itemID], b)
	}
	out := make(map[uuid.UUID]Summary, len(grouped))
	for itemID, group := range grouped {
		out[itemID] = Summarize(group, now)
	}
	return out
}

// ForViewer hides the summary from anyone but the item owner.
func (s Summary) ForViewer(viewerID, ownerID uuid.UUID) Summary {
	if viewerID != ownerID {
		return Summary{}
	}
	return s
}

func refOf(b *Booking) *Ref {
	if b == nil {
		return nil
	}
	return &Ref{ID: b.id, BookerID: b.bookerID}
}
