package booking

import "time"

// Period is the half-open interval a booking holds an item for.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !start.Before(end) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

// NewRequestedPeriod additionally requires the period to start after now.
func NewRequestedPeriod(start, end, now time.Time) (Period, error) {
	p, err := NewPeriod(start, end)
	if err != nil {
		return Period{}, err
	}
	if !start.After(now) {
		return Period{}, ErrStartInPast
	}
	return p, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}
