package repository

import (
	"fmt"
	"strings"

	"gin-shareit/internal/domain/booking"
)

// BookingSpecSQL renders spec as a WHERE clause over bookings aliased b
// joined with items aliased i. Placeholders are numbered from firstArg.
func BookingSpecSQL(spec booking.Spec, firstArg int) (string, []any, error) {
	terms := spec.Terms()
	if len(terms) == 0 {
		return "TRUE", nil, nil
	}

	clauses := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms))
	for _, term := range terms {
		n := firstArg + len(args)
		var clause string
		var arg any
		switch t := term.(type) {
		case booking.BookerIs:
			clause, arg = fmt.Sprintf("b.booker_id = $%d", n), t.ID
		case booking.OwnerIs:
			clause, arg = fmt.Sprintf("i.owner_id = $%d", n), t.ID
		case booking.ItemIs:
			clause, arg = fmt.Sprintf("b.item_id = $%d", n), t.ID
		case booking.StatusIn:
			statuses := make([]string, len(t.Statuses))
			for k, s := range t.Statuses {
				statuses[k] = s.String()
			}
			clause, arg = fmt.Sprintf("b.status = ANY($%d)", n), statuses
		case booking.StartBefore:
			clause, arg = fmt.Sprintf("b.start_time < $%d", n), t.T
		case booking.StartAtOrBefore:
			clause, arg = fmt.Sprintf("b.start_time <= $%d", n), t.T
		case booking.StartAfter:
			clause, arg = fmt.Sprintf("b.start_time > $%d", n), t.T
		case booking.EndBefore:
			clause, arg = fmt.Sprintf("b.end_time < $%d", n), t.T
		case booking.EndAfter:
			clause, arg = fmt.Sprintf("b.end_time > $%d", n), t.T
		default:
			return "", nil, fmt.Errorf("unsupported booking term %T", term)
		}
		clauses = append(clauses, clause)
		args = append(args, arg)
	}

	return strings.Join(clauses, " AND "), args, nil
}
