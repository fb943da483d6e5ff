package readstore

import (
	"context"
	"fmt"

	"gin-shareit/internal/domain/booking"
	"gin-shareit/internal/infra"
	"gin-shareit/internal/infra/db"
	"gin-shareit/internal/infra/repository"
	"gin-shareit/internal/pkg/pgconv"
	"gin-shareit/internal/usecase/queries"
	"gin-shareit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingViewSelect = `
SELECT b.id, b.start_time, b.end_time, b.status,
       i.id, i.name, i.description, i.available, i.owner_id,
       u.id, u.name
FROM bookings b
JOIN items i ON i.id = b.item_id
JOIN users u ON u.id = b.booker_id`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := scanBookingView(r.db.QueryRow(ctx, bookingViewSelect+` WHERE b.id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) List(ctx context.Context, spec booking.Spec, page shared.Page) ([]*queries.BookingView, error) {
	where, args, err := repository.BookingSpecSQL(spec, 1)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking filter", err)
	}

	n := len(args)
	query := fmt.Sprintf("%s WHERE %s ORDER BY b.start_time DESC, b.id LIMIT $%d OFFSET $%d",
		bookingViewSelect, where, n+1, n+2)
	args = append(args, page.Size, page.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		v          queries.BookingView
		start, end pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &start, &end, &v.Status,
		&v.Item.ID, &v.Item.Name, &v.Item.Description, &v.Item.Available, &v.ItemOwnerID,
		&v.Booker.ID, &v.Booker.Name,
	)
	if err != nil {
		return nil, err
	}
	v.Start = pgconv.TimeFromPgtype(start)
	v.End = pgconv.TimeFromPgtype(end)
	return &v, nil
}
