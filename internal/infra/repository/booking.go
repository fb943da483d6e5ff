package repository

import (
	"context"
	"time"

	"gin-shareit/internal/domain/booking"
	"gin-shareit/internal/infra"
	"gin-shareit/internal/infra/db"
	"gin-shareit/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `b.id, b.item_id, b.booker_id, b.start_time, b.end_time, b.status`

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO bookings (id, item_id, booker_id, start_time, end_time, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID(), b.ItemID(), b.BookerID(), b.Start(), b.End(), b.Status().String(),
	)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("booking references a missing item or user", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.findOne(ctx, `SELECT `+bookingColumns+` FROM bookings b WHERE b.id = $1`, id)
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.findOne(ctx, `SELECT `+bookingColumns+` FROM bookings b WHERE b.id = $1 FOR UPDATE`, id)
}

func (r *BookingRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*booking.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		b.ID(), b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindAcceptedByItems(ctx context.Context, itemIDs []uuid.UUID) ([]*booking.Booking, error) {
	if len(itemIDs) == 0 {
		return []*booking.Booking{}, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings b
		 WHERE b.item_id = ANY($1) AND b.status = ANY($2)
		 ORDER BY b.start_time, b.id`,
		itemIDs, []string{booking.StatusWaiting.String(), booking.StatusApproved.String()},
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings of items", err)
	}
	defer rows.Close()

	out := []*booking.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return out, nil
}

func (r *BookingRepository) CountPrior(ctx context.Context, itemID, userID uuid.UUID, now time.Time) (int, error) {
	where, args, err := BookingSpecSQL(booking.EndedBefore(itemID, userID, now), 1)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build booking filter", err)
	}

	var count int
	err = r.db.QueryRow(ctx,
		`SELECT count(*) FROM bookings b JOIN items i ON i.id = b.item_id WHERE `+where,
		args...,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count prior bookings", err)
	}
	return count, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, itemID, bookerID uuid.UUID
		start, end           pgtype.Timestamptz
		status               string
	)
	if err := row.Scan(&id, &itemID, &bookerID, &start, &end, &status); err != nil {
		return nil, err
	}
	return booking.Reconstruct(id, itemID, bookerID,
		pgconv.TimeFromPgtype(start), pgconv.TimeFromPgtype(end), booking.Status(status)), nil
}
