package repository

import (
	"context"

	"gin-shareit/internal/domain/itemrequest"
	"gin-shareit/internal/infra"
	"gin-shareit/internal/infra/db"
	"gin-shareit/internal/pkg/pgconv"
	"gin-shareit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const requestColumns = `id, requester_id, description, created_at`

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(db db.DBTX) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, req *itemrequest.ItemRequest) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO item_requests (id, requester_id, description, created_at) VALUES ($1, $2, $3, $4)`,
		req.ID(), req.RequesterID(), req.Description(), pgconv.TimeToPgtype(req.CreatedAt()),
	)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("request references a missing user", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create item request", err)
	}
	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*itemrequest.ItemRequest, error) {
	row := r.db.QueryRow(ctx, `SELECT `+requestColumns+` FROM item_requests WHERE id = $1`, id)
	req, err := scanRequest(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item request by ID", err)
	}
	return req, nil
}

func (r *RequestRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM item_requests WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check item request existence", err)
	}
	return exists, nil
}

func (r *RequestRepository) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*itemrequest.ItemRequest, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+requestColumns+` FROM item_requests WHERE requester_id = $1
		 ORDER BY created_at DESC, id DESC`,
		requesterID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests by requester", err)
	}
	return collectRequests(rows)
}

func (r *RequestRepository) ListOthers(ctx context.Context, userID uuid.UUID, page shared.Page) ([]*itemrequest.ItemRequest, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+requestColumns+` FROM item_requests WHERE requester_id <> $1
		 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		userID, page.Size, page.Offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	return collectRequests(rows)
}

func collectRequests(rows pgx.Rows) ([]*itemrequest.ItemRequest, error) {
	defer rows.Close()

	requests := []*itemrequest.ItemRequest{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item request", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item requests", err)
	}
	return requests, nil
}

func scanRequest(row pgx.Row) (*itemrequest.ItemRequest, error) {
	var (
		id, requesterID uuid.UUID
		description     string
		createdAt       pgtype.Timestamptz
	)
	if err := row.Scan(&id, &requesterID, &description, &createdAt); err != nil {
		return nil, err
	}
	return itemrequest.Reconstruct(id, requesterID, description, pgconv.TimeFromPgtype(createdAt)), nil
}
