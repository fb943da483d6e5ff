package repository

import (
	"context"
	"strings"

	"gin-shareit/internal/domain/item"
	"gin-shareit/internal/infra"
	"gin-shareit/internal/infra/db"
	"gin-shareit/internal/pkg/pgconv"
	"gin-shareit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const itemColumns = `id, owner_id, name, description, available, request_id, created_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type ItemRepository struct {
	db db.DBTX
}

func NewItemRepository(db db.DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO items (id, owner_id, name, description, available, request_id) VALUES ($1, $2, $3, $4, $5, $6)`,
		it.ID(), it.OwnerID(), it.Name(), it.Description(), it.Available(), pgconv.UUIDPtrToPgtype(it.RequestID()),
	)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("item owner or request does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
	it, err := scanItem(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return it, nil
}

func (r *ItemRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check item existence", err)
	}
	return exists, nil
}

func (r *ItemRepository) Update(ctx context.Context, it *item.Item) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE items SET name = $2, description = $3, available = $4, updated_at = now() WHERE id = $1`,
		it.ID(), it.Name(), it.Description(), it.Available(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("item is still referenced", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page shared.Page) ([]*item.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE owner_id = $1
		 ORDER BY created_at, id LIMIT $2 OFFSET $3`,
		ownerID, page.Size, page.Offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	return collectItems(rows)
}

func (r *ItemRepository) Search(ctx context.Context, text string, page shared.Page) ([]*item.Item, error) {
	pattern := "%" + likeEscaper.Replace(text) + "%"
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM items
		 WHERE available AND (name ILIKE $1 OR description ILIKE $1)
		 ORDER BY created_at, id LIMIT $2 OFFSET $3`,
		pattern, page.Size, page.Offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	return collectItems(rows)
}

func (r *ItemRepository) ListByRequests(ctx context.Context, requestIDs []uuid.UUID) ([]*item.Item, error) {
	if len(requestIDs) == 0 {
		return []*item.Item{}, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE request_id = ANY($1) ORDER BY created_at, id`,
		requestIDs,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by requests", err)
	}
	return collectItems(rows)
}

func collectItems(rows pgx.Rows) ([]*item.Item, error) {
	defer rows.Close()

	items := []*item.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate items", err)
	}
	return items, nil
}

func scanItem(row pgx.Row) (*item.Item, error) {
	var (
		id, ownerID       uuid.UUID
		name, description string
		available         bool
		requestID         pgtype.UUID
		createdAt         pgtype.Timestamptz
	)
	if err := row.Scan(&id, &ownerID, &name, &description, &available, &requestID, &createdAt); err != nil {
		return nil, err
	}
	return item.Reconstruct(
		id, ownerID, name, description, available,
		pgconv.UUIDPtrFromPgtype(requestID), pgconv.TimeFromPgtype(createdAt),
	), nil
}
