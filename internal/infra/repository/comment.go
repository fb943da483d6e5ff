package repository

import (
	"context"

	"gin-shareit/internal/domain/comment"
	"gin-shareit/internal/infra"
	"gin-shareit/internal/infra/db"
	"gin-shareit/internal/pkg/pgconv"
	"gin-shareit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CommentRepository struct {
	db db.DBTX
}

func NewCommentRepository(db db.DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO comments (id, item_id, author_id, text, created_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID(), c.ItemID(), c.AuthorID(), c.Text().String(), c.CreatedAt(),
	)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("comment references a missing item or user", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create comment", err)
	}
	return nil
}

func (r *CommentRepository) ListByItems(ctx context.Context, itemIDs []uuid.UUID) ([]shared.CommentRecord, error) {
	if len(itemIDs) == 0 {
		return []shared.CommentRecord{}, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.item_id, c.author_id, u.name, c.text, c.created_at
		 FROM comments c JOIN users u ON u.id = c.author_id
		 WHERE c.item_id = ANY($1)
		 ORDER BY c.created_at, c.id`,
		itemIDs,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	out := []shared.CommentRecord{}
	for rows.Next() {
		var (
			rec       shared.CommentRecord
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&rec.ID, &rec.ItemID, &rec.AuthorID, &rec.AuthorName, &rec.Text, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment", err)
		}
		rec.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comments", err)
	}
	return out, nil
}
