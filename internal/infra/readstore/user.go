package readstore

import (
	"context"

	"gin-shareit/internal/infra"
	"gin-shareit/internal/infra/db"
	"gin-shareit/internal/pkg/pgconv"
	"gin-shareit/internal/usecase/queries"
	"gin-shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var v queries.UserView
	err := r.db.QueryRow(ctx, `SELECT id, name, email FROM users WHERE id = $1`, id).
		Scan(&v.ID, &v.Name, &v.Email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	var (
		v            queries.UserView
		passwordHash string
	)
	err := r.db.QueryRow(ctx, `SELECT id, name, email, password_hash FROM users WHERE email = $1`, email).
		Scan(&v.ID, &v.Name, &v.Email, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, passwordHash, nil
}

func (r *UserReadStore) List(ctx context.Context, page shared.Page) ([]*queries.UserView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email FROM users ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		page.Size, page.Offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	views := []*queries.UserView{}
	for rows.Next() {
		var v queries.UserView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate users", err)
	}
	return views, nil
}
