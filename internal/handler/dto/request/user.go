package request

import "gin-shareit/internal/pkg/patch"

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest is a partial update. Blank strings keep the stored value.
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=255"`
	Email *string `json:"email" binding:"omitempty,email"`
}

func (r UpdateUserRequest) Normalized() UpdateUserRequest {
	return UpdateUserRequest{
		Name:  patch.TrimmedOrNil(r.Name),
		Email: patch.TrimmedOrNil(r.Email),
	}
}
