package response

import (
	"gin-shareit/internal/domain/user"
	"gin-shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:    u.ID(),
		Name:  u.Name().Value(),
		Email: u.Email().Value(),
	}
}

func FromUserView(v *queries.UserView) *UserResponse {
	var res UserResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromUserViews(views []*queries.UserView) []*UserResponse {
	res := make([]*UserResponse, len(views))
	for i, v := range views {
		res[i] = FromUserView(v)
	}
	return res
}
