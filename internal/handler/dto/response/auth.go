package response

import "gin-shareit/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	User        *queries.UserView `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
