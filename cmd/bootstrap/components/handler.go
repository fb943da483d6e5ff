package components

import (
	"gin-shareit/internal/handler"
	"gin-shareit/internal/handler/api"
	"gin-shareit/internal/handler/middleware"
	"gin-shareit/internal/pkg/config"
	"gin-shareit/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewItemHandler,
		api.NewBookingHandler,
		api.NewRequestHandler,
		NewHandlers,
		NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	users *api.UserHandler,
	items *api.ItemHandler,
	bookings *api.BookingHandler,
	requests *api.RequestHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		User:    users,
		Item:    items,
		Booking: bookings,
		Request: requests,
	}
}

func NewAuthMiddleware(cfg config.Config, validator usecase.TokenValidator) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(validator, cfg.Auth)
}
