package api

import (
	"net/http"

	reqdto "gin-shareit/internal/handler/dto/request"
	"gin-shareit/internal/handler/httperr"
	"gin-shareit/internal/handler/middleware"
	"gin-shareit/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actingUser reads the id set by the auth middleware. A miss means the route
// was registered without RequireAuth.
func actingUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUser, "Internal server error", nil)
	}
	return id, ok
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindPage(c *gin.Context, q reqdto.PageQuery) (shared.Page, bool) {
	page, err := q.ToPage()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return shared.Page{}, false
	}
	return page, true
}
