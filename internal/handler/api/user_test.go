//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"gin-shareit/internal/domain/user"
	"gin-shareit/internal/handler/api"
	resdto "gin-shareit/internal/handler/dto/response"
	"gin-shareit/internal/usecase/commands"
	"gin-shareit/internal/usecase/queries"
	"gin-shareit/internal/usecase/shared"
	"gin-shareit/tests/common/builder"
	"gin-shareit/tests/common/httptest"
	"gin-shareit/tests/common/testutil"
	commandsmock "gin-shareit/tests/mock/commands"
	queriesmock "gin-shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
	userID       uuid.UUID
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	handler := api.NewUserHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/users", handler.Register)
	users := s.router.Group("/users", func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Next()
	})
	users.GET("", handler.List)
	users.GET("/:id", handler.Get)
	users.PATCH("/:id", handler.Update)
	users.DELETE("/:id", handler.Delete)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestRegister() {
	url := "/users"
	b := builder.NewUserBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 without the password", func() {
		created, err := b.BuildDomain()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Register(gomock.Any(), commands.RegisterUserRequest{
			Name:     reqBody.Name,
			Email:    reqBody.Email,
			Password: reqBody.Password,
		}).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ID().String(), response["id"])
		s.Equal("alice@example.com", response["email"])
		s.NotContains(response, "password")
		s.NotContains(response, "password_hash")
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/users/" + created.ID().String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "name too long", mutate: testutil.Field("name", strings.Repeat("a", 256))},
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "short password", mutate: testutil.Field("password", "short")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: duplicate email is 409", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, user.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email is already registered")
	})
}

func (s *UserHandlerTestSuite) TestGetAndList() {
	view := builder.NewUserBuilder().BuildView()

	s.Run("success: get by id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+view.ID.String(), nil, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Name, response.Name)
	})

	s.Run("error: unknown user", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, user.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})

	s.Run("success: list with paging", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), shared.Page{Offset: 2, Size: 3}).
			Return([]*queries.UserView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users?from=2&size=3", nil, "")

		var response []resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})
}

func (s *UserHandlerTestSuite) TestUpdate() {
	url := "/users/" + s.userID.String()

	s.Run("success: blank name keeps the stored one", func() {
		updated, err := builder.NewUserBuilder().WithEmail("new@example.com").BuildDomain()
		s.Require().NoError(err)
		newEmail := "new@example.com"
		s.mockCommands.EXPECT().Update(gomock.Any(), s.userID, s.userID, commands.UpdateUserRequest{
			Email: &newEmail,
		}).Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "", "email": "new@example.com"}, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("new@example.com", response.Email)
	})

	s.Run("error: invalid email format", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"email": "nope"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "someone else", commandsError: user.ErrNotSelf, expectedStatus: http.StatusForbidden},
			{name: "email taken", commandsError: user.ErrEmailTaken, expectedStatus: http.StatusConflict},
			{name: "unknown user", commandsError: user.ErrUserNotFound, expectedStatus: http.StatusNotFound},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Update(gomock.Any(), s.userID, s.userID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "Carol"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *UserHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.userID, s.userID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/"+s.userID.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/123", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: user with bookings answers 409", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.userID, s.userID).Return(user.ErrHasBookings).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/"+s.userID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "user has bookings and cannot be deleted")
	})
}
