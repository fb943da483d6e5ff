//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"gin-shareit/internal/domain/booking"
	"gin-shareit/internal/handler/api"
	resdto "gin-shareit/internal/handler/dto/response"
	"gin-shareit/internal/pkg/errs"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	handler := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	bookings := s.router.Group("/bookings", func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Next()
	})
	bookings.POST("", handler.Create)
	bookings.GET("", handler.ListByBooker)
	bookings.GET("/owner", handler.ListByOwner)
	bookings.GET("/:id", handler.Get)
	bookings.PATCH("/:id", handler.UpdateStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 with the waiting booking", func() {
		created, err := b.BuildDomain()
		s.Require().NoError(err)
		view := b.BuildView()
		view.ID = created.ID()

		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, commands.CreateBookingRequest{
			ItemID: reqBody.ItemID,
			Start:  reqBody.Start,
			End:    reqBody.End,
		}).Return(created, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, created.ID()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ID(), response.ID)
		s.Equal("WAITING", response.Status)
		s.Equal(reqBody.ItemID, response.Item.ID)
		s.Equal("Drill", response.Item.Name)
		s.Equal(b.BookerID, response.Booker.ID)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing item_id", mutate: testutil.Field("item_id", nil)},
			{name: "missing start", mutate: testutil.Field("start", nil)},
			{name: "missing end", mutate: testutil.Field("end", nil)},
			{name: "malformed start", mutate: testutil.Field("start", "tomorrow")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "invalid period", commandsError: booking.ErrInvalidPeriod, expectedStatus: http.StatusBadRequest, expectedMsg: "booking end must be after its start"},
			{name: "item unavailable", commandsError: errs.Mark(errs.New("item is not available for booking"), errs.ErrNotAvailable), expectedStatus: http.StatusBadRequest},
			{name: "self booking", commandsError: booking.ErrSelfBooking, expectedStatus: http.StatusNotFound, expectedMsg: "owner cannot book their own item"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	bookingID := uuid.New()
	view := builder.NewBookingBuilder().WithStatus(booking.StatusApproved).BuildView()
	view.ID = bookingID

	s.Run("success: approve returns the updated booking", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.userID, bookingID, true).Return(nil, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+bookingID.String()+"?approved=true", nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("APPROVED", response.Status)
	})

	s.Run("success: approved=false rejects", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.userID, bookingID, false).Return(nil, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+bookingID.String()+"?approved=false", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: approved query is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+bookingID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Query parameter approved is required")
	})

	s.Run("error: malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/not-a-uuid?approved=true", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not the owner", commandsError: errs.Mark(errs.New("only the item owner can decide"), errs.ErrNotOwner), expectedStatus: http.StatusForbidden},
			{name: "already decided", commandsError: booking.ErrAlreadyDecided, expectedStatus: http.StatusBadRequest},
			{name: "unknown booking", commandsError: booking.ErrBookingNotFound, expectedStatus: http.StatusNotFound},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.userID, bookingID, true).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+bookingID.String()+"?approved=true", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()

	s.Run("success", func() {
		view := builder.NewBookingBuilder().BuildView()
		view.ID = bookingID
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
	})

	s.Run("error: unrelated user gets 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).Return(nil, booking.ErrAccessDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	views := []*queries.BookingView{
		builder.NewBookingBuilder().BuildView(),
		builder.NewBookingBuilder().BuildView(),
	}

	s.Run("success: defaults to ALL and the first page", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), s.userID, booking.StateAll, shared.Page{Offset: 0, Size: 10}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: owner listing passes state and page through", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.userID, booking.StateWaiting, shared.Page{Offset: 5, Size: 5}).
			Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?state=waiting&from=5&size=5", nil, "")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: unknown state", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=SOMETIME", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown state: SOMETIME")
	})

	s.Run("error: invalid page", func() {
		testCases := []struct {
			name  string
			query string
		}{
			{name: "negative from", query: "?from=-1"},
			{name: "zero size", query: "?size=0"},
			{name: "non numeric size", query: "?size=ten"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings"+tc.query, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: empty listing is 404", func() {
		noBookings := errs.Mark(&queries.NoBookingsError{State: booking.StateRejected, SubjectID: s.userID, Role: queries.RoleBooker}, errs.ErrNotFound)
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), s.userID, booking.StateRejected, gomock.Any()).
			Return(nil, noBookings).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=REJECTED", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "no bookings in state REJECTED")
	})
}
