//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"booking-core/internal/domain/booking"
	"booking-core/internal/handler/api"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"
	"booking-core/tests/common/builder"
	"booking-core/tests/common/httptest"
	"booking-core/tests/common/testutil"
	commandsmock "booking-core/tests/mock/commands"
	queriesmock "booking-core/tests/mock/queries"

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
	handler      *api.BookingHandler
	partyID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.partyID = uuid.New()

	authMiddleware := fakeAuth(&s.partyID)

	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings", authMiddleware, s.handler.List)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.POST("/bookings/:id/respond", authMiddleware, s.handler.Respond)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.POST("/bookings/:id/complete", authMiddleware, s.handler.Complete)
	s.router.POST("/bookings/:id/reprice", authMiddleware, s.handler.Reprice)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder().WithUnitCount(2)
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	validation := []testCaseBooking{
		{name: "missing field: service_id", mutate: testutil.Field("service_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: scheduled_start", mutate: testutil.Field("scheduled_start", nil), expectCode: http.StatusBadRequest},
		{name: "malformed service_id", mutate: testutil.Field("service_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
		{name: "negative unit_count", mutate: testutil.Field("unit_count", -1), expectCode: http.StatusBadRequest},
		{name: "unit_count omitted defaults downstream", mutate: testutil.Field("unit_count", nil), expectCode: http.StatusCreated},
	}

	s.Run("success: returns 201 with the priced booking", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), commands.CreateBookingRequest{
				ServiceID:      reqBody.ServiceID,
				UnitCount:      2,
				ScheduledStart: reqBody.ScheduledStart,
			}, s.partyID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("PENDING", body.Status)
		s.Equal(int64(30000), body.TotalCents)
		s.Equal("300.00", body.TotalAmount)
	})

	s.Run("error: validation", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(view, nil).Times(1)
				}
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 422 when capacity is exceeded", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, booking.ErrCapacityExceeded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, "CAPACITY_EXCEEDED")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "unit count exceeds service capacity")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.partyID, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.ServiceID, body.ServiceID)
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id format")
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, booking.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})

	s.Run("error: 403 for non-participants", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, shared.ErrNotParticipant).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, "FORBIDDEN")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: passes paging through", func() {
		views := []*queries.BookingView{builder.NewBookingBuilder().BuildView(), builder.NewBookingBuilder().BuildView()}
		s.mockQueries.EXPECT().ListByParty(gomock.Any(), s.partyID, 10, 20).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=10&offset=20", nil, "bearer-token")

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(views[1].ID, body[1].ID)
	})

	s.Run("error: negative offset", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?offset=-1", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

// ================================================================================
// TestRespond
// ================================================================================

func (s *BookingHandlerTestSuite) TestRespond() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + view.ID.String() + "/respond"

	s.Run("success: accept", func() {
		s.mockCommands.EXPECT().
			Respond(gomock.Any(), view.ID, commands.RespondRequest{Decision: booking.DecisionAccept, Note: "see you"}, s.partyID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"decision": "accept", "note": "see you"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unknown decision never reaches the use case", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"decision": "MAYBE"}, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION")
	})

	s.Run("error: 409 when no longer pending", func() {
		s.mockCommands.EXPECT().Respond(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, booking.ErrNotPending).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"decision": "DECLINE", "note": "busy"}, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "INVALID_TRANSITION")
	})

	s.Run("error: 403 for the requester", func() {
		s.mockCommands.EXPECT().Respond(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, shared.ErrNotProvider).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"decision": "ACCEPT"}, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, "FORBIDDEN")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *BookingHandlerTestSuite) TestTransitions() {
	view := builder.NewBookingBuilder().BuildView()
	fee := int64(7500)
	cancelled := *view
	cancelled.Status = string(booking.StatusCancelled)
	cancelled.CancellationFeeCents = &fee

	s.Run("cancel: reports the frozen fee", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), view.ID, s.partyID).Return(&cancelled, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+view.ID.String()+"/cancel", nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CANCELLED", body.Status)
		s.Require().NotNil(body.CancellationFeeAmount)
		s.Equal("75.00", *body.CancellationFeeAmount)
	})

	s.Run("complete: 409 before the appointment", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), view.ID, s.partyID).Return(nil, booking.ErrAppointmentNotDue).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+view.ID.String()+"/complete", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "appointment has not taken place yet")
	})

	s.Run("reprice: success", func() {
		s.mockCommands.EXPECT().Reprice(gomock.Any(), view.ID, s.partyID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+view.ID.String()+"/reprice", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("unexpected errors are not leaked", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errDatabaseDown).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+view.ID.String()+"/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "connection refused")
	})
}
