//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"booking-core/internal/domain/schedule"
	"booking-core/internal/handler/api"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"
	"booking-core/tests/common/httptest"
	commandsmock "booking-core/tests/mock/commands"
	queriesmock "booking-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockScheduleCommands
	mockQueries  *queriesmock.MockScheduleQueries
	partyID      uuid.UUID
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockScheduleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	h := api.NewScheduleHandler(s.mockCommands, s.mockQueries)
	s.partyID = uuid.New()

	authMiddleware := fakeAuth(&s.partyID)
	s.router.GET("/schedule/staffable", authMiddleware, h.Staffable)
	s.router.GET("/schedule/assignments", authMiddleware, h.ListAssignments)
	s.router.POST("/schedule/assignments", authMiddleware, h.Assign)
	s.router.DELETE("/schedule/assignments/:id", authMiddleware, h.Unassign)
	s.router.POST("/schedule/assignments/:id/windows", authMiddleware, h.SetWindow)
	s.router.DELETE("/schedule/windows/:id", authMiddleware, h.RemoveWindow)
}

func (s *ScheduleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

func (s *ScheduleHandlerTestSuite) TestAssign() {
	staffID, serviceID := uuid.New(), uuid.New()
	view := &queries.AssignmentView{ID: uuid.New(), ProviderID: s.partyID, StaffID: staffID, ServiceID: serviceID}

	s.Run("success: windows render as an empty list", func() {
		s.mockCommands.EXPECT().
			Assign(gomock.Any(), commands.AssignStaffRequest{StaffID: staffID, ServiceID: serviceID}, s.partyID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/schedule/assignments",
			map[string]any{"staff_id": staffID, "service_id": serviceID}, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		s.Contains(rec.Body.String(), `"windows":[]`)
	})

	s.Run("error: duplicate assignment", func() {
		s.mockCommands.EXPECT().Assign(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, schedule.ErrAlreadyAssigned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/schedule/assignments",
			map[string]any{"staff_id": staffID, "service_id": serviceID}, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION")
	})

	s.Run("error: missing staff_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/schedule/assignments",
			map[string]any{"service_id": serviceID}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *ScheduleHandlerTestSuite) TestSetWindow() {
	assignmentID := uuid.New()
	url := fmt.Sprintf("/schedule/assignments/%s/windows", assignmentID)
	window := &queries.WindowView{ID: uuid.New(), AssignmentID: assignmentID, DayOfWeek: 0, Start: "09:00", End: "12:00", IsAvailable: true}

	s.Run("success: Sunday is day zero and availability defaults to true", func() {
		s.mockCommands.EXPECT().
			SetWindow(gomock.Any(), assignmentID, commands.SetWindowRequest{DayOfWeek: 0, Start: "09:00", End: "12:00", IsAvailable: true}, s.partyID).
			Return(window, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"day_of_week": 0, "start": "09:00", "end": "12:00"}, "bearer-token")

		var body resdto.WindowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(window.ID, body.ID)
		s.True(body.IsAvailable)
	})

	s.Run("success: explicit unavailability", func() {
		s.mockCommands.EXPECT().
			SetWindow(gomock.Any(), assignmentID, commands.SetWindowRequest{DayOfWeek: 6, Start: "09:00", End: "12:00", IsAvailable: false}, s.partyID).
			Return(window, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"day_of_week": 6, "start": "09:00", "end": "12:00", "is_available": false}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: day out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"day_of_week": 7, "start": "09:00", "end": "12:00"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: overlap is a conflict", func() {
		s.mockCommands.EXPECT().SetWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, schedule.ErrWindowOverlap).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"day_of_week": 1, "start": "11:00", "end": "13:00"}, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "OVERLAP")
	})
}

func (s *ScheduleHandlerTestSuite) TestRemove() {
	s.Run("unassign returns 204", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Unassign(gomock.Any(), id, s.partyID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/schedule/assignments/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("remove window of another provider", func() {
		s.mockCommands.EXPECT().RemoveWindow(gomock.Any(), gomock.Any(), s.partyID).Return(shared.ErrNotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/schedule/windows/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, "FORBIDDEN")
	})
}

func (s *ScheduleHandlerTestSuite) TestListAssignments() {
	s.Run("without filter the service id is nil", func() {
		s.mockQueries.EXPECT().ListAssignments(gomock.Any(), s.partyID, uuid.Nil).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedule/assignments", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("filter must be a uuid", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedule/assignments?service_id=x", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

func (s *ScheduleHandlerTestSuite) TestStaffable() {
	providerID, serviceID := uuid.New(), uuid.New()
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	s.Run("success", func() {
		s.mockCommands.EXPECT().CheckStaffable(gomock.Any(), providerID, serviceID, gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, got time.Time) (bool, error) {
				s.True(got.Equal(at))
				return true, nil
			}).Times(1)

		url := fmt.Sprintf("/schedule/staffable?provider_id=%s&service_id=%s&at=%s", providerID, serviceID, at.Format(time.RFC3339))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.StaffableResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Staffable)
		s.Equal(serviceID, body.ServiceID)
	})

	s.Run("error: missing at", func() {
		url := fmt.Sprintf("/schedule/staffable?provider_id=%s&service_id=%s", providerID, serviceID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}
