//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-reservas/internal/handler/api"
	resdto "hotel-reservas/internal/handler/dto/response"
	"hotel-reservas/internal/pkg/errs"
	"hotel-reservas/internal/usecase"
	"hotel-reservas/internal/usecase/readmodel"
	"hotel-reservas/tests/common/httptest"
	"hotel-reservas/tests/mock/usecasemock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *usecasemock.MockAdminQueries
	handler     *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = usecasemock.NewMockAdminQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockQueries)

	s.router.GET("/api/rooms", s.handler.ListRooms)
	s.router.GET("/api/customers", s.handler.ListCustomers)
	s.router.GET("/api/reservations", s.handler.ListReservations)
	s.router.GET("/api/dashboard-stats", s.handler.DashboardStats)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestListRooms() {
	s.Run("returns the room inventory", func() {
		s.mockQueries.EXPECT().
			ListRooms(gomock.Any()).
			Return([]*readmodel.RoomRM{
				{ID: 1, Number: "101", Type: "Sencilla", Price: 150000, Status: "Disponible"},
				{ID: 2, Number: "201", Type: "Doble", Price: 250000, Status: "No Disponible"},
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms", nil)

		var resp []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 2)
		s.Equal("101", resp[0].Number)
		s.Equal("No Disponible", resp[1].Status)
	})

	s.Run("storage failure maps to 500", func() {
		s.mockQueries.EXPECT().
			ListRooms(gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection reset"), usecase.ErrDatabaseOperationFailed))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Error interno del servidor")
	})
}

func (s *AdminHandlerTestSuite) TestListCustomers() {
	s.mockQueries.EXPECT().
		ListCustomers(gomock.Any()).
		Return([]*readmodel.CustomerRM{
			{ID: 7, Name: "Ana", Surname: "García", Email: "ana@example.com"},
		}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/customers", nil)

	var resp []resdto.CustomerResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Len(resp, 1)
	s.Equal("ana@example.com", resp[0].Email)
}

func (s *AdminHandlerTestSuite) TestListReservations() {
	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	s.mockQueries.EXPECT().
		ListReservations(gomock.Any()).
		Return([]*readmodel.ReservationRowRM{
			{
				ID:            42,
				CheckIn:       checkIn,
				CheckOut:      checkIn.AddDate(0, 0, 2),
				Status:        "Pendiente",
				CustomerName:  "Ana",
				CustomerEmail: "ana@example.com",
				RoomNumber:    "201",
				RoomType:      "Doble",
				RoomPrice:     250000,
			},
		}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations", nil)

	var resp []resdto.ReservationRowResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Len(resp, 1)
	s.Equal(int64(42), resp[0].ID)
	s.Equal("Pendiente", resp[0].Status)
	s.Equal("201", resp[0].RoomNumber)
}

func (s *AdminHandlerTestSuite) TestDashboardStats() {
	s.mockQueries.EXPECT().
		DashboardStats(gomock.Any()).
		Return(&readmodel.DashboardStatsRM{
			TotalReservations:  12,
			ActiveReservations: 4,
			TotalCustomers:     9,
			AvailableRooms:     6,
		}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/dashboard-stats", nil)

	var resp resdto.DashboardStatsResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(int64(12), resp.TotalReservations)
	s.Equal(int64(4), resp.ActiveReservations)
	s.Equal(int64(9), resp.TotalCustomers)
	s.Equal(int64(6), resp.AvailableRooms)
}
