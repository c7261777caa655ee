//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-reservas/internal/handler/api"
	resdto "hotel-reservas/internal/handler/dto/response"
	"hotel-reservas/internal/pkg/errs"
	"hotel-reservas/internal/usecase"
	"hotel-reservas/tests/common/httptest"
	"hotel-reservas/tests/mock/usecasemock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *usecasemock.MockReservationCommands
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = usecasemock.NewMockReservationCommands(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands)

	s.router.POST("/api/create-reservation", s.handler.CreateReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func validReservationBody() map[string]any {
	return map[string]any{
		"checkin":  "2026-03-10",
		"checkout": "2026-03-12",
		"category": "deluxe",
		"customer": map[string]any{
			"name":     "Ana",
			"surname":  "García",
			"email":    "ana@example.com",
			"phone":    "3001234567",
			"document": "CC-123",
		},
	}
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/api/create-reservation"

	s.Run("creates the reservation and returns the public id", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params usecase.CreateReservationParams) (*usecase.CreateReservationResult, error) {
				s.Equal("deluxe", params.Category)
				s.Equal("ana@example.com", params.Customer.Email)
				return &usecase.CreateReservationResult{
					BookingID:     42,
					ReservationID: "HTR-000042",
					RoomID:        3,
					CustomerID:    7,
				}, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReservationBody())

		var resp resdto.CreateReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.Success)
		s.Equal("HTR-000042", resp.ReservationID)
		s.Equal("Reserva creada exitosamente", resp.Message)
	})

	s.Run("incomplete payload is rejected before the usecase", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"missing category", func(m map[string]any) { delete(m, "category") }},
			{"missing customer", func(m map[string]any) { delete(m, "customer") }},
			{"missing customer surname", func(m map[string]any) {
				delete(m["customer"].(map[string]any), "surname")
			}},
			{"invalid customer email", func(m map[string]any) {
				m["customer"].(map[string]any)["email"] = "not-an-email"
			}},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := validReservationBody()
				tc.mutate(body)

				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Datos de reserva incompletos o inválidos")
			})
		}
	})

	s.Run("malformed dates are rejected before the usecase", func() {
		body := validReservationBody()
		body["checkin"] = "10/03/2026"

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Formato de fecha inválido")
	})

	s.Run("usecase errors map to user-facing messages", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{
				name:       "inverted range",
				err:        usecase.ErrInvalidDateRange,
				expectCode: http.StatusBadRequest,
				expectMsg:  "anterior a la de salida",
			},
			{
				name:       "unknown category",
				err:        usecase.ErrUnknownCategory,
				expectCode: http.StatusBadRequest,
				expectMsg:  "Tipo de habitación no reconocido",
			},
			{
				name:       "no rooms free",
				err:        usecase.ErrNoRoomsAvailable,
				expectCode: http.StatusBadRequest,
				expectMsg:  "No hay habitaciones disponibles",
			},
			{
				name:       "storage failure",
				err:        errs.Mark(errs.New("connection reset"), usecase.ErrDatabaseOperationFailed),
				expectCode: http.StatusInternalServerError,
				expectMsg:  "Error interno del servidor",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.err)

				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReservationBody())
				httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectMsg)
			})
		}
	})
}
