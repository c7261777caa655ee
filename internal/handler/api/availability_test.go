//go:build unit

package api_test

import (
	"net/http"
	"testing"

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

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *usecasemock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = usecasemock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.POST("/api/check-availability", s.handler.CheckAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestCheckAvailability() {
	url := "/api/check-availability"
	validBody := map[string]any{"checkin": "2026-03-10", "checkout": "2026-03-12"}

	s.Run("returns per-category availability", func() {
		s.mockQueries.EXPECT().
			Check(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string]readmodel.CategoryAvailabilityRM{
				"estandar":     {Available: true, Price: 130000, Rooms: 2},
				"deluxe":       {Available: false, Price: 250000, Rooms: 0},
				"suite":        {Available: true, Price: 400000, Rooms: 1},
				"presidencial": {Available: false, Price: 500000, Rooms: 0},
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody)

		var resp resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 4)
		s.True(resp["estandar"].Available)
		s.Equal(130000.0, resp["estandar"].Price)
		s.Equal(2, resp["estandar"].Rooms)
		s.False(resp["deluxe"].Available)
	})

	s.Run("missing dates are rejected before the usecase", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"checkin": "2026-03-10"})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Fechas requeridas")
	})

	s.Run("malformed dates are rejected before the usecase", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"checkin": "10/03/2026", "checkout": "2026-03-12"})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Formato de fecha inválido")
	})

	s.Run("inverted range maps to 400", func() {
		s.mockQueries.EXPECT().
			Check(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrInvalidDateRange)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"checkin": "2026-03-12", "checkout": "2026-03-10"})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "anterior a la de salida")
	})

	s.Run("storage failure maps to 500", func() {
		s.mockQueries.EXPECT().
			Check(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection reset"), usecase.ErrDatabaseOperationFailed))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Error interno del servidor")
	})
}
