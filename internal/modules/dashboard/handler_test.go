package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carservice/internal/domain"
	"carservice/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupRouter(repo *MockBookingStatsRepository, now time.Time) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(newTestService(repo, now))

	router := gin.New()
	handler.RegisterRoutes(&router.RouterGroup)
	return router
}

func stubEmptyMonth(repo *MockBookingStatsRepository) {
	repo.On("CountByStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(0, nil)
	repo.On("ListForDayWithCustomer", mock.Anything, mock.Anything).Return([]repository.BookingWithCustomer{}, nil)
	repo.On("ListBetween", mock.Anything, mock.Anything, mock.Anything).Return([]domain.Booking{}, nil)
}

func TestHandler_Stats_WireShape(t *testing.T) {
	repo := new(MockBookingStatsRepository)
	stubEmptyMonth(repo)
	router := setupRouter(repo, time.Date(2025, time.November, 14, 12, 0, 0, 0, time.UTC))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dashboard-stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, field := range []string{
		"daily_bookings",
		"weekly_bookings",
		"monthly_bookings",
		"total_cancellations",
		"todays_bookings_list",
		"daily_bookings_chart",
		"yearly_breakdown_chart",
	} {
		assert.Contains(t, body, field)
	}
}

func TestHandler_Series(t *testing.T) {
	repo := new(MockBookingStatsRepository)
	stubEmptyMonth(repo)
	router := setupRouter(repo, time.Date(2025, time.November, 14, 12, 0, 0, 0, time.UTC))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dashboard-stats/series", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		DailySeries   []DailyPointJSON  `json:"daily_series"`
		MonthlySeries []json.RawMessage `json:"monthly_series"`
		IsEmpty       bool              `json:"is_empty"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.IsEmpty)
	assert.Len(t, body.DailySeries, 30)
	assert.Equal(t, "11-01", body.DailySeries[0].Day)
	assert.Len(t, body.MonthlySeries, 12)
}

type DailyPointJSON struct {
	Day      string `json:"day"`
	Bookings int    `json:"bookings"`
}
