package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/storeops/shift-scheduler/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScheduleService struct {
	run         *entity.ScheduleRun
	deleted     int64
	err         error
	gotWeek     time.Time
	gotLocation int64
}

func (s *stubScheduleService) GenerateSchedule(ctx context.Context, weekStart time.Time, locationID int64) (*entity.ScheduleRun, error) {
	s.gotWeek = weekStart
	s.gotLocation = locationID
	return s.run, s.err
}

func (s *stubScheduleService) ClearWeek(ctx context.Context, weekStart time.Time, locationID int64) (int64, error) {
	s.gotWeek = weekStart
	s.gotLocation = locationID
	return s.deleted, s.err
}

func postForm(t *testing.T, handler http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/schedule", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleGenerate(t *testing.T) {
	t.Run("should return the run summary", func(t *testing.T) {
		stub := &stubScheduleService{
			run: &entity.ScheduleRun{
				RunID:      "run-123",
				WeekStart:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
				LocationID: 1,
				Shifts:     []*entity.Shift{{ID: 1}, {ID: 2}},
				Dropped:    1,
			},
		}
		handler := New(stub)

		rec := postForm(t, handler.HandleGenerate, url.Values{
			"week_start":  {"2025-06-01"},
			"location_id": {"1"},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(1), stub.gotLocation)
		assert.Equal(t, "2025-06-01", stub.gotWeek.Format("2006-01-02"))

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "run-123", body["run_id"])
		assert.Equal(t, float64(2), body["created"])
		assert.Equal(t, float64(1), body["dropped"])
	})

	t.Run("should reject a missing week_start", func(t *testing.T) {
		handler := New(&stubScheduleService{})

		rec := postForm(t, handler.HandleGenerate, url.Values{})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "week_start is required")
	})

	t.Run("should reject a malformed week_start", func(t *testing.T) {
		handler := New(&stubScheduleService{})

		rec := postForm(t, handler.HandleGenerate, url.Values{"week_start": {"June 1st"}})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should hide internal errors behind a 500", func(t *testing.T) {
		handler := New(&stubScheduleService{err: errors.New("db is down")})

		rec := postForm(t, handler.HandleGenerate, url.Values{"week_start": {"2025-06-01"}})

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "db is down")
	})

	t.Run("should only accept POST", func(t *testing.T) {
		handler := New(&stubScheduleService{})

		req := httptest.NewRequest(http.MethodGet, "/schedule", nil)
		rec := httptest.NewRecorder()
		handler.HandleGenerate(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandleClear(t *testing.T) {
	stub := &stubScheduleService{deleted: 35}
	handler := New(stub)

	rec := postForm(t, handler.HandleClear, url.Values{"week_start": {"2025-06-01"}})

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(35), body["deleted"])
}
