//go:build unit

package handler_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"reservation-calendar/internal/handler"
	"reservation-calendar/internal/handler/api"
	resdto "reservation-calendar/internal/handler/dto/response"
	"reservation-calendar/internal/handler/middleware"
	"reservation-calendar/internal/infra/backend"
	"reservation-calendar/internal/infra/notify"
	"reservation-calendar/internal/infra/readstore"
	"reservation-calendar/internal/pkg/clock"
	"reservation-calendar/internal/pkg/config"
	"reservation-calendar/internal/pkg/metrics"
	"reservation-calendar/internal/testutil"
	"reservation-calendar/internal/testutil/builder"
	"reservation-calendar/internal/testutil/httptest"
	"reservation-calendar/internal/usecase"
	"reservation-calendar/internal/usecase/commands"
	"reservation-calendar/internal/usecase/form"
	"reservation-calendar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

// CalendarFlowTestSuite drives the whole HTTP surface against the in-memory backend.
type CalendarFlowTestSuite struct {
	suite.Suite
	router *gin.Engine
	feed   *notify.Feed
}

func (s *CalendarFlowTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.CORS = config.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET", "POST", "PATCH"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       time.Hour,
	}
	clk := clock.NewMockClock(builder.BaseTime)
	mem := backend.NewSeededMemory(cfg.Calendar.StatusDomain, clk)
	store := readstore.NewReservationStore()
	catalog := queries.NewCatalog(mem, cfg.Calendar.StatusDomain)
	s.feed = notify.NewFeed(cfg.Calendar.NoticeHistory, clk)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	coordinator := commands.NewSyncCoordinator(mem, store, catalog, m, clk)
	session := usecase.NewCalendarSession(coordinator, store, catalog, s.feed)

	s.router = gin.New()
	handler.NewRouter(
		s.router,
		cfg,
		middleware.NewLogger(cfg.Log),
		m,
		reg,
		api.NewCalendarHandler(session, s.feed),
		api.NewEditorHandler(session),
	)
	s.Require().NoError(session.Start(context.Background()))
}

func TestCalendarFlowSuite(t *testing.T) {
	suite.Run(t, new(CalendarFlowTestSuite))
}

func (s *CalendarFlowTestSuite) do(method, path string, body any, wantStatus int) resdto.CalendarResponse {
	rec := httptest.PerformRequest(s.T(), s.router, method, path, body)
	var got resdto.CalendarResponse
	httptest.AssertSuccessResponse(s.T(), rec, wantStatus, &got)
	return got
}

func (s *CalendarFlowTestSuite) lastNotice() string {
	recent := s.feed.Recent()
	s.Require().NotEmpty(recent)
	return recent[len(recent)-1].Message
}

func (s *CalendarFlowTestSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}

func (s *CalendarFlowTestSuite) TestInitialView() {
	got := s.do(http.MethodGet, "/api/calendar", nil, http.StatusOK)

	s.False(got.Loading)
	s.False(got.Editor.Open)
	s.Len(got.Events, 3)
	s.Len(got.Statuses, 3)
	s.Len(got.Arrangements, 3)
}

func (s *CalendarFlowTestSuite) TestCreateFlow() {
	s.do(http.MethodPost, "/api/editor/create", nil, http.StatusOK)

	draft := map[string]any{
		"arrangementId":   2,
		"startDate":       "2024-03-15T16:00:00",
		"durationMinutes": 45,
		"note":            "Prvi dolazak",
	}

	s.Run("invalid duration is reported per field", func() {
		body := testutil.DtoMap(s.T(), draft, testutil.Field("durationMinutes", 0))
		s.do(http.MethodPatch, "/api/editor/draft", body, http.StatusOK)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/editor/submit", nil)

		errBody := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		s.Equal(map[string]string{form.FieldDurationMinutes: form.MsgDurationPositive}, errBody.Detail)
	})

	s.Run("fixed draft is saved", func() {
		got := s.do(http.MethodPatch, "/api/editor/draft", testutil.DtoMap(s.T(), draft), http.StatusOK)
		s.Empty(got.Editor.Errors)

		got = s.do(http.MethodPost, "/api/editor/submit", nil, http.StatusOK)

		s.False(got.Editor.Open)
		s.Require().Len(got.Events, 4)
		last := got.Events[3]
		s.Equal("Manikir", last.Title)
		s.Equal("2024-03-15T16:45:00", last.End)
		s.Equal("Prvi dolazak", last.Note)
		s.Equal(usecase.MsgCreated, s.lastNotice())
	})
}

func (s *CalendarFlowTestSuite) TestEditFlow() {
	got := s.do(http.MethodPost, "/api/editor/edit/1", nil, http.StatusOK)
	s.True(got.Editor.IsEdit)
	s.Equal("Uredi rezervaciju", got.Editor.Layout.Title)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/editor/draft", map[string]any{"durationMinutes": 30})
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "not editable")

	s.do(http.MethodPatch, "/api/editor/draft", map[string]any{"statusId": 3, "note": "Otkazao telefonom"}, http.StatusOK)
	got = s.do(http.MethodPost, "/api/editor/submit", nil, http.StatusOK)

	s.False(got.Editor.Open)
	s.Require().Len(got.Events, 3)
	s.True(got.Events[0].Canceled)
	s.Equal("Otkazano", got.Events[0].StatusName)
	s.Equal("Otkazao telefonom", got.Events[0].Note)
	s.Equal(usecase.MsgEdited, s.lastNotice())
}

func (s *CalendarFlowTestSuite) TestDeleteFlow() {
	s.do(http.MethodPost, "/api/editor/edit/2", nil, http.StatusOK)

	got := s.do(http.MethodPost, "/api/editor/delete", nil, http.StatusOK)

	s.False(got.Editor.Open)
	s.False(got.Loading)
	s.Len(got.Events, 2)
	s.Equal(usecase.MsgDeleted, s.lastNotice())

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/editor/edit/2", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
}

func (s *CalendarFlowTestSuite) TestNoteEnterNeverSubmits() {
	s.do(http.MethodPost, "/api/editor/create", nil, http.StatusOK)
	s.do(http.MethodPatch, "/api/editor/draft", map[string]any{"note": "red"}, http.StatusOK)

	got := s.do(http.MethodPost, "/api/editor/note/key", map[string]any{"key": form.KeyEnter}, http.StatusOK)

	s.True(got.Editor.Open)
	s.Require().NotNil(got.Editor.Draft)
	s.Equal("red\n", got.Editor.Draft.Note)
	s.Empty(s.feed.Recent())
}

func (s *CalendarFlowTestSuite) TestMetricsEndpoint() {
	s.do(http.MethodGet, "/api/calendar", nil, http.StatusOK)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/metrics", nil)

	s.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.True(strings.Contains(body, `reservation_calendar_mutations_total{kind="load",outcome="success"} 1`), body)
	s.True(strings.Contains(body, `reservation_calendar_store_reservations 3`), body)
	s.True(strings.Contains(body, `route="/api/calendar"`), body)
}
