package api

import (
	"net/http"

	resdto "reservation-calendar/internal/handler/dto/response"
	"reservation-calendar/internal/infra/notify"
	"reservation-calendar/internal/usecase"

	"github.com/gin-gonic/gin"
)

type NoticeReader interface {
	Recent() []notify.Notice
}

type CalendarHandler struct {
	session usecase.CalendarSession
	notices NoticeReader
}

func NewCalendarHandler(session usecase.CalendarSession, notices NoticeReader) *CalendarHandler {
	return &CalendarHandler{session: session, notices: notices}
}

// @Summary Calendar view
// @Description Loading flag, editor state, calendar events and picker options
// @Tags calendar
// @Produce json
// @Param arrangementSearch query string false "Case-insensitive filter for the arrangement picker"
// @Success 200 {object} resdto.CalendarResponse
// @Router /api/calendar [get]
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromView(h.session.View(), c.Query("arrangementSearch")))
}

// @Summary Recent notices
// @Description Success and error notices, newest last
// @Tags calendar
// @Produce json
// @Success 200 {array} resdto.NoticeResponse
// @Router /api/notices [get]
func (h *CalendarHandler) GetNotices(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromNotices(h.notices.Recent()))
}
