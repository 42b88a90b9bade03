package api

import (
	"net/http"
	"strconv"

	reqdto "reservation-calendar/internal/handler/dto/request"
	resdto "reservation-calendar/internal/handler/dto/response"
	"reservation-calendar/internal/handler/httperr"
	"reservation-calendar/internal/pkg/errs"
	"reservation-calendar/internal/usecase"

	"github.com/gin-gonic/gin"
)

type EditorHandler struct {
	session usecase.CalendarSession
}

func NewEditorHandler(session usecase.CalendarSession) *EditorHandler {
	return &EditorHandler{session: session}
}

// @Summary Open create editor
// @Tags editor
// @Produce json
// @Success 200 {object} resdto.CalendarResponse
// @Failure 409 {object} httperr.Response
// @Router /api/editor/create [post]
func (h *EditorHandler) OpenCreate(c *gin.Context) {
	if err := h.session.OpenCreate(); err != nil {
		abortWithSessionError(c, err)
		return
	}
	h.respondView(c)
}

// @Summary Open edit editor
// @Description Selects a calendar event and seeds the edit draft from it
// @Tags editor
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/editor/edit/{id} [post]
func (h *EditorHandler) OpenEdit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err == nil && id <= 0 {
		err = errs.Newf("reservation id must be positive, got %d", id)
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}
	if err := h.session.OpenEdit(id); err != nil {
		abortWithSessionError(c, err)
		return
	}
	h.respondView(c)
}

// @Summary Cancel editor
// @Tags editor
// @Produce json
// @Success 200 {object} resdto.CalendarResponse
// @Router /api/editor/cancel [post]
func (h *EditorHandler) Cancel(c *gin.Context) {
	h.session.Cancel()
	h.respondView(c)
}

// @Summary Update draft
// @Description Applies changed fields to the active draft; fields hidden in the current mode are rejected
// @Tags editor
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateDraftRequest true "Changed fields"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/editor/draft [patch]
func (h *EditorHandler) UpdateDraft(c *gin.Context) {
	var req reqdto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.session.UpdateDraft(req.ToPatch()); err != nil {
		abortWithSessionError(c, err)
		return
	}
	h.respondView(c)
}

// @Summary Note keypress
// @Description Enter inside the note inserts a newline and never submits
// @Tags editor
// @Accept json
// @Produce json
// @Param request body reqdto.NoteKeyRequest true "Pressed key"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/editor/note/key [post]
func (h *EditorHandler) NoteKey(c *gin.Context) {
	var req reqdto.NoteKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.session.NoteKey(req.Key); err != nil {
		abortWithSessionError(c, err)
		return
	}
	h.respondView(c)
}

// @Summary Submit editor
// @Description Validates the draft for the active mode and sends it to the backend
// @Tags editor
// @Produce json
// @Success 200 {object} resdto.CalendarResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/editor/submit [post]
func (h *EditorHandler) Submit(c *gin.Context) {
	if err := h.session.Submit(c.Request.Context()); err != nil {
		abortWithSessionError(c, err)
		return
	}
	h.respondView(c)
}

// @Summary Delete reservation
// @Description Deletes the reservation open in the edit editor
// @Tags editor
// @Produce json
// @Success 200 {object} resdto.CalendarResponse
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/editor/delete [post]
func (h *EditorHandler) Delete(c *gin.Context) {
	if err := h.session.Delete(c.Request.Context()); err != nil {
		abortWithSessionError(c, err)
		return
	}
	h.respondView(c)
}

func (h *EditorHandler) respondView(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromView(h.session.View(), ""))
}
