package api

import (
	"net/http"

	"reservation-calendar/internal/handler/httperr"
	"reservation-calendar/internal/infra/backend"
	"reservation-calendar/internal/infra/notify"
	"reservation-calendar/internal/pkg/errs"
	"reservation-calendar/internal/usecase"
	"reservation-calendar/internal/usecase/commands"
	"reservation-calendar/internal/usecase/form"

	"github.com/gin-gonic/gin"
)

// abortWithSessionError maps session and sync errors onto HTTP statuses.
func abortWithSessionError(c *gin.Context, err error) {
	var verrs form.ValidationErrors
	switch {
	case errs.As(err, &verrs):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", map[string]string(verrs))
	case errs.Is(err, usecase.ErrBusy):
		httperr.AbortWithError(c, http.StatusConflict, err, "Another change is still being saved", nil)
	case errs.Is(err, errs.ErrEditorAlreadyOpen):
		httperr.AbortWithError(c, http.StatusConflict, err, "Editor is already open", nil)
	case errs.Is(err, errs.ErrEditorClosed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Editor is closed", nil)
	case errs.Is(err, usecase.ErrNotInEditMode):
		httperr.AbortWithError(c, http.StatusConflict, err, "Editor is not in edit mode", nil)
	case errs.Is(err, usecase.ErrFieldNotEditable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Field is not editable in this mode", nil)
	case errs.Is(err, errs.ErrDraftModeMismatch), errs.Is(err, form.ErrModeMismatch):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Draft does not match editor mode", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, backend.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, notify.MessageFor(err), nil)
	case errs.Is(err, commands.ErrCreateFailed),
		errs.Is(err, commands.ErrEditFailed),
		errs.Is(err, commands.ErrDeleteFailed),
		errs.Is(err, commands.ErrRefetchFailed),
		errs.Is(err, commands.ErrInitialLoadFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, notify.MessageFor(err), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
