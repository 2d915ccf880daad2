package handler

import (
	"log/slog"
	"net/http"

	"privy/internal/delivery/http/response"
	domainerrors "privy/internal/domain/errors"
	"privy/internal/usecase"
	"privy/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SavedHandlerParams holds dependencies for SavedHandler, injected by Fx.
type SavedHandlerParams struct {
	fx.In

	SavedUC usecase.SavedUsecase
	Logger  *slog.Logger
}

// SavedHandler holds dependencies for the save toggle handler
type SavedHandler struct {
	savedUC usecase.SavedUsecase
	logger  *slog.Logger
}

// NewSavedHandler is the constructor for SavedHandler
func NewSavedHandler(params SavedHandlerParams) *SavedHandler {
	return &SavedHandler{
		savedUC: params.SavedUC,
		logger:  params.Logger,
	}
}

// ToggleSave handles flipping the saved state of a restroom
func (h *SavedHandler) ToggleSave(c echo.Context) error {
	restroomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restroom ID")
	}

	saved, err := h.savedUC.ToggleSave(c.Request().Context(), restroomID)
	if err != nil {
		if errors.Is(err, impl.ErrRestroomNotFound) {
			return response.HandleAppError(c, domainerrors.ErrRestroomNotFound)
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"saved": saved}, "Saved state toggled successfully")
}
