package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"privy/internal/delivery/http/response"
	domainerrors "privy/internal/domain/errors"
	"privy/internal/domain/geo"
	"privy/internal/usecase"
	"privy/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RestroomHandlerParams holds dependencies for RestroomHandler, injected by Fx.
type RestroomHandlerParams struct {
	fx.In

	RestroomUC usecase.RestroomUsecase
	Logger     *slog.Logger
}

// RestroomHandler holds dependencies for restroom directory handlers
type RestroomHandler struct {
	restroomUC usecase.RestroomUsecase
	logger     *slog.Logger
}

// NewRestroomHandler is the constructor for RestroomHandler
func NewRestroomHandler(params RestroomHandlerParams) *RestroomHandler {
	return &RestroomHandler{
		restroomUC: params.RestroomUC,
		logger:     params.Logger,
	}
}

// SubmitRestroomRequest represents the request body for adding a restroom
type SubmitRestroomRequest struct {
	Name         string  `json:"name" validate:"required,max=255"`
	Latitude     float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" validate:"min=-180,max=180"`
	IsGendered   bool    `json:"is_gendered"`
	IsAccessible bool    `json:"is_accessible"`
	IsPublic     bool    `json:"is_public"`
	BathroomCode string  `json:"bathroom_code" validate:"max=100"`
	Rating       int     `json:"rating" validate:"required,min=1,max=5"`
	ReviewText   string  `json:"review_text"`
}

// ListRestrooms handles listing the whole directory
func (h *RestroomHandler) ListRestrooms(c echo.Context) error {
	origin, err := optionalOrigin(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Invalid origin coordinates")
	}

	listings, err := h.restroomUC.ListRestrooms(c.Request().Context(), origin)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "Restrooms retrieved successfully")
}

// Nearby handles proximity queries around the caller's position
func (h *RestroomHandler) Nearby(c echo.Context) error {
	origin, err := requiredOrigin(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Invalid origin coordinates")
	}

	var radiusMiles float64
	if raw := c.QueryParam("radius"); raw != "" {
		radiusMiles, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_RADIUS", "Invalid radius")
		}
	}

	listings, err := h.restroomUC.Nearby(c.Request().Context(), origin, radiusMiles)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "Nearby restrooms retrieved successfully")
}

// GetRestroom handles retrieving the detail view for one restroom
func (h *RestroomHandler) GetRestroom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restroom ID")
	}

	origin, err := optionalOrigin(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Invalid origin coordinates")
	}

	detail, err := h.restroomUC.GetRestroom(c.Request().Context(), id, origin)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, detail, "Restroom retrieved successfully")
}

// SubmitRestroom handles adding a restroom to the directory
func (h *RestroomHandler) SubmitRestroom(c echo.Context) error {
	var req SubmitRestroomRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restroom input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.SubmitRestroomInput{
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		IsGendered:   req.IsGendered,
		IsAccessible: req.IsAccessible,
		IsPublic:     req.IsPublic,
		BathroomCode: req.BathroomCode,
		Rating:       req.Rating,
		ReviewText:   req.ReviewText,
	}

	restroom, err := h.restroomUC.SubmitRestroom(c.Request().Context(), input)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusCreated, restroom, "Restroom submitted successfully")
}

// DirectionsQR handles rendering the walking-directions QR code
func (h *RestroomHandler) DirectionsQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restroom ID")
	}

	png, err := h.restroomUC.DirectionsQR(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListAdded handles listing restrooms submitted by the calling device
func (h *RestroomHandler) ListAdded(c echo.Context) error {
	origin, err := optionalOrigin(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Invalid origin coordinates")
	}

	listings, err := h.restroomUC.ListAdded(c.Request().Context(), origin)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "Added restrooms retrieved successfully")
}

// ListSaved handles listing restrooms saved by the calling device
func (h *RestroomHandler) ListSaved(c echo.Context) error {
	origin, err := optionalOrigin(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Invalid origin coordinates")
	}

	listings, err := h.restroomUC.ListSaved(c.Request().Context(), origin)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "Saved restrooms retrieved successfully")
}

// handleError maps usecase errors to API responses
func (h *RestroomHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, impl.ErrRestroomNotFound):
		return response.HandleAppError(c, domainerrors.ErrRestroomNotFound)
	case errors.Is(err, impl.ErrInvalidCoordinates):
		return response.HandleAppError(c, domainerrors.ErrInvalidCoordinates)
	case errors.Is(err, impl.ErrInvalidRating):
		return response.HandleAppError(c, domainerrors.ErrInvalidRating)
	}

	return response.HandleAppError(c, err)
}

// optionalOrigin parses lat/lon query parameters when both are present.
// Partial coordinates count as absent; malformed values are an error.
func optionalOrigin(c echo.Context) (*geo.Coordinates, error) {
	rawLat := c.QueryParam("lat")
	rawLon := c.QueryParam("lon")
	if rawLat == "" || rawLon == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, err
	}

	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return nil, err
	}

	origin := geo.Coordinates{Lat: lat, Lon: lon}
	if !origin.Valid() {
		return nil, errors.New("coordinates out of range")
	}

	return &origin, nil
}

// requiredOrigin parses lat/lon query parameters, rejecting absence.
func requiredOrigin(c echo.Context) (geo.Coordinates, error) {
	origin, err := optionalOrigin(c)
	if err != nil {
		return geo.Coordinates{}, err
	}
	if origin == nil {
		return geo.Coordinates{}, errors.New("lat and lon are required")
	}

	return *origin, nil
}
