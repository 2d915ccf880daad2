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

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// SubmitReviewRequest represents the request body for reviewing a restroom
type SubmitReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text"`
}

// ListReviews handles retrieving a restroom's review feed
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	restroomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restroom ID")
	}

	feed, err := h.reviewUC.ListReviews(c.Request().Context(), restroomID)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, feed, "Reviews retrieved successfully")
}

// SubmitReview handles recording a review
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	restroomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restroom ID")
	}

	var req SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.SubmitReviewInput{
		Rating: req.Rating,
		Text:   req.Text,
	}

	review, err := h.reviewUC.SubmitReview(c.Request().Context(), restroomID, input)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusCreated, review, "Review submitted successfully")
}

// handleError maps usecase errors to API responses
func (h *ReviewHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, impl.ErrRestroomNotFound):
		return response.HandleAppError(c, domainerrors.ErrRestroomNotFound)
	case errors.Is(err, impl.ErrInvalidRating):
		return response.HandleAppError(c, domainerrors.ErrInvalidRating)
	}

	return response.HandleAppError(c, err)
}
