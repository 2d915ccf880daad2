// Package handler contains the echo handlers for the HTTP delivery.
package handler

import (
	"io"
	"log/slog"
	"net/http"

	"privy/internal/delivery/http/response"
	domainerrors "privy/internal/domain/errors"
	"privy/internal/usecase"
	"privy/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxProfileImageBytes caps the in-memory image read; oversized uploads
// are rejected before anything is buffered.
const maxProfileImageBytes = 5 << 20

// IdentityHandlerParams holds dependencies for IdentityHandler, injected by Fx.
type IdentityHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// IdentityHandler holds dependencies for device identity handlers
type IdentityHandler struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewIdentityHandler is the constructor for IdentityHandler
func NewIdentityHandler(params IdentityHandlerParams) *IdentityHandler {
	return &IdentityHandler{
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// UpdateProfileRequest represents the request body for updating the profile
type UpdateProfileRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=255"`
	ProfileImage *string `json:"profile_image,omitempty" validate:"omitempty,url"`
}

// Bootstrap handles resolving or minting the device identity
func (h *IdentityHandler) Bootstrap(c echo.Context) error {
	identity, err := h.identityUC.Bootstrap(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, identity, "Device identity resolved successfully")
}

// GetProfile handles retrieving the device profile
func (h *IdentityHandler) GetProfile(c echo.Context) error {
	profile, err := h.identityUC.GetProfile(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// UpdateProfile handles a partial profile update
func (h *IdentityHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateProfileInput{
		Name:         req.Name,
		Location:     req.Location,
		ProfileImage: req.ProfileImage,
	}

	profile, err := h.identityUC.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// UploadProfileImage handles storing a profile image from a multipart form
func (h *IdentityHandler) UploadProfileImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing image file")
	}

	if fileHeader.Size > maxProfileImageBytes {
		return response.BadRequest(c, "IMAGE_TOO_LARGE", "Profile image exceeds the size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable image file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxProfileImageBytes))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable image file")
	}

	contentType := fileHeader.Header.Get("Content-Type")

	profile, err := h.identityUC.SaveProfileImage(c.Request().Context(), fileHeader.Filename, contentType, data)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile image uploaded successfully")
}

// OnboardingStatus handles reporting onboarding completeness
func (h *IdentityHandler) OnboardingStatus(c echo.Context) error {
	status, err := h.identityUC.OnboardingStatus(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, http.StatusOK, status, "Onboarding status retrieved successfully")
}

// handleError maps usecase errors to API responses
func (h *IdentityHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, impl.ErrProfileNotFound) {
		return response.HandleAppError(c, domainerrors.ErrProfileNotFound)
	}

	return response.HandleAppError(c, err)
}
