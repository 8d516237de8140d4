package handler

import (
	"log/slog"
	"net/http"
	"time"

	"calshare/internal/delivery/http/middleware"
	"calshare/internal/delivery/http/response"
	"calshare/internal/domain/entity"
	domainerrors "calshare/internal/domain/errors"
	"calshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShareHandler holds dependencies for share-link management handlers.
type ShareHandler struct {
	uc     usecase.ShareUsecase
	logger *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler, injected by Fx.
func NewShareHandler(uc usecase.ShareUsecase, logger *slog.Logger) *ShareHandler {
	return &ShareHandler{
		uc:     uc,
		logger: logger,
	}
}

type createShareRequest struct {
	CalendarID  uuid.UUID `json:"calendarId" validate:"required"`
	Description string    `json:"description" validate:"max=255"`
}

type shareLinkResponse struct {
	ShareID     string     `json:"shareId"`
	CalendarID  uuid.UUID  `json:"calendarId"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastUsed    *time.Time `json:"lastUsed,omitempty"`
}

func newShareLinkResponse(link *entity.ShareLink) shareLinkResponse {
	return shareLinkResponse{
		ShareID:     link.ShareID,
		CalendarID:  link.CalendarID,
		Description: link.Description,
		CreatedAt:   link.CreatedAt,
		LastUsed:    link.LastUsed,
	}
}

// CreateShareLink mints a share link. The response is the only time the
// plaintext token is ever disclosed.
func (h *ShareHandler) CreateShareLink(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	var req createShareRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid share link input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateShareLink(c.Request().Context(), &usecase.CreateShareLinkInput{
		UserID:      userID,
		CalendarID:  req.CalendarID,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"shareId":   output.ShareID,
		"token":     output.Token,
		"url":       output.URL,
		"createdAt": output.CreatedAt,
	}, "Share link created; the token is shown only once")
}

// ListShareLinks returns the account's share links without any secret material.
func (h *ShareHandler) ListShareLinks(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	links, err := h.uc.ListShareLinks(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]shareLinkResponse, 0, len(links))
	for _, link := range links {
		out = append(out, newShareLinkResponse(link))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// DeleteShareLink revokes a share link immediately.
func (h *ShareHandler) DeleteShareLink(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	if err := h.uc.DeleteShareLink(c.Request().Context(), userID, c.Param("shareID")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Share link revoked"}, "Share link revoked")
}

// ShareLinkQRCode renders the feed URL of a link as a PNG. The plaintext
// token must be supplied in the token query parameter; the server keeps
// only hashes and cannot rebuild the URL on its own.
func (h *ShareHandler) ShareLinkQRCode(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	token := c.QueryParam("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "token query parameter is required")
	}

	png, err := h.uc.ShareLinkQRCode(c.Request().Context(), userID, c.Param("shareID"), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
