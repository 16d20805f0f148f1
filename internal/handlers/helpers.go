package handlers

import (
	"net/http"

	"github.com/chabeb/social-network/backend/internal/apperrors"
	"github.com/labstack/echo/v4"
)

// ProfanityFilter is the collaborator contract for banned-term handling.
// Handles are hard-rejected while free text is silently cleaned.
type ProfanityFilter interface {
	IsProfane(s string) bool
	Clean(s string) string
}

// httpError translates a classified application error into the HTTP response
// for it. Unclassified errors stay opaque 500s.
func httpError(err error) *echo.HTTPError {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case apperrors.KindDuplicate:
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case apperrors.KindNotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case apperrors.KindForbidden:
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case apperrors.KindAuth:
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
