package handlers

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chabeb/social-network/backend/internal/models"
	"github.com/chabeb/social-network/backend/validators"
	"github.com/labstack/echo/v4"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	return e
}

// newRequestContext builds an echo context for a handler-level test. A
// non-zero userID plants authenticated claims the way the JWT middleware
// would.
func newRequestContext(e *echo.Echo, method, target, body string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set("user", &models.JwtCustomClaims{UserID: userID})
	}
	return c, rec
}

func assertHTTPError(t *testing.T, err error, wantCode int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected HTTP error with code %d, got nil", wantCode)
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	if he.Code != wantCode {
		t.Fatalf("expected status %d, got %d (%v)", wantCode, he.Code, he.Message)
	}
}

func seedUser(t *testing.T, repo *mockUserRepo, username, email string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: email, Password: "irrelevant"}
	if err := repo.CreateUser(user); err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return user
}
