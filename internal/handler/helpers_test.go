package handler

import (
	"net/http/httptest"
	"strings"
	"time"

	"github.com/dafibh/karja/karja-backend/internal/middleware"
	"github.com/dafibh/karja/karja-backend/internal/service"
	"github.com/dafibh/karja/karja-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const testUserID = "auth0|test"

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

// setupAuthContext sets the authenticated user on the request context
func setupAuthContext(c echo.Context, userID string) {
	c.SetRequest(c.Request().WithContext(middleware.WithUserID(c.Request().Context(), userID)))
}

// newJSONContext builds an echo context for a JSON request
func newJSONContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req = httptest.NewRequest(method, path, nil)
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// newTestServices wires the debt and dashboard services over a mock repository
func newTestServices() (*service.DebtService, *service.DashboardService, *testutil.MockDebtRepository) {
	repo := testutil.NewMockDebtRepository()
	config := service.DefaultDashboardServiceConfig()
	config.Now = fixedNow
	dashboardService := service.NewDashboardService(repo, zerolog.Nop(), config)
	debtService := service.NewDebtService(repo, dashboardService)
	return debtService, dashboardService, repo
}
