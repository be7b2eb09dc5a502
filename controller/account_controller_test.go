// api/controller/account_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/flexpass/api/controller"
	"github.com/flexpass/api/logging"
	"github.com/flexpass/api/util"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logging.InitTestLogger()
	os.Exit(m.Run())
}

func setupRouter() (*gin.Engine, *controller.AccountController) {
	ctrl := controller.NewAccountController(util.NewNotificationService())
	router := gin.New()
	return router, ctrl
}

func TestRequestPasswordReset_Accepted(t *testing.T) {
	router, ctrl := setupRouter()
	router.POST("/password-reset", ctrl.RequestPasswordReset)

	body := strings.NewReader(`{"email":"U1@Example.com"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/password-reset", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestRequestPasswordReset_InvalidEmail(t *testing.T) {
	router, ctrl := setupRouter()
	router.POST("/password-reset", ctrl.RequestPasswordReset)

	for _, payload := range []string{`{}`, `{"email":"not-an-email"}`, ``} {
		body := strings.NewReader(payload)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/password-reset", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "payload %q", payload)
	}
}

func TestPasswordResetIdentifier_NormalizesEmail(t *testing.T) {
	router, _ := setupRouter()

	var identifier string
	router.POST("/password-reset", func(c *gin.Context) {
		identifier = controller.PasswordResetIdentifier(c)
		c.Status(http.StatusOK)
	})

	body := strings.NewReader(`{"email":"U1@Example.com"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/password-reset", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1@example.com", identifier)
}

func TestMe_EmptyContextIsNotAnError(t *testing.T) {
	router, ctrl := setupRouter()
	router.GET("/account/me", ctrl.Me)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/account/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}
