// api/controller/account_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/flexpass/api/middleware"
	"github.com/flexpass/api/model"
	"github.com/flexpass/api/util"
)

// AccountController exposes the thin account surface: introspection of the
// resolved auth context and the rate-limited password-reset entry point. It
// carries no business logic.
type AccountController struct {
	notifications *util.NotificationService
}

func NewAccountController(notifications *util.NotificationService) *AccountController {
	return &AccountController{notifications: notifications}
}

// RegisterRoutes registers the authenticated account routes.
func (ctrl *AccountController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/account/me", ctrl.Me)
}

// Me returns the caller's resolved identity, tenant and role for this
// request. On tenant-exempt paths the context may be empty; that is not an
// error.
func (ctrl *AccountController) Me(c *gin.Context) {
	rc, ok := middleware.RequestAuth(c)
	if !ok {
		c.JSON(http.StatusOK, model.RequestAuthContext{})
		return
	}
	c.JSON(http.StatusOK, rc)
}

type passwordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// PasswordResetIdentifier keys the password_reset rate limit on the
// normalized target address, so attempts against one account are bounded
// regardless of source IP.
func PasswordResetIdentifier(c *gin.Context) string {
	var req passwordResetRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(req.Email))
}

// RequestPasswordReset accepts a reset request and hands it to the
// notification service. The response never discloses whether the address
// exists.
func (ctrl *AccountController) RequestPasswordReset(c *gin.Context) {
	var req passwordResetRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a valid email is required"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := ctrl.notifications.SendPasswordReset(c.Request.Context(), email); err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "failed to dispatch password reset", err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}
