package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-orders/internal/httperr"
	ucAuth "github.com/BruksfildServices01/service-orders/internal/usecase/auth"
)

type AuthHandler struct {
	login *ucAuth.Login
}

func NewAuthHandler(login *ucAuth.Login) *AuthHandler {
	return &AuthHandler{login: login}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	out, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) && be.Code == ucAuth.CodeInvalidCredentials {
			httperr.Unauthorized(c, be.Code, "Invalid email or password.")
			return
		}
		httperr.Internal(c, "failed_to_login", "Unexpected error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      out.Token,
		"expires_at": out.ExpiresAt,
		"user": gin.H{
			"id":    out.User.ID,
			"name":  out.User.Name,
			"email": out.User.Email,
			"role":  out.User.Role,
		},
	})
}
