package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Jim-flores/odontosys-bk/internal/apierror"
	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/middleware"
	"github.com/Jim-flores/odontosys-bk/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary  Authenticate and issue an access token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body dto.LoginRequest true "Credentials"
// @Success  200 {object} dto.LoginResponse
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, resp, "Login successful")
}

// Register godoc
// @Summary  Create an account with no roles attached
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body dto.RegisterRequest true "New user"
// @Success  201 {object} dto.RegisterResponse
// @Router   /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, resp, "User registered successfully")
}

// Profile godoc
// @Summary  Current user with roles and effective permissions
// @Tags     auth
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} dto.ProfileResponse
// @Router   /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		fail(c, apierror.Unauthorized("Authentication required"))
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		fail(c, apierror.Unauthorized("Invalid token subject"))
		return
	}
	resp, err := h.svc.Profile(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}
