package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/community-blog-api/internal/application"
	"github.com/oksasatya/community-blog-api/internal/interface/middleware"
	"github.com/oksasatya/community-blog-api/pkg/response"
	"github.com/oksasatya/community-blog-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *app.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *app.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,min=2"`
	Username string `json:"username" binding:"required,min=3"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignUp POST /auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.SignUp(c.Request.Context(), app.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Username: req.Username,
	})
	if err != nil {
		if errors.Is(err, app.ErrEmailOrUsernameTaken) {
			response.Error(c, http.StatusConflict, "email or username already exists", nil)
			return
		}
		h.Logger.WithError(err).Error("signup failed")
		response.Error(c, http.StatusInternalServerError, "failed to sign up", nil)
		return
	}
	response.Success(c, http.StatusCreated, res, "user created", nil)
}

// SignIn POST /auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, app.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("signin failed")
		response.Error(c, http.StatusInternalServerError, "failed to sign in", nil)
		return
	}
	response.Success(c, http.StatusOK, res, "signed in", nil)
}

// SignOut POST /auth/signout (bearer)
func (h *AuthHandler) SignOut(c *gin.Context) {
	uid, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	res, err := h.Svc.SignOut(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to sign out", nil)
		return
	}
	response.Success(c, http.StatusOK, res, "signed out", nil)
}
