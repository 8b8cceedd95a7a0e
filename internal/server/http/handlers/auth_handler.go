package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/greenloop/cleanearth/internal/domain/errors"
	"github.com/greenloop/cleanearth/internal/server/http/dto"
	"github.com/greenloop/cleanearth/internal/server/http/middleware"
)

// AuthHandler processes signup, login and logout.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// SignupPage handles GET /signup.
func (h *AuthHandler) SignupPage(c *gin.Context) {
	if h.authenticated(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "signup"})
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid form data"})
		return
	}

	user, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		var vErr *domainErrors.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: vErr.Reason})
		case errors.Is(err, domainErrors.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "registration failed, please try again"})
		}
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(*user))
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if h.authenticated(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "login"})
}

// Login handles POST /login. On success the session cookie is set and the
// browser is sent to the page it originally asked for.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid form data"})
		return
	}

	_, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var vErr *domainErrors.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: vErr.Reason})
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid email or password"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "login failed, please try again"})
		}
		return
	}

	middleware.SetAuthCookie(c, token)

	next := c.Query("next")
	if next == "" {
		next = c.PostForm("next")
	}
	c.Redirect(http.StatusFound, safeRedirect(next))
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) authenticated(c *gin.Context) bool {
	token := middleware.TokenFromRequest(c)
	if token == "" {
		return false
	}
	_, err := h.facade.ParseToken(token)
	return err == nil
}
