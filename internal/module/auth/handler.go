package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/digimenu/digimenu/internal/pkg"
)

// Handler handles REST API requests for authentication and profile.
type Handler struct {
	svc          Service
	tokenExpiry  time.Duration
	cookieSecure bool
}

// NewHandler creates a new auth Handler. cookieSecure should be true whenever
// the service is reachable over HTTPS (release mode).
func NewHandler(svc Service, tokenExpiry time.Duration, cookieSecure bool) *Handler {
	return &Handler{svc: svc, tokenExpiry: tokenExpiry, cookieSecure: cookieSecure}
}

// Register handles POST /api/v1/auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	user, err := h.svc.Register(c.Request.Context(), RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "user registered successfully",
		Data:    NewUserResponse(user),
	})
}

// Login handles POST /api/v1/auth/login. On success the token is returned in
// the body and also set as an HTTP-only cookie.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	tokenResp, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.SetCookie(CookieName, tokenResp.Token, int(h.tokenExpiry.Seconds()), "/", "", h.cookieSecure, true)
	pkg.Success(c, tokenResp)
}

// Logout handles POST /api/v1/auth/logout by expiring the cookie.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", h.cookieSecure, true)
	pkg.Success(c, nil)
}

// Me handles GET /api/v1/auth/me.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.svc.GetProfile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, NewUserResponse(user))
}

// UpdateMe handles PUT /api/v1/auth/me.
func (h *Handler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	user, err := h.svc.UpdateProfile(c.Request.Context(), CurrentUserID(c), UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, NewUserResponse(user))
}
