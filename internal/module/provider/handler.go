package provider

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/digimenu/digimenu/internal/domain"
	"github.com/digimenu/digimenu/internal/module/auth"
	"github.com/digimenu/digimenu/internal/pkg"
)

// Handler handles REST API requests for the provider resource.
type Handler struct {
	svc Service
}

// NewHandler creates a new provider Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/providers.
func (h *Handler) Create(c *gin.Context) {
	var req CreateProviderRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.Create(c.Request.Context(), auth.CurrentUserID(c), CreateInput{
		Name:        req.Name,
		NameEn:      req.NameEn,
		Slug:        req.Slug,
		Type:        req.Type,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Phone:       req.Phone,
		Instagram:   req.Instagram,
		PriceRange:  req.PriceRange,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    NewOwnerProviderResponse(p),
	})
}

// Get handles GET /api/v1/providers/:id. The route runs behind OptionalAuth:
// owners get the full projection, everyone else the public one.
func (h *Handler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	p, owner, err := h.svc.Get(c.Request.Context(), id, auth.CurrentUserID(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if owner {
		pkg.Success(c, NewOwnerProviderResponse(p))
		return
	}
	pkg.Success(c, NewPublicProviderResponse(p))
}

// GetMine handles GET /api/v1/providers/me.
func (h *Handler) GetMine(c *gin.Context) {
	p, err := h.svc.GetMine(c.Request.Context(), auth.CurrentUserID(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, NewOwnerProviderResponse(p))
}

// List handles GET /api/v1/providers (public catalog, active storefronts only).
func (h *Handler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, NewPublicProviderList(result))
}

// Update handles PUT /api/v1/providers/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateProviderRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.Update(c.Request.Context(), auth.CurrentUserID(c), id, UpdateInput{
		Name:        req.Name,
		NameEn:      req.NameEn,
		Slug:        req.Slug,
		Type:        req.Type,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Phone:       req.Phone,
		Instagram:   req.Instagram,
		PriceRange:  req.PriceRange,
		IsActive:    req.IsActive,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, NewOwnerProviderResponse(p))
}

// Delete handles DELETE /api/v1/providers/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), auth.CurrentUserID(c), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// QRCode handles GET /api/v1/providers/me/qrcode?size=N, returning a PNG QR
// code of the owner's public menu URL.
func (h *Handler) QRCode(c *gin.Context) {
	size, _ := strconv.Atoi(c.DefaultQuery("size", "0"))

	png, err := h.svc.MenuQRCode(c.Request.Context(), auth.CurrentUserID(c), size)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// parseID parses the :id route parameter.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

var errInvalidID = domain.NewAppError(domain.CodeValidation, "invalid id", nil)
