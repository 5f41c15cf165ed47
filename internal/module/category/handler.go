package category

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/digimenu/digimenu/internal/domain"
	"github.com/digimenu/digimenu/internal/module/auth"
	"github.com/digimenu/digimenu/internal/pkg"
)

// Handler handles REST API requests for the category resource. All routes are
// owner-scoped: they operate on the acting user's own storefront.
type Handler struct {
	svc Service
}

// NewHandler creates a new category Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/categories.
func (h *Handler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	cat, err := h.svc.Create(c.Request.Context(), auth.CurrentUserID(c), CreateInput{
		Name:          req.Name,
		NameEn:        req.NameEn,
		Slug:          req.Slug,
		AvailableFrom: req.AvailableFrom,
		AvailableTo:   req.AvailableTo,
		AvailableDays: req.AvailableDays,
		Subcategories: toSubcategoryInputs(req.Subcategories),
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    NewCategoryResponse(cat),
	})
}

// Get handles GET /api/v1/categories/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cat, err := h.svc.Get(c.Request.Context(), auth.CurrentUserID(c), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, NewCategoryResponse(cat))
}

// List handles GET /api/v1/categories.
func (h *Handler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), auth.CurrentUserID(c), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, NewCategoryList(result))
}

// Update handles PUT /api/v1/categories/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	in := UpdateInput{
		Name:          req.Name,
		NameEn:        req.NameEn,
		Slug:          req.Slug,
		Order:         req.Order,
		IsActive:      req.IsActive,
		AvailableFrom: req.AvailableFrom,
		AvailableTo:   req.AvailableTo,
		AvailableDays: req.AvailableDays,
	}
	if req.Subcategories != nil {
		subs := toSubcategoryInputs(*req.Subcategories)
		in.Subcategories = &subs
	}

	cat, err := h.svc.Update(c.Request.Context(), auth.CurrentUserID(c), id, in)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, NewCategoryResponse(cat))
}

// Delete handles DELETE /api/v1/categories/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), auth.CurrentUserID(c), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid id", nil))
		return 0, false
	}
	return uint(id), true
}
