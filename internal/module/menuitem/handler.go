package menuitem

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/digimenu/digimenu/internal/domain"
	"github.com/digimenu/digimenu/internal/module/auth"
	"github.com/digimenu/digimenu/internal/pkg"
)

// Handler handles REST API requests for the menu item resource. All routes are
// owner-scoped: they operate on the acting user's own storefront.
type Handler struct {
	svc Service
}

// NewHandler creates a new menu item Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/items.
func (h *Handler) Create(c *gin.Context) {
	var req CreateMenuItemRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	item, err := h.svc.Create(c.Request.Context(), auth.CurrentUserID(c), CreateInput{
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Name:          req.Name,
		NameEn:        req.NameEn,
		Slug:          req.Slug,
		Description:   req.Description,
		Price:         req.Price,
		IsVegetarian:  req.IsVegetarian,
		IsVegan:       req.IsVegan,
		IsGlutenFree:  req.IsGlutenFree,
		IsSpicy:       req.IsSpicy,
		CalorieCount:  req.CalorieCount,
		AvailableFrom: req.AvailableFrom,
		AvailableTo:   req.AvailableTo,
		AvailableDays: req.AvailableDays,
		Variants:      toVariantInputs(req.Variants),
		Addons:        toAddonInputs(req.Addons),
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    NewMenuItemResponse(item),
	})
}

// Get handles GET /api/v1/items/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.svc.Get(c.Request.Context(), auth.CurrentUserID(c), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, NewMenuItemResponse(item))
}

// List handles GET /api/v1/items.
func (h *Handler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), auth.CurrentUserID(c), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, NewMenuItemList(result))
}

// Update handles PUT /api/v1/items/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateMenuItemRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	in := UpdateInput{
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Name:          req.Name,
		NameEn:        req.NameEn,
		Slug:          req.Slug,
		Description:   req.Description,
		Price:         req.Price,
		Order:         req.Order,
		IsActive:      req.IsActive,
		IsAvailable:   req.IsAvailable,
		IsVegetarian:  req.IsVegetarian,
		IsVegan:       req.IsVegan,
		IsGlutenFree:  req.IsGlutenFree,
		IsSpicy:       req.IsSpicy,
		CalorieCount:  req.CalorieCount,
		AvailableFrom: req.AvailableFrom,
		AvailableTo:   req.AvailableTo,
		AvailableDays: req.AvailableDays,
	}
	if req.Variants != nil {
		variants := toVariantInputs(*req.Variants)
		in.Variants = &variants
	}
	if req.Addons != nil {
		addons := toAddonInputs(*req.Addons)
		in.Addons = &addons
	}

	item, err := h.svc.Update(c.Request.Context(), auth.CurrentUserID(c), id, in)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, NewMenuItemResponse(item))
}

// Delete handles DELETE /api/v1/items/:id.
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
