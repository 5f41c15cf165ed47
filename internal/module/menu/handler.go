package menu

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/digimenu/digimenu/internal/domain"
	"github.com/digimenu/digimenu/internal/module/auth"
	"github.com/digimenu/digimenu/internal/pkg"
)

// Handler serves the public storefront menu.
type Handler struct {
	svc Service
}

// NewHandler creates a new menu Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Get handles GET /api/v1/menus/:slug. The route runs behind OptionalAuth so
// owners can preview an inactive storefront.
func (h *Handler) Get(c *gin.Context) {
	slug := c.Param("slug")

	m, err := h.svc.GetBySlug(c.Request.Context(), slug, auth.CurrentUserID(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, NewMenuResponse(m))
}

// RecordItemView handles POST /api/v1/menus/:slug/items/:id/view.
func (h *Handler) RecordItemView(c *gin.Context) {
	slug := c.Param("slug")
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid id", nil))
		return
	}

	if err := h.svc.RecordItemView(c.Request.Context(), slug, uint(id)); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}
