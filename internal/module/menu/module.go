package menu

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the public menu.
type Module struct {
	handler      *Handler
	optionalAuth gin.HandlerFunc
}

// NewModule creates a new menu Module. optionalAuth lets owners preview an
// inactive storefront on the public menu route.
// Panics if h or optionalAuth is nil.
func NewModule(h *Handler, optionalAuth gin.HandlerFunc) *Module {
	if h == nil {
		panic("menu.NewModule: handler must not be nil")
	}
	if optionalAuth == nil {
		panic("menu.NewModule: optionalAuth must not be nil")
	}
	return &Module{handler: h, optionalAuth: optionalAuth}
}

// RegisterRoutes registers the public menu routes.
func (m *Module) RegisterRoutes(public *gin.RouterGroup, _ *gin.RouterGroup) {
	grp := public.Group("/menus")
	grp.GET("/:slug", m.optionalAuth, m.handler.Get)
	grp.POST("/:slug/items/:id/view", m.handler.RecordItemView)
}
