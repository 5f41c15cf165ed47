package menuitem

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the menu item domain.
type Module struct {
	handler *Handler
}

// NewModule creates a new menu item Module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("menuitem.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers menu item API routes. All of them require auth.
func (m *Module) RegisterRoutes(_ *gin.RouterGroup, protected *gin.RouterGroup) {
	grp := protected.Group("/items")
	grp.POST("", m.handler.Create)
	grp.GET("", m.handler.List)
	grp.GET("/:id", m.handler.Get)
	grp.PUT("/:id", m.handler.Update)
	grp.DELETE("/:id", m.handler.Delete)
}
