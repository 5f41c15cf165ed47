package category

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the category domain.
type Module struct {
	handler *Handler
}

// NewModule creates a new category Module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("category.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers category API routes. All of them require auth.
func (m *Module) RegisterRoutes(_ *gin.RouterGroup, protected *gin.RouterGroup) {
	grp := protected.Group("/categories")
	grp.POST("", m.handler.Create)
	grp.GET("", m.handler.List)
	grp.GET("/:id", m.handler.Get)
	grp.PUT("/:id", m.handler.Update)
	grp.DELETE("/:id", m.handler.Delete)
}
