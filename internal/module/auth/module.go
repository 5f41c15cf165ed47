package auth

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the auth domain.
type Module struct {
	handler *Handler
}

// NewModule creates a new auth Module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("auth.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers auth API routes.
func (m *Module) RegisterRoutes(public *gin.RouterGroup, protected *gin.RouterGroup) {
	grp := public.Group("/auth")
	grp.POST("/register", m.handler.Register)
	grp.POST("/login", m.handler.Login)

	me := protected.Group("/auth")
	me.POST("/logout", m.handler.Logout)
	me.GET("/me", m.handler.Me)
	me.PUT("/me", m.handler.UpdateMe)
}
