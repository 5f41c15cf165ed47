package provider

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the provider domain.
type Module struct {
	handler      *Handler
	optionalAuth gin.HandlerFunc
}

// NewModule creates a new provider Module. optionalAuth is applied to the
// public detail route so owners get the full projection.
// Panics if h or optionalAuth is nil.
func NewModule(h *Handler, optionalAuth gin.HandlerFunc) *Module {
	if h == nil {
		panic("provider.NewModule: handler must not be nil")
	}
	if optionalAuth == nil {
		panic("provider.NewModule: optionalAuth must not be nil")
	}
	return &Module{handler: h, optionalAuth: optionalAuth}
}

// RegisterRoutes registers provider API routes.
func (m *Module) RegisterRoutes(public *gin.RouterGroup, protected *gin.RouterGroup) {
	grp := public.Group("/providers")
	grp.GET("", m.handler.List)
	grp.GET("/:id", m.optionalAuth, m.handler.Get)

	own := protected.Group("/providers")
	own.POST("", m.handler.Create)
	own.GET("/me", m.handler.GetMine)
	own.GET("/me/qrcode", m.handler.QRCode)
	own.PUT("/:id", m.handler.Update)
	own.DELETE("/:id", m.handler.Delete)
}
