package provider

import (
	"time"

	"github.com/digimenu/digimenu/internal/domain"
)

// CreateProviderRequest represents the input for creating a storefront.
type CreateProviderRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=160"`
	NameEn      string `json:"name_en" binding:"omitempty,max=160"`
	Slug        string `json:"slug" binding:"omitempty,max=160"`
	Type        string `json:"type" binding:"omitempty,oneof=restaurant cafe bakery food_truck other"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Address     string `json:"address" binding:"omitempty,max=500"`
	City        string `json:"city" binding:"omitempty,max=100"`
	Phone       string `json:"phone" binding:"omitempty,max=32"`
	Instagram   string `json:"instagram" binding:"omitempty,max=100"`
	PriceRange  string `json:"price_range" binding:"omitempty,oneof=$ $$ $$$ $$$$"`
}

// UpdateProviderRequest represents a partial storefront update.
// Absent fields are left untouched.
type UpdateProviderRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=160"`
	NameEn      *string `json:"name_en" binding:"omitempty,max=160"`
	Slug        *string `json:"slug" binding:"omitempty,max=160"`
	Type        *string `json:"type" binding:"omitempty,oneof=restaurant cafe bakery food_truck other"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Address     *string `json:"address" binding:"omitempty,max=500"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,max=32"`
	Instagram   *string `json:"instagram" binding:"omitempty,max=100"`
	PriceRange  *string `json:"price_range" binding:"omitempty,oneof=$ $$ $$$ $$$$"`
	IsActive    *bool   `json:"is_active"`
}

// PublicProviderResponse is the projection returned to non-owners. It omits
// the activation/onboarding flags and the owner's contact fields.
type PublicProviderResponse struct {
	ID          uint      `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	NameEn      string    `json:"name_en,omitempty"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	Instagram   string    `json:"instagram,omitempty"`
	PriceRange  string    `json:"price_range,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// OwnerProviderResponse is the full projection returned to the owner.
// BusinessType mirrors Type for compatibility with clients that predate the
// business→provider rename.
type OwnerProviderResponse struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	NameEn       string    `json:"name_en,omitempty"`
	Type         string    `json:"type"`
	BusinessType string    `json:"business_type"`
	Description  string    `json:"description,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Instagram    string    `json:"instagram,omitempty"`
	PriceRange   string    `json:"price_range,omitempty"`
	IsActive     bool      `json:"is_active"`
	IsCompleted  bool      `json:"is_completed"`
	IsVerified   bool      `json:"is_verified"`
	ViewCount    int64     `json:"view_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewPublicProviderResponse maps a provider to its non-owner projection.
func NewPublicProviderResponse(p *domain.Provider) PublicProviderResponse {
	return PublicProviderResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		NameEn:      p.NameEn,
		Type:        p.Type,
		Description: p.Description,
		Address:     p.Address,
		City:        p.City,
		Instagram:   p.Instagram,
		PriceRange:  p.PriceRange,
		CreatedAt:   p.CreatedAt,
	}
}

// NewOwnerProviderResponse maps a provider to its owner projection.
func NewOwnerProviderResponse(p *domain.Provider) OwnerProviderResponse {
	return OwnerProviderResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Slug:         p.Slug,
		Name:         p.Name,
		NameEn:       p.NameEn,
		Type:         p.Type,
		BusinessType: p.Type,
		Description:  p.Description,
		Address:      p.Address,
		City:         p.City,
		Phone:        p.Phone,
		Instagram:    p.Instagram,
		PriceRange:   p.PriceRange,
		IsActive:     p.IsActive,
		IsCompleted:  p.IsCompleted,
		IsVerified:   p.IsVerified,
		ViewCount:    p.ViewCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewPublicProviderList maps a provider page to the non-owner projection.
func NewPublicProviderList(page *domain.PageResult[domain.Provider]) *domain.PageResult[PublicProviderResponse] {
	items := make([]PublicProviderResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, NewPublicProviderResponse(&page.Items[i]))
	}
	return &domain.PageResult[PublicProviderResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}
