package category

import (
	"time"

	"github.com/digimenu/digimenu/internal/domain"
)

// SubcategoryRequest is one subcategory in a create or update payload.
type SubcategoryRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=160"`
	NameEn string `json:"name_en" binding:"omitempty,max=160"`
	Order  int    `json:"order" binding:"omitempty,min=0"`
}

// CreateCategoryRequest represents the input for creating a category.
type CreateCategoryRequest struct {
	Name          string               `json:"name" binding:"required,min=1,max=160"`
	NameEn        string               `json:"name_en" binding:"omitempty,max=160"`
	Slug          string               `json:"slug" binding:"omitempty,max=160"`
	AvailableFrom string               `json:"available_from" binding:"omitempty,datetime=15:04"`
	AvailableTo   string               `json:"available_to" binding:"omitempty,datetime=15:04"`
	AvailableDays string               `json:"available_days" binding:"omitempty,max=64"`
	Subcategories []SubcategoryRequest `json:"subcategories" binding:"omitempty,dive"`
}

// UpdateCategoryRequest represents a partial category update. Absent fields
// are left untouched; a present subcategories array replaces the whole set.
type UpdateCategoryRequest struct {
	Name          *string               `json:"name" binding:"omitempty,min=1,max=160"`
	NameEn        *string               `json:"name_en" binding:"omitempty,max=160"`
	Slug          *string               `json:"slug" binding:"omitempty,max=160"`
	Order         *int                  `json:"order" binding:"omitempty,min=0"`
	IsActive      *bool                 `json:"is_active"`
	AvailableFrom *string               `json:"available_from" binding:"omitempty,datetime=15:04"`
	AvailableTo   *string               `json:"available_to" binding:"omitempty,datetime=15:04"`
	AvailableDays *string               `json:"available_days" binding:"omitempty,max=64"`
	Subcategories *[]SubcategoryRequest `json:"subcategories" binding:"omitempty,dive"`
}

// SubcategoryResponse is the API representation of a subcategory.
type SubcategoryResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"name_en,omitempty"`
	Order  int    `json:"order"`
}

// CategoryResponse is the API representation of a category.
type CategoryResponse struct {
	ID            uint                  `json:"id"`
	ProviderID    uint                  `json:"provider_id"`
	Slug          string                `json:"slug"`
	Name          string                `json:"name"`
	NameEn        string                `json:"name_en,omitempty"`
	Order         int                   `json:"order"`
	IsActive      bool                  `json:"is_active"`
	AvailableFrom string                `json:"available_from,omitempty"`
	AvailableTo   string                `json:"available_to,omitempty"`
	AvailableDays string                `json:"available_days,omitempty"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// NewCategoryResponse maps a category to its API representation.
func NewCategoryResponse(c *domain.Category) CategoryResponse {
	subs := make([]SubcategoryResponse, 0, len(c.Subcategories))
	for i := range c.Subcategories {
		sub := &c.Subcategories[i]
		subs = append(subs, SubcategoryResponse{
			ID:     sub.ID,
			Name:   sub.Name,
			NameEn: sub.NameEn,
			Order:  sub.Order,
		})
	}
	return CategoryResponse{
		ID:            c.ID,
		ProviderID:    c.ProviderID,
		Slug:          c.Slug,
		Name:          c.Name,
		NameEn:        c.NameEn,
		Order:         c.Order,
		IsActive:      c.IsActive,
		AvailableFrom: c.AvailableFrom,
		AvailableTo:   c.AvailableTo,
		AvailableDays: c.AvailableDays,
		Subcategories: subs,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// NewCategoryList maps a category page to its API representation.
func NewCategoryList(page *domain.PageResult[domain.Category]) *domain.PageResult[CategoryResponse] {
	items := make([]CategoryResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, NewCategoryResponse(&page.Items[i]))
	}
	return &domain.PageResult[CategoryResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

func toSubcategoryInputs(in []SubcategoryRequest) []SubcategoryInput {
	subs := make([]SubcategoryInput, 0, len(in))
	for _, sub := range in {
		subs = append(subs, SubcategoryInput{Name: sub.Name, NameEn: sub.NameEn, Order: sub.Order})
	}
	return subs
}
