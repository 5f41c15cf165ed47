package menuitem

import (
	"time"

	"github.com/digimenu/digimenu/internal/domain"
	"github.com/digimenu/digimenu/internal/pkg"
)

// VariantRequest is one price variant in a create or update payload.
type VariantRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=160"`
	Price int64  `json:"price" binding:"min=0"`
}

// AddonRequest is one addon in a create or update payload.
type AddonRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=160"`
	Price        int64  `json:"price" binding:"min=0"`
	Required     bool   `json:"required"`
	MaxSelection int    `json:"max_selection" binding:"omitempty,min=0"`
}

// CreateMenuItemRequest represents the input for creating a menu item.
// Price is in minor currency units.
type CreateMenuItemRequest struct {
	CategoryID    uint             `json:"category_id" binding:"required"`
	SubcategoryID *uint            `json:"subcategory_id"`
	Name          string           `json:"name" binding:"required,min=1,max=160"`
	NameEn        string           `json:"name_en" binding:"omitempty,max=160"`
	Slug          string           `json:"slug" binding:"omitempty,max=160"`
	Description   string           `json:"description" binding:"omitempty,max=2000"`
	Price         int64            `json:"price" binding:"min=0"`
	IsVegetarian  bool             `json:"is_vegetarian"`
	IsVegan       bool             `json:"is_vegan"`
	IsGlutenFree  bool             `json:"is_gluten_free"`
	IsSpicy       bool             `json:"is_spicy"`
	CalorieCount  int              `json:"calorie_count" binding:"omitempty,min=0"`
	AvailableFrom string           `json:"available_from" binding:"omitempty,datetime=15:04"`
	AvailableTo   string           `json:"available_to" binding:"omitempty,datetime=15:04"`
	AvailableDays string           `json:"available_days" binding:"omitempty,max=64"`
	Variants      []VariantRequest `json:"variants" binding:"omitempty,dive"`
	Addons        []AddonRequest   `json:"addons" binding:"omitempty,dive"`
}

// UpdateMenuItemRequest represents a partial menu item update. Absent fields
// are left untouched. subcategory_id distinguishes absent from explicit null:
// null clears the assignment. Present variants or addons replace the whole set.
type UpdateMenuItemRequest struct {
	CategoryID    *uint             `json:"category_id"`
	SubcategoryID pkg.Patch[uint]   `json:"subcategory_id"`
	Name          *string           `json:"name" binding:"omitempty,min=1,max=160"`
	NameEn        *string           `json:"name_en" binding:"omitempty,max=160"`
	Slug          *string           `json:"slug" binding:"omitempty,max=160"`
	Description   *string           `json:"description" binding:"omitempty,max=2000"`
	Price         *int64            `json:"price" binding:"omitempty,min=0"`
	Order         *int              `json:"order" binding:"omitempty,min=0"`
	IsActive      *bool             `json:"is_active"`
	IsAvailable   *bool             `json:"is_available"`
	IsVegetarian  *bool             `json:"is_vegetarian"`
	IsVegan       *bool             `json:"is_vegan"`
	IsGlutenFree  *bool             `json:"is_gluten_free"`
	IsSpicy       *bool             `json:"is_spicy"`
	CalorieCount  *int              `json:"calorie_count" binding:"omitempty,min=0"`
	AvailableFrom *string           `json:"available_from" binding:"omitempty,datetime=15:04"`
	AvailableTo   *string           `json:"available_to" binding:"omitempty,datetime=15:04"`
	AvailableDays *string           `json:"available_days" binding:"omitempty,max=64"`
	Variants      *[]VariantRequest `json:"variants" binding:"omitempty,dive"`
	Addons        *[]AddonRequest   `json:"addons" binding:"omitempty,dive"`
}

// VariantResponse is the API representation of an item variant.
type VariantResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// AddonResponse is the API representation of an item addon.
type AddonResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Required     bool   `json:"required"`
	MaxSelection int    `json:"max_selection"`
}

// MenuItemResponse is the API representation of a menu item.
type MenuItemResponse struct {
	ID            uint              `json:"id"`
	ProviderID    uint              `json:"provider_id"`
	CategoryID    uint              `json:"category_id"`
	SubcategoryID *uint             `json:"subcategory_id"`
	Slug          string            `json:"slug"`
	Name          string            `json:"name"`
	NameEn        string            `json:"name_en,omitempty"`
	Description   string            `json:"description,omitempty"`
	Price         int64             `json:"price"`
	Order         int               `json:"order"`
	IsActive      bool              `json:"is_active"`
	IsAvailable   bool              `json:"is_available"`
	IsVegetarian  bool              `json:"is_vegetarian"`
	IsVegan       bool              `json:"is_vegan"`
	IsGlutenFree  bool              `json:"is_gluten_free"`
	IsSpicy       bool              `json:"is_spicy"`
	CalorieCount  int               `json:"calorie_count,omitempty"`
	AvailableFrom string            `json:"available_from,omitempty"`
	AvailableTo   string            `json:"available_to,omitempty"`
	AvailableDays string            `json:"available_days,omitempty"`
	Variants      []VariantResponse `json:"variants"`
	Addons        []AddonResponse   `json:"addons"`
	ViewCount     int64             `json:"view_count"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// NewMenuItemResponse maps a menu item to its API representation.
func NewMenuItemResponse(item *domain.MenuItem) MenuItemResponse {
	variants := make([]VariantResponse, 0, len(item.Variants))
	for i := range item.Variants {
		v := &item.Variants[i]
		variants = append(variants, VariantResponse{ID: v.ID, Name: v.Name, Price: v.Price})
	}
	addons := make([]AddonResponse, 0, len(item.Addons))
	for i := range item.Addons {
		a := &item.Addons[i]
		addons = append(addons, AddonResponse{
			ID:           a.ID,
			Name:         a.Name,
			Price:        a.Price,
			Required:     a.Required,
			MaxSelection: a.MaxSelection,
		})
	}
	return MenuItemResponse{
		ID:            item.ID,
		ProviderID:    item.ProviderID,
		CategoryID:    item.CategoryID,
		SubcategoryID: item.SubcategoryID,
		Slug:          item.Slug,
		Name:          item.Name,
		NameEn:        item.NameEn,
		Description:   item.Description,
		Price:         item.Price,
		Order:         item.Order,
		IsActive:      item.IsActive,
		IsAvailable:   item.IsAvailable,
		IsVegetarian:  item.IsVegetarian,
		IsVegan:       item.IsVegan,
		IsGlutenFree:  item.IsGlutenFree,
		IsSpicy:       item.IsSpicy,
		CalorieCount:  item.CalorieCount,
		AvailableFrom: item.AvailableFrom,
		AvailableTo:   item.AvailableTo,
		AvailableDays: item.AvailableDays,
		Variants:      variants,
		Addons:        addons,
		ViewCount:     item.ViewCount,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

// NewMenuItemList maps a menu item page to its API representation.
func NewMenuItemList(page *domain.PageResult[domain.MenuItem]) *domain.PageResult[MenuItemResponse] {
	items := make([]MenuItemResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, NewMenuItemResponse(&page.Items[i]))
	}
	return &domain.PageResult[MenuItemResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

func toVariantInputs(in []VariantRequest) []VariantInput {
	variants := make([]VariantInput, 0, len(in))
	for _, v := range in {
		variants = append(variants, VariantInput{Name: v.Name, Price: v.Price})
	}
	return variants
}

func toAddonInputs(in []AddonRequest) []AddonInput {
	addons := make([]AddonInput, 0, len(in))
	for _, a := range in {
		addons = append(addons, AddonInput{
			Name:         a.Name,
			Price:        a.Price,
			Required:     a.Required,
			MaxSelection: a.MaxSelection,
		})
	}
	return addons
}
