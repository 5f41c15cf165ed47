package menu

import (
	"github.com/digimenu/digimenu/internal/domain"
)

// MenuResponse is the public menu payload: storefront header plus categories
// with their items. Owner-only fields are never included here.
type MenuResponse struct {
	Provider   MenuProviderResponse   `json:"provider"`
	Categories []MenuCategoryResponse `json:"categories"`
}

// MenuProviderResponse is the storefront header on the public menu page.
type MenuProviderResponse struct {
	ID          uint   `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	NameEn      string `json:"name_en,omitempty"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Instagram   string `json:"instagram,omitempty"`
	PriceRange  string `json:"price_range,omitempty"`
}

// MenuCategoryResponse is one category section of the public menu.
type MenuCategoryResponse struct {
	ID            uint                      `json:"id"`
	Slug          string                    `json:"slug"`
	Name          string                    `json:"name"`
	NameEn        string                    `json:"name_en,omitempty"`
	Order         int                       `json:"order"`
	AvailableFrom string                    `json:"available_from,omitempty"`
	AvailableTo   string                    `json:"available_to,omitempty"`
	AvailableDays string                    `json:"available_days,omitempty"`
	Subcategories []MenuSubcategoryResponse `json:"subcategories"`
	Items         []MenuItemResponse        `json:"items"`
}

// MenuSubcategoryResponse is one subcategory heading inside a menu category.
type MenuSubcategoryResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"name_en,omitempty"`
	Order  int    `json:"order"`
}

// MenuItemResponse is one item as rendered on the public menu.
type MenuItemResponse struct {
	ID            uint                  `json:"id"`
	SubcategoryID *uint                 `json:"subcategory_id"`
	Slug          string                `json:"slug"`
	Name          string                `json:"name"`
	NameEn        string                `json:"name_en,omitempty"`
	Description   string                `json:"description,omitempty"`
	Price         int64                 `json:"price"`
	Order         int                   `json:"order"`
	IsAvailable   bool                  `json:"is_available"`
	IsVegetarian  bool                  `json:"is_vegetarian"`
	IsVegan       bool                  `json:"is_vegan"`
	IsGlutenFree  bool                  `json:"is_gluten_free"`
	IsSpicy       bool                  `json:"is_spicy"`
	CalorieCount  int                   `json:"calorie_count,omitempty"`
	AvailableFrom string                `json:"available_from,omitempty"`
	AvailableTo   string                `json:"available_to,omitempty"`
	AvailableDays string                `json:"available_days,omitempty"`
	Variants      []MenuVariantResponse `json:"variants"`
	Addons        []MenuAddonResponse   `json:"addons"`
}

// MenuVariantResponse is one price variant on the public menu.
type MenuVariantResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// MenuAddonResponse is one addon on the public menu.
type MenuAddonResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Required     bool   `json:"required"`
	MaxSelection int    `json:"max_selection"`
}

// NewMenuResponse maps an assembled menu to the public payload.
func NewMenuResponse(m *PublicMenu) MenuResponse {
	p := m.Provider
	resp := MenuResponse{
		Provider: MenuProviderResponse{
			ID:          p.ID,
			Slug:        p.Slug,
			Name:        p.Name,
			NameEn:      p.NameEn,
			Type:        p.Type,
			Description: p.Description,
			Address:     p.Address,
			City:        p.City,
			Phone:       p.Phone,
			Instagram:   p.Instagram,
			PriceRange:  p.PriceRange,
		},
		Categories: make([]MenuCategoryResponse, 0, len(m.Categories)),
	}

	for i := range m.Categories {
		resp.Categories = append(resp.Categories, newMenuCategoryResponse(&m.Categories[i]))
	}
	return resp
}

func newMenuCategoryResponse(mc *MenuCategory) MenuCategoryResponse {
	c := &mc.Category
	subs := make([]MenuSubcategoryResponse, 0, len(c.Subcategories))
	for i := range c.Subcategories {
		sub := &c.Subcategories[i]
		subs = append(subs, MenuSubcategoryResponse{
			ID:     sub.ID,
			Name:   sub.Name,
			NameEn: sub.NameEn,
			Order:  sub.Order,
		})
	}

	items := make([]MenuItemResponse, 0, len(mc.Items))
	for i := range mc.Items {
		items = append(items, newMenuItemResponse(&mc.Items[i]))
	}

	return MenuCategoryResponse{
		ID:            c.ID,
		Slug:          c.Slug,
		Name:          c.Name,
		NameEn:        c.NameEn,
		Order:         c.Order,
		AvailableFrom: c.AvailableFrom,
		AvailableTo:   c.AvailableTo,
		AvailableDays: c.AvailableDays,
		Subcategories: subs,
		Items:         items,
	}
}

func newMenuItemResponse(item *domain.MenuItem) MenuItemResponse {
	variants := make([]MenuVariantResponse, 0, len(item.Variants))
	for i := range item.Variants {
		v := &item.Variants[i]
		variants = append(variants, MenuVariantResponse{ID: v.ID, Name: v.Name, Price: v.Price})
	}
	addons := make([]MenuAddonResponse, 0, len(item.Addons))
	for i := range item.Addons {
		a := &item.Addons[i]
		addons = append(addons, MenuAddonResponse{
			ID:           a.ID,
			Name:         a.Name,
			Price:        a.Price,
			Required:     a.Required,
			MaxSelection: a.MaxSelection,
		})
	}
	return MenuItemResponse{
		ID:            item.ID,
		SubcategoryID: item.SubcategoryID,
		Slug:          item.Slug,
		Name:          item.Name,
		NameEn:        item.NameEn,
		Description:   item.Description,
		Price:         item.Price,
		Order:         item.Order,
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
	}
}
