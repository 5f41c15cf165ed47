package domain

import "context"

// Category is a named grouping of menu items belonging to one provider.
// Slugs are unique per provider, so two providers may share a category slug.
type Category struct {
	BaseModel
	ProviderID    uint          `gorm:"not null;uniqueIndex:idx_categories_provider_slug,priority:1" json:"provider_id"`
	Slug          string        `gorm:"size:160;not null;uniqueIndex:idx_categories_provider_slug,priority:2" json:"slug"`
	Name          string        `gorm:"size:160;not null" json:"name"`
	NameEn        string        `gorm:"size:160" json:"name_en,omitempty"`
	Order         int           `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive      bool          `gorm:"not null;default:true" json:"is_active"`
	AvailableFrom string        `gorm:"size:5" json:"available_from,omitempty"`
	AvailableTo   string        `gorm:"size:5" json:"available_to,omitempty"`
	AvailableDays string        `gorm:"size:64" json:"available_days,omitempty"`
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID" json:"subcategories"`
}

// Subcategory is a lightweight grouping inside a category. It has no slug and
// no availability of its own; menu items may optionally reference one.
type Subcategory struct {
	BaseModel
	CategoryID uint   `gorm:"not null;index" json:"category_id"`
	Name       string `gorm:"size:160;not null" json:"name"`
	NameEn     string `gorm:"size:160" json:"name_en,omitempty"`
	Order      int    `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// CategoryRepository defines the data access interface for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	ListByProvider(ctx context.Context, providerID uint, req PageRequest) (*PageResult[Category], error)
	ListActiveByProvider(ctx context.Context, providerID uint) ([]Category, error)
	Update(ctx context.Context, c *Category) error
	ReplaceSubcategories(ctx context.Context, categoryID uint, subs []Subcategory) error
	Delete(ctx context.Context, id uint) error
	SlugExists(ctx context.Context, providerID uint, slug string, excludeID uint) (bool, error)
	MaxOrder(ctx context.Context, providerID uint) (int, error)
}
