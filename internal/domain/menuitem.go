package domain

import "context"

// MenuItem is a sellable item belonging to one provider and exactly one of
// that provider's categories. Prices are stored in minor currency units.
// Slugs are unique per provider. The view/order/favorite counters are
// write-only increments and never set directly by clients.
type MenuItem struct {
	BaseModel
	ProviderID    uint          `gorm:"not null;uniqueIndex:idx_menu_items_provider_slug,priority:1" json:"provider_id"`
	CategoryID    uint          `gorm:"not null;index" json:"category_id"`
	SubcategoryID *uint         `gorm:"index" json:"subcategory_id"`
	Slug          string        `gorm:"size:160;not null;uniqueIndex:idx_menu_items_provider_slug,priority:2" json:"slug"`
	Name          string        `gorm:"size:160;not null" json:"name"`
	NameEn        string        `gorm:"size:160" json:"name_en,omitempty"`
	Description   string        `gorm:"size:2000" json:"description,omitempty"`
	Price         int64         `gorm:"not null" json:"price"`
	Order         int           `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive      bool          `gorm:"not null;default:true" json:"is_active"`
	IsAvailable   bool          `gorm:"not null;default:true" json:"is_available"`
	IsVegetarian  bool          `gorm:"not null;default:false" json:"is_vegetarian"`
	IsVegan       bool          `gorm:"not null;default:false" json:"is_vegan"`
	IsGlutenFree  bool          `gorm:"not null;default:false" json:"is_gluten_free"`
	IsSpicy       bool          `gorm:"not null;default:false" json:"is_spicy"`
	CalorieCount  int           `gorm:"not null;default:0" json:"calorie_count,omitempty"`
	AvailableFrom string        `gorm:"size:5" json:"available_from,omitempty"`
	AvailableTo   string        `gorm:"size:5" json:"available_to,omitempty"`
	AvailableDays string        `gorm:"size:64" json:"available_days,omitempty"`
	Variants      []ItemVariant `gorm:"foreignKey:MenuItemID" json:"variants"`
	Addons        []ItemAddon   `gorm:"foreignKey:MenuItemID" json:"addons"`
	ViewCount     int64         `gorm:"not null;default:0" json:"view_count"`
	OrderCount    int64         `gorm:"not null;default:0" json:"order_count"`
	FavoriteCount int64         `gorm:"not null;default:0" json:"favorite_count"`
}

// ItemVariant is a named price alternative for a menu item (e.g. "large").
type ItemVariant struct {
	BaseModel
	MenuItemID uint   `gorm:"not null;index" json:"menu_item_id"`
	Name       string `gorm:"size:160;not null" json:"name"`
	Price      int64  `gorm:"not null" json:"price"`
}

// ItemAddon is a named priced add-on with selection constraints.
type ItemAddon struct {
	BaseModel
	MenuItemID   uint   `gorm:"not null;index" json:"menu_item_id"`
	Name         string `gorm:"size:160;not null" json:"name"`
	Price        int64  `gorm:"not null" json:"price"`
	Required     bool   `gorm:"not null;default:false" json:"required"`
	MaxSelection int    `gorm:"not null;default:0" json:"max_selection"`
}

// MenuItemRepository defines the data access interface for menu items.
type MenuItemRepository interface {
	Create(ctx context.Context, item *MenuItem) error
	GetByID(ctx context.Context, id uint) (*MenuItem, error)
	ListByProvider(ctx context.Context, providerID uint, req PageRequest) (*PageResult[MenuItem], error)
	ListVisibleByCategory(ctx context.Context, categoryID uint) ([]MenuItem, error)
	Update(ctx context.Context, item *MenuItem) error
	ReplaceVariants(ctx context.Context, itemID uint, variants []ItemVariant) error
	ReplaceAddons(ctx context.Context, itemID uint, addons []ItemAddon) error
	Delete(ctx context.Context, id uint) error
	SlugExists(ctx context.Context, providerID uint, slug string, excludeID uint) (bool, error)
	MaxOrder(ctx context.Context, categoryID uint) (int, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
	IncrementViewCount(ctx context.Context, id uint) error
}
