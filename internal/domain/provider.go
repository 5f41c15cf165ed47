package domain

import "context"

// Provider types.
const (
	ProviderTypeRestaurant = "restaurant"
	ProviderTypeCafe       = "cafe"
	ProviderTypeBakery     = "bakery"
	ProviderTypeFoodTruck  = "food_truck"
	ProviderTypeOther      = "other"
)

// Provider is a tenant's storefront record. The slug is globally unique and
// forms the public menu URL. Categories and menu items reference the provider
// directly; the owning user is always derived through UserID, never stored on
// children.
type Provider struct {
	BaseModel
	UserID      uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Slug        string `gorm:"size:160;uniqueIndex;not null" json:"slug"`
	Name        string `gorm:"size:160;not null" json:"name"`
	NameEn      string `gorm:"size:160" json:"name_en,omitempty"`
	Type        string `gorm:"size:32;not null;default:restaurant" json:"type"`
	Description string `gorm:"size:2000" json:"description,omitempty"`
	Address     string `gorm:"size:500" json:"address,omitempty"`
	City        string `gorm:"size:100" json:"city,omitempty"`
	Phone       string `gorm:"size:32" json:"phone,omitempty"`
	Instagram   string `gorm:"size:100" json:"instagram,omitempty"`
	PriceRange  string `gorm:"size:8" json:"price_range,omitempty"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
	IsCompleted bool   `gorm:"not null;default:false" json:"is_completed"`
	IsVerified  bool   `gorm:"not null;default:false" json:"is_verified"`
	ViewCount   int64  `gorm:"not null;default:0" json:"view_count"`
}

// ValidProviderType reports whether t is a known provider type.
func ValidProviderType(t string) bool {
	switch t {
	case ProviderTypeRestaurant, ProviderTypeCafe, ProviderTypeBakery, ProviderTypeFoodTruck, ProviderTypeOther:
		return true
	}
	return false
}

// ProviderRepository defines the data access interface for providers.
type ProviderRepository interface {
	Create(ctx context.Context, p *Provider) error
	GetByID(ctx context.Context, id uint) (*Provider, error)
	GetByUserID(ctx context.Context, userID uint) (*Provider, error)
	GetBySlug(ctx context.Context, slug string) (*Provider, error)
	List(ctx context.Context, req PageRequest, onlyActive bool) (*PageResult[Provider], error)
	Update(ctx context.Context, p *Provider) error
	Delete(ctx context.Context, id uint) error
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	IncrementViewCount(ctx context.Context, id uint) error
}
